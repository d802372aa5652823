package commands

import (
	"context"

	"station/internal/core/domain/model/user"
	"station/internal/core/ports"
)

// RegisterUserCommandHandler allocates a user ID and stores the new user.
// The ID is spent even if storing fails; IDs are never reused.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	ids        ports.IDAllocator
	now        Clock
}

func NewRegisterUserCommandHandler(uowFactory UserUoWFactory, ids ports.IDAllocator, now Clock) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{uowFactory: uowFactory, ids: ids, now: now}
}

// Handle returns the new user's ID.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	id, err := h.ids.NextUserID(ctx)
	if err != nil {
		return 0, err
	}

	u, err := user.NewUser(id, cmd.Name(), cmd.Phone(), h.now())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, u); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return id, nil
}
