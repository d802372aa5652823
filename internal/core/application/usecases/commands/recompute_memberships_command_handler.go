package commands

import (
	"context"
)

// RecomputeMembershipsCommandHandler applies the membership rules to every
// user in one unit of work and stores only the users whose tier changed.
type RecomputeMembershipsCommandHandler struct {
	uowFactory UserUoWFactory
	now        Clock
}

func NewRecomputeMembershipsCommandHandler(uowFactory UserUoWFactory, now Clock) RecomputeMembershipsCommandHandler {
	return RecomputeMembershipsCommandHandler{uowFactory: uowFactory, now: now}
}

// Handle returns how many tiers changed.
func (h RecomputeMembershipsCommandHandler) Handle(ctx context.Context, cmd RecomputeMembershipsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	now := h.now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	users, err := uow.UserRepository().GetAll(ctx)
	if err != nil {
		return 0, err
	}

	changed := 0
	for _, u := range users {
		if !u.RecomputeMembership(now) {
			continue
		}
		if err = uow.UserRepository().Update(ctx, u); err != nil {
			return 0, err
		}
		changed++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return changed, nil
}
