// Package ports defines the contracts between the station core and its
// adapters: repositories, the unit of work, the ID allocator and the label
// printer.
package ports

import (
	"context"

	"station/internal/core/domain/model/user"
)

// UserRepository stores user aggregates.
type UserRepository interface {
	// Add stores a new user. The ID must not be taken.
	Add(ctx context.Context, u *user.User) error

	// Update replaces a stored user.
	Update(ctx context.Context, u *user.User) error

	// Get returns a copy of the user, or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id int) (*user.User, error)

	// GetAll returns every user, most recently registered first.
	GetAll(ctx context.Context) ([]*user.User, error)
}
