package ports

import (
	"context"
)

// UnitOfWorkFactory creates a UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of a command. Begin takes the store
// lock; Commit applies the staged changes and Rollback drops them. Both
// release the lock. Handlers defer Rollback and ignore its error after a
// successful Commit.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	UserRepository() UserRepository
	PackageRepository() PackageRepository
	LedgerRepository() LedgerRepository
}
