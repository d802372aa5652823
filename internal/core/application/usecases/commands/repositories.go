// Package commands contains the operations that change station state.
// Every command follows the same steps: validate, open a unit of work,
// mutate aggregates, commit.
package commands

import (
	"context"
	"time"

	"station/internal/core/ports"
)

// Unit of work interfaces narrowed to what each handler touches.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	PackageRepoFactory interface {
		PackageRepository() ports.PackageRepository
	}

	LedgerRepoFactory interface {
		LedgerRepository() ports.LedgerRepository
	}

	// UserUoW is used by commands that only touch users.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	UserUoWFactory interface {
		Create() UserUoW
	}

	// UoW spans users, packages and the ledger.
	//
	// Example:
	//   uow := factory.Create()
	//   if err := uow.Begin(ctx); err != nil {
	//       return err
	//   }
	//   defer func() { _ = uow.Rollback(ctx) }()
	//
	//   pkg, err := uow.PackageRepository().Get(ctx, id)
	//   // ... mutate, Update, Append
	//
	//   return uow.Commit(ctx)
	UoW interface {
		TxManager
		UserRepoFactory
		PackageRepoFactory
		LedgerRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)

// Clock returns the current time. Handlers take one so tests can pin "now".
type Clock func() time.Time
