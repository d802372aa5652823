package filestore

import (
	"context"

	"station/internal/adapters/out/filestore/ledgerrepo"
	"station/internal/adapters/out/filestore/parcelrepo"
	"station/internal/adapters/out/filestore/table"
	"station/internal/adapters/out/filestore/userrepo"
	"station/internal/core/ports"
)

type trackedAggregate struct {
	Kind string
	ID   any
}

// UnitOfWorkFactory creates units of work over one Store.
type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork stages changes on clones of the store tables.
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.PackageRepository().Update(ctx, pkg); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Begin holds the store lock until Commit or Rollback, so a unit of work must
// not outlive the operation that opened it. Repositories taken before Begin
// fail with table.ErrNoTransaction.
type UnitOfWork struct {
	store   *Store
	active  bool
	users   *userrepo.Table
	packs   *parcelrepo.Table
	ledger  *ledgerrepo.Table
	tracked []trackedAggregate
}

// Begin locks the store and snapshots its tables. Calling Begin again on an
// active unit of work is a no-op.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.active {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	uow.store.mu.Lock()
	uow.users = uow.store.users.Clone()
	uow.packs = uow.store.packages.Clone()
	uow.ledger = uow.store.ledger.Clone()
	uow.tracked = uow.tracked[:0]
	uow.active = true
	return nil
}

// Commit publishes the staged tables and releases the lock.
func (uow *UnitOfWork) Commit(ctx context.Context) error {
	if !uow.active {
		return table.ErrNoTransaction
	}

	uow.store.users, uow.store.packages, uow.store.ledger = uow.users, uow.packs, uow.ledger
	uow.store.logger.DebugContext(ctx, "unit of work committed", "changes", len(uow.tracked))
	uow.release()
	return nil
}

// Rollback drops the staged tables and releases the lock. It returns
// table.ErrNoTransaction after Commit, which deferred calls ignore.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return table.ErrNoTransaction
	}

	uow.release()
	return nil
}

func (uow *UnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewRepository(uow.users, uow)
}

func (uow *UnitOfWork) PackageRepository() ports.PackageRepository {
	return parcelrepo.NewRepository(uow.packs, uow)
}

func (uow *UnitOfWork) LedgerRepository() ports.LedgerRepository {
	return ledgerrepo.NewRepository(uow.ledger, uow)
}

// TrackAggregate records a change staged by a repository.
func (uow *UnitOfWork) TrackAggregate(kind string, id any) {
	uow.tracked = append(uow.tracked, trackedAggregate{Kind: kind, ID: id})
}

func (uow *UnitOfWork) release() {
	uow.users, uow.packs, uow.ledger = nil, nil, nil
	uow.active = false
	uow.store.mu.Unlock()
}
