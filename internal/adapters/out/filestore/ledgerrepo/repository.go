package ledgerrepo

import (
	"context"

	"station/internal/adapters/out/filestore/table"
	"station/internal/core/domain/model/finance"
)

type aggregateTracker interface {
	TrackAggregate(kind string, id any)
}

// Repository implements ports.LedgerRepository. The ledger is append-only.
type Repository struct {
	tbl     *Table
	tracker aggregateTracker
}

func NewRepository(tbl *Table, tracker aggregateTracker) *Repository {
	return &Repository{tbl: tbl, tracker: tracker}
}

func (r *Repository) Append(_ context.Context, e *finance.Entry) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if r.tbl == nil {
		return table.ErrNoTransaction
	}

	if err := r.tbl.Insert(fromDomain(e)); err != nil {
		return err
	}
	if r.tracker != nil {
		r.tracker.TrackAggregate("finance entry", e.ID().String())
	}
	return nil
}

// GetAll returns the ledger, newest entry first.
func (r *Repository) GetAll(_ context.Context) ([]*finance.Entry, error) {
	if r.tbl == nil {
		return nil, table.ErrNoTransaction
	}

	dtos := r.tbl.All()
	entries := make([]*finance.Entry, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}
