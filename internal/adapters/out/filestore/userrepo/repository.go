package userrepo

import (
	"context"

	"station/internal/adapters/out/filestore/table"
	"station/internal/core/domain/model/user"
	"station/internal/pkg/errs"
)

type aggregateTracker interface {
	TrackAggregate(kind string, id any)
}

// Repository implements ports.UserRepository over a staged user table.
type Repository struct {
	tbl     *Table
	tracker aggregateTracker
}

// NewRepository binds a repository to tbl. A nil table yields a repository
// whose calls fail with table.ErrNoTransaction. tracker may be nil.
func NewRepository(tbl *Table, tracker aggregateTracker) *Repository {
	return &Repository{tbl: tbl, tracker: tracker}
}

func (r *Repository) Add(_ context.Context, u *user.User) error {
	if err := u.Validate(); err != nil {
		return err
	}
	if r.tbl == nil {
		return table.ErrNoTransaction
	}

	if err := r.tbl.Insert(fromDomain(u)); err != nil {
		return err
	}
	r.track(u.ID())
	return nil
}

func (r *Repository) Update(_ context.Context, u *user.User) error {
	if err := u.Validate(); err != nil {
		return err
	}
	if r.tbl == nil {
		return table.ErrNoTransaction
	}

	if err := r.tbl.Replace(fromDomain(u)); err != nil {
		return err
	}
	r.track(u.ID())
	return nil
}

func (r *Repository) Get(_ context.Context, id int) (*user.User, error) {
	if r.tbl == nil {
		return nil, table.ErrNoTransaction
	}

	dto, ok := r.tbl.Get(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("user", id)
	}
	return toDomain(dto)
}

func (r *Repository) GetAll(_ context.Context) ([]*user.User, error) {
	if r.tbl == nil {
		return nil, table.ErrNoTransaction
	}

	dtos := r.tbl.All()
	users := make([]*user.User, 0, len(dtos))
	for _, dto := range dtos {
		u, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

func (r *Repository) track(id int) {
	if r.tracker != nil {
		r.tracker.TrackAggregate("user", id)
	}
}
