package parcelrepo

import (
	"context"

	"station/internal/adapters/out/filestore/table"
	"station/internal/core/domain/model/parcel"
	"station/internal/pkg/errs"
)

type aggregateTracker interface {
	TrackAggregate(kind string, id any)
}

// Repository implements ports.PackageRepository over a staged package table.
type Repository struct {
	tbl     *Table
	tracker aggregateTracker
}

// NewRepository binds a repository to tbl; see userrepo.NewRepository.
func NewRepository(tbl *Table, tracker aggregateTracker) *Repository {
	return &Repository{tbl: tbl, tracker: tracker}
}

func (r *Repository) Add(_ context.Context, p *parcel.Package) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if r.tbl == nil {
		return table.ErrNoTransaction
	}

	if err := r.tbl.Insert(fromDomain(p)); err != nil {
		return err
	}
	r.track(p.ID())
	return nil
}

func (r *Repository) Update(_ context.Context, p *parcel.Package) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if r.tbl == nil {
		return table.ErrNoTransaction
	}

	if err := r.tbl.Replace(fromDomain(p)); err != nil {
		return err
	}
	r.track(p.ID())
	return nil
}

func (r *Repository) Get(_ context.Context, id int) (*parcel.Package, error) {
	if r.tbl == nil {
		return nil, table.ErrNoTransaction
	}

	dto, ok := r.tbl.Get(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("package", id)
	}
	return toDomain(dto)
}

// GetAll returns every package, most recent intake first.
func (r *Repository) GetAll(_ context.Context) ([]*parcel.Package, error) {
	if r.tbl == nil {
		return nil, table.ErrNoTransaction
	}

	dtos := r.tbl.All()
	packages := make([]*parcel.Package, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		packages = append(packages, p)
	}
	return packages, nil
}

func (r *Repository) track(id int) {
	if r.tracker != nil {
		r.tracker.TrackAggregate("package", id)
	}
}
