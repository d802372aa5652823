package ports

import (
	"context"

	"station/internal/core/domain/model/parcel"
)

// PackageRepository stores package aggregates.
type PackageRepository interface {
	// Add stores a new package. The ID must not be taken.
	Add(ctx context.Context, p *parcel.Package) error

	// Update replaces a stored package.
	Update(ctx context.Context, p *parcel.Package) error

	// Get returns a copy of the package, or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id int) (*parcel.Package, error)
}
