package queries

import (
	"context"

	"station/internal/pkg/errs"
)

type GetPackageQueryHandler struct {
	source PackageSource
}

func NewGetPackageQueryHandler(source PackageSource) GetPackageQueryHandler {
	return GetPackageQueryHandler{source: source}
}

// Handle returns an errs.ObjectNotFoundError for an unknown ID.
func (h GetPackageQueryHandler) Handle(ctx context.Context, query GetPackageQuery) (GetPackageQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPackageQueryResponse{}, err
	}

	packages, err := h.source.Packages(ctx)
	if err != nil {
		return GetPackageQueryResponse{}, err
	}

	for _, p := range packages {
		if p.ID() != query.PackageID() {
			continue
		}

		res := GetPackageQueryResponse{
			ID:         p.ID(),
			UserID:     p.UserID(),
			Attributes: p.Attributes(),
			ShelfCode:  p.ShelfCode(),
			Arrival:    p.Arrival(),
			Status:     p.Status(),
			StorageFee: p.StorageFee(),
		}
		if at, ok := p.Pickup(); ok {
			res.Pickup = &at
		}
		return res, nil
	}

	return GetPackageQueryResponse{}, errs.NewObjectNotFoundError("package", query.PackageID())
}
