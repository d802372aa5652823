package queries

import (
	"context"

	"station/internal/core/domain/model/parcel"
)

// Shelf defaults used when the configuration leaves them unset.
const (
	DefaultShelfCapacity    = 50
	DefaultWarningThreshold = 0.8
)

type GetInventoryQueryHandler struct {
	source    PackageSource
	capacity  int
	threshold float64
}

// NewGetInventoryQueryHandler falls back to the defaults for a non-positive
// capacity or threshold.
func NewGetInventoryQueryHandler(source PackageSource, capacity int, threshold float64) GetInventoryQueryHandler {
	if capacity <= 0 {
		capacity = DefaultShelfCapacity
	}
	if threshold <= 0 {
		threshold = DefaultWarningThreshold
	}
	return GetInventoryQueryHandler{source: source, capacity: capacity, threshold: threshold}
}

func (h GetInventoryQueryHandler) Handle(ctx context.Context, query GetInventoryQuery) (GetInventoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetInventoryQueryResponse{}, err
	}

	packages, err := h.source.Packages(ctx)
	if err != nil {
		return GetInventoryQueryResponse{}, err
	}

	counts := make(map[parcel.Size]int)
	for _, p := range packages {
		if p.Status() == parcel.InStock {
			counts[p.Attributes().Size]++
		}
	}

	limit := float64(h.capacity) * h.threshold
	res := GetInventoryQueryResponse{Lines: make([]InventoryLine, 0, len(parcel.Sizes()))}
	for _, size := range parcel.Sizes() {
		n := counts[size]
		res.Lines = append(res.Lines, InventoryLine{
			Size:     size,
			InStock:  n,
			Capacity: h.capacity,
			Percent:  float64(n) / float64(h.capacity) * 100,
			Warning:  float64(n) > limit,
		})
	}

	return res, nil
}
