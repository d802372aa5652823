package queries

import (
	"errors"

	"station/internal/core/domain/model/parcel"
	"station/internal/pkg/guard"
)

var ErrGetInventoryQueryIsNotConstructed = errors.New(
	"GetInventoryQuery must be created via NewGetInventoryQuery constructor",
)

// GetInventoryQuery counts InStock packages per size against shelf capacity.
type GetInventoryQuery struct {
	guard guard.ConstructorGuard
}

func NewGetInventoryQuery() GetInventoryQuery {
	return GetInventoryQuery{guard: guard.NewConstructorGuard()}
}

func (q GetInventoryQuery) Validate() error {
	return q.guard.Validate(ErrGetInventoryQueryIsNotConstructed)
}

// InventoryLine is the stock of one size class.
type InventoryLine struct {
	Size     parcel.Size
	InStock  int
	Capacity int
	// Percent of capacity in use.
	Percent float64
	// Warning is set when InStock exceeds Capacity × threshold.
	Warning bool
}

// GetInventoryQueryResponse holds one line per size, largest first.
type GetInventoryQueryResponse struct {
	Lines []InventoryLine
}
