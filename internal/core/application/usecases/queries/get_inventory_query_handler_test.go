package queries_test

import (
	"station/internal/core/application/usecases/queries"
	"station/internal/core/domain/model/parcel"
)

func (s *RecordsSuite) TestGetInventory_CountsOnlyInStock() {
	handler := queries.NewGetInventoryQueryHandler(s.store, 2, 0.5)

	res, err := handler.Handle(s.T().Context(), queries.NewGetInventoryQuery())

	s.Require().NoError(err)
	s.Require().Len(res.Lines, 5)

	bySize := make(map[parcel.Size]queries.InventoryLine)
	for _, line := range res.Lines {
		bySize[line.Size] = line
	}

	s.Equal(parcel.ExtraLarge, res.Lines[0].Size)
	s.Equal(2, bySize[parcel.Large].InStock)
	s.InDelta(100.0, bySize[parcel.Large].Percent, 1e-9)
	s.True(bySize[parcel.Large].Warning)

	s.Equal(1, bySize[parcel.Medium].InStock)
	s.InDelta(50.0, bySize[parcel.Medium].Percent, 1e-9)
	// at the threshold is not above it
	s.False(bySize[parcel.Medium].Warning)

	s.Zero(bySize[parcel.Small].InStock)
	s.Zero(bySize[parcel.Tiny].InStock)
}

func (s *RecordsSuite) TestGetInventory_Defaults() {
	res, err := queries.NewGetInventoryQueryHandler(s.store, 0, 0).
		Handle(s.T().Context(), queries.NewGetInventoryQuery())

	s.Require().NoError(err)
	for _, line := range res.Lines {
		s.Equal(queries.DefaultShelfCapacity, line.Capacity)
		s.False(line.Warning)
	}
}
