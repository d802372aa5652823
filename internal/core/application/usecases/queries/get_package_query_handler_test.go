package queries_test

import (
	"station/internal/core/application/usecases/queries"
	"station/internal/core/domain/model/parcel"
	"station/internal/pkg/errs"
)

func (s *RecordsSuite) TestGetPackage_InStock() {
	query, err := queries.NewGetPackageQuery(1)
	s.Require().NoError(err)

	res, err := queries.NewGetPackageQueryHandler(s.store).Handle(s.T().Context(), query)

	s.Require().NoError(err)
	s.Equal(1000, res.UserID)
	s.Equal(parcel.Large, res.Attributes.Size)
	s.Equal(parcel.ExpressAir, res.Attributes.ShippingMethod)
	s.Equal("SH12", res.ShelfCode)
	s.Equal(parcel.InStock, res.Status)
	s.Nil(res.Pickup)
	s.Equal("14.40", res.StorageFee.StringFixed(2))
}

func (s *RecordsSuite) TestGetPackage_PickedUpHasPickupTime() {
	query, _ := queries.NewGetPackageQuery(3)

	res, err := queries.NewGetPackageQueryHandler(s.store).Handle(s.T().Context(), query)

	s.Require().NoError(err)
	s.Require().NotNil(res.Pickup)
	s.True(res.Pickup.Equal(now.Add(-9 * day)))
}

func (s *RecordsSuite) TestGetPackage_Unknown() {
	query, _ := queries.NewGetPackageQuery(99)

	_, err := queries.NewGetPackageQueryHandler(s.store).Handle(s.T().Context(), query)

	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
	s.EqualError(err, "object not found: package 99")
}

func (s *RecordsSuite) TestGetPackage_InvalidID() {
	_, err := queries.NewGetPackageQuery(0)
	s.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}
