package queries_test

import (
	"time"

	"station/internal/core/application/usecases/queries"
	"station/internal/core/domain/model/finance"
	"station/internal/core/domain/model/user"
)

func (s *RecordsSuite) TestFinancialReport_Totals() {
	res, err := queries.NewGetFinancialReportQueryHandler(s.store, clock).
		Handle(s.T().Context(), queries.NewGetFinancialReportQuery())

	s.Require().NoError(err)
	s.Equal("37.34", res.Total.StringFixed(2))
	s.Equal("7.34", res.ByType[finance.HandlingFee].StringFixed(2))
	s.Equal("5.00", res.ByType[finance.DeliveryFee].StringFixed(2))
	s.Equal("25.00", res.ByType[finance.StorageCompensation].StringFixed(2))

	s.Equal(2025, res.Year)
	s.True(res.Month(time.January).IsZero())
	s.Equal("7.23", res.Month(time.March).StringFixed(2))
	s.Equal("25.11", res.Month(time.April).StringFixed(2))
	s.True(res.Month(time.December).IsZero())

	s.Equal("100.00", res.ByTier[user.TierNew].StringFixed(2))
	s.Equal("1500.56", res.ByTier[user.TierSilver].StringFixed(2))
	s.Equal("6000.00", res.ByTier[user.TierGold].StringFixed(2))
}

func (s *RecordsSuite) TestFinancialReport_MonthsFollowTheClockLocation() {
	eastOfUTC := func() time.Time {
		return now.In(time.FixedZone("UTC+2", 2*60*60))
	}

	res, err := queries.NewGetFinancialReportQueryHandler(s.store, eastOfUTC).
		Handle(s.T().Context(), queries.NewGetFinancialReportQuery())

	s.Require().NoError(err)
	s.Equal("5.00", res.Month(time.January).StringFixed(2))
	s.Equal("37.34", res.Total.StringFixed(2))
}
