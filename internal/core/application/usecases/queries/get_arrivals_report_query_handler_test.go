package queries_test

import (
	"station/internal/core/application/usecases/queries"
	"station/internal/core/domain/model/parcel"
	"station/internal/pkg/errs"
)

func (s *RecordsSuite) TestArrivalsReport() {
	cases := []struct {
		period queries.ReportPeriod
		total  int
		counts map[parcel.Size]int
	}{
		{queries.Daily, 2, map[parcel.Size]int{parcel.Large: 1, parcel.Medium: 1}},
		{queries.Weekly, 3, map[parcel.Size]int{parcel.Large: 2, parcel.Medium: 1}},
		{queries.Monthly, 4, map[parcel.Size]int{parcel.Large: 2, parcel.Medium: 1, parcel.Small: 1}},
	}

	handler := queries.NewGetArrivalsReportQueryHandler(s.store, clock)
	for _, tc := range cases {
		s.Run(tc.period.String(), func() {
			query, err := queries.NewGetArrivalsReportQuery(tc.period)
			s.Require().NoError(err)

			res, err := handler.Handle(s.T().Context(), query)

			s.Require().NoError(err)
			s.Equal(tc.total, res.Total)
			s.Equal(now, res.To)
			s.Equal(now.Add(-tc.period.Duration()), res.From)
			s.Len(res.Lines, 5)
			for _, line := range res.Lines {
				s.Equal(tc.counts[line.Size], line.Count, line.Size.String())
			}
		})
	}
}

func (s *RecordsSuite) TestArrivalsReport_RejectsUnknownPeriod() {
	_, err := queries.NewGetArrivalsReportQuery(queries.ReportPeriod(4))
	s.Require().ErrorIs(err, errs.ErrValueIsOutOfRange)
}
