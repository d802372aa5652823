package queries

import (
	"context"

	"station/internal/core/domain/model/parcel"
)

type GetArrivalsReportQueryHandler struct {
	source PackageSource
	now    Clock
}

func NewGetArrivalsReportQueryHandler(source PackageSource, now Clock) GetArrivalsReportQueryHandler {
	return GetArrivalsReportQueryHandler{source: source, now: now}
}

func (h GetArrivalsReportQueryHandler) Handle(
	ctx context.Context,
	query GetArrivalsReportQuery,
) (GetArrivalsReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetArrivalsReportQueryResponse{}, err
	}

	packages, err := h.source.Packages(ctx)
	if err != nil {
		return GetArrivalsReportQueryResponse{}, err
	}

	to := h.now()
	from := to.Add(-query.Period().Duration())

	counts := make(map[parcel.Size]int)
	total := 0
	for _, p := range packages {
		if p.Arrival().Before(from) || p.Arrival().After(to) {
			continue
		}
		counts[p.Attributes().Size]++
		total++
	}

	res := GetArrivalsReportQueryResponse{
		Period: query.Period(),
		From:   from,
		To:     to,
		Lines:  make([]ArrivalsLine, 0, len(parcel.Sizes())),
		Total:  total,
	}
	for _, size := range parcel.Sizes() {
		res.Lines = append(res.Lines, ArrivalsLine{Size: size, Count: counts[size]})
	}

	return res, nil
}
