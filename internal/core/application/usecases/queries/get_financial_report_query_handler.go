package queries

import (
	"context"

	"station/internal/core/domain/model/finance"
	"station/internal/core/domain/model/user"

	"github.com/shopspring/decimal"
)

type GetFinancialReportQueryHandler struct {
	source RecordSource
	now    Clock
}

func NewGetFinancialReportQueryHandler(source RecordSource, now Clock) GetFinancialReportQueryHandler {
	return GetFinancialReportQueryHandler{source: source, now: now}
}

// Handle sums exact amounts and rounds once at the end.
func (h GetFinancialReportQueryHandler) Handle(
	ctx context.Context,
	query GetFinancialReportQuery,
) (GetFinancialReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetFinancialReportQueryResponse{}, err
	}

	entries, err := h.source.FinanceEntries(ctx)
	if err != nil {
		return GetFinancialReportQueryResponse{}, err
	}
	users, err := h.source.Users(ctx)
	if err != nil {
		return GetFinancialReportQueryResponse{}, err
	}

	now := h.now()
	loc := now.Location()

	res := GetFinancialReportQueryResponse{
		Total:  decimal.Zero,
		ByType: make(map[finance.EntryType]decimal.Decimal, len(finance.EntryTypes())),
		Year:   now.Year(),
		ByTier: make(map[user.Tier]decimal.Decimal, len(user.Tiers())),
	}
	for _, t := range finance.EntryTypes() {
		res.ByType[t] = decimal.Zero
	}
	for i := range res.Monthly {
		res.Monthly[i] = decimal.Zero
	}
	for _, t := range user.Tiers() {
		res.ByTier[t] = decimal.Zero
	}

	for _, e := range entries {
		res.Total = res.Total.Add(e.Amount())
		res.ByType[e.Type()] = res.ByType[e.Type()].Add(e.Amount())

		at := e.Timestamp().In(loc)
		if at.Year() == res.Year {
			res.Monthly[at.Month()-1] = res.Monthly[at.Month()-1].Add(e.Amount())
		}
	}

	for _, u := range users {
		res.ByTier[u.Tier()] = res.ByTier[u.Tier()].Add(u.TotalSpent())
	}

	res.Total = res.Total.Round(2)
	for t, v := range res.ByType {
		res.ByType[t] = v.Round(2)
	}
	for i, v := range res.Monthly {
		res.Monthly[i] = v.Round(2)
	}
	for t, v := range res.ByTier {
		res.ByTier[t] = v.Round(2)
	}

	return res, nil
}
