package queries

import (
	"errors"
	"time"

	"station/internal/core/domain/model/finance"
	"station/internal/core/domain/model/user"
	"station/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetFinancialReportQueryIsNotConstructed = errors.New(
	"GetFinancialReportQuery must be created via NewGetFinancialReportQuery constructor",
)

// GetFinancialReportQuery summarizes the ledger and customer spend.
type GetFinancialReportQuery struct {
	guard guard.ConstructorGuard
}

func NewGetFinancialReportQuery() GetFinancialReportQuery {
	return GetFinancialReportQuery{guard: guard.NewConstructorGuard()}
}

func (q GetFinancialReportQuery) Validate() error {
	return q.guard.Validate(ErrGetFinancialReportQueryIsNotConstructed)
}

// GetFinancialReportQueryResponse carries amounts rounded to 2 decimals.
//
// Monthly is indexed by month-1 and only counts entries from Year, in the
// clock's location. ByTier sums each user's total spend under their current
// tier.
type GetFinancialReportQueryResponse struct {
	Total   decimal.Decimal
	ByType  map[finance.EntryType]decimal.Decimal
	Year    int
	Monthly [12]decimal.Decimal
	ByTier  map[user.Tier]decimal.Decimal
}

// Month returns the total for m in Year.
func (r GetFinancialReportQueryResponse) Month(m time.Month) decimal.Decimal {
	return r.Monthly[m-1]
}
