package queries

import (
	"errors"
	"fmt"
	"time"

	"station/internal/core/domain/model/parcel"
	"station/internal/pkg/errs"
	"station/internal/pkg/guard"
)

var ErrGetArrivalsReportQueryIsNotConstructed = errors.New(
	"GetArrivalsReportQuery must be created via NewGetArrivalsReportQuery constructor",
)

// ReportPeriod is the look-back window of an arrivals report.
type ReportPeriod int

const (
	Daily ReportPeriod = iota + 1
	Weekly
	Monthly
)

// Duration is one day, 7 days or 30 days.
func (p ReportPeriod) Duration() time.Duration {
	switch p {
	case Daily:
		return 24 * time.Hour
	case Weekly:
		return 7 * 24 * time.Hour
	case Monthly:
		return 30 * 24 * time.Hour
	default:
		return 0
	}
}

func (p ReportPeriod) String() string {
	switch p {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	default:
		return fmt.Sprintf("ReportPeriod(%d)", int(p))
	}
}

func (p ReportPeriod) Validate() error {
	if p < Daily || p > Monthly {
		return errs.NewValueIsOutOfRangeError("report period", int(p), int(Daily), int(Monthly))
	}
	return nil
}

// GetArrivalsReportQuery counts packages that arrived within a period,
// whatever their status now.
type GetArrivalsReportQuery struct {
	period ReportPeriod

	guard guard.ConstructorGuard
}

func NewGetArrivalsReportQuery(period ReportPeriod) (GetArrivalsReportQuery, error) {
	if err := period.Validate(); err != nil {
		return GetArrivalsReportQuery{}, err
	}
	return GetArrivalsReportQuery{period: period, guard: guard.NewConstructorGuard()}, nil
}

func (q GetArrivalsReportQuery) Validate() error {
	return q.guard.Validate(ErrGetArrivalsReportQueryIsNotConstructed)
}

func (q GetArrivalsReportQuery) Period() ReportPeriod {
	return q.period
}

type ArrivalsLine struct {
	Size  parcel.Size
	Count int
}

// GetArrivalsReportQueryResponse covers the closed window [From, To].
type GetArrivalsReportQueryResponse struct {
	Period ReportPeriod
	From   time.Time
	To     time.Time
	Lines  []ArrivalsLine
	Total  int
}
