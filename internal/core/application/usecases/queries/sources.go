// Package queries contains read operations over the station records.
// Handlers read snapshots from a RecordSource and return flat response
// structs for display; they never change state.
package queries

import (
	"context"
	"time"

	"station/internal/core/domain/model/finance"
	"station/internal/core/domain/model/parcel"
	"station/internal/core/domain/model/user"
)

// Read model interfaces. Implementations return copies, newest first.
type (
	UserSource interface {
		Users(ctx context.Context) ([]*user.User, error)
	}

	PackageSource interface {
		Packages(ctx context.Context) ([]*parcel.Package, error)
	}

	LedgerSource interface {
		FinanceEntries(ctx context.Context) ([]*finance.Entry, error)
	}

	// RecordSource is everything the reports read.
	RecordSource interface {
		UserSource
		PackageSource
		LedgerSource
	}
)

// Clock returns the current time. Calendar reports use its location.
type Clock func() time.Time
