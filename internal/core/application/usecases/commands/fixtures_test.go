package commands_test

import (
	"testing"
	"time"

	"station/internal/core/domain/model/parcel"
	"station/internal/core/domain/model/user"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, time.April, 20, 10, 0, 0, 0, time.UTC)

func clock() time.Time {
	return fixedNow
}

func smallBox() parcel.Attributes {
	return parcel.Attributes{
		ContentValue:   decimal.NewFromInt(50),
		Size:           parcel.Small,
		WeightTier:     parcel.UpTo5kg,
		SpecialFlag:    parcel.None,
		ShippingMethod: parcel.StandardTruck,
	}
}

func newCustomer(t *testing.T) *user.User {
	t.Helper()

	u, err := user.NewUser(1000, "alice", "555-0100", fixedNow)
	require.NoError(t, err)
	return u
}

func storedPackage(t *testing.T, status parcel.Status) *parcel.Package {
	t.Helper()

	var pickup time.Time
	if status == parcel.PickedUp {
		pickup = fixedNow
	}
	p, err := parcel.RestorePackage(
		1000, 1000, smallBox(), "SH07", "PK12341000",
		fixedNow.Add(-time.Hour), pickup, status, decimal.RequireFromString("12.5"),
	)
	require.NoError(t, err)
	return p
}
