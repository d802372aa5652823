package services_test

import (
	"testing"
	"time"

	"station/internal/core/domain/model/parcel"
	"station/internal/core/domain/model/user"
	"station/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day = 24 * time.Hour

var now = time.Date(2025, time.April, 20, 10, 0, 0, 0, time.UTC)

func restoreUser(t *testing.T, tier user.Tier, spent string, lastPurchase time.Time, count int) *user.User {
	t.Helper()

	u, err := user.RestoreUser(1000, "alice", "1", tier, decimal.RequireFromString(spent), lastPurchase, count)
	require.NoError(t, err)
	return u
}

func attrs(flag parcel.SpecialFlag, method parcel.ShippingMethod) parcel.Attributes {
	return parcel.Attributes{
		ContentValue:   decimal.NewFromInt(50),
		Size:           parcel.Small,
		WeightTier:     parcel.UpTo5kg,
		SpecialFlag:    flag,
		ShippingMethod: method,
	}
}

func TestPricingEngine_ComputeStorageFee(t *testing.T) {
	engine := services.NewPricingEngine()

	t.Run("should discount a first-time customer by ten percent", func(t *testing.T) {
		u, err := user.NewUser(1000, "alice", "1", now)
		require.NoError(t, err)

		fee := engine.ComputeStorageFee(u, attrs(parcel.None, parcel.StandardTruck), now)

		assert.Equal(t, "9", fee.String())
		assert.Equal(t, "9.00", fee.StringFixed(2))
	})

	t.Run("should charge the base price to a new user with pickups", func(t *testing.T) {
		u := restoreUser(t, user.TierNew, "100", now.Add(-10*day), 2)

		fee := engine.ComputeStorageFee(u, attrs(parcel.None, parcel.StandardTruck), now)

		assert.Equal(t, "10.00", fee.StringFixed(2))
	})

	t.Run("should stack gold discount, markups and surcharges", func(t *testing.T) {
		u := restoreUser(t, user.TierGold, "6000", now.Add(-40*day), 10)

		fee := engine.ComputeStorageFee(u, attrs(parcel.Hazardous, parcel.SuperExpress), now)

		assert.Equal(t, "46.52", fee.StringFixed(2))
	})

	t.Run("should add the frequency markup for frequent customers", func(t *testing.T) {
		u := restoreUser(t, user.TierGold, "6000", now.Add(-20*day), 10)

		fee := engine.ComputeStorageFee(u, attrs(parcel.Hazardous, parcel.SuperExpress), now)

		assert.Equal(t, "47.67", fee.StringFixed(2))
	})

	t.Run("should reprice silver users above the spend threshold", func(t *testing.T) {
		u := restoreUser(t, user.TierSilver, "1500", now.Add(-100*day), 3)

		fee := engine.ComputeStorageFee(u, attrs(parcel.Fragile, parcel.ExpressRoad), now)

		// 10 × 1.2 + 8 + 5
		assert.Equal(t, "25.00", fee.StringFixed(2))
	})

	t.Run("should not divide by zero for a same-instant repeat customer", func(t *testing.T) {
		u := restoreUser(t, user.TierSilver, "1500", now, 6)

		fee := engine.ComputeStorageFee(u, attrs(parcel.None, parcel.StandardTruck), now)

		// 10 × 1.2 × 1.1
		assert.Equal(t, "13.20", fee.StringFixed(2))
	})

	t.Run("should apply every surcharge", func(t *testing.T) {
		u := restoreUser(t, user.TierNew, "0", now, 1)
		cases := []struct {
			flag   parcel.SpecialFlag
			method parcel.ShippingMethod
			want   string
		}{
			{parcel.Fragile, parcel.StandardTruck, "18.00"},
			{parcel.UprightOnly, parcel.ExpressRoad, "20.00"},
			{parcel.Hazardous, parcel.ExpressAir, "40.00"},
			{parcel.LightSensitive, parcel.SuperExpress, "33.00"},
			{parcel.Refrigerated, parcel.StandardTruck, "20.00"},
		}

		for _, tc := range cases {
			fee := engine.ComputeStorageFee(u, attrs(tc.flag, tc.method), now)
			assert.Equal(t, tc.want, fee.StringFixed(2), "%s/%s", tc.flag, tc.method)
		}
	})

	t.Run("should be deterministic", func(t *testing.T) {
		u := restoreUser(t, user.TierGold, "7000", now.Add(-3*day), 8)
		a := attrs(parcel.Refrigerated, parcel.ExpressAir)

		assert.True(t, engine.ComputeStorageFee(u, a, now).Equal(engine.ComputeStorageFee(u, a, now)))
	})
}

func TestPurchaseRate(t *testing.T) {
	t.Run("should count pickups per elapsed day", func(t *testing.T) {
		u := restoreUser(t, user.TierNew, "0", now.Add(-4*day), 2)
		assert.InDelta(t, 0.5, services.PurchaseRate(u, now), 1e-9)
	})

	t.Run("should clamp elapsed time to one second", func(t *testing.T) {
		u := restoreUser(t, user.TierNew, "0", now.Add(time.Hour), 1)
		assert.InDelta(t, 86400.0, services.PurchaseRate(u, now), 1e-6)
	})

	t.Run("should be zero without pickups", func(t *testing.T) {
		u := restoreUser(t, user.TierNew, "0", now, 0)
		assert.Zero(t, services.PurchaseRate(u, now))
	})
}
