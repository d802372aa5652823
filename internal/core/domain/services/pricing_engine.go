package services

import (
	"time"

	"station/internal/core/domain/model/parcel"
	"station/internal/core/domain/model/user"

	"github.com/shopspring/decimal"
)

// BasePrice is the storage fee before discounts and surcharges.
var BasePrice = decimal.NewFromInt(10)

var (
	newcomerDiscount = decimal.RequireFromString("0.9")
	goldDiscount     = decimal.RequireFromString("0.8")
	loyaltyMarkup    = decimal.RequireFromString("1.2")
	bigSpenderMarkup = decimal.RequireFromString("1.2")
	frequencyMarkup  = decimal.RequireFromString("1.1")

	repeatCustomerCount = 5
	repeatSpend         = decimal.NewFromInt(1000)
	bigSpend            = decimal.NewFromInt(5000)
	frequencyThreshold  = 0.3

	// minElapsedDays keeps the purchase rate finite for a same-instant repeat.
	minElapsedDays = 1.0 / 86400
)

var flagSurcharges = map[parcel.SpecialFlag]decimal.Decimal{
	parcel.None:           decimal.Zero,
	parcel.Fragile:        decimal.NewFromInt(8),
	parcel.UprightOnly:    decimal.NewFromInt(5),
	parcel.Hazardous:      decimal.NewFromInt(15),
	parcel.LightSensitive: decimal.NewFromInt(3),
	parcel.Refrigerated:   decimal.NewFromInt(10),
}

var shippingSurcharges = map[parcel.ShippingMethod]decimal.Decimal{
	parcel.StandardTruck: decimal.Zero,
	parcel.ExpressRoad:   decimal.NewFromInt(5),
	parcel.ExpressAir:    decimal.NewFromInt(15),
	parcel.SuperExpress:  decimal.NewFromInt(20),
}

// PricingEngine computes the storage fee frozen on a package at intake.
//
// The computation, in order:
//   - start from BasePrice
//   - discount: a New user with no pickups pays 90%, a Gold user 80%
//   - repricing for repeat customers (more than 5 pickups or spend above
//     1000): ×1.2, then ×1.2 again above 5000 spend, then ×1.1 when the
//     user picks up more than 0.3 packages per day since the last purchase
//   - add the special flag and shipping method surcharges
//   - round to cents, half up
//
// The engine is stateless and safe for concurrent use.
type PricingEngine struct{}

func NewPricingEngine() PricingEngine {
	return PricingEngine{}
}

// ComputeStorageFee prices attrs for u as of now. It reads the user's state
// as it is before the package's content value joins the spend.
func (PricingEngine) ComputeStorageFee(u *user.User, attrs parcel.Attributes, now time.Time) decimal.Decimal {
	price := BasePrice

	switch {
	case u.Tier() == user.TierNew && u.PurchaseCount() == 0:
		price = price.Mul(newcomerDiscount)
	case u.Tier() == user.TierGold:
		price = price.Mul(goldDiscount)
	}

	if u.PurchaseCount() > repeatCustomerCount || u.TotalSpent().GreaterThan(repeatSpend) {
		price = price.Mul(loyaltyMarkup)

		if u.TotalSpent().GreaterThan(bigSpend) {
			price = price.Mul(bigSpenderMarkup)
		}
		if PurchaseRate(u, now) > frequencyThreshold {
			price = price.Mul(frequencyMarkup)
		}
	}

	price = price.Add(flagSurcharges[attrs.SpecialFlag]).Add(shippingSurcharges[attrs.ShippingMethod])

	return price.Round(2)
}

// PurchaseRate is pickups per day since the last purchase. Elapsed time
// below one second, including a clock that went backwards, counts as one
// second.
func PurchaseRate(u *user.User, now time.Time) float64 {
	days := u.DaysSinceLastPurchase(now)
	if days < minElapsedDays {
		days = minElapsedDays
	}
	return float64(u.PurchaseCount()) / days
}
