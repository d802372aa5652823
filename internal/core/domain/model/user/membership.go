package user

import (
	"time"

	"github.com/shopspring/decimal"
)

const day = 24 * time.Hour

// Membership thresholds.
const (
	PromotionWindow   = 30 * day
	GoldGracePeriod   = 90 * day
	SilverGracePeriod = 180 * day
)

var (
	SilverSpendThreshold = decimal.NewFromInt(1000)
	GoldSpendThreshold   = decimal.NewFromInt(5000)
)

// NextTier applies one membership pass.
//
// Promotion runs first: spend above 5000 with a purchase in the last 30 days
// gives Gold, otherwise spend above 1000 in the same window gives Silver.
// Demotion then looks at the result: Gold idle for more than 90 days drops
// to Silver, otherwise Silver idle for more than 180 days drops to New. A
// user drops at most one level per pass.
func NextTier(current Tier, totalSpent decimal.Decimal, sinceLastPurchase time.Duration) Tier {
	tier := current

	recent := sinceLastPurchase < PromotionWindow
	switch {
	case recent && totalSpent.GreaterThan(GoldSpendThreshold):
		tier = TierGold
	case recent && totalSpent.GreaterThan(SilverSpendThreshold):
		tier = TierSilver
	}

	switch {
	case tier == TierGold && sinceLastPurchase > GoldGracePeriod:
		tier = TierSilver
	case tier == TierSilver && sinceLastPurchase > SilverGracePeriod:
		tier = TierNew
	}

	return tier
}
