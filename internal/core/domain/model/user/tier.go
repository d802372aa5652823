package user

import (
	"fmt"

	"station/internal/pkg/errs"
)

// Tier is the membership level of a user.
type Tier int

const (
	// TierUnknown catches uninitialized values.
	TierUnknown Tier = iota
	TierNew
	TierSilver
	TierGold
)

var tierNames = map[Tier]string{
	TierNew:    "New",
	TierSilver: "Silver",
	TierGold:   "Gold",
}

// Tiers lists the valid tiers from lowest to highest.
func Tiers() []Tier {
	return []Tier{TierNew, TierSilver, TierGold}
}

func (t Tier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Validate rejects TierUnknown and any out-of-range value.
func (t Tier) Validate() error {
	if _, ok := tierNames[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("tier is invalid", fmt.Errorf("%d is not a valid tier", t))
	}
	return nil
}

// ParseTier is the inverse of String.
func ParseTier(s string) (Tier, error) {
	for t, name := range tierNames {
		if name == s {
			return t, nil
		}
	}
	return TierUnknown, errs.NewValueIsInvalidErrorWithCause("tier is invalid", fmt.Errorf("%q is not a valid tier", s))
}
