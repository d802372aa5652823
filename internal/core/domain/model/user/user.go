package user

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"station/internal/pkg/errs"
	"station/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// Field limits inherited from the station's record format.
const (
	MaxNameLength  = 49
	MaxPhoneLength = 19
)

// ErrUserIsNotConstructed is returned by Validate for a User built without NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

// User is a registered station customer.
//
// Invariants:
//   - id is positive and issued by the allocator
//   - name and phone are non-empty and within their length limits
//   - totalSpent is never negative and only grows
//   - purchaseCount counts completed pickups
type User struct {
	id            int
	name          string
	phone         string
	tier          Tier
	totalSpent    decimal.Decimal
	lastPurchase  time.Time
	purchaseCount int
	guard         guard.ConstructorGuard
}

// NewUser registers a customer with tier New, no spend, and the last
// purchase set to now.
func NewUser(id int, name, phone string, now time.Time) (*User, error) {
	u := &User{
		tier:         TierNew,
		totalSpent:   decimal.Zero,
		lastPurchase: now,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser rebuilds a user from persisted state.
func RestoreUser(
	id int,
	name, phone string,
	tier Tier,
	totalSpent decimal.Decimal,
	lastPurchase time.Time,
	purchaseCount int,
) (*User, error) {
	u := &User{
		tier:         tier,
		lastPurchase: lastPurchase,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setPhone(phone),
		tier.Validate(),
		u.setTotalSpent(totalSpent),
		u.setPurchaseCount(purchaseCount),
	); err != nil {
		return nil, err
	}

	return u, nil
}

func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// ID returns the allocator-issued identifier.
func (u *User) ID() int {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Phone() string {
	return u.phone
}

func (u *User) Tier() Tier {
	return u.tier
}

func (u *User) TotalSpent() decimal.Decimal {
	return u.totalSpent
}

func (u *User) LastPurchase() time.Time {
	return u.lastPurchase
}

// PurchaseCount returns the number of completed pickups.
func (u *User) PurchaseCount() int {
	return u.purchaseCount
}

// SinceLastPurchase is the time elapsed since the last purchase. It is
// negative when the clock went backwards.
func (u *User) SinceLastPurchase(now time.Time) time.Duration {
	return now.Sub(u.lastPurchase)
}

// DaysSinceLastPurchase returns the elapsed time in fractional days.
func (u *User) DaysSinceLastPurchase(now time.Time) float64 {
	return u.SinceLastPurchase(now).Seconds() / day.Seconds()
}

// AddSpend grows the total spend. Negative amounts are rejected.
func (u *User) AddSpend(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%s is negative", amount))
	}

	u.totalSpent = u.totalSpent.Add(amount)
	return nil
}

// RecordPickup books a completed pickup: the storage fee joins the spend,
// the purchase count grows by one and the last purchase becomes now.
func (u *User) RecordPickup(fee decimal.Decimal, now time.Time) error {
	if err := u.AddSpend(fee); err != nil {
		return err
	}

	u.purchaseCount++
	u.lastPurchase = now
	return nil
}

// RecomputeMembership applies NextTier and reports whether the tier changed.
func (u *User) RecomputeMembership(now time.Time) bool {
	next := NextTier(u.tier, u.totalSpent, u.SinceLastPurchase(now))
	if next == u.tier {
		return false
	}

	u.tier = next
	return true
}

func (u *User) setID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", id))
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if n := utf8.RuneCountInString(name); n > MaxNameLength {
		return errs.NewValueIsOutOfRangeError("name length", n, 1, MaxNameLength)
	}
	u.name = name
	return nil
}

func (u *User) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	if n := utf8.RuneCountInString(phone); n > MaxPhoneLength {
		return errs.NewValueIsOutOfRangeError("phone length", n, 1, MaxPhoneLength)
	}
	u.phone = phone
	return nil
}

func (u *User) setTotalSpent(total decimal.Decimal) error {
	if total.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("total spent", fmt.Errorf("%s is negative", total))
	}
	u.totalSpent = total
	return nil
}

func (u *User) setPurchaseCount(count int) error {
	if count < 0 {
		return errs.NewValueIsInvalidErrorWithCause("purchase count", fmt.Errorf("%d is negative", count))
	}
	u.purchaseCount = count
	return nil
}
