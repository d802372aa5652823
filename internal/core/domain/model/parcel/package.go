package parcel

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"station/internal/pkg/errs"
	"station/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrPackageIsNotConstructed is returned by Validate for a Package built
	// without NewPackage or RestorePackage.
	ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage or RestorePackage")

	// ErrPickupCodeMismatch is returned by PickUp when the presented code
	// differs from the one issued at intake.
	ErrPickupCodeMismatch = errs.NewValueIsInvalidError("pickup code does not match")

	// ErrStorageFeeIsFrozen is returned when the storage fee is set twice.
	ErrStorageFeeIsFrozen = errs.NewValueIsInvalidErrorWithCause(
		"storage fee", errors.New("storage fee is fixed at intake"))
)

var shelfCodePattern = regexp.MustCompile(`^SH\d{2}$`)

// Package is a parcel held at the station.
//
// A package is created InStock at intake with its storage fee frozen
// right after. It leaves InStock exactly once, either through PickUp or
// MarkException, and is never deleted.
type Package struct {
	id         int
	userID     int
	attrs      Attributes
	shelfCode  string
	pickupCode string
	arrival    time.Time
	pickup     time.Time
	status     Status
	storageFee decimal.Decimal
	feeFrozen  bool
	guard      guard.ConstructorGuard
}

// NewPackage records a parcel at intake. The storage fee is set afterwards
// with FreezeStorageFee.
func NewPackage(
	id, userID int,
	attrs Attributes,
	shelfCode, pickupCode string,
	arrival time.Time,
) (*Package, error) {
	p := &Package{
		arrival:    arrival,
		status:     InStock,
		storageFee: decimal.Zero,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setUserID(userID),
		p.setAttributes(attrs),
		p.setShelfCode(shelfCode),
		p.setPickupCode(pickupCode),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePackage rebuilds a package from persisted state. A zero pickup
// time means the package was not released.
func RestorePackage(
	id, userID int,
	attrs Attributes,
	shelfCode, pickupCode string,
	arrival, pickup time.Time,
	status Status,
	storageFee decimal.Decimal,
) (*Package, error) {
	p := &Package{
		arrival:   arrival,
		pickup:    pickup,
		status:    status,
		feeFrozen: true,
		guard:     guard.NewConstructorGuard(),
	}

	var pickupErr error
	if status == PickedUp && pickup.IsZero() {
		pickupErr = errs.NewValueIsRequiredErrorWithCause("pickup time", errors.New("picked up package without pickup time"))
	}

	if err := errors.Join(
		p.setID(id),
		p.setUserID(userID),
		p.setAttributes(attrs),
		p.setShelfCode(shelfCode),
		p.setPickupCode(pickupCode),
		status.Validate(),
		p.setStorageFee(storageFee),
		pickupErr,
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Package) Validate() error {
	if p == nil {
		return ErrPackageIsNotConstructed
	}
	return p.guard.Validate(ErrPackageIsNotConstructed)
}

// ID returns the allocator-issued identifier.
func (p *Package) ID() int {
	return p.id
}

// UserID returns the recipient.
func (p *Package) UserID() int {
	return p.userID
}

func (p *Package) Attributes() Attributes {
	return p.attrs
}

func (p *Package) ShelfCode() string {
	return p.shelfCode
}

func (p *Package) PickupCode() string {
	return p.pickupCode
}

func (p *Package) Arrival() time.Time {
	return p.arrival
}

// Pickup returns the release time and false while the package is not
// picked up.
func (p *Package) Pickup() (time.Time, bool) {
	return p.pickup, !p.pickup.IsZero()
}

func (p *Package) Status() Status {
	return p.status
}

func (p *Package) StorageFee() decimal.Decimal {
	return p.storageFee
}

// FreezeStorageFee sets the fee charged at pickup. It can be called once.
func (p *Package) FreezeStorageFee(fee decimal.Decimal) error {
	if p.feeFrozen {
		return ErrStorageFeeIsFrozen
	}
	if err := p.setStorageFee(fee); err != nil {
		return err
	}

	p.feeFrozen = true
	return nil
}

// PickUp releases the package to a recipient presenting code.
//
// The status is checked before the code, so a wrong code on a package that
// already left reports the status problem. Nothing changes on failure.
func (p *Package) PickUp(code string, now time.Time) error {
	next, err := p.status.PickUp()
	if err != nil {
		return err
	}
	if code != p.pickupCode {
		return ErrPickupCodeMismatch
	}

	p.status = next
	p.pickup = now
	return nil
}

// MarkException moves an InStock package to Exception.
func (p *Package) MarkException() error {
	next, err := p.status.MarkException()
	if err != nil {
		return err
	}

	p.status = next
	return nil
}

func (p *Package) setID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", id))
	}
	p.id = id
	return nil
}

func (p *Package) setUserID(userID int) error {
	if userID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("user id", fmt.Errorf("%d is not greater than 0", userID))
	}
	p.userID = userID
	return nil
}

func (p *Package) setAttributes(attrs Attributes) error {
	if err := attrs.Validate(); err != nil {
		return err
	}
	p.attrs = attrs
	return nil
}

func (p *Package) setShelfCode(code string) error {
	if !shelfCodePattern.MatchString(code) {
		return errs.NewValueIsInvalidErrorWithCause("shelf code", fmt.Errorf("%q does not match SHnn", code))
	}
	p.shelfCode = code
	return nil
}

func (p *Package) setPickupCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("pickup code")
	}
	p.pickupCode = code
	return nil
}

func (p *Package) setStorageFee(fee decimal.Decimal) error {
	if fee.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("storage fee", fmt.Errorf("%s is negative", fee))
	}
	p.storageFee = fee
	return nil
}
