package finance

import (
	"errors"
	"fmt"
	"time"

	"station/internal/core/domain/model/kernel"
	"station/internal/pkg/errs"
	"station/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrEntryIsNotConstructed is returned by Validate for an Entry built without a constructor.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry")

var (
	handlingFeeRate      = decimal.RequireFromString("0.7")
	compensationMultiple = decimal.NewFromInt(2)
)

// Entry is one immutable ledger line. Amounts are stored exactly as
// computed; rounding happens in reports.
//
// PackageID links the entry to the package that caused it, 0 when none.
type Entry struct {
	id        kernel.UUID
	entryType EntryType
	amount    decimal.Decimal
	timestamp time.Time
	packageID int
	guard     guard.ConstructorGuard
}

// NewEntry books a new ledger line with a fresh ID.
func NewEntry(entryType EntryType, amount decimal.Decimal, at time.Time, packageID int) (*Entry, error) {
	return RestoreEntry(kernel.NewUUID(), entryType, amount, at, packageID)
}

// NewHandlingFee books the pickup handling fee: 70% of the storage fee.
func NewHandlingFee(storageFee decimal.Decimal, at time.Time, packageID int) (*Entry, error) {
	return NewEntry(HandlingFee, storageFee.Mul(handlingFeeRate), at, packageID)
}

// NewStorageCompensation books the exception compensation: twice the storage fee.
func NewStorageCompensation(storageFee decimal.Decimal, at time.Time, packageID int) (*Entry, error) {
	return NewEntry(StorageCompensation, storageFee.Mul(compensationMultiple), at, packageID)
}

// RestoreEntry rebuilds a persisted ledger line.
func RestoreEntry(
	id kernel.UUID,
	entryType EntryType,
	amount decimal.Decimal,
	at time.Time,
	packageID int,
) (*Entry, error) {
	var amountErr, packageErr error
	if amount.IsNegative() {
		amountErr = errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%s is negative", amount))
	}
	if packageID < 0 {
		packageErr = errs.NewValueIsInvalidErrorWithCause("package id", fmt.Errorf("%d is negative", packageID))
	}

	if err := errors.Join(id.Validate(), entryType.Validate(), amountErr, packageErr); err != nil {
		return nil, err
	}

	return &Entry{
		id:        id,
		entryType: entryType,
		amount:    amount,
		timestamp: at,
		packageID: packageID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (e *Entry) Validate() error {
	if e == nil {
		return ErrEntryIsNotConstructed
	}
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

func (e *Entry) ID() kernel.UUID {
	return e.id
}

func (e *Entry) Type() EntryType {
	return e.entryType
}

func (e *Entry) Amount() decimal.Decimal {
	return e.amount
}

func (e *Entry) Timestamp() time.Time {
	return e.timestamp
}

// PackageID returns the linked package and whether there is one.
func (e *Entry) PackageID() (int, bool) {
	return e.packageID, e.packageID > 0
}
