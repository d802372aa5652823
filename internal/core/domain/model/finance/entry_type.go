package finance

import (
	"fmt"

	"station/internal/pkg/errs"
)

// EntryType classifies a ledger line. The numeric codes are stable.
type EntryType int

const (
	Unknown EntryType = iota
	// HandlingFee is booked on pickup: 70% of the storage fee.
	HandlingFee
	// DeliveryFee is a reserved category; nothing books it yet.
	DeliveryFee
	// StorageCompensation is booked on an exception: twice the storage fee.
	StorageCompensation
)

var entryTypeNames = map[EntryType]string{
	HandlingFee:         "HandlingFee",
	DeliveryFee:         "DeliveryFee",
	StorageCompensation: "StorageCompensation",
}

// EntryTypes lists the valid types in code order.
func EntryTypes() []EntryType {
	return []EntryType{HandlingFee, DeliveryFee, StorageCompensation}
}

func (t EntryType) String() string {
	if name, ok := entryTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

func (t EntryType) Validate() error {
	if _, ok := entryTypeNames[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("entry type is invalid", fmt.Errorf("%d is not a valid entry type", t))
	}
	return nil
}

// ParseEntryType is the inverse of String.
func ParseEntryType(name string) (EntryType, error) {
	for t, n := range entryTypeNames {
		if n == name {
			return t, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("entry type is invalid", fmt.Errorf("%q is not a valid entry type", name))
}
