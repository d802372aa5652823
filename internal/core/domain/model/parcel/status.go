package parcel

import (
	"fmt"

	"station/internal/pkg/errs"
)

// Status is the lifecycle state of a package.
//
// State transitions:
//
//	InStock ──┬──> PickedUp
//	          └──> Exception
//
// PickedUp and Exception are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// InStock is set at intake. The package sits on a shelf awaiting pickup.
	InStock

	// PickedUp means the recipient collected the package with a matching code.
	PickedUp

	// Exception means the package was reported damaged, lost, misdelivered
	// or refused.
	Exception
)

var statusNames = map[Status]string{
	InStock:   "InStock",
	PickedUp:  "PickedUp",
	Exception: "Exception",
}

// Validate checks that s is one of InStock, PickedUp or Exception.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the status name, or "Unknown" for invalid values.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

// ParseStatus is the inverse of String.
func ParseStatus(name string) (Status, error) {
	for s, n := range statusNames {
		if n == name {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", name))
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == PickedUp || s == Exception
}

// PickUp transitions InStock to PickedUp.
//
// Returns:
//   - (PickedUp, nil) from InStock
//   - (Unknown, error) from any other status
func (s Status) PickUp() (Status, error) {
	if s != InStock {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to pick up", s),
		)
	}
	return PickedUp, nil
}

// MarkException transitions InStock to Exception. Terminal states are
// never left, so reporting an exception twice is rejected.
func (s Status) MarkException() (Status, error) {
	if s != InStock {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to report an exception", s),
		)
	}
	return Exception, nil
}
