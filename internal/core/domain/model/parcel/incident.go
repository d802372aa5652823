package parcel

import (
	"fmt"

	"station/internal/pkg/errs"
)

// IncidentCategory classifies an exception report. It is logged, not stored.
type IncidentCategory int

const (
	Damaged IncidentCategory = iota + 1
	Lost
	Misdelivered
	Refused
)

var incidentNames = map[IncidentCategory]string{
	Damaged:      "Damaged",
	Lost:         "Lost",
	Misdelivered: "Misdelivered",
	Refused:      "Refused",
}

// IncidentCategories lists the categories in menu order.
func IncidentCategories() []IncidentCategory {
	return []IncidentCategory{Damaged, Lost, Misdelivered, Refused}
}

func (c IncidentCategory) String() string {
	if name, ok := incidentNames[c]; ok {
		return name
	}
	return "Unknown"
}

func (c IncidentCategory) Validate() error {
	if _, ok := incidentNames[c]; !ok {
		return errs.NewValueIsOutOfRangeErrorWithCause(
			"incident category", int(c), int(Damaged), int(Refused),
			fmt.Errorf("%d is not a known category", c),
		)
	}
	return nil
}
