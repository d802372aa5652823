package commands

import (
	"errors"
	"fmt"

	"station/internal/core/domain/model/parcel"
	"station/internal/pkg/errs"
	"station/internal/pkg/guard"
)

var ErrReportExceptionCommandIsNotConstructed = errors.New(
	"ReportExceptionCommand must be created via NewReportExceptionCommand constructor",
)

// ReportExceptionCommand flags a package as damaged, lost, misdelivered or
// refused.
type ReportExceptionCommand struct {
	packageID int
	category  parcel.IncidentCategory

	guard guard.ConstructorGuard
}

func NewReportExceptionCommand(packageID int, category parcel.IncidentCategory) (ReportExceptionCommand, error) {
	var idErr error
	if packageID <= 0 {
		idErr = errs.NewValueIsInvalidErrorWithCause("package id", fmt.Errorf("%d is not greater than 0", packageID))
	}
	if err := errors.Join(idErr, category.Validate()); err != nil {
		return ReportExceptionCommand{}, err
	}

	return ReportExceptionCommand{packageID: packageID, category: category, guard: guard.NewConstructorGuard()}, nil
}

func (c ReportExceptionCommand) Validate() error {
	return c.guard.Validate(ErrReportExceptionCommandIsNotConstructed)
}

func (c ReportExceptionCommand) PackageID() int {
	return c.packageID
}

func (c ReportExceptionCommand) Category() parcel.IncidentCategory {
	return c.category
}
