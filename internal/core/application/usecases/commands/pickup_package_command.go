package commands

import (
	"errors"
	"fmt"

	"station/internal/pkg/errs"
	"station/internal/pkg/guard"
)

var ErrPickupPackageCommandIsNotConstructed = errors.New(
	"PickupPackageCommand must be created via NewPickupPackageCommand constructor",
)

// PickupPackageCommand releases a package to whoever presents its code.
// The code is compared exactly, so it is kept as typed.
type PickupPackageCommand struct {
	packageID int
	code      string

	guard guard.ConstructorGuard
}

func NewPickupPackageCommand(packageID int, code string) (PickupPackageCommand, error) {
	var idErr, codeErr error
	if packageID <= 0 {
		idErr = errs.NewValueIsInvalidErrorWithCause("package id", fmt.Errorf("%d is not greater than 0", packageID))
	}
	if code == "" {
		codeErr = errs.NewValueIsRequiredError("pickup code")
	}
	if err := errors.Join(idErr, codeErr); err != nil {
		return PickupPackageCommand{}, err
	}

	return PickupPackageCommand{packageID: packageID, code: code, guard: guard.NewConstructorGuard()}, nil
}

func (c PickupPackageCommand) Validate() error {
	return c.guard.Validate(ErrPickupPackageCommandIsNotConstructed)
}

func (c PickupPackageCommand) PackageID() int {
	return c.packageID
}

func (c PickupPackageCommand) Code() string {
	return c.code
}
