package commands

import (
	"errors"
	"fmt"

	"station/internal/core/domain/model/parcel"
	"station/internal/pkg/errs"
	"station/internal/pkg/guard"
)

var ErrIntakePackageCommandIsNotConstructed = errors.New(
	"IntakePackageCommand must be created via NewIntakePackageCommand constructor",
)

// IntakePackageCommand records a parcel arriving for an existing user.
type IntakePackageCommand struct {
	userID int
	attrs  parcel.Attributes

	guard guard.ConstructorGuard
}

func NewIntakePackageCommand(userID int, attrs parcel.Attributes) (IntakePackageCommand, error) {
	var userErr error
	if userID <= 0 {
		userErr = errs.NewValueIsInvalidErrorWithCause("user id", fmt.Errorf("%d is not greater than 0", userID))
	}

	if err := errors.Join(userErr, attrs.Validate()); err != nil {
		return IntakePackageCommand{}, err
	}

	return IntakePackageCommand{
		userID: userID,
		attrs:  attrs,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c IntakePackageCommand) Validate() error {
	return c.guard.Validate(ErrIntakePackageCommandIsNotConstructed)
}

func (c IntakePackageCommand) UserID() int {
	return c.userID
}

func (c IntakePackageCommand) Attributes() parcel.Attributes {
	return c.attrs
}
