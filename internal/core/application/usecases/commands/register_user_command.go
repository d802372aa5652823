package commands

import (
	"errors"
	"strings"

	"station/internal/core/domain/model/user"
	"station/internal/pkg/errs"
	"station/internal/pkg/guard"

	"github.com/go-playground/validator/v10"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type registration struct {
	Name  string `validate:"required,max=49"`
	Phone string `validate:"required,max=19"`
}

// RegisterUserCommand registers a new customer.
//
// Example:
//
//	cmd, err := NewRegisterUserCommand("alice", "5550100")
//	if err != nil {
//	    return err
//	}
//	id, err := handler.Handle(ctx, cmd)
type RegisterUserCommand struct {
	name  string
	phone string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand trims both fields and checks them against the
// stored field limits.
func NewRegisterUserCommand(name, phone string) (RegisterUserCommand, error) {
	in := registration{Name: strings.TrimSpace(name), Phone: strings.TrimSpace(phone)}
	if err := validate.Struct(in); err != nil {
		return RegisterUserCommand{}, validationErrors(err)
	}

	return RegisterUserCommand{
		name:  in.Name,
		phone: in.Phone,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) Name() string {
	return c.name
}

func (c RegisterUserCommand) Phone() string {
	return c.phone
}

// validationErrors maps validator failures onto the errs types.
func validationErrors(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	limits := map[string]int{"Name": user.MaxNameLength, "Phone": user.MaxPhoneLength}
	out := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			out = append(out, errs.NewValueIsRequiredError(field))
		case "max":
			value, _ := fe.Value().(string)
			out = append(out, errs.NewValueIsOutOfRangeError(field+" length", len([]rune(value)), 1, limits[fe.Field()]))
		default:
			out = append(out, errs.NewValueIsInvalidErrorWithCause(field, fe))
		}
	}
	return errors.Join(out...)
}
