package queries

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"station/internal/core/domain/model/user"
	"station/internal/pkg/errs"
	"station/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrFindUsersQueryIsNotConstructed = errors.New(
	"FindUsersQuery must be created via NewFindUsersQuery constructor",
)

// UserSearchField selects which attribute FindUsersQuery matches on.
type UserSearchField int

const (
	SearchByID UserSearchField = iota + 1
	SearchByName
	SearchByPhone
)

func (f UserSearchField) String() string {
	switch f {
	case SearchByID:
		return "id"
	case SearchByName:
		return "name"
	case SearchByPhone:
		return "phone"
	default:
		return fmt.Sprintf("UserSearchField(%d)", int(f))
	}
}

// FindUsersQuery looks users up by exact ID, name or phone.
// Names and phones are not unique, so more than one user may match.
//
// Example:
//
//	query, err := NewFindUsersQuery(SearchByPhone, "555-0100")
//	if err != nil {
//	    return err
//	}
//	found, err := handler.Handle(ctx, query)
type FindUsersQuery struct {
	field UserSearchField
	term  string
	id    int

	guard guard.ConstructorGuard
}

// NewFindUsersQuery trims term. For SearchByID it must be a number.
func NewFindUsersQuery(field UserSearchField, term string) (FindUsersQuery, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return FindUsersQuery{}, errs.NewValueIsRequiredError("search term")
	}

	q := FindUsersQuery{field: field, term: term, guard: guard.NewConstructorGuard()}
	switch field {
	case SearchByID:
		id, err := strconv.Atoi(term)
		if err != nil {
			return FindUsersQuery{}, errs.NewValueIsInvalidErrorWithCause("user id", err)
		}
		q.id = id
	case SearchByName, SearchByPhone:
	default:
		return FindUsersQuery{}, errs.NewValueIsOutOfRangeError("search field", int(field), int(SearchByID), int(SearchByPhone))
	}

	return q, nil
}

func (q FindUsersQuery) Validate() error {
	return q.guard.Validate(ErrFindUsersQueryIsNotConstructed)
}

func (q FindUsersQuery) Field() UserSearchField {
	return q.field
}

func (q FindUsersQuery) Term() string {
	return q.term
}

func (q FindUsersQuery) matches(u *user.User) bool {
	switch q.field {
	case SearchByID:
		return u.ID() == q.id
	case SearchByName:
		return u.Name() == q.term
	case SearchByPhone:
		return u.Phone() == q.term
	default:
		return false
	}
}

// FindUsersQueryResponse is one matching user.
type FindUsersQueryResponse struct {
	ID                    int
	Name                  string
	Phone                 string
	Tier                  user.Tier
	TotalSpent            decimal.Decimal
	DaysSinceLastPurchase float64
	PurchaseCount         int
}
