package queries

import (
	"errors"
	"fmt"
	"time"

	"station/internal/core/domain/model/parcel"
	"station/internal/pkg/errs"
	"station/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetPackageQueryIsNotConstructed = errors.New(
	"GetPackageQuery must be created via NewGetPackageQuery constructor",
)

// GetPackageQuery looks a package up by ID.
type GetPackageQuery struct {
	packageID int

	guard guard.ConstructorGuard
}

func NewGetPackageQuery(packageID int) (GetPackageQuery, error) {
	if packageID <= 0 {
		return GetPackageQuery{}, errs.NewValueIsInvalidErrorWithCause("package id",
			fmt.Errorf("%d is not greater than 0", packageID))
	}
	return GetPackageQuery{packageID: packageID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPackageQuery) Validate() error {
	return q.guard.Validate(ErrGetPackageQueryIsNotConstructed)
}

func (q GetPackageQuery) PackageID() int {
	return q.packageID
}

// GetPackageQueryResponse shows a package to the operator. The pickup code
// is left out; only the recipient should know it.
type GetPackageQueryResponse struct {
	ID         int
	UserID     int
	Attributes parcel.Attributes
	ShelfCode  string
	Arrival    time.Time
	// Pickup is nil until the package is released.
	Pickup     *time.Time
	Status     parcel.Status
	StorageFee decimal.Decimal
}
