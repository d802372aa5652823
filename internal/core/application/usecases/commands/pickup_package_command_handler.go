package commands

import (
	"context"

	"station/internal/core/domain/model/finance"

	"github.com/shopspring/decimal"
)

// PickupPackageResult reports the fee settled at pickup.
type PickupPackageResult struct {
	PackageID   int
	StorageFee  decimal.Decimal
	HandlingFee decimal.Decimal
}

// PickupPackageCommandHandler releases an InStock package.
//
// On success, in one unit of work: the package becomes PickedUp, a handling
// fee of 70% of the storage fee is booked, and the recipient's spend, pickup
// count and last purchase are updated. Any failure leaves everything as it
// was.
type PickupPackageCommandHandler struct {
	uowFactory UoWFactory
	now        Clock
}

func NewPickupPackageCommandHandler(uowFactory UoWFactory, now Clock) PickupPackageCommandHandler {
	return PickupPackageCommandHandler{uowFactory: uowFactory, now: now}
}

func (h PickupPackageCommandHandler) Handle(ctx context.Context, cmd PickupPackageCommand) (PickupPackageResult, error) {
	if err := cmd.Validate(); err != nil {
		return PickupPackageResult{}, err
	}

	now := h.now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return PickupPackageResult{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pkg, err := uow.PackageRepository().Get(ctx, cmd.PackageID())
	if err != nil {
		return PickupPackageResult{}, err
	}

	if err = pkg.PickUp(cmd.Code(), now); err != nil {
		return PickupPackageResult{}, err
	}

	recipient, err := uow.UserRepository().Get(ctx, pkg.UserID())
	if err != nil {
		return PickupPackageResult{}, err
	}
	if err = recipient.RecordPickup(pkg.StorageFee(), now); err != nil {
		return PickupPackageResult{}, err
	}

	entry, err := finance.NewHandlingFee(pkg.StorageFee(), now, pkg.ID())
	if err != nil {
		return PickupPackageResult{}, err
	}

	if err = uow.PackageRepository().Update(ctx, pkg); err != nil {
		return PickupPackageResult{}, err
	}
	if err = uow.UserRepository().Update(ctx, recipient); err != nil {
		return PickupPackageResult{}, err
	}
	if err = uow.LedgerRepository().Append(ctx, entry); err != nil {
		return PickupPackageResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return PickupPackageResult{}, err
	}

	return PickupPackageResult{
		PackageID:   pkg.ID(),
		StorageFee:  pkg.StorageFee(),
		HandlingFee: entry.Amount(),
	}, nil
}
