package commands

import (
	"context"
	"log/slog"
	"time"

	"station/internal/core/domain/model/parcel"
	"station/internal/core/domain/services"
	"station/internal/core/ports"

	"github.com/shopspring/decimal"
)

// PickupCodeIssuer hands out pickup codes.
type PickupCodeIssuer interface {
	Next(now time.Time) string
}

// IntakePackageResult is what the operator tells the recipient.
type IntakePackageResult struct {
	PackageID  int
	PickupCode string
	ShelfCode  string
	StorageFee decimal.Decimal
}

// IntakePackageCommandHandler registers a package at the station.
//
// The recipient must exist; the package ID is allocated only after that
// check. The storage fee is priced from the user's state before the
// content value is added to their spend, then frozen on the package.
type IntakePackageCommandHandler struct {
	uowFactory UoWFactory
	ids        ports.IDAllocator
	pricing    services.PricingEngine
	codes      PickupCodeIssuer
	shelves    services.ShelfAssigner
	labels     ports.LabelPrinter
	now        Clock
	logger     *slog.Logger
}

func NewIntakePackageCommandHandler(
	uowFactory UoWFactory,
	ids ports.IDAllocator,
	pricing services.PricingEngine,
	codes PickupCodeIssuer,
	shelves services.ShelfAssigner,
	labels ports.LabelPrinter,
	now Clock,
	logger *slog.Logger,
) IntakePackageCommandHandler {
	return IntakePackageCommandHandler{
		uowFactory: uowFactory,
		ids:        ids,
		pricing:    pricing,
		codes:      codes,
		shelves:    shelves,
		labels:     labels,
		now:        now,
		logger:     logger.With("component", "intake"),
	}
}

func (h IntakePackageCommandHandler) Handle(ctx context.Context, cmd IntakePackageCommand) (IntakePackageResult, error) {
	if err := cmd.Validate(); err != nil {
		return IntakePackageResult{}, err
	}

	now := h.now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return IntakePackageResult{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	recipient, err := uow.UserRepository().Get(ctx, cmd.UserID())
	if err != nil {
		return IntakePackageResult{}, err
	}

	id, err := h.ids.NextPackageID(ctx)
	if err != nil {
		return IntakePackageResult{}, err
	}

	pkg, err := parcel.NewPackage(id, recipient.ID(), cmd.Attributes(), h.shelves.Assign(), h.codes.Next(now), now)
	if err != nil {
		return IntakePackageResult{}, err
	}

	if err = pkg.FreezeStorageFee(h.pricing.ComputeStorageFee(recipient, cmd.Attributes(), now)); err != nil {
		return IntakePackageResult{}, err
	}
	if err = recipient.AddSpend(cmd.Attributes().ContentValue); err != nil {
		return IntakePackageResult{}, err
	}

	if err = uow.PackageRepository().Add(ctx, pkg); err != nil {
		return IntakePackageResult{}, err
	}
	if err = uow.UserRepository().Update(ctx, recipient); err != nil {
		return IntakePackageResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return IntakePackageResult{}, err
	}

	// The package is stored; a label failure only costs the printout.
	if err = h.labels.Print(ctx, pkg.ID(), pkg.PickupCode()); err != nil {
		h.logger.WarnContext(ctx, "pickup label not printed", "package_id", pkg.ID(), "error", err)
	}

	return IntakePackageResult{
		PackageID:  pkg.ID(),
		PickupCode: pkg.PickupCode(),
		ShelfCode:  pkg.ShelfCode(),
		StorageFee: pkg.StorageFee(),
	}, nil
}
