package commands

import (
	"context"
	"log/slog"

	"station/internal/core/domain/model/finance"

	"github.com/shopspring/decimal"
)

// ReportExceptionCommandHandler moves an InStock package to Exception and
// books a storage compensation of twice its storage fee. The recipient is
// not touched. The category goes to the log only.
type ReportExceptionCommandHandler struct {
	uowFactory UoWFactory
	now        Clock
	logger     *slog.Logger
}

func NewReportExceptionCommandHandler(uowFactory UoWFactory, now Clock, logger *slog.Logger) ReportExceptionCommandHandler {
	return ReportExceptionCommandHandler{
		uowFactory: uowFactory,
		now:        now,
		logger:     logger.With("component", "exceptions"),
	}
}

// Handle returns the compensation booked.
func (h ReportExceptionCommandHandler) Handle(ctx context.Context, cmd ReportExceptionCommand) (decimal.Decimal, error) {
	if err := cmd.Validate(); err != nil {
		return decimal.Zero, err
	}

	now := h.now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return decimal.Zero, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pkg, err := uow.PackageRepository().Get(ctx, cmd.PackageID())
	if err != nil {
		return decimal.Zero, err
	}

	if err = pkg.MarkException(); err != nil {
		return decimal.Zero, err
	}

	entry, err := finance.NewStorageCompensation(pkg.StorageFee(), now, pkg.ID())
	if err != nil {
		return decimal.Zero, err
	}

	if err = uow.PackageRepository().Update(ctx, pkg); err != nil {
		return decimal.Zero, err
	}
	if err = uow.LedgerRepository().Append(ctx, entry); err != nil {
		return decimal.Zero, err
	}

	if err = uow.Commit(ctx); err != nil {
		return decimal.Zero, err
	}

	h.logger.InfoContext(ctx, "package exception reported",
		"package_id", pkg.ID(), "category", cmd.Category().String(), "compensation", entry.Amount().String())
	return entry.Amount(), nil
}
