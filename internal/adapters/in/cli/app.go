package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"station/internal/core/application/usecases/commands"
	"station/internal/core/application/usecases/queries"
	"station/internal/core/ports"
)

// Handlers are the operations the menu can reach.
type Handlers struct {
	RegisterUser         commands.RegisterUserCommandHandler
	RecomputeMemberships commands.RecomputeMembershipsCommandHandler
	IntakePackage        commands.IntakePackageCommandHandler
	PickupPackage        commands.PickupPackageCommandHandler
	ReportException      commands.ReportExceptionCommandHandler

	FindUsers          queries.FindUsersQueryHandler
	GetPackage         queries.GetPackageQueryHandler
	GetInventory       queries.GetInventoryQueryHandler
	GetFinancialReport queries.GetFinancialReportQueryHandler
	GetArrivalsReport  queries.GetArrivalsReportQueryHandler
}

type App struct {
	h       Handlers
	flusher ports.Flusher
	io      *prompter
	logger  *slog.Logger
}

func NewApp(in io.Reader, out io.Writer, h Handlers, flusher ports.Flusher, logger *slog.Logger) *App {
	return &App{
		h:       h,
		flusher: flusher,
		io:      newPrompter(in, out),
		logger:  logger.With("component", "cli"),
	}
}

// Run shows the main menu until Exit or end of input, then flushes. It
// returns the process exit code: 0 after a successful flush, 1 otherwise.
func (a *App) Run(ctx context.Context) int {
	if err := a.mainMenu(ctx); err != nil && !errors.Is(err, ErrInputClosed) {
		a.logger.ErrorContext(ctx, "menu stopped", "error", err)
	}

	if err := a.flusher.Flush(ctx); err != nil {
		a.logger.ErrorContext(ctx, "final flush failed", "error", err)
		a.io.println("Saving failed:", err)
		return 1
	}

	a.io.println("Data saved. Goodbye!")
	return 0
}

func (a *App) mainMenu(ctx context.Context) error {
	for {
		a.io.println()
		a.io.println("=== Courier Station ===")
		a.io.println("1. User management")
		a.io.println("2. Package management")
		a.io.println("3. Inventory check")
		a.io.println("4. Financial report")
		a.io.println("5. Generate report")
		a.io.println("0. Exit")

		n, err := a.io.integer("Select: ")
		if err != nil {
			return err
		}

		switch n {
		case 1:
			err = a.userMenu(ctx)
		case 2:
			err = a.packageMenu(ctx)
		case 3:
			err = a.inventory(ctx)
		case 4:
			err = a.financialReport(ctx)
		case 5:
			err = a.arrivalsReport(ctx)
		case 0:
			return nil
		default:
			a.io.println("Invalid choice!")
			continue
		}

		if err = a.settle(ctx, err); err != nil {
			return err
		}
	}
}

// settle prints an operation's failure and lets the menu continue. Only a
// closed input is passed up.
func (a *App) settle(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrInputClosed) {
		return err
	}

	a.logger.DebugContext(ctx, "operation failed", "error", err)
	a.io.println("Error:", err)
	return nil
}
