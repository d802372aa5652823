package cli

import (
	"context"
	"time"

	"station/internal/core/application/usecases/queries"
	"station/internal/core/domain/model/finance"
	"station/internal/core/domain/model/user"
)

func (a *App) inventory(ctx context.Context) error {
	res, err := a.h.GetInventory.Handle(ctx, queries.NewGetInventoryQuery())
	if err != nil {
		return err
	}

	a.io.println()
	a.io.println("Current stock:")
	for _, line := range res.Lines {
		a.io.printf("%-10s %3d (%.1f%%)\n", line.Size, line.InStock, line.Percent)
	}
	for _, line := range res.Lines {
		if line.Warning {
			a.io.printf("WARNING: %s stock is above the threshold.\n", line.Size)
		}
	}
	return nil
}

func (a *App) financialReport(ctx context.Context) error {
	res, err := a.h.GetFinancialReport.Handle(ctx, queries.NewGetFinancialReportQuery())
	if err != nil {
		return err
	}

	a.io.println()
	a.io.println("=== Financial report ===")
	a.io.printf("Total income: %s\n", res.Total.StringFixed(2))
	for _, t := range finance.EntryTypes() {
		a.io.printf("  %-22s %s\n", t.String()+":", res.ByType[t].StringFixed(2))
	}

	a.io.printf("\nMonthly income %d:\n", res.Year)
	for m := time.January; m <= time.December; m++ {
		a.io.printf("%02d: %-10s", int(m), res.Month(m).StringFixed(2))
		if m%3 == 0 {
			a.io.println()
		}
	}

	a.io.println("\nSpend by membership tier:")
	for _, t := range user.Tiers() {
		a.io.printf("  %-7s %s\n", t.String()+":", res.ByTier[t].StringFixed(2))
	}
	return nil
}

func (a *App) arrivalsReport(ctx context.Context) error {
	a.io.println()
	a.io.println("--- Generate report ---")
	a.io.println("1. Daily")
	a.io.println("2. Weekly")
	a.io.println("3. Monthly")

	n, err := a.io.choice("Select: ", "report period", int(queries.Daily), int(queries.Monthly))
	if err != nil {
		return err
	}

	query, err := queries.NewGetArrivalsReportQuery(queries.ReportPeriod(n))
	if err != nil {
		return err
	}
	res, err := a.h.GetArrivalsReport.Handle(ctx, query)
	if err != nil {
		return err
	}

	a.io.printf("\nArrivals (%s) %s - %s:\n", res.Period,
		res.From.Local().Format(timeLayout), res.To.Local().Format(timeLayout))
	for _, line := range res.Lines {
		a.io.printf("%-10s %3d\n", line.Size, line.Count)
	}
	a.io.printf("Total: %d\n", res.Total)
	return nil
}
