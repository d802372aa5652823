package cli

import (
	"context"
	"strconv"

	"station/internal/core/application/usecases/commands"
	"station/internal/core/application/usecases/queries"
	"station/internal/core/domain/model/parcel"
)

const timeLayout = "2006-01-02 15:04:05"

func (a *App) packageMenu(ctx context.Context) error {
	for {
		a.io.println()
		a.io.println("--- Package management ---")
		a.io.println("1. Intake")
		a.io.println("2. Pickup")
		a.io.println("3. Lookup")
		a.io.println("4. Report exception")
		a.io.println("0. Back")

		n, err := a.io.integer("Select: ")
		if err != nil {
			return err
		}

		switch n {
		case 1:
			err = a.intake(ctx)
		case 2:
			err = a.pickup(ctx)
		case 3:
			err = a.lookup(ctx)
		case 4:
			err = a.reportException(ctx)
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

func (a *App) intake(ctx context.Context) error {
	userID, err := a.recipient(ctx)
	if err != nil {
		return err
	}

	var attrs parcel.Attributes
	if attrs.ContentValue, err = a.io.amount("Declared content value: "); err != nil {
		return err
	}
	if attrs.Size, err = chooseEnum(a.io, "Size", "size", parcel.Sizes()); err != nil {
		return err
	}
	if attrs.WeightTier, err = chooseEnum(a.io, "Weight", "weight tier", parcel.WeightTiers()); err != nil {
		return err
	}
	if attrs.SpecialFlag, err = chooseEnum(a.io, "Special handling", "special flag", parcel.SpecialFlags()); err != nil {
		return err
	}
	if attrs.ShippingMethod, err = chooseEnum(a.io, "Shipping", "shipping method", parcel.ShippingMethods()); err != nil {
		return err
	}

	cmd, err := commands.NewIntakePackageCommand(userID, attrs)
	if err != nil {
		return err
	}
	res, err := a.h.IntakePackage.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	a.io.printf("Package %d stored on shelf %s. Pickup code: %s. Storage fee: %s\n",
		res.PackageID, res.ShelfCode, res.PickupCode, res.StorageFee.StringFixed(2))
	return nil
}

// recipient asks until the ID names a stored user. 0 registers a new one.
func (a *App) recipient(ctx context.Context) (int, error) {
	for {
		id, err := a.io.integer("Recipient user ID (0 to register a new user): ")
		if err != nil {
			return 0, err
		}
		if id == 0 {
			return a.registerUser(ctx)
		}

		query, err := queries.NewFindUsersQuery(queries.SearchByID, strconv.Itoa(id))
		if err != nil {
			return 0, err
		}
		found, err := a.h.FindUsers.Handle(ctx, query)
		if err != nil {
			return 0, err
		}
		if len(found) > 0 {
			return id, nil
		}

		a.io.printf("User %d not found.\n", id)
	}
}

func (a *App) pickup(ctx context.Context) error {
	id, err := a.io.integer("Package ID: ")
	if err != nil {
		return err
	}
	code, err := a.io.text("Pickup code: ")
	if err != nil {
		return err
	}

	cmd, err := commands.NewPickupPackageCommand(id, code)
	if err != nil {
		return err
	}
	res, err := a.h.PickupPackage.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	a.io.printf("Package %d released. Storage fee charged: %s\n", res.PackageID, res.StorageFee.StringFixed(2))
	return nil
}

func (a *App) lookup(ctx context.Context) error {
	id, err := a.io.integer("Package ID: ")
	if err != nil {
		return err
	}

	query, err := queries.NewGetPackageQuery(id)
	if err != nil {
		return err
	}
	p, err := a.h.GetPackage.Handle(ctx, query)
	if err != nil {
		return err
	}

	pickup := "-"
	if p.Pickup != nil {
		pickup = p.Pickup.Local().Format(timeLayout)
	}

	a.io.printf("Package %d for user %d\n", p.ID, p.UserID)
	a.io.printf("  status:        %s\n", p.Status)
	a.io.printf("  shelf:         %s\n", p.ShelfCode)
	a.io.printf("  content value: %s\n", p.Attributes.ContentValue.StringFixed(2))
	a.io.printf("  size:          %s\n", p.Attributes.Size)
	a.io.printf("  weight:        %s\n", p.Attributes.WeightTier)
	a.io.printf("  handling:      %s\n", p.Attributes.SpecialFlag)
	a.io.printf("  shipping:      %s\n", p.Attributes.ShippingMethod)
	a.io.printf("  storage fee:   %s\n", p.StorageFee.StringFixed(2))
	a.io.printf("  arrived:       %s\n", p.Arrival.Local().Format(timeLayout))
	a.io.printf("  picked up:     %s\n", pickup)
	return nil
}

func (a *App) reportException(ctx context.Context) error {
	id, err := a.io.integer("Package ID: ")
	if err != nil {
		return err
	}
	category, err := chooseEnum(a.io, "Exception type", "incident category", parcel.IncidentCategories())
	if err != nil {
		return err
	}

	cmd, err := commands.NewReportExceptionCommand(id, category)
	if err != nil {
		return err
	}
	compensation, err := a.h.ReportException.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	a.io.printf("Exception recorded. Compensation booked: %s\n", compensation.StringFixed(2))
	return nil
}
