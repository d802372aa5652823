package cli

import (
	"context"
	"strconv"

	"station/internal/core/application/usecases/commands"
	"station/internal/core/application/usecases/queries"
)

func (a *App) userMenu(ctx context.Context) error {
	for {
		a.io.println()
		a.io.println("--- User management ---")
		a.io.println("1. Add user")
		a.io.println("2. Find user")
		a.io.println("3. Recompute memberships")
		a.io.println("0. Back")

		n, err := a.io.integer("Select: ")
		if err != nil {
			return err
		}

		switch n {
		case 1:
			_, err = a.registerUser(ctx)
		case 2:
			err = a.findUserMenu(ctx)
		case 3:
			err = a.recomputeMemberships(ctx)
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

func (a *App) registerUser(ctx context.Context) (int, error) {
	name, err := a.io.text("Name: ")
	if err != nil {
		return 0, err
	}
	phone, err := a.io.text("Phone: ")
	if err != nil {
		return 0, err
	}

	cmd, err := commands.NewRegisterUserCommand(name, phone)
	if err != nil {
		return 0, err
	}
	id, err := a.h.RegisterUser.Handle(ctx, cmd)
	if err != nil {
		return 0, err
	}

	a.io.printf("User added. ID: %d\n", id)
	return id, nil
}

func (a *App) findUserMenu(ctx context.Context) error {
	for {
		a.io.println()
		a.io.println("--- Find user ---")
		a.io.println("1. By ID")
		a.io.println("2. By name")
		a.io.println("3. By phone")
		a.io.println("0. Back")

		n, err := a.io.integer("Select: ")
		if err != nil {
			return err
		}

		var field queries.UserSearchField
		var prompt string
		switch n {
		case 1:
			field, prompt = queries.SearchByID, "User ID: "
		case 2:
			field, prompt = queries.SearchByName, "Name: "
		case 3:
			field, prompt = queries.SearchByPhone, "Phone: "
		case 0:
			return nil
		default:
			a.io.println("Invalid choice!")
			continue
		}

		var term string
		if field == queries.SearchByID {
			id, err := a.io.integer(prompt)
			if err != nil {
				return err
			}
			term = strconv.Itoa(id)
		} else if term, err = a.io.text(prompt); err != nil {
			return err
		}

		if err = a.settle(ctx, a.findUsers(ctx, field, term)); err != nil {
			return err
		}
	}
}

func (a *App) findUsers(ctx context.Context, field queries.UserSearchField, term string) error {
	query, err := queries.NewFindUsersQuery(field, term)
	if err != nil {
		return err
	}
	found, err := a.h.FindUsers.Handle(ctx, query)
	if err != nil {
		return err
	}

	if len(found) == 0 {
		a.io.println("No matching user.")
		return nil
	}
	for _, u := range found {
		a.io.printf("ID %d | %s | %s | %s member | %.2f days since last purchase | spent %s | %d pickups\n",
			u.ID, u.Name, u.Phone, u.Tier, u.DaysSinceLastPurchase, u.TotalSpent.StringFixed(2), u.PurchaseCount)
	}
	return nil
}

func (a *App) recomputeMemberships(ctx context.Context) error {
	changed, err := a.h.RecomputeMemberships.Handle(ctx, commands.NewRecomputeMembershipsCommand())
	if err != nil {
		return err
	}

	a.io.printf("Memberships updated. %d tier(s) changed.\n", changed)
	return nil
}
