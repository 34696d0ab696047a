package cli

import (
	"context"
	"slices"
	"strings"

	"github.com/dmitrijs2005/wellkeeper/internal/beverages"
)

func (a *App) Drink(ctx context.Context, args []string) error {
	const usage = "drink <beverage> [ml]"
	if len(args) == 0 {
		return usageError(usage)
	}
	bt, err := a.beverages.Beverage(ctx, args[0])
	if err != nil {
		return err
	}
	ml, err := optIntArg(args, 1, bt.DefaultAmount, usage)
	if err != nil {
		return err
	}

	e, err := a.beverages.LogBeverage(ctx, bt.ID, ml)
	if err != nil {
		return err
	}
	a.printf("+%d ml %s (effective %.0f ml) id=%s\n", e.Amount, e.BeverageName, e.EffectiveHydration, e.ID)

	sum, err := a.beverages.DailySummary(ctx, e.Date)
	if err != nil {
		return err
	}
	a.printf("Today: %d ml consumed, %.0f ml effective (%.0f%% efficiency)\n", sum.TotalConsumed, sum.EffectiveHydration, sum.HydrationEfficiency)
	return nil
}

func (a *App) Drinks(ctx context.Context, args []string) error {
	date, err := a.dateArg(args, 0)
	if err != nil {
		return err
	}
	sum, err := a.beverages.DailySummary(ctx, date)
	if err != nil {
		return err
	}
	entries, err := a.beverages.Entries(ctx, date)
	if err != nil {
		return err
	}

	a.printf("%s: %d ml consumed, %.0f ml effective (%.0f%% efficiency)\n", date, sum.TotalConsumed, sum.EffectiveHydration, sum.HydrationEfficiency)
	for _, b := range sum.Breakdown {
		a.printf("  %-20s x%d %5d ml -> %6.0f ml\n", b.BeverageName, b.Count, b.TotalAmount, b.EffectiveAmount)
	}
	for _, e := range entries {
		a.printf("  %s %s %d ml %s\n", e.Timestamp.In(a.cal.Location()).Format("15:04"), e.BeverageName, e.Amount, e.ID)
	}
	return nil
}

func (a *App) Undrink(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("undrink <entry-id>")
	}
	if err := a.beverages.DeleteEntry(ctx, args[0]); err != nil {
		return err
	}
	a.println("Entry deleted.")
	return nil
}

func (a *App) Beverages(ctx context.Context, _ []string) error {
	all, err := a.beverages.AllBeverages(ctx)
	if err != nil {
		return err
	}
	favs, err := a.beverages.Favorites(ctx)
	if err != nil {
		return err
	}
	for _, bt := range all {
		star := " "
		if slices.Contains(favs, bt.ID) {
			star = "*"
		}
		a.printf("%s %-18s %-20s %-8s %5.2f %-11s %4d ml\n", star, bt.ID, bt.Name, bt.Category, bt.HydrationCoefficient, beverages.HydrationRating(bt.HydrationCoefficient), bt.DefaultAmount)
	}
	return nil
}

func (a *App) Favorite(ctx context.Context, args []string) error {
	if len(args) == 0 {
		favs, err := a.beverages.Favorites(ctx)
		if err != nil {
			return err
		}
		if len(favs) == 0 {
			a.println("No favourites.")
			return nil
		}
		a.println("Favourites:", strings.Join(favs, ", "))
		return nil
	}

	member, err := a.beverages.ToggleFavorite(ctx, args[0])
	if err != nil {
		return err
	}
	if member {
		a.printf("%s added to favourites\n", args[0])
	} else {
		a.printf("%s removed from favourites\n", args[0])
	}
	return nil
}

func (a *App) Custom(ctx context.Context, args []string) error {
	const usage = "custom <name> <coef> <ml>"
	if len(args) < 3 {
		return usageError(usage)
	}
	// the name may contain spaces; coefficient and amount are the last two
	n := len(args)
	coef, err := floatArg(args, n-2, usage)
	if err != nil {
		return err
	}
	ml, err := intArg(args, n-1, usage)
	if err != nil {
		return err
	}

	bt, err := a.beverages.AddCustomBeverage(ctx, beverages.CustomBeverage{
		Name:                 strings.Join(args[:n-2], " "),
		HydrationCoefficient: coef,
		DefaultAmount:        ml,
	})
	if err != nil {
		return err
	}
	a.printf("Added %s (%s), %s hydration\n", bt.Name, bt.ID, beverages.HydrationRating(bt.HydrationCoefficient))
	return nil
}

func (a *App) BeverageStats(ctx context.Context, args []string) error {
	days, err := optIntArg(args, 0, 7, "bevstats [days]")
	if err != nil {
		return err
	}
	st, err := a.beverages.Stats(ctx, days)
	if err != nil {
		return err
	}

	if st.MostConsumed == nil {
		a.printf("No beverages logged in the last %d days.\n", days)
		return nil
	}
	a.printf("Most consumed: %s (%d times)\n", st.MostConsumed.Beverage.Name, st.MostConsumed.Count)
	a.printf("Average efficiency: %.0f%%\n", st.AverageEfficiency)
	for _, c := range st.TotalByCategory {
		a.printf("  %-8s %6d ml\n", c.Category, c.Amount)
	}
	for _, d := range st.Trend {
		a.printf("  %s %5d ml -> %6.0f ml\n", d.Date, d.Total, d.Effective)
	}
	return nil
}
