package cli

import (
	"context"

	"github.com/dmitrijs2005/wellkeeper/internal/water"
)

func (a *App) Water(ctx context.Context, args []string) error {
	ml, err := intArg(args, 0, "water <ml>")
	if err != nil {
		return err
	}
	rec, err := a.water.RecordIntake(ctx, ml, a.cal.Now())
	if err != nil {
		return err
	}
	pct := water.ProgressPercent(rec.Intake, rec.Goal)
	a.printf("+%d ml. Today: %d/%d ml %s %d%%\n", ml, rec.Intake, rec.Goal, bar(pct), pct)
	if rec.Intake >= rec.Goal && rec.Intake-ml < rec.Goal {
		a.println("Daily goal reached!")
	}
	return nil
}

func (a *App) History(ctx context.Context, args []string) error {
	if len(args) == 1 && args[0] == "month" {
		chart, err := a.water.MonthlyChart(ctx)
		if err != nil {
			return err
		}
		for _, w := range chart {
			pct := water.ProgressPercent(w.Average, w.Goal)
			a.printf("%s %s..%s %5d ml/day %s\n", w.Label, w.From, w.To, w.Average, bar(pct))
		}
		return nil
	}

	days, err := optIntArg(args, 0, 7, "history [days|month]")
	if err != nil {
		return err
	}
	if len(args) == 0 {
		chart, err := a.water.WeeklyChart(ctx)
		if err != nil {
			return err
		}
		for _, d := range chart {
			pct := water.ProgressPercent(d.Intake, d.Goal)
			a.printf("%s %s %5d/%d ml %s\n", d.Label, d.Date, d.Intake, d.Goal, bar(pct))
		}
		return nil
	}

	recs, err := a.water.LastNDays(ctx, days)
	if err != nil {
		return err
	}
	for _, r := range recs {
		pct := water.ProgressPercent(r.Intake, r.Goal)
		a.printf("%s %5d/%d ml %s %3d%% (%d entries)\n", r.Date, r.Intake, r.Goal, bar(pct), pct, len(r.Entries))
	}
	return nil
}

func (a *App) Stats(ctx context.Context, _ []string) error {
	st, err := a.water.Stats(ctx)
	if err != nil {
		return err
	}
	a.printf("Current streak:   %d days\n", st.CurrentStreak)
	a.printf("Longest streak:   %d days\n", st.LongestStreak)
	a.printf("Goal completion:  %.2f%% of %d tracked days\n", st.GoalCompletionRate, st.TotalDaysTracked)
	a.printf("Weekly average:   %d ml\n", st.WeeklyAverage)
	a.printf("Monthly average:  %d ml\n", st.MonthlyAverage)
	return nil
}

func (a *App) Goal(ctx context.Context, args []string) error {
	if len(args) == 0 {
		goal, err := a.settings.DailyGoal(ctx)
		if err != nil {
			return err
		}
		a.printf("Daily goal: %d ml\n", goal)
		return nil
	}
	ml, err := intArg(args, 0, "goal [ml]")
	if err != nil {
		return err
	}
	st, err := a.settings.SetDailyGoal(ctx, ml)
	if err != nil {
		return err
	}
	a.printf("Daily goal set to %d ml\n", st.DailyWaterGoal)
	return nil
}
