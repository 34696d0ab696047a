package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/wellkeeper/internal/sleep"
)

const sleepUsage = "sleep add <HH:MM> <HH:MM> [quality] [notes...] | rate <id> <quality> | rm <id> | list | week"

func (a *App) Sleep(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError(sleepUsage)
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "add":
		const usage = "sleep add <HH:MM> <HH:MM> [quality] [notes...]"
		bed, err := clockArg(rest, 0, usage)
		if err != nil {
			return err
		}
		wake, err := clockArg(rest, 1, usage)
		if err != nil {
			return err
		}
		quality, err := optIntArg(rest, 2, 0, usage)
		if err != nil {
			return err
		}
		var notes string
		if len(rest) > 3 {
			notes = strings.Join(rest[3:], " ")
		}

		start, end := sleep.LastNight(a.cal.Now(), bed, wake)
		r, err := a.sleep.Save(ctx, sleep.Input{Start: start, End: end, Quality: quality, Notes: notes})
		if err != nil {
			return err
		}
		a.printf("Slept %s, %s-%s, id=%s\n", minutes(r.Duration), r.StartTime.In(a.cal.Location()).Format("15:04"),
			r.EndTime.In(a.cal.Location()).Format("15:04"), r.ID)

	case "rate":
		if len(rest) != 2 {
			return usageError("sleep rate <id> <quality>")
		}
		q, err := intArg(rest, 1, "sleep rate <id> <quality>")
		if err != nil {
			return err
		}
		r, err := a.sleep.Update(ctx, rest[0], sleep.Update{Quality: &q})
		if err != nil {
			return err
		}
		a.printf("Rated %d/%d\n", r.Quality, sleep.MaxQuality)

	case "rm":
		if len(rest) != 1 {
			return usageError("sleep rm <id>")
		}
		if err := a.sleep.Delete(ctx, rest[0]); err != nil {
			return err
		}
		a.println("Record deleted.")

	case "list":
		list, err := a.sleep.Records(ctx)
		if err != nil {
			return err
		}
		if len(list) == 0 {
			a.println("No sleep records.")
			return nil
		}
		loc := a.cal.Location()
		for _, r := range list {
			quality := "-"
			if r.Rated() {
				quality = strings.Repeat("*", r.Quality)
			}
			a.printf("%s %s-%s %s %-5s %s %s\n", a.cal.DateOf(r.EndTime), r.StartTime.In(loc).Format("15:04"), r.EndTime.In(loc).Format("15:04"),
				minutes(r.Duration), quality, r.ID, r.Notes)
		}

	case "week":
		st, err := a.sleep.WeeklyStats(ctx)
		if err != nil {
			return err
		}
		a.printf("Last 7 days: %d nights, %s total, %s on average\n",
			st.Count, minutes(st.TotalMinutes), minutes(int(st.AverageMinutes+0.5)))
		if st.AverageQuality > 0 {
			a.printf("Average quality: %.1f/%d\n", st.AverageQuality, sleep.MaxQuality)
		}

	default:
		return usageError(sleepUsage)
	}
	return nil
}

// clockArg parses args[i] as HH:MM and returns it as an offset from midnight.
func clockArg(args []string, i int, usage string) (time.Duration, error) {
	if i >= len(args) {
		return 0, usageError(usage)
	}
	t, err := time.Parse("15:04", args[i])
	if err != nil {
		return 0, usageError(usage)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// minutes formats n minutes as "7h05m".
func minutes(n int) string {
	return fmt.Sprintf("%dh%02dm", n/60, n%60)
}
