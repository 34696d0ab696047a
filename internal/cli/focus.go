package cli

import (
	"context"
	"strings"
)

const focusUsage = "focus start <min> <name...> | done <id> | rm <id> | list | today"

func (a *App) Focus(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError(focusUsage)
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "start":
		minutes, err := intArg(rest, 0, "focus start <min> <name...>")
		if err != nil {
			return err
		}
		s, err := a.focus.Start(ctx, strings.Join(rest[1:], " "), minutes)
		if err != nil {
			return err
		}
		a.printf("Started %q for %d min, id=%s\n", s.Name, s.Duration, s.ID)

	case "done":
		if len(rest) != 1 {
			return usageError("focus done <id>")
		}
		s, err := a.focus.Complete(ctx, rest[0])
		if err != nil {
			return err
		}
		a.printf("Completed %q (%d min)\n", s.Name, s.Duration)

	case "rm":
		if len(rest) != 1 {
			return usageError("focus rm <id>")
		}
		if err := a.focus.Delete(ctx, rest[0]); err != nil {
			return err
		}
		a.println("Session deleted.")

	case "list":
		list, err := a.focus.Sessions(ctx)
		if err != nil {
			return err
		}
		if len(list) == 0 {
			a.println("No focus sessions.")
			return nil
		}
		for _, s := range list {
			status := "open"
			if s.Completed() {
				status = "done " + s.CompletedAt.In(a.cal.Location()).Format("15:04")
			}
			a.printf("%s %s %3d min %-10s %s\n", s.CreatedAt.In(a.cal.Location()).Format("2006-01-02 15:04"), s.ID, s.Duration, status, s.Name)
		}

	case "today":
		st, err := a.focus.TodayStats(ctx)
		if err != nil {
			return err
		}
		a.printf("Today: %d sessions completed, %d min focused\n", st.Completed, st.TotalMinutes)

	default:
		return usageError(focusUsage)
	}
	return nil
}
