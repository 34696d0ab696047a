package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/wellkeeper/internal/backup"
)

func (a *App) Remind(ctx context.Context, args []string) error {
	if len(args) == 2 {
		const usage = "remind [start end]"
		start, err := intArg(args, 0, usage)
		if err != nil {
			return err
		}
		end, err := intArg(args, 1, usage)
		if err != nil {
			return err
		}
		st, err := a.settings.SetReminderWindow(ctx, start, end)
		if err != nil {
			return err
		}
		a.printf("Reminders active %02d:00-%02d:00\n", st.ReminderStartHour, st.ReminderEndHour)
		return nil
	}
	if len(args) != 0 {
		return usageError("remind [start end]")
	}

	r, err := a.checker.Check(ctx)
	if err != nil {
		return err
	}
	if r == nil {
		a.println("Nothing to remind right now.")
		return nil
	}
	a.println(r.String())
	return nil
}

func (a *App) Export(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return usageError("export [file]")
	}
	var path string
	if len(args) == 1 {
		path = args[0]
	}
	path, err := backup.ExportFile(ctx, a.store, path, a.cal.Now())
	if err != nil {
		return err
	}
	a.printf("Backup written to %s\n", path)
	return nil
}

func (a *App) Import(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("import <file>")
	}
	keys, err := backup.ImportFile(ctx, a.store, args[0])
	if err != nil {
		return err
	}
	a.printf("Restored %d keys: %s\n", len(keys), strings.Join(keys, ", "))
	return nil
}
