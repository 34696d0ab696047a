package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/wellkeeper/internal/beverages"
	"github.com/dmitrijs2005/wellkeeper/internal/config"
	"github.com/dmitrijs2005/wellkeeper/internal/focus"
	"github.com/dmitrijs2005/wellkeeper/internal/kv"
	"github.com/dmitrijs2005/wellkeeper/internal/logging"
	"github.com/dmitrijs2005/wellkeeper/internal/reminders"
	"github.com/dmitrijs2005/wellkeeper/internal/settings"
	"github.com/dmitrijs2005/wellkeeper/internal/sleep"
	"github.com/dmitrijs2005/wellkeeper/internal/timex"
	"github.com/dmitrijs2005/wellkeeper/internal/water"
)

type App struct {
	config *config.Config
	store  kv.Store
	closer io.Closer
	cal    timex.Calendar
	logger logging.Logger

	water     *water.Service
	beverages *beverages.Service
	focus     *focus.Service
	sleep     *sleep.Service
	settings  *settings.Service
	checker   *reminders.Checker

	in  io.Reader
	out io.Writer
}

// NewApp opens the store named by c.DatabaseDSN and wires the services.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	loc, err := c.Location()
	if err != nil {
		return nil, err
	}

	store, err := kv.Open(ctx, c.DatabaseDSN)
	if err != nil {
		logger.Error(ctx, "error initializing database", "dsn", c.DatabaseDSN, "err", err)
		return nil, err
	}

	a := newApp(store, timex.NewCalendar(nil, loc), logger, os.Stdin, os.Stdout)
	a.config = c
	a.closer = store
	return a, nil
}

func newApp(store kv.Store, cal timex.Calendar, logger logging.Logger, in io.Reader, out io.Writer) *App {
	st := settings.NewService(store, logger)
	ws := water.NewService(store, st, cal, logger)

	return &App{
		config:    &config.Config{},
		store:     store,
		cal:       cal,
		logger:    logger,
		water:     ws,
		beverages: beverages.NewService(store, cal, logger),
		focus:     focus.NewService(store, cal, logger),
		sleep:     sleep.NewService(store, cal, logger),
		settings:  st,
		checker:   reminders.NewChecker(ws, st, cal),
		in:        in,
		out:       &syncWriter{w: out},
	}
}

// Run starts reminders (if enabled) and the REPL, and releases everything
// when the user quits or input ends.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer a.Close()

	if a.config.ReminderInterval > 0 {
		sched := reminders.NewScheduler(a.checker, reminders.NotifierFunc(a.notify), a.config.ReminderInterval, a.cal.Clock(), a.logger)
		if err := sched.Start(ctx); err != nil {
			a.logger.Warn(ctx, "reminders disabled", "err", err)
		} else {
			defer func() { _ = sched.Stop() }()
		}
	}

	a.println("Welcome to wellkeeper (type 'help' for commands)")
	runREPL(ctx, a, a.prompt, bufio.NewScanner(a.in), a.out)
}

func (a *App) Close() {
	if a.closer != nil {
		if err := a.closer.Close(); err != nil {
			a.logger.Warn(context.Background(), "failed to close store", "err", err)
		}
		a.closer = nil
	}
}

func (a *App) notify(_ context.Context, r reminders.Reminder) error {
	_, err := fmt.Fprintf(a.out, "\n[reminder] %s\n", r)
	return err
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// syncWriter lets the reminder goroutine and the REPL share one output.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
