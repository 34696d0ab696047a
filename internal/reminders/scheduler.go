package reminders

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/wellkeeper/internal/logging"
	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"
)

// Notifier delivers a due reminder.
type Notifier interface {
	Notify(ctx context.Context, r Reminder) error
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, r Reminder) error

func (f NotifierFunc) Notify(ctx context.Context, r Reminder) error { return f(ctx, r) }

// Scheduler runs Checker periodically and forwards due reminders.
type Scheduler struct {
	checker  *Checker
	notifier Notifier
	interval time.Duration
	clock    clockwork.Clock
	logger   logging.Logger

	mu    sync.Mutex
	sched gocron.Scheduler
}

func NewScheduler(checker *Checker, notifier Notifier, interval time.Duration, clock clockwork.Clock, logger logging.Logger) *Scheduler {
	return &Scheduler{
		checker:  checker,
		notifier: notifier,
		interval: interval,
		clock:    clock,
		logger:   logger.With("component", "reminders"),
	}
}

// Start registers the periodic check and starts the scheduler. The job stops
// doing work once ctx is cancelled; call Stop to release the scheduler.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.interval <= 0 {
		return fmt.Errorf("reminder interval must be positive, got %s", s.interval)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sched != nil {
		return fmt.Errorf("reminder scheduler already started")
	}

	var opts []gocron.SchedulerOption
	if s.clock != nil {
		opts = append(opts, gocron.WithClock(s.clock))
	}
	sched, err := gocron.NewScheduler(opts...)
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	_, err = sched.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(func() { s.run(ctx) }),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = sched.Shutdown()
		return fmt.Errorf("failed to register reminder job: %w", err)
	}

	sched.Start()
	s.sched = sched
	s.logger.Info(ctx, "reminders started", "interval", s.interval.String())
	return nil
}

func (s *Scheduler) run(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	r, err := s.checker.Check(ctx)
	if err != nil {
		s.logger.Warn(ctx, "reminder check failed", "err", err)
		return
	}
	if r == nil {
		return
	}
	if err := s.notifier.Notify(ctx, *r); err != nil {
		s.logger.Warn(ctx, "failed to deliver reminder", "err", err)
	}
}

// Stop shuts the scheduler down. It is safe to call when not started.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sched == nil {
		return nil
	}
	err := s.sched.Shutdown()
	s.sched = nil
	return err
}
