// Package focus tracks planned work timers.
package focus

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrijs2005/wellkeeper/internal/common"
	"github.com/dmitrijs2005/wellkeeper/internal/kv"
	"github.com/dmitrijs2005/wellkeeper/internal/logging"
	"github.com/dmitrijs2005/wellkeeper/internal/models"
	"github.com/dmitrijs2005/wellkeeper/internal/timex"
	"github.com/google/uuid"
)

const (
	MinDuration = 1
	MaxDuration = 480
)

// Service owns the focus_sessions key.
type Service struct {
	store  kv.Store
	cal    timex.Calendar
	logger logging.Logger

	mu sync.Mutex
}

func NewService(store kv.Store, cal timex.Calendar, logger logging.Logger) *Service {
	return &Service{
		store:  store,
		cal:    cal,
		logger: logger.With("store", "focus"),
	}
}

// Sessions returns all sessions in creation order.
func (s *Service) Sessions(ctx context.Context) ([]models.FocusSession, error) {
	list, err := kv.LoadJSON(ctx, s.store, common.KeyFocusSessions, []models.FocusSession{})
	if err != nil {
		s.logger.Error(ctx, "failed to load focus sessions", "err", err)
		return nil, err
	}
	return list, nil
}

func (s *Service) save(ctx context.Context, list []models.FocusSession) error {
	if err := kv.SaveJSON(ctx, s.store, common.KeyFocusSessions, list); err != nil {
		s.logger.Error(ctx, "failed to save focus sessions", "err", err)
		return err
	}
	return nil
}

// Start creates a session of the given planned length.
func (s *Service) Start(ctx context.Context, name string, minutes int) (*models.FocusSession, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, common.Validationf("session name is required")
	}
	if minutes < MinDuration || minutes > MaxDuration {
		return nil, common.Validationf("duration must be within [%d, %d] minutes, got %d", MinDuration, MaxDuration, minutes)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.Sessions(ctx)
	if err != nil {
		return nil, err
	}

	sess := models.FocusSession{
		ID:        uuid.NewString(),
		Name:      name,
		Duration:  minutes,
		CreatedAt: s.cal.Now(),
	}
	list = append(list, sess)

	if err := s.save(ctx, list); err != nil {
		return nil, err
	}
	s.logger.Debug(ctx, "focus session started", "id", sess.ID, "minutes", minutes)
	return &sess, nil
}

// Complete stamps the session as completed now. Completing again overwrites
// the stamp. An unknown id yields common.ErrNotFound and nothing is written.
func (s *Service) Complete(ctx context.Context, id string) (*models.FocusSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.Sessions(ctx)
	if err != nil {
		return nil, err
	}

	i := slices.IndexFunc(list, func(f models.FocusSession) bool { return f.ID == id })
	if i < 0 {
		return nil, common.ErrNotFound
	}
	t := s.cal.Now()
	list[i].CompletedAt = &t

	if err := s.save(ctx, list); err != nil {
		return nil, err
	}
	sess := list[i]
	return &sess, nil
}

// Delete removes the session if present.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.Sessions(ctx)
	if err != nil {
		return err
	}
	n := len(list)
	list = slices.DeleteFunc(list, func(f models.FocusSession) bool { return f.ID == id })
	if len(list) == n {
		return nil
	}
	return s.save(ctx, list)
}

// TodayStats counts sessions created today that have been completed, with
// their planned minutes.
func (s *Service) TodayStats(ctx context.Context) (models.FocusStats, error) {
	list, err := s.Sessions(ctx)
	if err != nil {
		return models.FocusStats{}, err
	}
	return ComputeStats(list, s.cal, s.cal.Today()), nil
}

// ComputeStats aggregates completed sessions created on day.
func ComputeStats(list []models.FocusSession, cal timex.Calendar, day timex.Date) models.FocusStats {
	var st models.FocusStats
	for _, f := range list {
		if !f.Completed() || cal.DateOf(f.CreatedAt) != day {
			continue
		}
		st.Completed++
		st.TotalMinutes += f.Duration
	}
	return st
}
