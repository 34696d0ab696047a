// Package settings stores user preferences under the user_settings key.
package settings

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/wellkeeper/internal/common"
	"github.com/dmitrijs2005/wellkeeper/internal/kv"
	"github.com/dmitrijs2005/wellkeeper/internal/logging"
	"github.com/dmitrijs2005/wellkeeper/internal/models"
)

const (
	MinDailyGoal = 500
	MaxDailyGoal = 10000
)

type Service struct {
	store  kv.Store
	logger logging.Logger

	mu sync.Mutex
}

func NewService(store kv.Store, logger logging.Logger) *Service {
	return &Service{store: store, logger: logger.With("store", "settings")}
}

// Get returns the stored settings, or defaults if none were saved.
func (s *Service) Get(ctx context.Context) (models.Settings, error) {
	st, err := kv.LoadJSON(ctx, s.store, common.KeyUserSettings, models.DefaultSettings())
	if err != nil {
		s.logger.Error(ctx, "failed to load settings", "err", err)
		return models.Settings{}, err
	}
	return st, nil
}

// DailyGoal returns the current daily water goal in ml.
func (s *Service) DailyGoal(ctx context.Context) (int, error) {
	st, err := s.Get(ctx)
	if err != nil {
		return 0, err
	}
	return st.DailyWaterGoal, nil
}

func (s *Service) SetDailyGoal(ctx context.Context, ml int) (models.Settings, error) {
	if ml < MinDailyGoal || ml > MaxDailyGoal {
		return models.Settings{}, common.Validationf("daily goal must be within [%d, %d] ml, got %d", MinDailyGoal, MaxDailyGoal, ml)
	}
	return s.update(ctx, func(st *models.Settings) { st.DailyWaterGoal = ml })
}

// SetReminderWindow sets the active reminder hours [start, end).
func (s *Service) SetReminderWindow(ctx context.Context, start, end int) (models.Settings, error) {
	if start < 0 || end > 24 || start >= end {
		return models.Settings{}, common.Validationf("reminder window must satisfy 0 <= start < end <= 24, got %d-%d", start, end)
	}
	return s.update(ctx, func(st *models.Settings) {
		st.ReminderStartHour = start
		st.ReminderEndHour = end
	})
}

func (s *Service) update(ctx context.Context, fn func(*models.Settings)) (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.Get(ctx)
	if err != nil {
		return models.Settings{}, err
	}
	fn(&st)
	if err := kv.SaveJSON(ctx, s.store, common.KeyUserSettings, st); err != nil {
		s.logger.Error(ctx, "failed to save settings", "err", err)
		return models.Settings{}, err
	}
	return st, nil
}
