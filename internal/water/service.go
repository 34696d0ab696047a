package water

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/wellkeeper/internal/common"
	"github.com/dmitrijs2005/wellkeeper/internal/kv"
	"github.com/dmitrijs2005/wellkeeper/internal/logging"
	"github.com/dmitrijs2005/wellkeeper/internal/models"
	"github.com/dmitrijs2005/wellkeeper/internal/timex"
)

// GoalSource supplies the current daily goal in ml.
type GoalSource interface {
	DailyGoal(ctx context.Context) (int, error)
}

// Service owns the water_history key.
type Service struct {
	store  kv.Store
	goals  GoalSource
	cal    timex.Calendar
	logger logging.Logger

	// serialises read-modify-write of the history blob within this process
	mu sync.Mutex
}

func NewService(store kv.Store, goals GoalSource, cal timex.Calendar, logger logging.Logger) *Service {
	return &Service{
		store:  store,
		goals:  goals,
		cal:    cal,
		logger: logger.With("store", "water"),
	}
}

// History returns every recorded day.
func (s *Service) History(ctx context.Context) (models.WaterHistory, error) {
	h, err := kv.LoadJSON(ctx, s.store, common.KeyWaterHistory, models.WaterHistory{})
	if err != nil {
		s.logger.Error(ctx, "failed to load water history", "err", err)
		return nil, err
	}
	if h == nil {
		h = models.WaterHistory{}
	}
	return h, nil
}

// RecordIntake adds amount ml at instant at to that day's record, creating
// the record on the first intake of the day. The day's goal snapshot is
// refreshed to the current goal.
func (s *Service) RecordIntake(ctx context.Context, amount int, at time.Time) (*models.DailyWaterRecord, error) {
	if amount <= 0 {
		return nil, common.Validationf("amount must be positive, got %d", amount)
	}

	goal, err := s.goals.DailyGoal(ctx)
	if err != nil {
		s.logger.Error(ctx, "failed to read daily goal", "err", err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	history, err := s.History(ctx)
	if err != nil {
		return nil, err
	}

	day := s.cal.DateOf(at)
	rec, ok := history[day]
	if !ok {
		rec = models.DailyWaterRecord{Date: day}
	}
	rec.Intake += amount
	rec.Goal = goal
	rec.Entries = append(rec.Entries, models.IntakeEntry{Amount: amount, Time: at.In(s.cal.Location())})
	history[day] = rec

	if err := kv.SaveJSON(ctx, s.store, common.KeyWaterHistory, history); err != nil {
		s.logger.Error(ctx, "failed to save water history", "err", err)
		return nil, err
	}

	s.logger.Debug(ctx, "intake recorded", "date", day.String(), "amount", amount, "total", rec.Intake)
	return &rec, nil
}

// DayRecord returns the record of date or common.ErrNotFound.
func (s *Service) DayRecord(ctx context.Context, date timex.Date) (*models.DailyWaterRecord, error) {
	history, err := s.History(ctx)
	if err != nil {
		return nil, err
	}
	rec, ok := history[date]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &rec, nil
}

// Today returns today's record, or an empty one carrying the current goal.
func (s *Service) Today(ctx context.Context) (models.DailyWaterRecord, error) {
	today := s.cal.Today()
	rec, err := s.DayRecord(ctx, today)
	if err == nil {
		return *rec, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return models.DailyWaterRecord{}, err
	}
	goal, err := s.goals.DailyGoal(ctx)
	if err != nil {
		return models.DailyWaterRecord{}, err
	}
	return models.DailyWaterRecord{Date: today, Goal: goal}, nil
}

// LastNDays returns n days ending today, oldest first. Days without a record
// are filled with zero intake and the current goal.
func (s *Service) LastNDays(ctx context.Context, n int) ([]models.DailyWaterRecord, error) {
	if n <= 0 {
		return nil, common.Validationf("days must be positive, got %d", n)
	}
	history, err := s.History(ctx)
	if err != nil {
		return nil, err
	}
	goal, err := s.goals.DailyGoal(ctx)
	if err != nil {
		return nil, err
	}

	today := s.cal.Today()
	out := make([]models.DailyWaterRecord, 0, n)
	for i := n - 1; i >= 0; i-- {
		d := today.AddDays(-i)
		rec, ok := history[d]
		if !ok {
			rec = models.DailyWaterRecord{Date: d, Goal: goal}
		}
		out = append(out, rec)
	}
	return out, nil
}

// WeeklyChart returns the last seven days labelled by weekday.
func (s *Service) WeeklyChart(ctx context.Context) ([]models.ChartDay, error) {
	days, err := s.LastNDays(ctx, weekWindow)
	if err != nil {
		return nil, err
	}
	chart := make([]models.ChartDay, 0, len(days))
	for _, d := range days {
		chart = append(chart, models.ChartDay{
			Date:   d.Date,
			Label:  d.Date.Weekday().String()[:3],
			Intake: d.Intake,
			Goal:   d.Goal,
		})
	}
	return chart, nil
}

// MonthlyChart returns four weekly averages over the last thirty days.
func (s *Service) MonthlyChart(ctx context.Context) ([]models.ChartWeek, error) {
	days, err := s.LastNDays(ctx, monthWindow)
	if err != nil {
		return nil, err
	}
	return WeeklyAverages(days), nil
}

// Stats recomputes WaterStats from the stored history.
func (s *Service) Stats(ctx context.Context) (models.WaterStats, error) {
	history, err := s.History(ctx)
	if err != nil {
		return models.WaterStats{}, err
	}
	goal, err := s.goals.DailyGoal(ctx)
	if err != nil {
		return models.WaterStats{}, err
	}
	return ComputeStats(history, goal, s.cal.Today()), nil
}
