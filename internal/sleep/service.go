// Package sleep keeps a journal of nights slept.
package sleep

import (
	"context"
	"math"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/wellkeeper/internal/common"
	"github.com/dmitrijs2005/wellkeeper/internal/kv"
	"github.com/dmitrijs2005/wellkeeper/internal/logging"
	"github.com/dmitrijs2005/wellkeeper/internal/models"
	"github.com/dmitrijs2005/wellkeeper/internal/timex"
	"github.com/google/uuid"
)

const (
	MaxQuality  = 5
	MaxDuration = 24 * time.Hour

	statsWindow = 7 * 24 * time.Hour
)

// Input describes a night to record. Quality 0 leaves it unrated.
type Input struct {
	Start   time.Time
	End     time.Time
	Quality int
	Notes   string
}

// Update holds the fields to change; nil fields are kept.
type Update struct {
	Start   *time.Time
	End     *time.Time
	Quality *int
	Notes   *string
}

// Service owns the sleep_records key.
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
		logger: logger.With("store", "sleep"),
	}
}

// Records returns all records in creation order.
func (s *Service) Records(ctx context.Context) ([]models.SleepRecord, error) {
	list, err := kv.LoadJSON(ctx, s.store, common.KeySleepRecords, []models.SleepRecord{})
	if err != nil {
		s.logger.Error(ctx, "failed to load sleep records", "err", err)
		return nil, err
	}
	return list, nil
}

func (s *Service) save(ctx context.Context, list []models.SleepRecord) error {
	if err := kv.SaveJSON(ctx, s.store, common.KeySleepRecords, list); err != nil {
		s.logger.Error(ctx, "failed to save sleep records", "err", err)
		return err
	}
	return nil
}

// Save validates in and appends it as a new record.
func (s *Service) Save(ctx context.Context, in Input) (*models.SleepRecord, error) {
	rec := models.SleepRecord{
		StartTime: in.Start,
		EndTime:   in.End,
		Quality:   in.Quality,
		Notes:     strings.TrimSpace(in.Notes),
	}
	if err := normalize(&rec); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.Records(ctx)
	if err != nil {
		return nil, err
	}

	rec.ID = uuid.NewString()
	rec.CreatedAt = s.cal.Now()
	list = append(list, rec)

	if err := s.save(ctx, list); err != nil {
		return nil, err
	}
	s.logger.Debug(ctx, "sleep recorded", "id", rec.ID, "minutes", rec.Duration)
	return &rec, nil
}

// Update applies u to the record with id and recomputes its duration. An
// unknown id yields common.ErrNotFound and nothing is written.
func (s *Service) Update(ctx context.Context, id string, u Update) (*models.SleepRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.Records(ctx)
	if err != nil {
		return nil, err
	}

	i := slices.IndexFunc(list, func(r models.SleepRecord) bool { return r.ID == id })
	if i < 0 {
		return nil, common.ErrNotFound
	}

	rec := list[i]
	if u.Start != nil {
		rec.StartTime = *u.Start
	}
	if u.End != nil {
		rec.EndTime = *u.End
	}
	if u.Quality != nil {
		rec.Quality = *u.Quality
	}
	if u.Notes != nil {
		rec.Notes = strings.TrimSpace(*u.Notes)
	}
	if err := normalize(&rec); err != nil {
		return nil, err
	}
	list[i] = rec

	if err := s.save(ctx, list); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Delete removes the record if present.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.Records(ctx)
	if err != nil {
		return err
	}
	n := len(list)
	list = slices.DeleteFunc(list, func(r models.SleepRecord) bool { return r.ID == id })
	if len(list) == n {
		return nil
	}
	return s.save(ctx, list)
}

func (s *Service) WeeklyStats(ctx context.Context) (models.SleepStats, error) {
	list, err := s.Records(ctx)
	if err != nil {
		return models.SleepStats{}, err
	}
	return ComputeWeeklyStats(list, s.cal.Now()), nil
}

// ComputeWeeklyStats aggregates records created within seven days before
// now. Average quality only counts rated records.
func ComputeWeeklyStats(list []models.SleepRecord, now time.Time) models.SleepStats {
	var (
		st     models.SleepStats
		rated  int
		scores int
	)
	since := now.Add(-statsWindow)
	for _, r := range list {
		if r.CreatedAt.Before(since) {
			continue
		}
		st.Count++
		st.TotalMinutes += r.Duration
		if r.Rated() {
			rated++
			scores += r.Quality
		}
	}
	if st.Count > 0 {
		st.AverageMinutes = float64(st.TotalMinutes) / float64(st.Count)
	}
	if rated > 0 {
		st.AverageQuality = float64(scores) / float64(rated)
	}
	return st
}

// LastNight resolves bed and wake clock times, given as offsets from
// midnight, to the most recent night ending at or before now. A bedtime not
// earlier than the wake time falls on the previous day.
func LastNight(now time.Time, bed, wake time.Duration) (start, end time.Time) {
	at := func(day time.Time, off time.Duration) time.Time {
		y, m, d := day.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, day.Location()).Add(off)
	}
	end = at(now, wake)
	if end.After(now) {
		end = at(now.AddDate(0, 0, -1), wake)
	}
	start = at(end, bed)
	if !start.Before(end) {
		start = at(end.AddDate(0, 0, -1), bed)
	}
	return start, end
}

func normalize(r *models.SleepRecord) error {
	if r.StartTime.IsZero() || r.EndTime.IsZero() {
		return common.Validationf("start and end times are required")
	}
	d := r.EndTime.Sub(r.StartTime)
	if d <= 0 {
		return common.Validationf("end time must be after start time")
	}
	if d > MaxDuration {
		return common.Validationf("sleep cannot exceed %s, got %s", MaxDuration, d)
	}
	if r.Quality < 0 || r.Quality > MaxQuality {
		return common.Validationf("quality must be within [1, %d], got %d", MaxQuality, r.Quality)
	}
	r.Duration = int(math.Round(d.Minutes()))
	return nil
}
