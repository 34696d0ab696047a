package focus

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/wellkeeper/internal/common"
	"github.com/dmitrijs2005/wellkeeper/internal/kv"
	"github.com/dmitrijs2005/wellkeeper/internal/logging"
	"github.com/dmitrijs2005/wellkeeper/internal/models"
	"github.com/dmitrijs2005/wellkeeper/internal/timex"
	"github.com/google/go-cmp/cmp"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC)

func newService(t *testing.T) (*Service, *kv.MemoryStore, *clockwork.FakeClock) {
	t.Helper()
	store := kv.NewMemoryStore()
	clock := clockwork.NewFakeClockAt(now)
	return NewService(store, timex.NewCalendar(clock, time.UTC), logging.Discard()), store, clock
}

func TestStart(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	s, err := svc.Start(ctx, "  deep work ", 25)
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, "deep work", s.Name)
	assert.Equal(t, 25, s.Duration)
	assert.Equal(t, now, s.CreatedAt)
	assert.False(t, s.Completed())
}

func TestStart_Validation(t *testing.T) {
	svc, _, _ := newService(t)

	tests := []struct {
		name    string
		title   string
		minutes int
	}{
		{"blank name", "   ", 25},
		{"zero minutes", "x", 0},
		{"too long", "x", MaxDuration + 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Start(context.Background(), tt.title, tt.minutes)
			require.ErrorIs(t, err, common.ErrValidation)
		})
	}
}

func TestComplete(t *testing.T) {
	svc, _, clock := newService(t)
	ctx := context.Background()

	s, err := svc.Start(ctx, "write", 30)
	require.NoError(t, err)

	clock.Advance(30 * time.Minute)
	done, err := svc.Complete(ctx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, done.CompletedAt)
	assert.Equal(t, now.Add(30*time.Minute), *done.CompletedAt)

	clock.Advance(time.Minute)
	again, err := svc.Complete(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, now.Add(31*time.Minute), *again.CompletedAt)
}

func TestComplete_UnknownLeavesListUnchanged(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Start(ctx, "a", 10)
	require.NoError(t, err)
	before, err := svc.Sessions(ctx)
	require.NoError(t, err)

	_, err = svc.Complete(ctx, "missing")
	require.ErrorIs(t, err, common.ErrNotFound)

	after, err := svc.Sessions(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("sessions changed (-before +after):\n%s", diff)
	}
}

func TestDelete(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	a, err := svc.Start(ctx, "a", 10)
	require.NoError(t, err)
	_, err = svc.Start(ctx, "b", 20)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, a.ID))
	require.NoError(t, svc.Delete(ctx, a.ID))
	require.NoError(t, svc.Delete(ctx, "never-existed"))

	list, err := svc.Sessions(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "b", list[0].Name)
}

func TestTodayStats(t *testing.T) {
	svc, _, clock := newService(t)
	ctx := context.Background()

	yesterday, err := svc.Start(ctx, "old", 50)
	require.NoError(t, err)
	_, err = svc.Complete(ctx, yesterday.ID)
	require.NoError(t, err)

	clock.Advance(24 * time.Hour)

	a, err := svc.Start(ctx, "a", 25)
	require.NoError(t, err)
	b, err := svc.Start(ctx, "b", 45)
	require.NoError(t, err)
	_, err = svc.Start(ctx, "open", 90)
	require.NoError(t, err)

	_, err = svc.Complete(ctx, a.ID)
	require.NoError(t, err)
	_, err = svc.Complete(ctx, b.ID)
	require.NoError(t, err)

	st, err := svc.TodayStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.FocusStats{Completed: 2, TotalMinutes: 70}, st)
}

func TestComputeStats_LocalDay(t *testing.T) {
	tokyo := time.FixedZone("UTC+9", 9*3600)
	cal := timex.NewCalendar(clockwork.NewFakeClockAt(now), tokyo)
	done := now

	list := []models.FocusSession{
		// 20:00 UTC on the 2nd is 05:00 on the 3rd in UTC+9
		{Duration: 15, CreatedAt: time.Date(2024, 1, 2, 20, 0, 0, 0, time.UTC), CompletedAt: &done},
		{Duration: 30, CreatedAt: time.Date(2024, 1, 2, 14, 0, 0, 0, time.UTC), CompletedAt: &done},
	}
	st := ComputeStats(list, cal, timex.NewDate(2024, 1, 3))
	assert.Equal(t, models.FocusStats{Completed: 1, TotalMinutes: 15}, st)
}

type failingStore struct {
	kv.Store
}

func (failingStore) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("disk unavailable")
}

func TestService_StorageFailure(t *testing.T) {
	svc := NewService(failingStore{}, timex.NewCalendar(clockwork.NewFakeClockAt(now), time.UTC), logging.Discard())

	_, err := svc.TodayStats(context.Background())
	require.ErrorIs(t, err, common.ErrStorage)
	_, err = svc.Complete(context.Background(), "x")
	require.ErrorIs(t, err, common.ErrStorage)
}
