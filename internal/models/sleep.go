package models

import "time"

// SleepRecord is one night of sleep. Duration is derived from the two
// timestamps and kept in whole minutes.
type SleepRecord struct {
	ID        string    `json:"id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Duration  int       `json:"duration"`
	Quality   int       `json:"quality,omitempty"` // 1-5, 0 when unrated
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (r SleepRecord) Rated() bool { return r.Quality > 0 }

// SleepStats summarises the records created in the last seven days.
type SleepStats struct {
	Count          int     `json:"count"`
	TotalMinutes   int     `json:"total_minutes"`
	AverageMinutes float64 `json:"average_minutes"`
	AverageQuality float64 `json:"average_quality"`
}
