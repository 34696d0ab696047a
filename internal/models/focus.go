package models

import "time"

// FocusSession is a planned work timer. It moves from created to completed
// (CompletedAt set) or is deleted; it is never reopened.
type FocusSession struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Duration    int        `json:"duration"` // planned minutes
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func (s FocusSession) Completed() bool { return s.CompletedAt != nil }

// FocusStats counts completed sessions and their planned minutes.
type FocusStats struct {
	Completed    int `json:"completed"`
	TotalMinutes int `json:"total_minutes"`
}
