package models

import (
	"time"

	"github.com/dmitrijs2005/wellkeeper/internal/timex"
)

// IntakeEntry is one logged glass of water.
type IntakeEntry struct {
	Amount int       `json:"amount"`
	Time   time.Time `json:"time"`
}

// DailyWaterRecord is the water log of a single calendar day.
// Intake always equals the sum of Entries amounts.
type DailyWaterRecord struct {
	Date    timex.Date    `json:"date"`
	Intake  int           `json:"intake"`
	Goal    int           `json:"goal"`
	Entries []IntakeEntry `json:"entries"`
}

// WaterHistory is the whole water log keyed by day.
type WaterHistory map[timex.Date]DailyWaterRecord

// WaterStats is recomputed from WaterHistory on every read.
type WaterStats struct {
	CurrentStreak      int     `json:"current_streak"`
	LongestStreak      int     `json:"longest_streak"`
	GoalCompletionRate float64 `json:"goal_completion_rate"`
	TotalDaysTracked   int     `json:"total_days_tracked"`
	WeeklyAverage      int     `json:"weekly_average"`
	MonthlyAverage     int     `json:"monthly_average"`
}

// ChartWeek is one bar of the monthly chart: the average daily intake of a
// seven-day block.
type ChartWeek struct {
	Label   string     `json:"label"`
	From    timex.Date `json:"from"`
	To      timex.Date `json:"to"`
	Average int        `json:"average"`
	Goal    int        `json:"goal"`
}

// ChartDay is one bar of the weekly chart.
type ChartDay struct {
	Date   timex.Date `json:"date"`
	Label  string     `json:"label"`
	Intake int        `json:"intake"`
	Goal   int        `json:"goal"`
}
