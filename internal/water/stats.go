package water

import (
	"fmt"
	"math"
	"sort"

	"github.com/dmitrijs2005/wellkeeper/internal/models"
	"github.com/dmitrijs2005/wellkeeper/internal/timex"
)

const (
	weekWindow  = 7
	monthWindow = 30
	chartWeeks  = 4
)

// WeeklyAverages splits oldest-first days into consecutive seven-day blocks
// and averages each. Only the first four blocks are kept, so the two newest
// days of a 30-day window are not charted. Each block divides by seven even
// when it is short.
func WeeklyAverages(days []models.DailyWaterRecord) []models.ChartWeek {
	weeks := make([]models.ChartWeek, 0, chartWeeks)
	for i := 0; i < chartWeeks && i*weekWindow < len(days); i++ {
		block := days[i*weekWindow : min((i+1)*weekWindow, len(days))]
		total := 0
		for _, d := range block {
			total += d.Intake
		}
		weeks = append(weeks, models.ChartWeek{
			Label:   fmt.Sprintf("Week %d", i+1),
			From:    block[0].Date,
			To:      block[len(block)-1].Date,
			Average: int(math.Round(float64(total) / weekWindow)),
			Goal:    block[len(block)-1].Goal,
		})
	}
	return weeks
}

// GoalMet reports whether a day counts towards streaks and the completion
// rate. The day's own goal snapshot wins; fallbackGoal is used only for days
// stored without one. A day with no intake never counts.
func GoalMet(r models.DailyWaterRecord, fallbackGoal int) bool {
	goal := r.Goal
	if goal <= 0 {
		goal = fallbackGoal
	}
	return r.Intake > 0 && r.Intake >= goal
}

// ComputeStats derives WaterStats from the full history. It has no side
// effects, so calling it twice on the same input yields the same result.
//
// Streaks walk days newest first; a missing calendar day between two records
// breaks a run. Rolling averages cover [today-6, today] and [today-29, today]
// and only divide by days that have a record.
func ComputeStats(history models.WaterHistory, goal int, today timex.Date) models.WaterStats {
	var stats models.WaterStats
	if len(history) == 0 {
		return stats
	}

	dates := make([]timex.Date, 0, len(history))
	for d := range history {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })

	stats.TotalDaysTracked = len(dates)

	for i, d := range dates {
		if !GoalMet(history[d], goal) {
			break
		}
		if i > 0 && dates[i-1].Sub(d) != 1 {
			break
		}
		stats.CurrentStreak++
	}

	run, metDays := 0, 0
	for i, d := range dates {
		if !GoalMet(history[d], goal) {
			run = 0
			continue
		}
		metDays++
		if run > 0 && dates[i-1].Sub(d) == 1 {
			run++
		} else {
			run = 1
		}
		stats.LongestStreak = max(stats.LongestStreak, run)
	}

	stats.GoalCompletionRate = round2(float64(metDays) / float64(len(dates)) * 100)
	stats.WeeklyAverage = windowAverage(history, today, weekWindow)
	stats.MonthlyAverage = windowAverage(history, today, monthWindow)

	return stats
}

func windowAverage(history models.WaterHistory, today timex.Date, days int) int {
	from := today.AddDays(-(days - 1))
	sum, n := 0, 0
	for d, r := range history {
		if d.Before(from) || d.After(today) {
			continue
		}
		sum += r.Intake
		n++
	}
	if n == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(n)))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ProgressPercent is intake over goal as a display percentage capped at 100.
func ProgressPercent(intake, goal int) int {
	if goal <= 0 {
		return 0
	}
	p := int(math.Round(float64(intake) / float64(goal) * 100))
	return min(max(p, 0), 100)
}
