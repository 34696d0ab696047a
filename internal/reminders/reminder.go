// Package reminders nudges the user to drink while today's goal is unmet.
package reminders

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/wellkeeper/internal/models"
	"github.com/dmitrijs2005/wellkeeper/internal/timex"
	"github.com/dmitrijs2005/wellkeeper/internal/water"
)

// Reminder describes today's shortfall at the time of the check.
type Reminder struct {
	At        time.Time
	Intake    int
	Goal      int
	Remaining int
	Percent   int
}

func (r Reminder) String() string {
	return fmt.Sprintf("time to drink: %d/%d ml (%d%%), %d ml to go", r.Intake, r.Goal, r.Percent, r.Remaining)
}

// TodaySource provides today's water record.
type TodaySource interface {
	Today(ctx context.Context) (models.DailyWaterRecord, error)
}

// SettingsSource provides the reminder window.
type SettingsSource interface {
	Get(ctx context.Context) (models.Settings, error)
}

// Checker decides whether a reminder is due.
type Checker struct {
	water    TodaySource
	settings SettingsSource
	cal      timex.Calendar
}

func NewChecker(water TodaySource, settings SettingsSource, cal timex.Calendar) *Checker {
	return &Checker{water: water, settings: settings, cal: cal}
}

// Check returns a reminder when the local hour is inside the configured
// window and today's intake is below goal, otherwise nil.
func (c *Checker) Check(ctx context.Context) (*Reminder, error) {
	st, err := c.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	now := c.cal.Now()
	if h := now.Hour(); h < st.ReminderStartHour || h >= st.ReminderEndHour {
		return nil, nil
	}

	rec, err := c.water.Today(ctx)
	if err != nil {
		return nil, err
	}
	goal := rec.Goal
	if goal <= 0 {
		goal = st.DailyWaterGoal
	}
	if rec.Intake >= goal {
		return nil, nil
	}

	return &Reminder{
		At:        now,
		Intake:    rec.Intake,
		Goal:      goal,
		Remaining: goal - rec.Intake,
		Percent:   water.ProgressPercent(rec.Intake, goal),
	}, nil
}
