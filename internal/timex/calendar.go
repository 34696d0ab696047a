package timex

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Calendar turns clock readings into local calendar days. All stores share
// one Calendar so "today" means the same thing everywhere.
type Calendar struct {
	clock clockwork.Clock
	loc   *time.Location
}

// NewCalendar returns a Calendar. A nil clock means the real clock and a nil
// location means time.Local.
func NewCalendar(clock clockwork.Clock, loc *time.Location) Calendar {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if loc == nil {
		loc = time.Local
	}
	return Calendar{clock: clock, loc: loc}
}

func (c Calendar) Clock() clockwork.Clock   { return c.clock }
func (c Calendar) Location() *time.Location { return c.loc }

// Now returns the current instant in the calendar's location.
func (c Calendar) Now() time.Time { return c.clock.Now().In(c.loc) }

// Today returns the current local calendar day.
func (c Calendar) Today() Date { return DateIn(c.clock.Now(), c.loc) }

// DateOf returns the local calendar day of t.
func (c Calendar) DateOf(t time.Time) Date { return DateIn(t, c.loc) }
