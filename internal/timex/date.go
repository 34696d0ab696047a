package timex

import (
	"fmt"
	"time"
)

// DateLayout is the canonical text form of a Date.
const DateLayout = "2006-01-02"

// Date is a calendar day without a clock or zone. It is comparable and is
// used as a map key for every day-keyed collection.
//
// A Date is always derived from an instant in an explicit location, so
// "today" depends on the configured zone and never on the host locale.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate normalises out-of-range values the way time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

// DateIn returns the calendar day of t as seen in loc.
func DateIn(t time.Time, loc *time.Location) Date {
	if loc == nil {
		loc = time.Local
	}
	return DateOf(t.In(loc))
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

func (d Date) Year() int             { return d.year }
func (d Date) Month() time.Month     { return d.month }
func (d Date) Day() int              { return d.day }
func (d Date) IsZero() bool          { return d == Date{} }
func (d Date) Weekday() time.Weekday { return d.utc().Weekday() }

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

// AddDays returns the date n days later (or earlier for negative n).
func (d Date) AddDays(n int) Date {
	return DateOf(d.utc().AddDate(0, 0, n))
}

// Sub returns the number of calendar days from o to d.
func (d Date) Sub(o Date) int {
	return int(d.utc().Sub(o.utc()).Hours() / 24)
}

func (d Date) Before(o Date) bool { return d.Sub(o) < 0 }
func (d Date) After(o Date) bool  { return d.Sub(o) > 0 }

// Start returns midnight of d in loc.
func (d Date) Start(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) utc() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}
