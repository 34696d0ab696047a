package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/wellkeeper/internal/flagx"
)

// parseFlags overlays command-line flags.
//
// Supported flags:
//
//	-d string   database DSN (file path or postgres:// URL)
//	-l string   log level
//	-r int      reminder interval, seconds (0 disables reminders)
//	-tz string  IANA time zone for calendar days
//
// os.Args is filtered through flagx.FilterArgs first, so -c / -config and
// anything unknown are ignored here.
func parseFlags(config *Config) error {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-l", "-r", "-tz"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	reminderInterval := fs.Int("r", int(config.ReminderInterval.Seconds()), "reminder interval (in seconds)")
	fs.StringVar(&config.TimeZone, "tz", config.TimeZone, "time zone")

	if err := fs.Parse(args); err != nil {
		return err
	}

	config.ReminderInterval = time.Duration(*reminderInterval) * time.Second
	return nil
}
