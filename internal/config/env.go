package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvDatabaseDSN      = "WELLKEEPER_DSN"
	EnvLogLevel         = "WELLKEEPER_LOG_LEVEL"
	EnvReminderInterval = "WELLKEEPER_REMINDER_INTERVAL"
	EnvTimeZone         = "WELLKEEPER_TZ"
)

// parseEnv loads dotenv (a missing file is fine; existing variables win) and
// overlays WELLKEEPER_* variables.
func parseEnv(config *Config, dotenv string) error {
	if dotenv != "" {
		if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", dotenv, err)
		}
	}

	if v, ok := os.LookupEnv(EnvDatabaseDSN); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		config.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvReminderInterval); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvReminderInterval, err)
		}
		config.ReminderInterval = d
	}
	if v, ok := os.LookupEnv(EnvTimeZone); ok {
		config.TimeZone = v
	}
	return nil
}
