package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/wellkeeper/internal/flagx"
	"github.com/dmitrijs2005/wellkeeper/internal/timex"
)

// JsonConfig is the file form of Config. Pointer fields distinguish "absent"
// from a zero value so a partial file only overrides what it names.
// ReminderInterval accepts "30m" or integer nanoseconds.
type JsonConfig struct {
	DatabaseDSN      *string         `json:"database_dsn"`
	LogLevel         *string         `json:"log_level"`
	ReminderInterval *timex.Duration `json:"reminder_interval"`
	TimeZone         *string         `json:"time_zone"`
}

// parseJson overlays the file named by -c / -config, if any.
func parseJson(config *Config) error {
	path := flagx.ConfigPath(os.Args[1:])
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
	if c.LogLevel != nil {
		config.LogLevel = *c.LogLevel
	}
	if c.ReminderInterval != nil {
		config.ReminderInterval = c.ReminderInterval.Duration
	}
	if c.TimeZone != nil {
		config.TimeZone = *c.TimeZone
	}
	return nil
}
