// Package config assembles runtime settings from defaults, an optional JSON
// file, the environment and command-line flags, in that order of precedence.
package config

import (
	"fmt"
	"time"
)

// Config holds runtime settings for the wellkeeper CLI.
//
// Fields:
//   - DatabaseDSN: SQLite file path, or a postgres:// URL.
//   - LogLevel: debug, info, warn or error.
//   - ReminderInterval: how often hydration reminders are checked; 0 disables them.
//   - TimeZone: IANA zone used for calendar days; empty means the system zone.
type Config struct {
	DatabaseDSN      string
	LogLevel         string
	ReminderInterval time.Duration
	TimeZone         string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "wellkeeper.db"
	c.LogLevel = "warn"
	c.ReminderInterval = 30 * time.Minute
	c.TimeZone = ""
}

// Location resolves TimeZone.
func (c *Config) Location() (*time.Location, error) {
	if c.TimeZone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid time zone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, ".env"); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg); err != nil {
		return nil, err
	}
	if _, err := cfg.Location(); err != nil {
		return nil, err
	}
	return cfg, nil
}
