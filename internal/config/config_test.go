package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "wellkeeper.db", c.DatabaseDSN)
	assert.Equal(t, "warn", c.LogLevel)
	assert.Equal(t, 30*time.Minute, c.ReminderInterval)
	assert.Empty(t, c.TimeZone)
}

func TestLocation(t *testing.T) {
	c := Config{}
	loc, err := c.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	c.TimeZone = "UTC"
	loc, err = c.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	c.TimeZone = "Mars/Olympus_Mons"
	_, err = c.Location()
	require.Error(t, err)
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	origWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(origWd) })

	path := writeTempJSON(t, dir, "cfg.json", map[string]any{
		"database_dsn":      "json.db",
		"log_level":         "debug",
		"reminder_interval": "10m",
		"time_zone":         "UTC",
	})
	t.Setenv(EnvLogLevel, "error")

	os.Args = []string{"wellkeeper", "-c", path, "-d", "flag.db"}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "flag.db", cfg.DatabaseDSN, "flags beat json")
	assert.Equal(t, "error", cfg.LogLevel, "env beats json")
	assert.Equal(t, 10*time.Minute, cfg.ReminderInterval)
	assert.Equal(t, "UTC", cfg.TimeZone)
}

func TestLoadConfig_BadTimeZone(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	t.Setenv(EnvTimeZone, "")

	os.Args = []string{"wellkeeper", "-tz", "Nowhere/Special"}
	_, err := LoadConfig()
	require.Error(t, err)
}

func TestLoadConfig_BadJSON(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))
	os.Args = []string{"wellkeeper", "-config", path}

	_, err := LoadConfig()
	require.Error(t, err)
}
