package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		name    string
		args    []string
		want    Config
		wantErr bool
	}{
		{
			name: "all flags",
			args: []string{"cmd", "-d", "other.db", "-l", "debug", "-r", "120", "-tz", "UTC"},
			want: Config{DatabaseDSN: "other.db", LogLevel: "debug", ReminderInterval: 2 * time.Minute, TimeZone: "UTC"},
		},
		{
			name: "config flag and unknown flags ignored",
			args: []string{"cmd", "-c", "x.json", "-x", "1"},
			want: Config{DatabaseDSN: "wellkeeper.db", LogLevel: "warn", ReminderInterval: 30 * time.Minute},
		},
		{
			name: "zero disables reminders",
			args: []string{"cmd", "-r", "0"},
			want: Config{DatabaseDSN: "wellkeeper.db", LogLevel: "warn"},
		},
		{
			name:    "non-numeric interval",
			args:    []string{"cmd", "-r", "soon"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			cfg := &Config{}
			cfg.LoadDefaults()
			err := parseFlags(cfg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, *cfg); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
