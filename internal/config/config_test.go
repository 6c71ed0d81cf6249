package config

import (
	"errors"
	"testing"
	"time"

	apperrors "github.com/julianstephens/vdc-display/internal/errors"
)

func env(vars map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(env(nil), 8503)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.DatabasePath != "data/logistics.db" {
		t.Errorf("DatabasePath = %q, want data/logistics.db", cfg.DatabasePath)
	}
	if cfg.RefreshInterval != 10*time.Minute {
		t.Errorf("RefreshInterval = %v, want 10m", cfg.RefreshInterval)
	}
	if cfg.Addr() != ":8503" {
		t.Errorf("Addr() = %q", cfg.Addr())
	}
	if cfg.RefreshMinutes() != 10 {
		t.Errorf("RefreshMinutes() = %d", cfg.RefreshMinutes())
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	cfg, err := Load(env(map[string]string{
		"DATABASE_PATH":            "/srv/shared/logistics.db",
		"REFRESH_INTERVAL_MINUTES": " 5 ",
	}), 9000)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.DatabasePath != "/srv/shared/logistics.db" {
		t.Errorf("DatabasePath = %q", cfg.DatabasePath)
	}
	if cfg.RefreshInterval != 5*time.Minute {
		t.Errorf("RefreshInterval = %v, want 5m", cfg.RefreshInterval)
	}
	if cfg.Port != 9000 {
		t.Errorf("Port = %d", cfg.Port)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		vars    map[string]string
		port    int
		wantKey string
	}{
		{"non-numeric interval", map[string]string{"REFRESH_INTERVAL_MINUTES": "ten"}, 8503, "REFRESH_INTERVAL_MINUTES"},
		{"zero interval", map[string]string{"REFRESH_INTERVAL_MINUTES": "0"}, 8503, "REFRESH_INTERVAL_MINUTES"},
		{"negative interval", map[string]string{"REFRESH_INTERVAL_MINUTES": "-3"}, 8503, "REFRESH_INTERVAL_MINUTES"},
		{"interval over a day", map[string]string{"REFRESH_INTERVAL_MINUTES": "1441"}, 8503, "REFRESH_INTERVAL_MINUTES"},
		{"interval overflowing a duration", map[string]string{"REFRESH_INTERVAL_MINUTES": "200000000"}, 8503, "REFRESH_INTERVAL_MINUTES"},
		{"empty database path", map[string]string{"DATABASE_PATH": "  "}, 8503, "DATABASE_PATH"},
		{"port zero", nil, 0, "--port"},
		{"port too large", nil, 70000, "--port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(env(tt.vars), tt.port)
			if err == nil {
				t.Fatal("Load() expected error, got nil")
			}
			var cfgErr *apperrors.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Load() error = %T, want *ConfigError", err)
			}
			if cfgErr.Key != tt.wantKey {
				t.Errorf("ConfigError.Key = %q, want %q", cfgErr.Key, tt.wantKey)
			}
		})
	}
}

func TestLoadLongestInterval(t *testing.T) {
	cfg, err := Load(env(map[string]string{"REFRESH_INTERVAL_MINUTES": "1440"}), 8503)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.RefreshInterval != 24*time.Hour {
		t.Errorf("RefreshInterval = %v, want 24h", cfg.RefreshInterval)
	}
}
