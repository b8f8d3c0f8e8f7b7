package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.App.Port != "8000" {
		t.Errorf("expected default port 8000, got %s", cfg.App.Port)
	}
	if cfg.Database.Driver != "postgres" {
		t.Errorf("expected default driver postgres, got %s", cfg.Database.Driver)
	}
	if cfg.Redis.URL != "" {
		t.Errorf("expected redis disabled by default, got %q", cfg.Redis.URL)
	}
	if cfg.Redis.TTL != 60*time.Second {
		t.Errorf("expected default cache ttl 60s, got %s", cfg.Redis.TTL)
	}
	if !cfg.IsDevelopment() {
		t.Errorf("expected development env by default")
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("REDIS_CACHE_TTL", "not-a-duration")
	t.Setenv("SCHEDULER_OVERDUE_CRON", "")
	t.Setenv("S3_USE_SSL", "true")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"port", cfg.App.Port, "9090"},
		{"production", cfg.IsProduction(), true},
		{"driver lowercased", cfg.Database.Driver, "sqlite"},
		{"invalid ttl falls back", cfg.Redis.TTL, 60 * time.Second},
		{"empty cron disables sweep", cfg.Scheduler.OverdueCron, ""},
		{"s3 ssl", cfg.Storage.S3.UseSSL, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown driver", "DB_DRIVER", "mysql"},
		{"unknown storage", "STORAGE_TYPE", "gcs"},
		{"bad cron", "SCHEDULER_OVERDUE_CRON", "every hour"},
		{"cron out of range", "SCHEDULER_OVERDUE_CRON", "61 * * * *"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if cfg, err := LoadConfig(); err == nil {
				t.Fatalf("expected error for %s=%q, got config %+v", tt.key, tt.value, cfg)
			}
		})
	}
}
