package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Database.Driver != "postgres" {
		t.Errorf("expected default driver postgres, got %s", cfg.Database.Driver)
	}
	if cfg.Redis.Enabled {
		t.Error("expected Redis to be disabled by default")
	}
	if cfg.RateLimit.MaxRequests != 60 || cfg.RateLimit.Window != time.Minute {
		t.Errorf("unexpected rate limit defaults: %+v", cfg.RateLimit)
	}
	if cfg.Seed.DemoData {
		t.Error("expected demo seeding to be off by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", "ledger.db")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("SEED_DEMO_DATA", "true")
	t.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")

	cfg := Load()

	if cfg.Database.Driver != "sqlite" || cfg.Database.URL != "ledger.db" {
		t.Errorf("unexpected database config: %+v", cfg.Database)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if !cfg.Redis.Enabled {
		t.Error("expected Redis to be enabled")
	}
	if cfg.RateLimit.Window != 30*time.Second {
		t.Errorf("expected 30s window, got %s", cfg.RateLimit.Window)
	}
	if !cfg.Seed.DemoData {
		t.Error("expected demo seeding to be on")
	}
	if cfg.Database.MaxOpenConns != 25 {
		t.Errorf("expected invalid int to fall back to 25, got %d", cfg.Database.MaxOpenConns)
	}
}
