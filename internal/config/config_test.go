package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "STORE_BACKEND", "REDIS_URI", "TOKEN_TTL", "WIZARD_TTL", "HISTORY_CACHE_TTL"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.StoreBackend != BackendMongo {
		t.Errorf("StoreBackend = %q, want mongo", cfg.StoreBackend)
	}
	if cfg.TokenTTL != 24*time.Hour || cfg.HistoryCacheTTL != 5*time.Minute {
		t.Errorf("ttls = %v %v", cfg.TokenTTL, cfg.HistoryCacheTTL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORE_BACKEND", "SQLite")
	t.Setenv("REDIS_URI", "redis://cache:6380")
	t.Setenv("WIZARD_TTL", "90m")
	t.Setenv("TOKEN_TTL", "nonsense")

	cfg := Load()
	if cfg.StoreBackend != BackendSQLite {
		t.Errorf("StoreBackend = %q, want sqlite", cfg.StoreBackend)
	}
	if cfg.RedisAddr != "cache:6380" {
		t.Errorf("RedisAddr = %q, want cache:6380", cfg.RedisAddr)
	}
	if cfg.WizardTTL != 90*time.Minute {
		t.Errorf("WizardTTL = %v, want 90m", cfg.WizardTTL)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("TokenTTL = %v, want default", cfg.TokenTTL)
	}
}

func TestLoadUnknownBackend(t *testing.T) {
	t.Setenv("STORE_BACKEND", "postgres")
	if got := Load().StoreBackend; got != BackendMongo {
		t.Errorf("StoreBackend = %q, want mongo", got)
	}
}
