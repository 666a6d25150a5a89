package config

import (
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("EVALUATOR_PROVIDER", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("PORT", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.Provider != "mock" {
		t.Fatalf("expected provider mock, got %s", cfg.Provider)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Fatalf("expected default redis addr, got %s", cfg.RedisAddr)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.DashboardRefreshInterval != 5*time.Minute {
		t.Fatalf("expected 5m refresh interval, got %s", cfg.DashboardRefreshInterval)
	}
}

func TestLoadConfig_UnsupportedProvider(t *testing.T) {
	t.Setenv("EVALUATOR_PROVIDER", "unknown")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for unsupported provider")
	}
}

func TestLoadConfig_UnsupportedAuditDriver(t *testing.T) {
	t.Setenv("EVALUATOR_PROVIDER", "mock")
	t.Setenv("AUDIT_ENABLED", "true")
	t.Setenv("AUDIT_DB_DRIVER", "mysql")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for unsupported audit driver")
	}
}

func TestLoadConfig_AuditDriverIgnoredWhenDisabled(t *testing.T) {
	t.Setenv("EVALUATOR_PROVIDER", "mock")
	t.Setenv("AUDIT_ENABLED", "false")
	t.Setenv("AUDIT_DB_DRIVER", "mysql")

	if _, err := LoadConfig(); err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
}

func TestGetEnvDurationOrDefault(t *testing.T) {
	t.Setenv("UNIT_TEST_DURATION", "30s")
	if got := getEnvDurationOrDefault("UNIT_TEST_DURATION", time.Minute); got != 30*time.Second {
		t.Fatalf("expected 30s, got %s", got)
	}

	t.Setenv("UNIT_TEST_DURATION", "bogus")
	if got := getEnvDurationOrDefault("UNIT_TEST_DURATION", time.Minute); got != time.Minute {
		t.Fatalf("expected fallback, got %s", got)
	}
}
