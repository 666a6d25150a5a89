package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds process configuration, loaded from environment variables.
type Config struct {
	Port      string
	RedisAddr string
	RedisDB   int

	// evaluation provider: "mock" or "gemini"
	Provider string

	AuditEnabled bool
	AuditDriver  string // "sqlite" or "postgres"
	AuditDSN     string

	ExportEnabled  bool
	ExportSchedule string
	ExportDir      string

	DashboardRefreshInterval time.Duration
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	config := &Config{
		Port:                     getEnvOrDefault("PORT", "8080"),
		RedisAddr:                getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisDB:                  getEnvIntOrDefault("REDIS_DB", 0),
		Provider:                 getEnvOrDefault("EVALUATOR_PROVIDER", "mock"),
		AuditEnabled:             getEnvBoolOrDefault("AUDIT_ENABLED", true),
		AuditDriver:              getEnvOrDefault("AUDIT_DB_DRIVER", "sqlite"),
		AuditDSN:                 getEnvOrDefault("AUDIT_DB_DSN", "prepmate_audit.db"),
		ExportEnabled:            getEnvBoolOrDefault("EXPORT_ENABLED", false),
		ExportSchedule:           getEnvOrDefault("EXPORT_SCHEDULE", "0 2 * * *"),
		ExportDir:                getEnvOrDefault("EXPORT_DIR", "./exports"),
		DashboardRefreshInterval: getEnvDurationOrDefault("DASHBOARD_REFRESH_INTERVAL", 5*time.Minute),
	}
	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Provider != "mock" && config.Provider != "gemini" {
		return errors.New("unsupported evaluator provider: " + config.Provider + ". Currently supported: mock, gemini")
	}
	if config.AuditEnabled && config.AuditDriver != "sqlite" && config.AuditDriver != "postgres" {
		return errors.New("unsupported audit database driver: " + config.AuditDriver + ". Currently supported: sqlite, postgres")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
