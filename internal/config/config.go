package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server config
	Server ServerConfig

	// database config (optional, enables analysis history)
	Database DatabaseConfig

	// external API config
	APIs APIConfig

	// fan-out behavior
	Analysis AnalysisConfig

	// CSRF config for the browser-facing pages
	Security SecurityConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port         string
	Environment  string // development, staging, production
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// DatabaseConfig holds PostgreSQL connection settings.
// An empty URL means the service runs without persistence.
type DatabaseConfig struct {
	URL string
}

// APIConfig holds external API configuration.
type APIConfig struct {
	RapidAPIKey  string
	GeminiAPIKey string
	GeminiModel  string
}

// AnalysisConfig holds fan-out orchestration settings.
type AnalysisConfig struct {
	AdapterTimeout    time.Duration
	DefaultSourceLang string
	DefaultTargetLang string
}

// SecurityConfig holds security-related settings.
type SecurityConfig struct {
	CSRFSecret    string
	SecureCookies bool // true in production
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	// This is useful for local development but not required in production
	// where env vars are typically set by the orchestration platform
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.Server = ServerConfig{
		Port:         getEnvOrDefault("SERVER_PORT", "8080"),
		Environment:  getEnvOrDefault("APP_ENV", "development"),
		ReadTimeout:  getDurationOrDefault("SERVER_READ_TIMEOUT", 15*time.Second),
		WriteTimeout: getDurationOrDefault("SERVER_WRITE_TIMEOUT", 60*time.Second),
		IdleTimeout:  getDurationOrDefault("SERVER_IDLE_TIMEOUT", 60*time.Second),
	}

	cfg.Database = DatabaseConfig{
		URL: os.Getenv("DATABASE_URL"),
	}

	// Vendor keys are optional: a missing key leaves that capability
	// unconfigured and the service starts degraded rather than refusing
	// to start.
	cfg.APIs = APIConfig{
		RapidAPIKey:  os.Getenv("RAPID_API_KEY"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnvOrDefault("GEMINI_MODEL", "gemini-pro"),
	}

	cfg.Analysis = AnalysisConfig{
		AdapterTimeout:    getDurationOrDefault("ADAPTER_TIMEOUT", 30*time.Second),
		DefaultSourceLang: getEnvOrDefault("DEFAULT_SOURCE_LANG", "en"),
		DefaultTargetLang: getEnvOrDefault("DEFAULT_TARGET_LANG", "hi"),
	}

	cfg.Security = SecurityConfig{
		CSRFSecret:    os.Getenv("CSRF_SECRET"),
		SecureCookies: cfg.Server.Environment == "production",
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks that all required configuration is present and valid.
// Better to fail at startup than when a bad value is first used.
func (c *Config) validate() error {
	var errs []error

	if c.Analysis.AdapterTimeout <= 0 {
		errs = append(errs, errors.New("ADAPTER_TIMEOUT must be positive"))
	}

	if c.Security.CSRFSecret != "" && len(c.Security.CSRFSecret) < 32 {
		errs = append(errs, errors.New("CSRF_SECRET must be at least 32 characters"))
	}

	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
	}
	if !validEnvs[c.Server.Environment] {
		errs = append(errs, fmt.Errorf("APP_ENV must be one of: development, staging, production (got: %s)", c.Server.Environment))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n%w", errors.Join(errs...))
	}

	return nil
}

// getEnvOrDefault returns the .env value or a default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s: %v, using default", key, err)
		return defaultValue
	}
	return duration
}

// MustLoad is like Load but panics on error.
// Used in main() where its required to fail fast
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}
	return cfg
}
