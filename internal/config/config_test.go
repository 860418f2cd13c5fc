package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	// keep the test independent of any .env on disk
	t.Setenv("SERVER_PORT", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("ADAPTER_TIMEOUT", "")
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("DEFAULT_SOURCE_LANG", "")
	t.Setenv("DEFAULT_TARGET_LANG", "")
	t.Setenv("CSRF_SECRET", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Server.Port)
	}
	if !cfg.IsDevelopment() {
		t.Errorf("environment = %q, want development", cfg.Server.Environment)
	}
	if cfg.Analysis.AdapterTimeout != 30*time.Second {
		t.Errorf("adapter timeout = %v, want 30s", cfg.Analysis.AdapterTimeout)
	}
	if cfg.Analysis.DefaultSourceLang != "en" || cfg.Analysis.DefaultTargetLang != "hi" {
		t.Errorf("default langs = %q -> %q, want en -> hi", cfg.Analysis.DefaultSourceLang, cfg.Analysis.DefaultTargetLang)
	}
	if cfg.APIs.GeminiModel != "gemini-pro" {
		t.Errorf("gemini model = %q, want gemini-pro", cfg.APIs.GeminiModel)
	}
}

func TestLoadRejectsBadEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "prod")

	if _, err := Load(); err == nil {
		t.Error("APP_ENV=prod must fail validation")
	}
}

func TestLoadRejectsShortCSRFSecret(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("CSRF_SECRET", "too-short")

	if _, err := Load(); err == nil {
		t.Error("short CSRF_SECRET must fail validation")
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("CSRF_SECRET", "")
	t.Setenv("ADAPTER_TIMEOUT", "a while")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Analysis.AdapterTimeout != 30*time.Second {
		t.Errorf("adapter timeout = %v, want default 30s", cfg.Analysis.AdapterTimeout)
	}
}
