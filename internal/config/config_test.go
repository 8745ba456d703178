package config

import (
	"testing"

	"budgetbook/internal/logger"
)

func init() {
	logger.Init("test")
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("ENV", "")
		t.Setenv("API_KEY", "")
		t.Setenv("SEED_DEFAULTS", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != "8080" {
			t.Errorf("expected port 8080, got %q", cfg.Port)
		}
		if cfg.Env != "development" || cfg.IsProduction() {
			t.Errorf("expected development, got %q", cfg.Env)
		}
		if cfg.APIKey != "" {
			t.Errorf("expected no API key, got %q", cfg.APIKey)
		}
		if !cfg.SeedDefaults {
			t.Error("expected seeding to default on")
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("ENV", "production")
		t.Setenv("API_KEY", "s3cret")
		t.Setenv("SEED_DEFAULTS", "false")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != "9090" || cfg.APIKey != "s3cret" || cfg.SeedDefaults || !cfg.IsProduction() {
			t.Errorf("unexpected config %+v", cfg)
		}
		if Get() != cfg {
			t.Error("expected Get to return the loaded config")
		}
	})

	t.Run("invalid seed flag falls back to true", func(t *testing.T) {
		t.Setenv("SEED_DEFAULTS", "sometimes")

		cfg, _ := Load()
		if !cfg.SeedDefaults {
			t.Error("expected fallback to true")
		}
	})

	t.Run("invalid port", func(t *testing.T) {
		for _, port := range []string{"http", "0", "70000"} {
			t.Setenv("PORT", port)
			if _, err := Load(); err == nil {
				t.Errorf("expected error for PORT %q", port)
			}
		}
	})
}
