package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/psds-microservice/country-seeder/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD",
		"DB_DATABASE", "DB_NAME", "DB_SSLMODE",
		"LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadConfigFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg := config.LoadConfigFromEnv()

	if cfg.Database.Host != "localhost" {
		t.Errorf("Host = %q, want %q", cfg.Database.Host, "localhost")
	}
	if cfg.Database.Port != 5432 {
		t.Errorf("Port = %d, want 5432", cfg.Database.Port)
	}
	if cfg.Database.Name != "travelguard" {
		t.Errorf("Name = %q, want %q", cfg.Database.Name, "travelguard")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Level = %q, want %q", cfg.Logging.Level, "info")
	}
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6432")
	t.Setenv("DB_NAME", "countries")
	t.Setenv("DB_SSLMODE", "require")

	cfg := config.LoadConfigFromEnv()

	if cfg.Database.Host != "db.internal" {
		t.Errorf("Host = %q, want %q", cfg.Database.Host, "db.internal")
	}
	if cfg.Database.Port != 6432 {
		t.Errorf("Port = %d, want 6432", cfg.Database.Port)
	}
	if cfg.Database.Name != "countries" {
		t.Errorf("Name = %q, want %q", cfg.Database.Name, "countries")
	}
	if cfg.Database.SSLMode != "require" {
		t.Errorf("SSLMode = %q, want %q", cfg.Database.SSLMode, "require")
	}
}

func TestLoadConfigYAML(t *testing.T) {
	clearEnv(t)
	// env переопределяет YAML
	t.Setenv("DB_USER", "seeder_ci")

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`database:
  host: pg.local
  port: 5433
  user: seeder
  password: secret
  name: travelguard
  ssl_mode: verify-full
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Database.Host != "pg.local" {
		t.Errorf("Host = %q, want %q", cfg.Database.Host, "pg.local")
	}
	if cfg.Database.Port != 5433 {
		t.Errorf("Port = %d, want 5433", cfg.Database.Port)
	}
	if cfg.Database.User != "seeder_ci" {
		t.Errorf("User = %q, want env override %q", cfg.Database.User, "seeder_ci")
	}
	if cfg.Database.SSLMode != "verify-full" {
		t.Errorf("SSLMode = %q, want %q", cfg.Database.SSLMode, "verify-full")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := config.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Errorf("LoadConfig on a missing file succeeded, want error")
	}
}

func TestDSN(t *testing.T) {
	cfg := config.GetDefaultConfig()

	want := "host=localhost port=5432 user=postgres password=postgres dbname=travelguard sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}
