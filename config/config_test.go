package config_test

import (
	"testing"

	"github.com/ttv9934/device-management-app/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	keys := []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"PORT", "GIN_MODE", "STATIC_DIR",
	}
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := config.Load()
	if cfg.DBHost != "localhost" || cfg.DBPort != "5432" || cfg.DBName != "device_management" {
		t.Fatalf("unexpected database defaults: %+v", cfg)
	}
	if cfg.Port != "5000" {
		t.Fatalf("expected default port 5000, got %q", cfg.Port)
	}
	if cfg.GinMode != "release" {
		t.Fatalf("expected default gin mode release, got %q", cfg.GinMode)
	}
	if cfg.StaticDir != "./public" {
		t.Fatalf("expected default static dir ./public, got %q", cfg.StaticDir)
	}
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "inventory")
	t.Setenv("PORT", "9090")

	cfg := config.Load()
	if cfg.DBHost != "db.internal" || cfg.DBName != "inventory" {
		t.Fatalf("environment not applied: %+v", cfg)
	}
	if cfg.Port != "9090" {
		t.Fatalf("expected port 9090, got %q", cfg.Port)
	}
}

func TestDSN(t *testing.T) {
	clearEnv(t)

	got := config.Load().DSN()
	want := "host=localhost port=5432 user=postgres password=postgres dbname=device_management sslmode=disable"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
