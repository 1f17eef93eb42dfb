package config

import (
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("PORT")
	os.Unsetenv("DB_PATH")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8000" {
		t.Errorf("expected default port 8000, got %s", cfg.Port)
	}

	if cfg.DBPath != "hastatakip.db" {
		t.Errorf("expected default db path hastatakip.db, got %s", cfg.DBPath)
	}
}

func TestLoad_WithDBPath(t *testing.T) {
	os.Setenv("DB_PATH", "/tmp/ward-test.db")
	defer os.Unsetenv("DB_PATH")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DBPath != "/tmp/ward-test.db" {
		t.Errorf("expected DB_PATH to be set, got %s", cfg.DBPath)
	}
}

func TestConfig_IsDev(t *testing.T) {
	c := &Config{Env: "development"}
	if !c.IsDev() {
		t.Error("expected IsDev() to return true for development")
	}

	c.Env = "production"
	if c.IsDev() {
		t.Error("expected IsDev() to return false for production")
	}
}
