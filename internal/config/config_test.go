package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sitedesk/sitedesk/internal/config"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.Addr != ":8080" {
		t.Fatalf("unexpected default addr: %q", cfg.Addr)
	}
	if cfg.Env != "development" {
		t.Fatalf("unexpected default env: %q", cfg.Env)
	}
	if cfg.DatabasePath != "sitedesk.db" {
		t.Fatalf("unexpected default database path: %q", cfg.DatabasePath)
	}
	if cfg.SessionTTL != 12*time.Hour {
		t.Fatalf("unexpected default session ttl: %v", cfg.SessionTTL)
	}
	if cfg.IsProduction() {
		t.Fatalf("development config reported as production")
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	os.Setenv("SITEDESK_ADDR", ":9090")
	os.Setenv("SITEDESK_DATABASE_PATH", "/tmp/records.db")
	defer os.Unsetenv("SITEDESK_ADDR")
	defer os.Unsetenv("SITEDESK_DATABASE_PATH")

	cfg, err := config.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Addr != ":9090" {
		t.Fatalf("env addr not applied: %q", cfg.Addr)
	}
	if cfg.DatabasePath != "/tmp/records.db" {
		t.Fatalf("env database path not applied: %q", cfg.DatabasePath)
	}
}

func TestLoadConfig_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("addr: \":7070\"\nenv: production\nsession_secret: file-secret\ndatabase_path: office.db\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Addr != ":7070" {
		t.Fatalf("yaml addr not applied: %q", cfg.Addr)
	}
	if !cfg.IsProduction() {
		t.Fatalf("yaml env not applied")
	}
	if cfg.SessionSecret != "file-secret" {
		t.Fatalf("yaml session secret not applied: %q", cfg.SessionSecret)
	}
	if cfg.SessionTTL != 12*time.Hour {
		t.Fatalf("session ttl default lost on file load: %v", cfg.SessionTTL)
	}
	if cfg.DatabasePath != "office.db" {
		t.Fatalf("yaml database path not applied: %q", cfg.DatabasePath)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := config.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestValidate_DefaultSecret_FailsOutsideDevelopment(t *testing.T) {
	cfg := &config.Config{
		Addr:          ":8080",
		Env:           "production",
		SessionSecret: "supersecretkey",
		SessionTTL:    time.Hour,
		DatabasePath:  "sitedesk.db",
	}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected Validate to fail for default secret in production")
	}
}

func TestValidate_DefaultSecret_AllowsDevelopment(t *testing.T) {
	cfg := &config.Config{
		Addr:          ":8080",
		Env:           "development",
		SessionSecret: "supersecretkey",
		SessionTTL:    time.Hour,
		DatabasePath:  "sitedesk.db",
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected Validate to succeed in development, got: %v", err)
	}
}

func TestValidate_EmptyFields(t *testing.T) {
	cfg := &config.Config{Env: "development", SessionSecret: "s"}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected Validate to fail for empty addr")
	}
}
