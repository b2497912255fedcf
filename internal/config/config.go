package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const defaultSessionSecret = "supersecretkey"

type Config struct {
	Addr string `yaml:"addr"`
	Env  string `yaml:"env"`
	// SessionSecret is part of the deployment contract but currently only
	// guarded by Validate: session tokens are random, not signed, so no
	// code derives anything from it yet.
	SessionSecret string        `yaml:"session_secret"`
	SessionTTL    time.Duration `yaml:"session_ttl"`
	APITimeout    time.Duration `yaml:"timeout"`
	DatabasePath  string        `yaml:"database_path"`
}

func LoadConfig(path string) (*Config, error) {
	apiTimeout := 15 * time.Second
	sessionTTL := 12 * time.Hour

	cfg := &Config{
		Addr:          getEnv("SITEDESK_ADDR", ":8080"),
		Env:           getEnv("SITEDESK_ENV", "development"),
		SessionSecret: getEnv("SITEDESK_SESSION_SECRET", defaultSessionSecret),
		SessionTTL:    sessionTTL,
		APITimeout:    apiTimeout,
		DatabasePath:  getEnv("SITEDESK_DATABASE_PATH", "sitedesk.db"),
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// IsProduction reports whether the server runs in production mode. The
// session cookie is marked Secure only in production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Validate rejects configurations that are unsafe outside development,
// currently just the default session secret.
func (c *Config) Validate() error {
	if c.SessionSecret == defaultSessionSecret && c.Env != "development" {
		return fmt.Errorf("default session secret is not allowed in %q environment", c.Env)
	}
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database_path must not be empty")
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
