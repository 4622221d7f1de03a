// Package config loads runtime settings from the environment.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds every runtime setting. All values come from FITTRACK_*
// environment variables with development-friendly defaults.
type Config struct {
	Addr   string `env:"FITTRACK_ADDR" envDefault:":8080"`
	Env    string `env:"FITTRACK_ENV" envDefault:"development"`
	DBPath string `env:"FITTRACK_DB_PATH" envDefault:"fittrack.db"`

	// CSRFKey is a hex-encoded 32-byte secret. Required in production;
	// a random per-startup key is generated in development.
	CSRFKey string `env:"FITTRACK_CSRF_KEY"`

	// Bootstrap admin, seeded only when the users table is empty.
	AdminUsername string `env:"FITTRACK_ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword string `env:"FITTRACK_ADMIN_PASSWORD" envDefault:"admin123"`

	// Email delivery. Without a Resend key the app logs instead of sending.
	ResendKey string `env:"FITTRACK_RESEND_KEY"`
	EmailFrom string `env:"FITTRACK_EMAIL_FROM" envDefault:"FitTrack <noreply@fittrack.example>"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// IsProduction reports whether the app runs with production hardening.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// CSRFKeyBytes decodes the CSRF secret.
// POST: Returns a 32-byte key; in development a random key is generated when
// none is configured (sessions won't survive a restart)
func (c Config) CSRFKeyBytes() ([]byte, error) {
	if c.CSRFKey != "" {
		key, err := hex.DecodeString(c.CSRFKey)
		if err != nil || len(key) != 32 {
			return nil, fmt.Errorf("FITTRACK_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key, nil
	}
	if c.IsProduction() {
		return nil, fmt.Errorf("FITTRACK_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate CSRF key: %w", err)
	}
	return key, nil
}
