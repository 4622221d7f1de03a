package config

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want %q", cfg.Addr, ":8080")
	}
	if cfg.DBPath != "fittrack.db" {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, "fittrack.db")
	}
	if cfg.IsProduction() {
		t.Error("default environment should not be production")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("FITTRACK_ADDR", ":9090")
	t.Setenv("FITTRACK_ENV", "production")
	t.Setenv("FITTRACK_DB_PATH", "/var/lib/fittrack.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Addr != ":9090" {
		t.Errorf("Addr = %q, want %q", cfg.Addr, ":9090")
	}
	if !cfg.IsProduction() {
		t.Error("IsProduction() = false, want true")
	}
	if cfg.DBPath != "/var/lib/fittrack.db" {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, "/var/lib/fittrack.db")
	}
}

func TestCSRFKeyBytes(t *testing.T) {
	want := bytes.Repeat([]byte{0xab}, 32)

	t.Run("configured key decodes", func(t *testing.T) {
		cfg := Config{CSRFKey: hex.EncodeToString(want)}
		key, err := cfg.CSRFKeyBytes()
		if err != nil {
			t.Fatalf("CSRFKeyBytes failed: %v", err)
		}
		if !bytes.Equal(key, want) {
			t.Error("decoded key does not match configured value")
		}
	})

	t.Run("malformed key rejected", func(t *testing.T) {
		cfg := Config{CSRFKey: "not-hex"}
		if _, err := cfg.CSRFKeyBytes(); err == nil {
			t.Error("expected error for malformed key")
		}
	})

	t.Run("short key rejected", func(t *testing.T) {
		cfg := Config{CSRFKey: "abcd"}
		if _, err := cfg.CSRFKeyBytes(); err == nil {
			t.Error("expected error for short key")
		}
	})

	t.Run("missing key required in production", func(t *testing.T) {
		cfg := Config{Env: "production"}
		if _, err := cfg.CSRFKeyBytes(); err == nil {
			t.Error("expected error for missing key in production")
		}
	})

	t.Run("missing key generated in development", func(t *testing.T) {
		cfg := Config{Env: "development"}
		key, err := cfg.CSRFKeyBytes()
		if err != nil {
			t.Fatalf("CSRFKeyBytes failed: %v", err)
		}
		if len(key) != 32 {
			t.Errorf("generated key length = %d, want 32", len(key))
		}
	})
}
