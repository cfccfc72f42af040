package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/plumeworks/plume-backend/internal/config"
)

// pointAtMissingFile keeps Load away from any real config.yaml in the
// working directory.
func pointAtMissingFile(t *testing.T) {
	t.Helper()
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))
}

func TestLoadDefaults(t *testing.T) {
	pointAtMissingFile(t)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Addr != ":5050" {
		t.Errorf("expected default addr :5050, got %q", cfg.Addr)
	}
	if cfg.DatabasePath != "plume.sqlite" {
		t.Errorf("expected default database path, got %q", cfg.DatabasePath)
	}
	if cfg.SecretKey != "dev" {
		t.Errorf("expected default secret key, got %q", cfg.SecretKey)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level, got %q", cfg.LogLevel)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "addr: \":9999\"\nsecret_key: from-yaml\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Addr != ":9999" {
		t.Errorf("expected addr from file, got %q", cfg.Addr)
	}
	if cfg.SecretKey != "from-yaml" {
		t.Errorf("expected secret key from file, got %q", cfg.SecretKey)
	}
	// Untouched fields keep their defaults.
	if cfg.DatabasePath != "plume.sqlite" {
		t.Errorf("expected default database path, got %q", cfg.DatabasePath)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("secret_key: from-yaml\n"), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("SECRET_KEY", "from-env")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.SecretKey != "from-env" {
		t.Errorf("expected environment to win, got %q", cfg.SecretKey)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("addr: [unclosed\n"), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)

	if _, err := config.Load(); err == nil {
		t.Fatal("expected Load to fail on malformed YAML")
	}
}
