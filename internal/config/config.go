package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v6"
	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// Config holds the process configuration. Values resolve in order: built-in
// defaults, then the optional YAML file, then environment variables. Tests
// bypass Load and construct a Config directly.
type Config struct {
	Addr         string `env:"ADDR" yaml:"addr"`
	DatabasePath string `env:"DATABASE_PATH" yaml:"database_path"`
	SecretKey    string `env:"SECRET_KEY" yaml:"secret_key"`
	LogLevel     string `env:"LOG_LEVEL" yaml:"log_level"`
}

// DefaultConfigFile is consulted when CONFIG_FILE is not set. A missing file
// is not an error.
const DefaultConfigFile = "config.yaml"

func Load() (*Config, error) {
	_ = godotenv.Load(".env.local")

	cfg := &Config{
		Addr:         ":5050",
		DatabasePath: "plume.sqlite",
		SecretKey:    "dev",
		LogLevel:     "info",
	}

	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		path = DefaultConfigFile
	}
	if raw, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	return cfg, nil
}
