package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the client-side configuration. Values are resolved in order of
// priority:
//  1. an explicit path passed by the caller;
//  2. the path in PLIE_CONFIG;
//  3. ./plie.yaml in the working directory;
//  4. environment variables only.
//
// Environment variables always override file values.
type Config struct {
	BaseURL     string        `yaml:"base_url" env:"PLIE_BASE_URL" env-default:"http://localhost:8000"`
	Timeout     time.Duration `yaml:"timeout" env:"PLIE_TIMEOUT" env-default:"30s"`
	SessionFile string        `yaml:"session_file" env:"PLIE_SESSION_FILE"`
	LogLevel    string        `yaml:"log_level" env:"PLIE_LOG_LEVEL" env-default:"warning"`
}

const defaultFile = "plie.yaml"

// Load resolves the configuration following the documented priority.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		path = os.Getenv("PLIE_CONFIG")
	}
	if path == "" {
		if _, err := os.Stat(defaultFile); err == nil {
			path = defaultFile
		}
	}
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		// env overrides file values
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("read env: %w", err)
		}
		return &cfg, nil
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	return &cfg, nil
}

// MustLoad is Load with panic on error, for main wiring.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}
