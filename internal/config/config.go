// Package config loads client configuration from defaults, an optional
// YAML config file and the environment, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultBaseURL is the production Holidaze API root.
const DefaultBaseURL = "https://v2.api.noroff.dev"

// Config holds everything the client needs to talk to the API and to
// persist its session.
type Config struct {
	BaseURL     string `yaml:"base_url" env:"HOLIDAZE_BASE_URL"`
	APIKey      string `yaml:"api_key" env:"HOLIDAZE_API_KEY"`
	SessionFile string `yaml:"session_file" env:"HOLIDAZE_SESSION_FILE"`
}

// Load reads configuration. A missing config file or .env file is fine;
// a config file that exists but cannot be parsed is an error.
func Load() (Config, error) {
	// .env is a development convenience only.
	_ = godotenv.Load()

	cfg := Config{BaseURL: DefaultBaseURL}

	if dir, err := os.UserConfigDir(); err == nil {
		path := filepath.Join(dir, "holidaze", "config.yaml")
		if err := loadFile(&cfg, path); err != nil {
			return cfg, err
		}
	}

	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return cfg, fmt.Errorf("decode environment: %w", err)
	}

	if cfg.SessionFile == "" {
		cfg.SessionFile = defaultSessionFile()
	}
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".holidaze-session.json"
	}
	return filepath.Join(dir, "holidaze", "session.json")
}
