// Package config provides configuration loading for the taskpilot CLI.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the complete taskpilot configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Rules   RulesConfig   `yaml:"rules"`
}

// LoggingConfig configures the structured logger.
type LoggingConfig struct {
	// Level is a zerolog level name (default: "info")
	Level string `yaml:"level"`
	// Pretty switches from JSON to console output
	Pretty bool `yaml:"pretty"`
}

// RulesConfig configures where rule definitions are read from.
type RulesConfig struct {
	// Path is the default rules file used when a command gets none
	Path string `yaml:"path"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info"},
		Rules:   RulesConfig{Path: "rules.json"},
	}
}

// Load reads a YAML config file, falling back to defaults when the file
// does not exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}
