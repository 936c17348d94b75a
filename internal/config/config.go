package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file picked up from the working directory when --config is not given.
const DefaultPath = ".turing.yaml"

// Config holds the defaults for the turing command flags.
// Flags set on the command line override values from the file.
type Config struct {
	MaxSteps    int    `yaml:"max_steps" json:"max_steps"`
	Workers     int    `yaml:"workers" json:"workers"`
	Debug       bool   `yaml:"debug" json:"debug"`
	MetricsAddr string `yaml:"metrics_addr" json:"metrics_addr"`
	RedisAddr   string `yaml:"redis_addr" json:"redis_addr"`
	RedisTTL    string `yaml:"redis_ttl" json:"redis_ttl"`
	ResultsDir  string `yaml:"results_dir" json:"results_dir"`
}

// Load reads a config file. The format is chosen by extension: .json is
// decoded as JSON, anything else as YAML.
func Load(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if cfg.MaxSteps < 0 {
		return cfg, fmt.Errorf("max_steps must not be negative, got %d", cfg.MaxSteps)
	}
	if cfg.Workers < 0 {
		return cfg, fmt.Errorf("workers must not be negative, got %d", cfg.Workers)
	}
	return cfg, nil
}

// LoadOptional is Load, except that a missing file yields an empty Config.
func LoadOptional(path string) (Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Config{}, nil
	}
	return cfg, err
}
