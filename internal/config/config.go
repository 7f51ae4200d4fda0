// Package config provides configuration management for the line pipeline.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrInvalidLogLevel   = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrInvalidLogFormat  = errors.New("logging.format must be 'text' or 'json'")
	ErrMissingHistoryDB  = errors.New("history.path is required when history is enabled")
	ErrInvalidReportMode = errors.New("report.format must be 'table' or 'plain'")
)

// Config represents the complete pipeline configuration. It is treated as
// read-only once returned by LoadConfig or DefaultConfig.
type Config struct {
	Pipeline PipelineConfig `yaml:"pipeline"`
	Features FeaturesConfig `yaml:"features"`
}

// PipelineConfig contains pipeline-specific settings.
type PipelineConfig struct {
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	Report  ReportConfig  `yaml:"report"`
	History HistoryConfig `yaml:"history"`
}

// OutputConfig defines result persistence behavior.
type OutputConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ReportConfig defines the line statistics report.
type ReportConfig struct {
	Enabled bool   `yaml:"enabled"`
	Format  string `yaml:"format"`
}

// HistoryConfig defines the run-history store.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// FeaturesConfig contains feature flags.
type FeaturesConfig struct {
	// Strict is parsed and carried but currently has no effect on behavior.
	Strict bool `yaml:"strict"`
}

// DefaultConfig returns the configuration used when no config file is given.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()

	return cfg
}

// LoadConfig loads configuration from a YAML file, applies defaults for
// unset fields, applies environment overrides, and validates the result.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg.applyDefaults()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Pipeline.Logging.Level == "" {
		c.Pipeline.Logging.Level = "info"
	}

	if c.Pipeline.Logging.Format == "" {
		c.Pipeline.Logging.Format = "text"
	}

	if c.Pipeline.Report.Format == "" {
		c.Pipeline.Report.Format = "table"
	}
}

// applyEnv overrides selected settings from the environment. A local .env
// file is honored when present.
func (c *Config) applyEnv() {
	_ = godotenv.Load()

	if v := os.Getenv("LINEPIPE_LOG_LEVEL"); v != "" {
		c.Pipeline.Logging.Level = v
	}

	if v := os.Getenv("LINEPIPE_HISTORY_PATH"); v != "" {
		c.Pipeline.History.Path = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Pipeline.Logging.Level] {
		return ErrInvalidLogLevel
	}

	if c.Pipeline.Logging.Format != "text" && c.Pipeline.Logging.Format != "json" {
		return ErrInvalidLogFormat
	}

	if c.Pipeline.Report.Format != "table" && c.Pipeline.Report.Format != "plain" {
		return ErrInvalidReportMode
	}

	if c.Pipeline.History.Enabled && c.Pipeline.History.Path == "" {
		return ErrMissingHistoryDB
	}

	return nil
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Level: %s, Report: %v, History: %v, Strict: %v}",
		c.Pipeline.Logging.Level,
		c.Pipeline.Report.Enabled,
		c.Pipeline.History.Enabled,
		c.Features.Strict,
	)
}
