package app

import (
	"errors"
	"fmt"
	"slices"

	"github.com/caarlos0/env/v11"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
	outputs    = []string{"text", "json"}
)

// Config holds all the necessary configuration for an App instance to run.
// Environment variables provide the defaults; CLI flags override them.
type Config struct {
	SheetPath string `env:"SHEETGO_SHEET"`

	LogLevel  string `env:"SHEETGO_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"SHEETGO_LOG_FORMAT" envDefault:"text"`
	Output    string `env:"SHEETGO_OUTPUT" envDefault:"text"`
	NoColor   bool   `env:"SHEETGO_NO_COLOR"`
}

// ConfigFromEnv reads a Config from environ. A nil environ reads the process
// environment.
func ConfigFromEnv(environ map[string]string) (Config, error) {
	var cfg Config
	opts := env.Options{Environment: environ}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("failed to read environment: %w", err)
	}
	return cfg, nil
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.SheetPath == "" {
		return nil, errors.New("SheetPath is a required configuration field and cannot be empty")
	}
	if !slices.Contains(logLevels, cfg.LogLevel) {
		return nil, fmt.Errorf("invalid log-level %q: must be one of %v", cfg.LogLevel, logLevels)
	}
	if !slices.Contains(logFormats, cfg.LogFormat) {
		return nil, fmt.Errorf("invalid log-format %q: must be one of %v", cfg.LogFormat, logFormats)
	}
	if !slices.Contains(outputs, cfg.Output) {
		return nil, fmt.Errorf("invalid output %q: must be one of %v", cfg.Output, outputs)
	}
	return &cfg, nil
}
