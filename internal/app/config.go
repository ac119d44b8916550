package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Paths      []string // config files or directories, loaded in order
	ResultsDir string

	DatabaseURL     string // optional; registers the shared `db` object
	NoBuiltins      bool
	LogFormat       string
	LogLevel        string
	HealthcheckPort int
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.Paths) == 0 {
		return nil, errors.New("at least one configuration file or directory is required")
	}
	if cfg.ResultsDir == "" {
		cfg.ResultsDir = "./logs"
	}
	if cfg.HealthcheckPort < 0 || cfg.HealthcheckPort > 65535 {
		return nil, fmt.Errorf("healthcheck port out of range: %d", cfg.HealthcheckPort)
	}

	return &cfg, nil
}
