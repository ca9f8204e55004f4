package app

import (
	"errors"

	"github.com/vk/bagwalk/internal/config"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	InputPath   string   // a single rules file, solved with the flags below
	ConfigPaths []string // hcl/yaml files or directories declaring puzzles

	Target      string
	Workers     int
	CheckCycles bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputPath == "" && len(cfg.ConfigPaths) == 0 {
		return nil, errors.New("either an input path or a config path is required")
	}
	if cfg.InputPath != "" && len(cfg.ConfigPaths) > 0 {
		return nil, errors.New("an input path and a config path cannot be combined")
	}
	if cfg.Workers < 0 {
		return nil, errors.New("workers must not be negative")
	}
	if cfg.Target == "" {
		cfg.Target = config.DefaultTarget
	}

	return &cfg, nil
}
