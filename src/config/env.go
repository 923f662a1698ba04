package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "CODINGBADGE_"

// envOverrides are the settings that may come from the environment.
type envOverrides struct {
	DatasetDir     string `env:"DATASET_DIR"`
	DatasetVersion string `env:"DATASET_VERSION"`
	Theme          string `env:"THEME"`
	ColorMode      string `env:"COLOR_MODE"`
	Line1          string `env:"LINE1"`
	Concurrency    int    `env:"CONCURRENCY"`
}

// ParseEnv loads prefixed environment variables into target.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// applyEnv overlays set environment variables onto cfg.
func applyEnv(cfg *Config) error {
	var o envOverrides
	if err := ParseEnv(&o); err != nil {
		return err
	}
	if o.DatasetDir != "" {
		cfg.Dataset.Dir = o.DatasetDir
	}
	if o.DatasetVersion != "" {
		cfg.Dataset.VersionConstraint = o.DatasetVersion
	}
	if o.Theme != "" {
		cfg.Defaults.Theme = o.Theme
	}
	if o.ColorMode != "" {
		cfg.Defaults.ColorMode = o.ColorMode
	}
	if o.Line1 != "" {
		cfg.Defaults.Line1 = o.Line1
	}
	if o.Concurrency != 0 {
		cfg.Badges.Concurrency = o.Concurrency
	}
	return nil
}
