package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const defaultConfigFile = ".codingbadge.yml"

// Config is the top-level codingbadge configuration.
type Config struct {
	Dataset  DatasetConfig  `yaml:"dataset" toml:"dataset"`
	Defaults DefaultsConfig `yaml:"defaults" toml:"defaults"`
	Badges   BadgesConfig   `yaml:"badges" toml:"badges"`
}

// DatasetConfig locates the icon dataset.
type DatasetConfig struct {
	Dir               string `yaml:"dir" toml:"dir"`                               // empty = embedded dataset
	VersionConstraint string `yaml:"version_constraint" toml:"version_constraint"` // semver constraint, e.g. ">= 1.70"
}

// DefaultsConfig holds request defaults applied before input coercion.
type DefaultsConfig struct {
	Theme     string `yaml:"theme" toml:"theme"`
	ColorMode string `yaml:"color_mode" toml:"color_mode"`
	Line1     string `yaml:"line1" toml:"line1"`
}

// Load reads configuration from a YAML or TOML file, then applies
// environment overrides.
// If path is empty, it tries the default file.
// Returns sensible defaults if the file doesn't exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	cfg := defaults()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := decode(path, data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// no config file; defaults only
	default:
		return nil, err
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return toml.Unmarshal(data, cfg)
	}
	return yaml.Unmarshal(data, cfg)
}

func defaults() *Config {
	return &Config{
		Defaults: DefaultDefaultsConfig(),
		Badges:   DefaultBadgesConfig(),
	}
}

// DefaultDefaultsConfig returns the stock request defaults.
func DefaultDefaultsConfig() DefaultsConfig {
	return DefaultsConfig{
		Theme:     "light",
		ColorMode: "original",
		Line1:     "coding with",
	}
}
