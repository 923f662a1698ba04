package config

import (
	"path/filepath"
	"strings"

	"github.com/sofmeright/codingbadge/src/badge"
)

// BadgesConfig holds batch badge generation configuration.
type BadgesConfig struct {
	OutputDir   string            `yaml:"output_dir" toml:"output_dir"`   // default: .codingbadge/badges
	Concurrency int               `yaml:"concurrency" toml:"concurrency"` // 0 = number of CPUs
	Items       []BadgeItemConfig `yaml:"items" toml:"items"`
}

// BadgeItemConfig defines a single badge to generate.
type BadgeItemConfig struct {
	Name      string             `yaml:"name" toml:"name"`             // unique identifier
	Icon      string             `yaml:"icon" toml:"icon"`             // icon id or title
	Line1     string             `yaml:"line1" toml:"line1"`           // upper text (default: defaults.line1)
	Line2     string             `yaml:"line2" toml:"line2"`           // lower text (default: icon title)
	Theme     string             `yaml:"theme" toml:"theme"`           // light or dark
	ColorMode string             `yaml:"color_mode" toml:"color_mode"` // original, primary or contrast
	Colors    badge.CustomColors `yaml:"colors" toml:"colors"`
	Output    string             `yaml:"output" toml:"output"` // file path (default: <output_dir>/<name>.svg)
	PNG       bool               `yaml:"png" toml:"png"`       // also write a PNG next to the SVG
	Scale     float64            `yaml:"scale" toml:"scale"`   // PNG scale factor (default: 1)
}

// DefaultBadgesConfig returns sensible defaults for badge generation.
func DefaultBadgesConfig() BadgesConfig {
	return BadgesConfig{
		OutputDir: ".codingbadge/badges",
	}
}

// OutputPath returns the SVG path for the item.
func (i BadgeItemConfig) OutputPath(outputDir string) string {
	if i.Output != "" {
		return i.Output
	}
	if outputDir == "" {
		outputDir = DefaultBadgesConfig().OutputDir
	}
	return filepath.Join(outputDir, i.Name+".svg")
}

// PNGPath returns the PNG path that sits next to the SVG output.
func (i BadgeItemConfig) PNGPath(outputDir string) string {
	p := i.OutputPath(outputDir)
	return strings.TrimSuffix(p, filepath.Ext(p)) + ".png"
}

// Request builds the render request for the item, falling back to d for
// fields the item leaves empty.
func (i BadgeItemConfig) Request(d DefaultsConfig) badge.Request {
	return badge.Request{
		IconName:  i.Icon,
		Line1:     badge.First(i.Line1, d.Line1),
		Line2:     i.Line2,
		Theme:     badge.ParseTheme(badge.First(i.Theme, d.Theme)),
		ColorMode: badge.ParseColorMode(badge.First(i.ColorMode, d.ColorMode)),
		Colors:    i.Colors,
	}
}
