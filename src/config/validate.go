package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
)

var (
	validThemes     = map[string]bool{"light": true, "dark": true}
	validColorModes = map[string]bool{"original": true, "primary": true, "contrast": true}
)

// Validate checks structural invariants of a loaded Config.
// Returns warnings (soft issues) and a hard error if the config is invalid.
// Unknown themes and color modes are only warnings: the request boundary
// coerces them to their defaults.
func Validate(cfg *Config) (warnings []string, err error) {
	var errs []string

	// ── Dataset ───────────────────────────────────────────────────────────

	if c := strings.TrimSpace(cfg.Dataset.VersionConstraint); c != "" {
		if _, err := semver.NewConstraint(c); err != nil {
			errs = append(errs, fmt.Sprintf("dataset.version_constraint: %q is not a valid semver constraint: %v", c, err))
		}
	}

	// ── Defaults ──────────────────────────────────────────────────────────

	warnings = append(warnings, enumWarnings("defaults", cfg.Defaults.Theme, cfg.Defaults.ColorMode)...)

	// ── Badges ────────────────────────────────────────────────────────────

	if cfg.Badges.Concurrency < 0 {
		errs = append(errs, fmt.Sprintf("badges.concurrency: must be >= 0, got %d", cfg.Badges.Concurrency))
	}

	names := make(map[string]bool)
	for i, item := range cfg.Badges.Items {
		ipath := fmt.Sprintf("badges.items[%d]", i)

		if item.Name == "" {
			errs = append(errs, fmt.Sprintf("%s: name is required", ipath))
		} else if names[item.Name] {
			errs = append(errs, fmt.Sprintf("%s: duplicate badge name %q", ipath, item.Name))
		} else {
			names[item.Name] = true
		}

		if strings.TrimSpace(item.Icon) == "" {
			errs = append(errs, fmt.Sprintf("%s: icon is required", ipath))
		}

		if item.Scale < 0 {
			errs = append(errs, fmt.Sprintf("%s: scale must be >= 0, got %g", ipath, item.Scale))
		}
		if item.Scale > 0 && !item.PNG {
			warnings = append(warnings, fmt.Sprintf("%s: scale is ignored unless png is enabled", ipath))
		}

		if item.Output != "" {
			errs = append(errs, validateOutputPath(item.Output, ipath)...)
		}

		warnings = append(warnings, enumWarnings(ipath, item.Theme, item.ColorMode)...)
	}

	if len(errs) > 0 {
		return warnings, fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return warnings, nil
}

func enumWarnings(path, theme, colorMode string) []string {
	var warnings []string
	if theme != "" && !validThemes[strings.ToLower(theme)] {
		warnings = append(warnings, fmt.Sprintf("%s.theme: unknown theme %q, light will be used", path, theme))
	}
	if colorMode != "" && !validColorModes[strings.ToLower(colorMode)] {
		warnings = append(warnings, fmt.Sprintf("%s.color_mode: unknown color mode %q, original will be used", path, colorMode))
	}
	return warnings
}

// validateOutputPath checks that an output path is safe.
func validateOutputPath(p string, itemPath string) []string {
	var errs []string

	// Absolute path
	if filepath.IsAbs(p) {
		errs = append(errs, fmt.Sprintf("%s: output path %q must be relative, not absolute", itemPath, p))
		return errs
	}

	// Tilde
	if strings.HasPrefix(p, "~") {
		errs = append(errs, fmt.Sprintf("%s: output path %q must not start with ~", itemPath, p))
		return errs
	}

	// Path traversal
	if strings.Contains(p, "..") {
		errs = append(errs, fmt.Sprintf("%s: output path %q must not contain '..'", itemPath, p))
		return errs
	}

	// Normalize: strip leading ./ then compare with filepath.Clean
	normalized := strings.TrimPrefix(p, "./")
	clean := filepath.Clean(normalized)
	if clean != normalized {
		errs = append(errs, fmt.Sprintf("%s: output path %q is not in canonical form (cleaned to %q)", itemPath, p, clean))
		return errs
	}

	ext := strings.ToLower(filepath.Ext(p))
	if ext != ".svg" {
		errs = append(errs, fmt.Sprintf("%s: output path %q must end in .svg", itemPath, p))
	}

	return errs
}
