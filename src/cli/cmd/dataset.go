package cmd

import (
	"errors"
	"fmt"

	"github.com/sofmeright/codingbadge/src/assets"
	"github.com/sofmeright/codingbadge/src/badge"
	"github.com/sofmeright/codingbadge/src/icons"
	"go.uber.org/zap"
)

// loadCatalog loads the configured dataset, or the embedded one, and checks
// its version. Dataset failures are reported before any badge is composed.
func loadCatalog() (*icons.Catalog, error) {
	var (
		c   *icons.Catalog
		err error
	)
	if cfg.Dataset.Dir != "" {
		c, err = icons.LoadDir(cfg.Dataset.Dir)
	} else {
		c, err = assets.LoadCatalog()
	}
	if err != nil {
		if errors.Is(err, icons.ErrDatasetUnavailable) {
			return nil, fmt.Errorf("cannot render badges without an icon dataset: %w", err)
		}
		return nil, err
	}
	if err := icons.CheckVersion(c, cfg.Dataset.VersionConstraint); err != nil {
		return nil, err
	}

	logger.Debug("dataset loaded",
		zap.String("dir", cfg.Dataset.Dir),
		zap.String("version", c.Version()),
		zap.Int("icons", c.Len()),
	)
	return c, nil
}

// buildBadgeEngine creates a badge engine over the configured dataset.
func buildBadgeEngine() (*badge.Engine, *icons.Catalog, error) {
	c, err := loadCatalog()
	if err != nil {
		return nil, nil, err
	}
	return badge.New(c), c, nil
}
