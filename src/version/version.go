// Package version carries build metadata injected with -ldflags.
package version

import (
	"fmt"

	"github.com/sofmeright/codingbadge/src/assets"
)

// These variables are injected at build time via -ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// String returns a human-readable version string including the version of
// the embedded icon dataset.
func String() string {
	dataset := "unavailable"
	if c, err := assets.LoadCatalog(); err == nil && c.Version() != "" {
		dataset = c.Version()
	}
	return fmt.Sprintf("codingbadge %s (%s, %s) icons %s", Version, Commit, BuildDate, dataset)
}
