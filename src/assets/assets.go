// Package assets provides the icon dataset embedded in the binary.
package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/sofmeright/codingbadge/src/icons"
)

//go:embed dataset/*.json
var raw embed.FS

// Dataset returns the embedded dataset files rooted at the dataset directory.
func Dataset() fs.FS {
	sub, err := fs.Sub(raw, "dataset")
	if err != nil {
		// embed paths are fixed at compile time
		panic(err)
	}
	return sub
}

// LoadCatalog decodes the embedded dataset.
func LoadCatalog() (*icons.Catalog, error) {
	c, err := icons.LoadFS(Dataset())
	if err != nil {
		return nil, fmt.Errorf("loading embedded dataset: %w", err)
	}
	return c, nil
}
