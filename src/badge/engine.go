// Package badge composes "coding with" SVG badges: an icon box with dataset
// artwork (or a synthesized initial) beside two lines of text.
package badge

import (
	"strings"

	"github.com/sofmeright/codingbadge/src/icons"
)

// Engine composes badges against one icon dataset. It holds no mutable
// state and is safe for concurrent use.
type Engine struct {
	dataset icons.Dataset
}

// New creates a badge engine reading icons from ds.
func New(ds icons.Dataset) *Engine {
	return &Engine{dataset: ds}
}

// Generate renders req as a self-contained SVG document. It never fails:
// unknown icons render as a fallback glyph and all request text is escaped.
func (e *Engine) Generate(req Request) string {
	req = req.Normalize()
	res := icons.Resolve(e.dataset, req.IconName)

	line1, line2 := lines(req, res)

	pal := ResolvePalette(req.Theme, req.Colors)
	lay := computeLayout(line1, line2)
	colors := resolveIconColors(res, req, pal)
	ns := namespace(res.ID(), req)

	var icon strings.Builder
	if res.Geometry != nil {
		renderIcon(&icon, res.Geometry, colors, lay, ns)
	} else {
		// The glyph keeps the icon's own color; color modes only recolor artwork.
		renderFallback(&icon, res.Title(), First(req.Colors.IconColor, colors.base), lay, ns)
	}

	return renderSVG(document{
		layout:  lay,
		palette: pal,
		line1:   line1,
		line2:   line2,
		icon:    icon.String(),
	})
}

// Lines returns the two text lines Generate would draw for req.
func (e *Engine) Lines(req Request) (line1, line2 string) {
	return lines(req, icons.Resolve(e.dataset, req.IconName))
}

func lines(req Request, res icons.Resolved) (string, string) {
	return First(req.Line1, DefaultLine1), First(req.Line2, res.Record.FullTitle, res.Record.Title, req.IconName)
}

// Resolve exposes the icon lookup the engine performs, for callers that want
// to report what a name resolved to.
func (e *Engine) Resolve(name string) icons.Resolved {
	return icons.Resolve(e.dataset, name)
}
