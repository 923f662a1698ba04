package badge

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sofmeright/codingbadge/src/icons"
)

// NeutralColor is the base color of icons the dataset knows nothing about.
const NeutralColor = "#6B7280"

// fallbackDarken is the per-channel delta for the fallback glyph gradient.
const fallbackDarken = -20

// AdjustColor adds delta to each RGB channel of a #RGB or #RRGGBB color,
// clamping to [0,255]. Values that are not hex colors are returned unchanged.
func AdjustColor(color string, delta int) string {
	hex := strings.TrimPrefix(strings.TrimSpace(color), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color
	}
	r := clampChannel(int(n>>16) + delta)
	g := clampChannel(int(n>>8&0xff) + delta)
	b := clampChannel(int(n&0xff) + delta)
	return fmt.Sprintf("#%06x", r<<16|g<<8|b)
}

func clampChannel(v int) int {
	return min(255, max(0, v))
}

// iconColors are the colors the icon renderers draw with.
type iconColors struct {
	base     string // record color, or NeutralColor
	primary  string // geometry primary override, or base
	override string // uniform fill for every path; empty keeps dataset paint
}

func resolveIconColors(res icons.Resolved, req Request, pal Palette) iconColors {
	c := iconColors{base: First(res.Record.Color, NeutralColor)}
	c.primary = c.base
	if res.Geometry != nil {
		c.primary = First(res.Geometry.ColorPrimary, c.base)
	}
	c.override = overrideColor(req, pal, c.primary)
	return c
}

// overrideColor applies the icon color policy: an explicit icon color wins,
// then the color mode decides.
func overrideColor(req Request, pal Palette, primary string) string {
	if req.Colors.IconColor != "" {
		return req.Colors.IconColor
	}
	switch req.ColorMode {
	case ColorPrimary:
		return primary
	case ColorContrast:
		return pal.ContrastIcon
	default:
		return ""
	}
}
