package badge

import (
	"errors"
	"net/url"
	"strings"
)

// Theme selects the base palette.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ColorMode is the policy for overriding per-path icon colors.
type ColorMode string

const (
	// ColorOriginal keeps dataset colors and gradients.
	ColorOriginal ColorMode = "original"
	// ColorPrimary paints every path with the icon's primary color.
	ColorPrimary ColorMode = "primary"
	// ColorContrast paints every path black (light) or white (dark).
	ColorContrast ColorMode = "contrast"
)

// DefaultLine1 is the upper text line when none is given.
const DefaultLine1 = "coding with"

// ErrMissingName is returned by ParseRequest when no icon name is present.
var ErrMissingName = errors.New("missing required parameter: name")

// CustomColors are per-slot overrides. An empty field means "use the theme".
type CustomColors struct {
	Background string `json:"background,omitempty" yaml:"background,omitempty" toml:"background,omitempty"`
	Border     string `json:"border,omitempty" yaml:"border,omitempty" toml:"border,omitempty"`
	IconBg     string `json:"iconBg,omitempty" yaml:"icon_bg,omitempty" toml:"icon_bg,omitempty"`
	Text1      string `json:"text1,omitempty" yaml:"text1,omitempty" toml:"text1,omitempty"`
	Text2      string `json:"text2,omitempty" yaml:"text2,omitempty" toml:"text2,omitempty"`
	IconColor  string `json:"iconColor,omitempty" yaml:"icon_color,omitempty" toml:"icon_color,omitempty"`
}

// IsZero reports whether no override is set.
func (c CustomColors) IsZero() bool {
	return c == CustomColors{}
}

// Request holds the parameters of one render.
type Request struct {
	IconName  string
	Line1     string // empty → DefaultLine1
	Line2     string // empty → derived from the icon
	Theme     Theme
	ColorMode ColorMode
	Colors    CustomColors
}

// ParseTheme maps a raw value to a Theme. Anything but "dark" is light.
func ParseTheme(s string) Theme {
	if Theme(strings.ToLower(strings.TrimSpace(s))) == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// ParseColorMode maps a raw value to a ColorMode, rejecting unknown values
// to ColorOriginal.
func ParseColorMode(s string) ColorMode {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ColorPrimary, ColorContrast:
		return m
	default:
		return ColorOriginal
	}
}

// Normalize coerces enum fields to known values so the composer never sees
// an unrecognized theme or color mode.
func (r Request) Normalize() Request {
	r.Theme = ParseTheme(string(r.Theme))
	r.ColorMode = ParseColorMode(string(r.ColorMode))
	return r
}

// ParseRequest builds a Request from query-style parameters. Empty values are
// treated as absent.
func ParseRequest(v url.Values) (Request, error) {
	name := v.Get("name")
	if name == "" {
		return Request{}, ErrMissingName
	}
	req := Request{
		IconName:  name,
		Line1:     v.Get("line1"),
		Line2:     v.Get("line2"),
		Theme:     ParseTheme(v.Get("theme")),
		ColorMode: ParseColorMode(v.Get("colorMode")),
		Colors: CustomColors{
			Background: First(v.Get("background"), v.Get("bg")),
			Border:     v.Get("border"),
			IconBg:     v.Get("iconBg"),
			Text1:      v.Get("text1"),
			Text2:      v.Get("text2"),
			IconColor:  v.Get("iconColor"),
		},
	}
	return req, nil
}

// First returns the first non-empty value.
func First(values ...string) string {
	for _, s := range values {
		if s != "" {
			return s
		}
	}
	return ""
}
