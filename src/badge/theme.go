package badge

// Palette is the set of named color slots for one render.
type Palette struct {
	Background   string
	Border       string
	IconBg       string
	Text1        string
	Text2        string
	ContrastIcon string
}

var palettes = map[Theme]Palette{
	ThemeLight: {
		Background:   "#FFFFFF",
		Border:       "#E5E7EB",
		IconBg:       "#F3F4F6",
		Text1:        "#6B7280",
		Text2:        "#1F2937",
		ContrastIcon: "#000000",
	},
	ThemeDark: {
		Background:   "#1F2937",
		Border:       "#374151",
		IconBg:       "#374151",
		Text1:        "#9CA3AF",
		Text2:        "#F9FAFB",
		ContrastIcon: "#FFFFFF",
	},
}

// BasePalette returns the unmodified palette of a theme.
func BasePalette(t Theme) Palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[ThemeLight]
}

// ResolvePalette overlays custom colors onto the theme palette slot by slot.
// IconColor is not a palette slot; it is applied by the icon color policy.
func ResolvePalette(t Theme, c CustomColors) Palette {
	p := BasePalette(t)
	p.Background = First(c.Background, p.Background)
	p.Border = First(c.Border, p.Border)
	p.IconBg = First(c.IconBg, p.IconBg)
	p.Text1 = First(c.Text1, p.Text1)
	p.Text2 = First(c.Text2, p.Text2)
	return p
}
