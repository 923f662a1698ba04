package badge

import (
	"fmt"
	"strconv"
	"strings"
)

// fontFamily is a system font stack; the badge embeds no font data.
const fontFamily = `-apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif`

// document is everything the final SVG assembly needs.
type document struct {
	layout  layout
	palette Palette
	line1   string
	line2   string
	icon    string // pre-rendered icon or fallback markup
}

// renderSVG assembles the badge document.
func renderSVG(d document) string {
	w, h := d.layout.width, d.layout.height
	p := d.palette

	var s strings.Builder

	s.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`, w, h, w, h))
	s.WriteString("\n")

	s.WriteString("  <defs>\n")
	s.WriteString(`    <style type="text/css">`)
	s.WriteString(fmt.Sprintf(`.badge-text{font-family:%s;font-style:normal}`, xmlEscape(fontFamily)))
	s.WriteString("</style>\n")
	s.WriteString("  </defs>\n")

	// Inset by half a pixel so the 1px stroke lands on whole pixels.
	s.WriteString(fmt.Sprintf(`  <rect x="0.5" y="0.5" width="%d" height="%d" rx="%d" ry="%d" fill="%s" stroke="%s" stroke-width="1"/>`,
		w-1, h-1, borderRadius, borderRadius, xmlEscape(p.Background), xmlEscape(p.Border)))
	s.WriteString("\n")

	s.WriteString(fmt.Sprintf(`  <rect x="%s" y="%s" width="%d" height="%d" rx="%d" ry="%d" fill="%s"/>`,
		num(d.layout.iconBoxX), num(d.layout.iconBoxY), iconBoxSize, iconBoxSize, iconBoxRadius, iconBoxRadius, xmlEscape(p.IconBg)))
	s.WriteString("\n")

	s.WriteString(d.icon)

	s.WriteString(fmt.Sprintf(`  <text x="%s" y="%d" class="badge-text" fill="%s" font-size="%d" font-weight="%d">%s</text>`,
		num(d.layout.textX), line1Y, xmlEscape(p.Text1), line1FontSize, line1FontWeight, xmlEscape(d.line1)))
	s.WriteString("\n")
	s.WriteString(fmt.Sprintf(`  <text x="%s" y="%d" class="badge-text" fill="%s" font-size="%d" font-weight="%d">%s</text>`,
		num(d.layout.textX), line2Y, xmlEscape(p.Text2), line2FontSize, line2FontWeight, xmlEscape(d.line2)))
	s.WriteString("\n")

	s.WriteString(`</svg>`)
	return s.String()
}

// num formats a coordinate with the shortest exact decimal representation.
func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// xmlEscape escapes special XML characters in text and attribute values and
// drops characters XML 1.0 cannot carry at all.
func xmlEscape(s string) string {
	s = strings.Map(xmlChar, strings.ToValidUTF8(s, "\uFFFD"))
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	return s
}

func xmlChar(r rune) rune {
	switch {
	case r == '\t', r == '\n', r == '\r':
		return r
	case r >= 0x20 && r <= 0xD7FF, r >= 0xE000 && r <= 0xFFFD, r >= 0x10000 && r <= 0x10FFFF:
		return r
	default:
		return -1
	}
}
