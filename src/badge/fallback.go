package badge

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// fallbackInitial returns the uppercased first character of title, or "?"
// when title is blank.
func fallbackInitial(title string) string {
	r, size := utf8.DecodeRuneInString(strings.TrimSpace(title))
	if size == 0 {
		return "?"
	}
	// Casers carry state and must not be shared across goroutines.
	return cases.Upper(language.Und).String(string(r))
}

// renderFallback draws a gradient circle with the title's initial, used when
// the dataset has no artwork for the requested icon.
func renderFallback(s *strings.Builder, title, color string, lay layout, ns string) {
	gradID := xmlEscape(ns + "-fallback")
	c := xmlEscape(color)
	darker := xmlEscape(AdjustColor(color, fallbackDarken))

	s.WriteString("  <defs>\n")
	s.WriteString(fmt.Sprintf(`    <linearGradient id="%s" x1="0%%" y1="0%%" x2="100%%" y2="100%%">`, gradID))
	s.WriteString(fmt.Sprintf(`<stop offset="0%%" stop-color="%s" stop-opacity="1"/>`, c))
	s.WriteString(fmt.Sprintf(`<stop offset="100%%" stop-color="%s" stop-opacity="1"/>`, darker))
	s.WriteString("</linearGradient>\n")
	s.WriteString("  </defs>\n")
	s.WriteString(fmt.Sprintf(`  <circle cx="%s" cy="%s" r="%s" fill="url(#%s)"/>`,
		num(lay.centerX), num(lay.centerY), num(iconDisplaySize/2.0), gradID))
	s.WriteString("\n")
	s.WriteString(fmt.Sprintf(`  <text x="%s" y="%s" dominant-baseline="central" text-anchor="middle" fill="white" font-family="%s" font-size="%d" font-weight="%d">%s</text>`,
		num(lay.centerX), num(lay.centerY), xmlEscape(fontFamily), fallbackFontSize, fallbackFontWeight, xmlEscape(fallbackInitial(title))))
	s.WriteString("\n")
}
