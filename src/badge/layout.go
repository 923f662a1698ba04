package badge

import (
	"math"
	"unicode/utf16"
)

// Fixed badge geometry, in px.
const (
	Height          = 64
	iconBoxSize     = 48
	iconDisplaySize = 28
	padding         = 12
	gap             = 12
	borderRadius    = 12
	iconBoxRadius   = 8

	line1Y          = 26
	line2Y          = 44
	line1FontSize   = 12
	line2FontSize   = 16
	line1FontWeight = 400
	line2FontWeight = 600

	fallbackFontSize   = 14
	fallbackFontWeight = 700

	// Approximate advance per character; not real text metrics.
	line1CharWidth   = 6.5
	line2CharWidth   = 9.0
	minTextWidth     = 80.0
	textColumnMargin = 10.0
)

// layout is the computed geometry of one badge.
type layout struct {
	width    int
	height   int
	iconBoxX float64
	iconBoxY float64
	centerX  float64
	centerY  float64
	textX    float64
}

// textLength counts UTF-16 code units, the unit the width heuristic was
// calibrated against.
func textLength(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// TextColumnWidth returns the estimated width of the text column.
func TextColumnWidth(line1, line2 string) float64 {
	w1 := float64(textLength(line1)) * line1CharWidth
	w2 := float64(textLength(line2)) * line2CharWidth
	return math.Max(math.Max(w1, w2), minTextWidth) + textColumnMargin
}

// Width returns the total badge width for the two text lines.
func Width(line1, line2 string) int {
	return int(math.Ceil(padding + iconBoxSize + gap + TextColumnWidth(line1, line2) + padding))
}

func computeLayout(line1, line2 string) layout {
	boxX := float64(padding)
	boxY := float64(Height-iconBoxSize) / 2
	return layout{
		width:    Width(line1, line2),
		height:   Height,
		iconBoxX: boxX,
		iconBoxY: boxY,
		centerX:  boxX + iconBoxSize/2,
		centerY:  boxY + iconBoxSize/2,
		textX:    padding + iconBoxSize + gap,
	}
}
