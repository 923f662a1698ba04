package badge

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/sofmeright/codingbadge/src/icons"
)

// namespace derives the gradient id prefix for one render. It depends on the
// icon id and every request field, so two different badges embedded in one
// page never share a gradient id while a repeated request stays byte-identical.
func namespace(id string, req Request) string {
	h := xxhash.New()
	for _, s := range []string{
		req.IconName, req.Line1, req.Line2, string(req.Theme), string(req.ColorMode),
		req.Colors.Background, req.Colors.Border, req.Colors.IconBg,
		req.Colors.Text1, req.Colors.Text2, req.Colors.IconColor,
	} {
		_, _ = h.WriteString(s)
		_, _ = h.Write([]byte{0})
	}
	return fmt.Sprintf("icon-%s-%08x", sanitizeID(id), uint32(h.Sum64()))
}

// sanitizeID lowercases s and replaces anything outside [a-z0-9_-] with '-'.
func sanitizeID(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	return b.String()
}

// renderIcon draws the dataset artwork scaled from the 24×24 view box into
// the display box, centered on the icon box.
func renderIcon(s *strings.Builder, g *icons.Geometry, colors iconColors, lay layout, ns string) {
	scale := float64(iconDisplaySize) / icons.ViewBoxSize
	offsetX := lay.centerX - iconDisplaySize/2
	offsetY := lay.centerY - iconDisplaySize/2

	// Gradients only matter when paths keep their dataset paint.
	gradIDs := make(map[string]string)
	var defs strings.Builder
	if colors.override == "" && g.Defs != nil {
		for _, lg := range g.Defs.Linear {
			if lg.VarName == "" {
				continue
			}
			id := ns + "-" + lg.VarName
			gradIDs[lg.VarName] = id
			writeLinearGradient(&defs, id, lg)
		}
		for _, rg := range g.Defs.Radial {
			if rg.VarName == "" {
				continue
			}
			id := ns + "-" + rg.VarName
			gradIDs[rg.VarName] = id
			writeRadialGradient(&defs, id, rg)
		}
	}
	shared, _ := g.Defs.SharedVar()

	s.WriteString(fmt.Sprintf(`  <g transform="translate(%s, %s) scale(%s)">`, num(offsetX), num(offsetY), num(scale)))
	s.WriteString("\n")
	if defs.Len() > 0 {
		s.WriteString(`    <defs>`)
		s.WriteString(defs.String())
		s.WriteString("</defs>\n")
	}
	for _, p := range g.Paths {
		fill := colors.override
		if fill == "" {
			fill = pathFill(p.Paint, gradIDs, shared, colors.primary)
		}
		// Path data comes from the dataset only and is written verbatim.
		s.WriteString(fmt.Sprintf(`    <path d="%s" fill="%s"`, p.D, xmlEscape(fill)))
		if p.FillRule != "" {
			s.WriteString(fmt.Sprintf(` fill-rule="%s"`, xmlEscape(p.FillRule)))
		}
		if p.Opacity != nil {
			s.WriteString(fmt.Sprintf(` opacity="%s"`, num(*p.Opacity)))
		}
		s.WriteString("/>\n")
	}
	s.WriteString("  </g>\n")
}

// pathFill resolves the paint of one segment when no uniform override is
// active. A gradient reference that cannot be resolved falls back to the
// segment's dataset color, then to the icon's primary color.
func pathFill(p icons.Paint, gradIDs map[string]string, shared, primary string) string {
	switch p.Kind {
	case icons.PaintSharedGradient:
		if id, ok := gradIDs[shared]; ok && shared != "" {
			return "url(#" + id + ")"
		}
	case icons.PaintGradient:
		if id, ok := gradIDs[p.Ref]; ok {
			return "url(#" + id + ")"
		}
	case icons.PaintFill:
		return p.Color
	}
	return First(p.Color, primary)
}

func writeLinearGradient(s *strings.Builder, id string, lg icons.LinearGradient) {
	s.WriteString(fmt.Sprintf(`<linearGradient id="%s" x1="%s" y1="%s" x2="%s" y2="%s"`,
		xmlEscape(id),
		xmlEscape(First(lg.X1, "0%")),
		xmlEscape(First(lg.Y1, "0%")),
		xmlEscape(First(lg.X2, "100%")),
		xmlEscape(First(lg.Y2, "100%")),
	))
	writeOptionalAttr(s, "gradientUnits", lg.GradientUnits)
	writeOptionalAttr(s, "gradientTransform", lg.GradientTransform)
	s.WriteString(">")
	writeStops(s, lg.Stops)
	s.WriteString("</linearGradient>")
}

func writeRadialGradient(s *strings.Builder, id string, rg icons.RadialGradient) {
	s.WriteString(fmt.Sprintf(`<radialGradient id="%s"`, xmlEscape(id)))
	writeOptionalAttr(s, "cx", rg.CX)
	writeOptionalAttr(s, "cy", rg.CY)
	writeOptionalAttr(s, "r", rg.R)
	writeOptionalAttr(s, "fx", rg.FX)
	writeOptionalAttr(s, "fy", rg.FY)
	writeOptionalAttr(s, "gradientUnits", rg.GradientUnits)
	writeOptionalAttr(s, "gradientTransform", rg.GradientTransform)
	s.WriteString(">")
	writeStops(s, rg.Stops)
	s.WriteString("</radialGradient>")
}

func writeStops(s *strings.Builder, stops []icons.GradientStop) {
	for _, st := range stops {
		s.WriteString(fmt.Sprintf(`<stop offset="%s" stop-color="%s"`, xmlEscape(st.Offset), xmlEscape(st.StopColor)))
		if st.StopOpacity != nil {
			s.WriteString(fmt.Sprintf(` stop-opacity="%s"`, num(*st.StopOpacity)))
		}
		s.WriteString("/>")
	}
}

func writeOptionalAttr(s *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	s.WriteString(fmt.Sprintf(` %s="%s"`, name, xmlEscape(value)))
}
