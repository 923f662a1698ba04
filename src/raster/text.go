package raster

import (
	"encoding/xml"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/srwiley/oksvg"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// textRun is one <text> element of a badge.
type textRun struct {
	x, y     float64
	size     float64
	weight   int
	fill     color.Color
	anchor   string
	baseline string
	content  string
}

// parseTextRuns collects the <text> elements of svg in document order.
func parseTextRuns(svg string) ([]textRun, error) {
	dec := xml.NewDecoder(strings.NewReader(svg))
	var (
		runs    []textRun
		current *textRun
		content strings.Builder
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return runs, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading svg text: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != "text" {
				continue
			}
			run, err := newTextRun(t.Attr)
			if err != nil {
				return nil, err
			}
			current = &run
			content.Reset()
		case xml.CharData:
			if current != nil {
				content.Write(t)
			}
		case xml.EndElement:
			if t.Name.Local == "text" && current != nil {
				current.content = content.String()
				runs = append(runs, *current)
				current = nil
			}
		}
	}
}

func newTextRun(attrs []xml.Attr) (textRun, error) {
	run := textRun{size: 16, weight: 400, fill: color.Black}
	for _, a := range attrs {
		var err error
		switch a.Name.Local {
		case "x":
			run.x, err = strconv.ParseFloat(a.Value, 64)
		case "y":
			run.y, err = strconv.ParseFloat(a.Value, 64)
		case "font-size":
			run.size, err = strconv.ParseFloat(strings.TrimSuffix(a.Value, "px"), 64)
		case "font-weight":
			run.weight = parseWeight(a.Value)
		case "fill":
			// Colors the rasterizer cannot read draw in the default black.
			if c, cerr := parseColor(a.Value); cerr == nil {
				run.fill = c
			}
		case "text-anchor":
			run.anchor = a.Value
		case "dominant-baseline":
			run.baseline = a.Value
		}
		if err != nil {
			return textRun{}, fmt.Errorf("text attribute %s=%q: %w", a.Name.Local, a.Value, err)
		}
	}
	return run, nil
}

func parseWeight(s string) int {
	switch s {
	case "bold", "bolder":
		return 700
	case "normal", "lighter":
		return 400
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return 400
}

// parseColor accepts #RGB, #RRGGBB, SVG color keywords and the rgb() and
// hsl() functional forms. "none" yields a transparent fill.
func parseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) != 6 {
			return nil, fmt.Errorf("bad hex color")
		}
		n, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return nil, err
		}
		return color.RGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 0xff}, nil
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	if !functionalColor(s) {
		return nil, fmt.Errorf("unknown color")
	}
	c, err := oksvg.ParseSVGColor(s)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return color.Transparent, nil
	}
	return c, nil
}

// functionalColor reports whether s is "none" or an rgb()/hsl() call with
// three non-empty arguments, the only other forms oksvg can parse safely.
func functionalColor(s string) bool {
	if strings.EqualFold(s, "none") {
		return true
	}
	var args string
	switch {
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		args = s[len("rgb(") : len(s)-1]
	case strings.HasPrefix(s, "hsl(") && strings.HasSuffix(s, ")"):
		args = s[len("hsl(") : len(s)-1]
	default:
		return false
	}
	parts := strings.Split(args, ",")
	if len(parts) != 3 {
		return false
	}
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			return false
		}
	}
	return true
}

func (r *Renderer) drawText(img *image.RGBA, run textRun, scale float64) error {
	if run.content == "" {
		return nil
	}
	face, err := r.fonts.face(run.weight, run.size*scale)
	if err != nil {
		return err
	}
	defer face.Close()

	d := &font.Drawer{Dst: img, Src: image.NewUniform(run.fill), Face: face}
	x := run.x * scale
	y := run.y * scale
	if run.anchor == "middle" {
		x -= float64(d.MeasureString(run.content)) / 64 / 2
	}
	if run.baseline == "central" {
		m := face.Metrics()
		y += float64(m.Ascent-m.Descent) / 64 / 2
	}
	d.Dot = fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
	d.DrawString(run.content)
	return nil
}
