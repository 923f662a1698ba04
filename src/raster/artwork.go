package raster

import (
	"encoding/xml"
	"errors"
	"fmt"
	"image"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// artwork is one translated and scaled icon group lifted out of a badge.
type artwork struct {
	x, y, scale float64
	inner       string
}

var placementRE = regexp.MustCompile(`^\s*translate\(\s*([-+0-9.eE]+)[\s,]+([-+0-9.eE]+)\s*\)\s*scale\(\s*([-+0-9.eE]+)\s*\)\s*$`)

// parsePlacement reads a "translate(x, y) scale(s)" transform.
func parsePlacement(v string) (x, y, s float64, ok bool) {
	m := placementRE.FindStringSubmatch(v)
	if m == nil {
		return 0, 0, 0, false
	}
	var vals [3]float64
	for i := range vals {
		f, err := strconv.ParseFloat(m[i+1], 64)
		if err != nil {
			return 0, 0, 0, false
		}
		vals[i] = f
	}
	return vals[0], vals[1], vals[2], true
}

// splitArtwork separates svg into the shapes oksvg draws in place and the
// icon groups, which are rasterized on their own. Top-level <text> elements
// are dropped from the shapes; they are drawn with the Go fonts instead.
func splitArtwork(svg string) (string, []artwork, error) {
	type cut struct{ start, end int64 }

	dec := xml.NewDecoder(strings.NewReader(svg))
	var (
		cuts  []cut
		arts  []artwork
		depth int
		// open tracks the top-level element being cut, if any.
		open      *cut
		openArt   *artwork
		innerFrom int64
	)
	for {
		before := dec.InputOffset()
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", nil, fmt.Errorf("parsing svg: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			if depth != 2 {
				continue
			}
			switch t.Name.Local {
			case "text":
				open = &cut{start: before}
			case "g":
				for _, a := range t.Attr {
					if a.Name.Local != "transform" {
						continue
					}
					if x, y, s, ok := parsePlacement(a.Value); ok {
						open = &cut{start: before}
						openArt = &artwork{x: x, y: y, scale: s}
						innerFrom = dec.InputOffset()
					}
				}
			}
		case xml.EndElement:
			depth--
			if depth != 1 || open == nil {
				continue
			}
			open.end = dec.InputOffset()
			cuts = append(cuts, *open)
			if openArt != nil {
				// A self-closing group has no inner markup.
				if before > innerFrom {
					openArt.inner = svg[innerFrom:before]
				}
				arts = append(arts, *openArt)
			}
			open, openArt = nil, nil
		}
	}

	var body strings.Builder
	var last int64
	for _, c := range cuts {
		body.WriteString(svg[last:c.start])
		last = c.end
	}
	body.WriteString(svg[last:])
	return body.String(), arts, nil
}

// draw rasterizes the artwork onto img. The unit view box makes oksvg's
// target transform the group's own translate and scale.
func (a artwork) draw(img *image.RGBA, scale float64) error {
	doc := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 1 1">` + a.inner + `</svg>`
	icon, err := oksvg.ReadIconStream(strings.NewReader(doc))
	if err != nil {
		return fmt.Errorf("parsing icon artwork: %w", err)
	}
	icon.SetTarget(a.x*scale, a.y*scale, a.scale*scale, a.scale*scale)

	b := img.Bounds()
	scanner := rasterx.NewScannerGV(b.Dx(), b.Dy(), img, b)
	icon.Draw(rasterx.NewDasher(b.Dx(), b.Dy(), scanner), 1.0)
	return nil
}
