// Package raster converts composed badge SVGs into bitmaps for targets that
// cannot display SVG.
package raster

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Options controls rasterization.
type Options struct {
	// Scale multiplies the SVG's intrinsic size. Zero or negative means 1.
	Scale float64
}

func (o Options) scale() float64 {
	if o.Scale <= 0 {
		return 1
	}
	return o.Scale
}

// Renderer rasterizes badge SVGs. It is safe for concurrent use.
type Renderer struct {
	fonts *Fonts
}

// New creates a renderer with the built-in Go fonts.
func New() (*Renderer, error) {
	fonts, err := LoadFonts()
	if err != nil {
		return nil, err
	}
	return &Renderer{fonts: fonts}, nil
}

// Render rasterizes svg. Shapes go through oksvg, the icon artwork as its own
// oksvg icon placed by its group transform. <text> elements, which the vector
// rasterizer skips, are drawn afterwards with the Go fonts.
func (r *Renderer) Render(svg string, opts Options) (*image.RGBA, error) {
	body, arts, err := splitArtwork(svg)
	if err != nil {
		return nil, err
	}
	icon, err := oksvg.ReadIconStream(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing svg: %w", err)
	}
	if icon.ViewBox.W <= 0 || icon.ViewBox.H <= 0 {
		return nil, fmt.Errorf("svg has no usable viewBox")
	}

	scale := opts.scale()
	w := int(math.Ceil(icon.ViewBox.W * scale))
	h := int(math.Ceil(icon.ViewBox.H * scale))
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	dasher := rasterx.NewDasher(w, h, scanner)
	icon.Draw(dasher, 1.0)

	for _, a := range arts {
		if err := a.draw(img, scale); err != nil {
			return nil, err
		}
	}

	runs, err := parseTextRuns(svg)
	if err != nil {
		return nil, err
	}
	for _, run := range runs {
		if err := r.drawText(img, run, scale); err != nil {
			return nil, err
		}
	}
	return img, nil
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}
