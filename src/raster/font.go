package raster

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Fonts holds the parsed faces used to draw badge text. Parsed fonts are
// immutable and may be shared; faces are created per draw.
type Fonts struct {
	regular *sfnt.Font
	bold    *sfnt.Font
}

// LoadFonts parses the Go font family shipped with x/image.
func LoadFonts() (*Fonts, error) {
	regular, err := parseFont("goregular", goregular.TTF)
	if err != nil {
		return nil, err
	}
	bold, err := parseFont("gobold", gobold.TTF)
	if err != nil {
		return nil, err
	}
	return &Fonts{regular: regular, bold: bold}, nil
}

func parseFont(name string, data []byte) (*sfnt.Font, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font %s: %w", name, err)
	}
	return f, nil
}

// face returns a face for the given CSS weight at size px. Weights of 600 and
// above use the bold font. The caller closes the face.
func (f *Fonts) face(weight int, size float64) (font.Face, error) {
	src := f.regular
	if weight >= 600 {
		src = f.bold
	}
	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("creating face: %w", err)
	}
	return face, nil
}
