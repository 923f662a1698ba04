package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sofmeright/codingbadge/src/badge"
	"github.com/sofmeright/codingbadge/src/icons"
)

func testBadge(t *testing.T, req badge.Request) string {
	t.Helper()

	c := icons.NewCatalog("", []icons.Record{
		{ID: "square", Title: "Square", Color: "#D97757"},
	}, map[string]*icons.Geometry{
		"square": {Paths: []icons.PathSegment{
			{D: "M2 2h20v20H2z", Paint: icons.ClassifyPaint("#D97757", "", false)},
		}},
	})
	return badge.New(c).Generate(req)
}

func newRenderer(t *testing.T) *Renderer {
	t.Helper()

	r, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func isWhite(c color.Color) bool {
	r, g, b, a := c.RGBA()
	return r == 0xffff && g == 0xffff && b == 0xffff && a == 0xffff
}

// hasInk reports whether any pixel in rect is clearly darker than white.
func hasInk(img image.Image, rect image.Rectangle) bool {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			r, _, _, _ := img.At(x, y).RGBA()
			if r < 0xc000 {
				return true
			}
		}
	}
	return false
}

func TestRenderIconBadge(t *testing.T) {
	r := newRenderer(t)
	svg := testBadge(t, badge.Request{IconName: "square"})
	w := badge.Width(badge.DefaultLine1, "Square")

	img, err := r.Render(svg, Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := img.Bounds().Size(); got != image.Pt(w, badge.Height) {
		t.Fatalf("size = %v, want %dx%d", got, w, badge.Height)
	}
	if c := img.At(w-6, 32); !isWhite(c) {
		t.Errorf("background pixel = %v, want white", c)
	}

	// Icon artwork fills the middle of the icon box.
	if r, g, b, _ := img.At(36, 32).RGBA(); r>>8 != 0xD9 || g>>8 != 0x77 || b>>8 != 0x57 {
		t.Errorf("icon pixel = %v, want #D97757", img.At(36, 32))
	}
	if !hasInk(img, image.Rect(72, 30, w-12, 48)) {
		t.Error("no text drawn in the second line")
	}
}

func TestRenderScale(t *testing.T) {
	r := newRenderer(t)
	svg := testBadge(t, badge.Request{IconName: "square", Theme: badge.ThemeDark})
	w := badge.Width(badge.DefaultLine1, "Square")

	img, err := r.Render(svg, Options{Scale: 2})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := img.Bounds().Size(); got != image.Pt(2*w, 2*badge.Height) {
		t.Fatalf("size = %v, want %dx%d", got, 2*w, 2*badge.Height)
	}
	if r, g, b, _ := img.At(2*w-12, 64).RGBA(); r>>8 != 0x1F || g>>8 != 0x29 || b>>8 != 0x37 {
		t.Errorf("dark background pixel = %v, want #1F2937", img.At(2*w-12, 64))
	}
}

func TestRenderFallback(t *testing.T) {
	r := newRenderer(t)
	svg := testBadge(t, badge.Request{IconName: "unknown"})

	img, err := r.Render(svg, Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !hasInk(img, image.Rect(34, 20, 38, 22)) {
		t.Error("fallback circle not drawn")
	}
}

func TestRenderUnreadableTextColors(t *testing.T) {
	r := newRenderer(t)
	svg := testBadge(t, badge.Request{
		IconName: "square",
		Colors:   badge.CustomColors{Text1: "rgb(10, 20, 30)", Text2: "var(--accent)"},
	})
	w := badge.Width(badge.DefaultLine1, "Square")

	img, err := r.Render(svg, Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !hasInk(img, image.Rect(72, 30, w-12, 48)) {
		t.Error("second line not drawn in the default color")
	}
}

func TestSplitArtwork(t *testing.T) {
	svg := testBadge(t, badge.Request{IconName: "square"})

	body, arts, err := splitArtwork(svg)
	if err != nil {
		t.Fatalf("splitArtwork: %v", err)
	}
	if len(arts) != 1 {
		t.Fatalf("got %d artwork groups, want 1", len(arts))
	}
	a := arts[0]
	if a.x != 22 || a.y != 18 || a.scale != 28.0/24 {
		t.Errorf("placement = (%v, %v) x%v, want (22, 18) x%v", a.x, a.y, a.scale, 28.0/24)
	}
	if !strings.Contains(a.inner, `<path d="M2 2h20v20H2z" fill="#D97757"/>`) {
		t.Errorf("inner markup = %q", a.inner)
	}
	for _, gone := range []string{"<g ", "<path", "<text"} {
		if strings.Contains(body, gone) {
			t.Errorf("body still contains %q:\n%s", gone, body)
		}
	}
	if !strings.Contains(body, "<rect") || !strings.HasSuffix(body, "</svg>") {
		t.Errorf("body lost its shapes:\n%s", body)
	}
}

func TestParsePlacement(t *testing.T) {
	tests := []struct {
		in      string
		x, y, s float64
		ok      bool
	}{
		{in: "translate(22, 18) scale(1.1666666666666667)", x: 22, y: 18, s: 1.1666666666666667, ok: true},
		{in: "translate(-1.5 2e1)scale(2)", x: -1.5, y: 20, s: 2, ok: true},
		{in: "rotate(45)"},
		{in: "translate(1, 2)"},
	}
	for _, tt := range tests {
		x, y, s, ok := parsePlacement(tt.in)
		if ok != tt.ok || x != tt.x || y != tt.y || s != tt.s {
			t.Errorf("parsePlacement(%q) = %v, %v, %v, %t", tt.in, x, y, s, ok)
		}
	}
}

func TestRenderRejectsGarbage(t *testing.T) {
	r := newRenderer(t)
	if _, err := r.Render("<svg", Options{}); err == nil {
		t.Error("expected error for truncated svg")
	}
}

func TestEncodePNG(t *testing.T) {
	r := newRenderer(t)
	img, err := r.Render(testBadge(t, badge.Request{IconName: "square"}), Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("decoded bounds = %v, want %v", decoded.Bounds(), img.Bounds())
	}
}

func TestParseTextRuns(t *testing.T) {
	runs, err := parseTextRuns(testBadge(t, badge.Request{IconName: "unknown", Line1: "a & b"}))
	if err != nil {
		t.Fatalf("parseTextRuns: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("got %d runs, want 3", len(runs))
	}

	initial := runs[0]
	if initial.content != "U" || initial.anchor != "middle" || initial.baseline != "central" || initial.weight != 700 || initial.size != 14 {
		t.Errorf("initial run = %+v", initial)
	}
	if !isWhite(initial.fill) {
		t.Errorf("initial fill = %v, want white", initial.fill)
	}

	if runs[1].content != "a & b" || runs[1].y != 26 || runs[1].weight != 400 {
		t.Errorf("line1 run = %+v", runs[1])
	}
	if runs[2].content != "unknown" || runs[2].y != 44 || runs[2].weight != 600 || runs[2].x != 72 {
		t.Errorf("line2 run = %+v", runs[2])
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.Color
		err  bool
	}{
		{in: "#fff", want: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{in: "#1F2937", want: color.RGBA{R: 0x1f, G: 0x29, B: 0x37, A: 0xff}},
		{in: "White", want: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{in: "rgb(10, 20, 30)", want: color.NRGBA{R: 10, G: 20, B: 30, A: 0xff}},
		{in: "none", want: color.Transparent},
		{in: "#12", err: true},
		{in: "rgb(,,)", err: true},
		{in: "hsl(120, , 50%)", err: true},
		{in: "var(--accent)", err: true},
		{in: "#zzzzzz", err: true},
		{in: "chartreuse-ish", err: true},
	}
	for _, tt := range tests {
		got, err := parseColor(tt.in)
		if (err != nil) != tt.err {
			t.Errorf("parseColor(%q) err = %v", tt.in, err)
			continue
		}
		if !tt.err {
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("parseColor(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		}
	}
}

func TestParseWeight(t *testing.T) {
	for in, want := range map[string]int{"bold": 700, "600": 600, "normal": 400, "": 400, "heavy": 400} {
		if got := parseWeight(in); got != want {
			t.Errorf("parseWeight(%q) = %d, want %d", in, got, want)
		}
	}
}
