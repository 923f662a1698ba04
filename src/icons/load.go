package icons

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/Masterminds/semver/v3"
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

var (
	// ErrDatasetUnavailable means the dataset files could not be read.
	ErrDatasetUnavailable = errors.New("icon dataset unavailable")
	// ErrDatasetMalformed means the dataset files were read but failed to
	// decode or violate a dataset invariant.
	ErrDatasetMalformed = errors.New("icon dataset malformed")
	// ErrDatasetVersion means the dataset version does not satisfy the
	// configured constraint.
	ErrDatasetVersion = errors.New("icon dataset version mismatch")
)

// Dataset file basenames. Each may be stored as .json, .yaml or .yml.
const (
	TocFile      = "toc"
	PathsFile    = "icon-paths"
	ManifestFile = "manifest"
)

var dataExtensions = []string{".json", ".yaml", ".yml"}

type wireStop struct {
	Offset      string   `json:"offset" yaml:"offset"`
	StopColor   string   `json:"stopColor" yaml:"stopColor"`
	StopOpacity *float64 `json:"stopOpacity,omitempty" yaml:"stopOpacity,omitempty"`
}

type wireGradient struct {
	Type              string     `json:"type" yaml:"type"`
	IDVar             string     `json:"idVar,omitempty" yaml:"idVar,omitempty"`
	X1                string     `json:"x1,omitempty" yaml:"x1,omitempty"`
	Y1                string     `json:"y1,omitempty" yaml:"y1,omitempty"`
	X2                string     `json:"x2,omitempty" yaml:"x2,omitempty"`
	Y2                string     `json:"y2,omitempty" yaml:"y2,omitempty"`
	CX                string     `json:"cx,omitempty" yaml:"cx,omitempty"`
	CY                string     `json:"cy,omitempty" yaml:"cy,omitempty"`
	R                 string     `json:"r,omitempty" yaml:"r,omitempty"`
	FX                string     `json:"fx,omitempty" yaml:"fx,omitempty"`
	FY                string     `json:"fy,omitempty" yaml:"fy,omitempty"`
	GradientUnits     string     `json:"gradientUnits,omitempty" yaml:"gradientUnits,omitempty"`
	GradientTransform string     `json:"gradientTransform,omitempty" yaml:"gradientTransform,omitempty"`
	Stops             []wireStop `json:"stops" yaml:"stops"`
}

type wirePath struct {
	D              string   `json:"d" yaml:"d"`
	Fill           string   `json:"fill,omitempty" yaml:"fill,omitempty"`
	FillVar        string   `json:"fillVar,omitempty" yaml:"fillVar,omitempty"`
	SharedGradient bool     `json:"sharedGradient,omitempty" yaml:"sharedGradient,omitempty"`
	FillRule       string   `json:"fillRule,omitempty" yaml:"fillRule,omitempty"`
	Opacity        *float64 `json:"opacity,omitempty" yaml:"opacity,omitempty"`
}

type wireDefs struct {
	LinearGradients []wireGradient `json:"linearGradients" yaml:"linearGradients"`
	RadialGradients []wireGradient `json:"radialGradients" yaml:"radialGradients"`
}

type wireGeometry struct {
	ViewBox      string     `json:"viewBox" yaml:"viewBox"`
	Paths        []wirePath `json:"paths" yaml:"paths"`
	Defs         *wireDefs  `json:"defs" yaml:"defs"`
	MonoPath     string     `json:"monoPath,omitempty" yaml:"monoPath,omitempty"`
	ColorPrimary string     `json:"colorPrimary,omitempty" yaml:"colorPrimary,omitempty"`
}

type manifest struct {
	Version string `json:"version" yaml:"version"`
}

// LoadDir loads a dataset from a directory on disk.
func LoadDir(dir string) (*Catalog, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatasetUnavailable, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrDatasetUnavailable, dir)
	}
	return LoadFS(os.DirFS(dir))
}

// LoadFS loads a dataset from the root of fsys. The toc and icon-paths files
// are required; the manifest is optional.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	var records []Record
	if err := readData(fsys, TocFile, true, &records); err != nil {
		return nil, err
	}

	var rawPaths map[string]wireGeometry
	if err := readData(fsys, PathsFile, true, &rawPaths); err != nil {
		return nil, err
	}

	var m manifest
	if err := readData(fsys, ManifestFile, false, &m); err != nil {
		return nil, err
	}

	if err := validateRecords(records); err != nil {
		return nil, err
	}

	geometry := make(map[string]*Geometry, len(rawPaths))
	for key, raw := range rawPaths {
		g, err := raw.toGeometry()
		if err != nil {
			return nil, fmt.Errorf("%w: icon %q: %v", ErrDatasetMalformed, key, err)
		}
		geometry[key] = g
	}

	return NewCatalog(m.Version, records, geometry), nil
}

// CheckVersion verifies the catalog version against a semver constraint such
// as ">= 1.70, < 2". An empty constraint always passes.
func CheckVersion(c *Catalog, constraint string) error {
	if strings.TrimSpace(constraint) == "" {
		return nil
	}
	cons, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("parsing dataset version constraint %q: %w", constraint, err)
	}
	if c.version == "" {
		return fmt.Errorf("%w: dataset has no version, constraint %q", ErrDatasetVersion, constraint)
	}
	v, err := semver.NewVersion(c.version)
	if err != nil {
		return fmt.Errorf("%w: version %q: %v", ErrDatasetMalformed, c.version, err)
	}
	if !cons.Check(v) {
		return fmt.Errorf("%w: %s does not satisfy %q", ErrDatasetVersion, v, constraint)
	}
	return nil
}

// readData finds base.{json,yaml,yml} in fsys and decodes it into v.
func readData(fsys fs.FS, base string, required bool, v any) error {
	for _, ext := range dataExtensions {
		name := base + ext
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("%w: reading %s: %v", ErrDatasetUnavailable, name, err)
		}
		if err := decode(name, data, v); err != nil {
			return fmt.Errorf("%w: decoding %s: %v", ErrDatasetMalformed, name, err)
		}
		return nil
	}
	if required {
		return fmt.Errorf("%w: %s not found", ErrDatasetUnavailable, base)
	}
	return nil
}

func decode(name string, data []byte, v any) error {
	switch path.Ext(name) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, v)
	default:
		return json.Unmarshal(data, v)
	}
}

func validateRecords(records []Record) error {
	seen := make(map[string]bool, len(records))
	for i, r := range records {
		if strings.TrimSpace(r.ID) == "" {
			return fmt.Errorf("%w: record %d has no id", ErrDatasetMalformed, i)
		}
		key := strings.ToLower(r.ID)
		if seen[key] {
			return fmt.Errorf("%w: duplicate record id %q", ErrDatasetMalformed, r.ID)
		}
		seen[key] = true
	}
	return nil
}

func (w wireGeometry) toGeometry() (*Geometry, error) {
	if vb := strings.Join(strings.Fields(w.ViewBox), " "); vb != "" && vb != "0 0 24 24" {
		return nil, fmt.Errorf("unsupported viewBox %q", w.ViewBox)
	}

	g := &Geometry{
		MonoPath:     w.MonoPath,
		ColorPrimary: w.ColorPrimary,
		Paths:        make([]PathSegment, 0, len(w.Paths)),
	}
	for i, p := range w.Paths {
		if strings.TrimSpace(p.D) == "" {
			return nil, fmt.Errorf("path %d has no data", i)
		}
		switch p.FillRule {
		case "", "nonzero", "evenodd":
		default:
			return nil, fmt.Errorf("path %d: unknown fill rule %q", i, p.FillRule)
		}
		g.Paths = append(g.Paths, PathSegment{
			D:        p.D,
			Paint:    ClassifyPaint(p.Fill, p.FillVar, p.SharedGradient),
			FillRule: p.FillRule,
			Opacity:  p.Opacity,
		})
	}

	if w.Defs != nil {
		defs := &GradientDefs{}
		for _, lg := range w.Defs.LinearGradients {
			defs.Linear = append(defs.Linear, LinearGradient{
				VarName:           lg.IDVar,
				X1:                lg.X1,
				Y1:                lg.Y1,
				X2:                lg.X2,
				Y2:                lg.Y2,
				GradientUnits:     lg.GradientUnits,
				GradientTransform: lg.GradientTransform,
				Stops:             convertStops(lg.Stops),
			})
		}
		for _, rg := range w.Defs.RadialGradients {
			defs.Radial = append(defs.Radial, RadialGradient{
				VarName:           rg.IDVar,
				CX:                rg.CX,
				CY:                rg.CY,
				R:                 rg.R,
				FX:                rg.FX,
				FY:                rg.FY,
				GradientUnits:     rg.GradientUnits,
				GradientTransform: rg.GradientTransform,
				Stops:             convertStops(rg.Stops),
			})
		}
		g.Defs = defs
	}
	return g, nil
}

func convertStops(in []wireStop) []GradientStop {
	out := make([]GradientStop, 0, len(in))
	for _, s := range in {
		out = append(out, GradientStop{
			Offset:      s.Offset,
			StopColor:   s.StopColor,
			StopOpacity: s.StopOpacity,
		})
	}
	return out
}
