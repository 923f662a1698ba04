// Package icons holds the static icon dataset: catalog records used for name
// resolution and the vector geometry used to draw each icon.
package icons

import "strings"

// Group is the catalog category of an icon.
type Group string

const (
	GroupModel       Group = "model"
	GroupProvider    Group = "provider"
	GroupApplication Group = "application"
)

var groupLabels = map[Group]string{
	GroupModel:       "AI Models",
	GroupProvider:    "AI Providers",
	GroupApplication: "Applications & Tools",
}

// Groups returns the known catalog groups in display order.
func Groups() []Group {
	return []Group{GroupModel, GroupProvider, GroupApplication}
}

// Label returns the human-readable name of the group.
func (g Group) Label() string {
	if l, ok := groupLabels[g]; ok {
		return l
	}
	return string(g)
}

// Record is one catalog entry. Records are never mutated after load.
type Record struct {
	ID            string `json:"id" yaml:"id"`
	Title         string `json:"title" yaml:"title"`
	FullTitle     string `json:"fullTitle" yaml:"fullTitle"`
	Color         string `json:"color" yaml:"color"`
	ColorGradient string `json:"colorGradient,omitempty" yaml:"colorGradient,omitempty"`
	Group         Group  `json:"group" yaml:"group"`
	Desc          string `json:"desc,omitempty" yaml:"desc,omitempty"`
}

// PaintKind tags where a path segment takes its fill from.
type PaintKind int

const (
	// PaintInherit means the segment carries no paint of its own and takes
	// the icon's primary color.
	PaintInherit PaintKind = iota
	// PaintFill is a literal dataset color.
	PaintFill
	// PaintGradient references a gradient definition by variable name.
	PaintGradient
	// PaintSharedGradient uses the icon's shared gradient, which is the first
	// renderable gradient definition.
	PaintSharedGradient
)

func (k PaintKind) String() string {
	switch k {
	case PaintFill:
		return "fill"
	case PaintGradient:
		return "gradient"
	case PaintSharedGradient:
		return "shared-gradient"
	default:
		return "inherit"
	}
}

// Paint is the resolved paint source of one path segment.
type Paint struct {
	Kind PaintKind
	// Ref is the gradient variable name for PaintGradient.
	Ref string
	// Color is the literal dataset color. For gradient kinds it is kept as
	// the fallback when the referenced gradient is missing.
	Color string
}

// inheritSentinels are dataset fill values meaning "no color of my own".
var inheritSentinels = map[string]bool{
	"":             true,
	"currentcolor": true,
	"inherit":      true,
}

// ClassifyPaint tags a path's paint source. Shared gradients win over
// variable references, which win over literal fills.
func ClassifyPaint(fill, fillVar string, shared bool) Paint {
	color := strings.TrimSpace(fill)
	if inheritSentinels[strings.ToLower(color)] {
		color = ""
	}
	switch {
	case shared:
		return Paint{Kind: PaintSharedGradient, Color: color}
	case fillVar != "":
		return Paint{Kind: PaintGradient, Ref: fillVar, Color: color}
	case color != "":
		return Paint{Kind: PaintFill, Color: color}
	default:
		return Paint{Kind: PaintInherit}
	}
}

// PathSegment is one <path> of an icon's artwork.
type PathSegment struct {
	D        string
	Paint    Paint
	FillRule string   // "nonzero", "evenodd" or empty
	Opacity  *float64 // nil when the dataset omits it
}

// GradientStop is a single color stop.
type GradientStop struct {
	Offset      string
	StopColor   string
	StopOpacity *float64
}

// LinearGradient is a <linearGradient> definition. VarName correlates it to
// path segments; gradients without one are never rendered.
type LinearGradient struct {
	VarName           string
	X1, Y1, X2, Y2    string
	GradientUnits     string
	GradientTransform string
	Stops             []GradientStop
}

// RadialGradient is a <radialGradient> definition.
type RadialGradient struct {
	VarName           string
	CX, CY, R, FX, FY string
	GradientUnits     string
	GradientTransform string
	Stops             []GradientStop
}

// GradientDefs groups the gradients an icon depends on.
type GradientDefs struct {
	Linear []LinearGradient
	Radial []RadialGradient
}

// SharedVar returns the variable name of the first renderable gradient,
// linear gradients first.
func (d *GradientDefs) SharedVar() (string, bool) {
	if d == nil {
		return "", false
	}
	for _, lg := range d.Linear {
		if lg.VarName != "" {
			return lg.VarName, true
		}
	}
	for _, rg := range d.Radial {
		if rg.VarName != "" {
			return rg.VarName, true
		}
	}
	return "", false
}

// ViewBoxSize is the fixed artwork coordinate space of every icon.
const ViewBoxSize = 24

// Geometry is the vector artwork of one icon.
type Geometry struct {
	Paths        []PathSegment
	Defs         *GradientDefs
	MonoPath     string
	ColorPrimary string
}

// HasGradients reports whether the geometry defines any gradient.
func (g *Geometry) HasGradients() bool {
	return g.Defs != nil && (len(g.Defs.Linear) > 0 || len(g.Defs.Radial) > 0)
}
