package output

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/sofmeright/codingbadge/src/icons"
)

// Colors for terminal output.
const (
	colorReset = "\033[0m"
	colorCyan  = "\033[36m"
	colorGray  = "\033[90m"
	colorBold  = "\033[1m"
)

// Printer formats and writes catalog listings.
type Printer struct {
	Writer io.Writer
	Color  bool
}

// NewPrinter creates a printer writing to stdout with color auto-detection.
func NewPrinter() *Printer {
	return &Printer{
		Writer: os.Stdout,
		Color:  UseColor(),
	}
}

// PrintIcons outputs records grouped by catalog group, in group display
// order and dataset order within a group. Returns the number printed.
func (p *Printer) PrintIcons(records []icons.Record) int {
	grouped := make(map[icons.Group][]icons.Record)
	for _, r := range records {
		grouped[r.Group] = append(grouped[r.Group], r)
	}

	var extra []icons.Group
	for g := range grouped {
		if !isKnownGroup(g) {
			extra = append(extra, g)
		}
	}
	slices.Sort(extra)
	groups := append(icons.Groups(), extra...)

	n := 0
	for _, g := range groups {
		rs := grouped[g]
		if len(rs) == 0 {
			continue
		}
		fmt.Fprintf(p.Writer, "\n%s\n", p.colorize(g.Label(), colorBold))
		for _, r := range rs {
			fmt.Fprintf(p.Writer, "  %-20s %-28s %s\n",
				p.colorize(r.ID, colorCyan),
				r.FullTitle,
				p.colorize(r.Color, colorGray),
			)
			n++
		}
	}
	return n
}

// Summary prints a final count line.
func (p *Printer) Summary(shown, total int) {
	count := fmt.Sprintf("%d", shown)
	if p.Color {
		count = colorBold + count + colorReset
	}
	fmt.Fprintf(p.Writer, "\n%s of %d icons\n", count, total)
}

func isKnownGroup(g icons.Group) bool {
	for _, k := range icons.Groups() {
		if k == g {
			return true
		}
	}
	return false
}

func (p *Printer) colorize(text, color string) string {
	if !p.Color {
		return text
	}
	return color + text + colorReset
}

func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// IsCI reports whether we run inside a CI job.
func IsCI() bool {
	return os.Getenv("CI") == "true"
}

// UseColor returns true if colored output should be used.
// Respects NO_COLOR env, TERM=dumb, and terminal detection.
func UseColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isTerminal() || IsCI()
}

// PaintSummary describes how many path segments use each paint source,
// e.g. "2 fill, 1 gradient".
func PaintSummary(g *icons.Geometry) string {
	if g == nil {
		return "no geometry"
	}
	counts := make(map[icons.PaintKind]int)
	for _, p := range g.Paths {
		counts[p.Paint.Kind]++
	}
	var parts []string
	for _, k := range []icons.PaintKind{icons.PaintFill, icons.PaintGradient, icons.PaintSharedGradient, icons.PaintInherit} {
		if counts[k] > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", counts[k], k))
		}
	}
	return strings.Join(parts, ", ")
}
