// Package narrator composes embed snippets for rendered badges.
//
// Modules render one badge reference (a URL, a markdown image or an HTML
// <img>). Items are space-joined on one line until a BreakModule starts a
// new one, so a set of badges can be pasted into a README as a row.
package narrator

import "strings"

// Module produces inline content for a single item.
type Module interface {
	Render() string
}

// BreakModule forces a line break in composition.
type BreakModule struct{}

// Render returns empty; breaks are handled by Compose.
func (BreakModule) Render() string { return "" }

// Compose space-joins modules until a BreakModule forces a new line.
func Compose(modules []Module) string {
	var lines []string
	var current []string

	for _, m := range modules {
		if _, isBreak := m.(BreakModule); isBreak {
			if len(current) > 0 {
				lines = append(lines, strings.Join(current, " "))
				current = nil
			}
			continue
		}
		if s := m.Render(); s != "" {
			current = append(current, s)
		}
	}
	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}
	return strings.Join(lines, "\n")
}

// Rows inserts a BreakModule after every perRow items. perRow <= 0 keeps
// everything on one line.
func Rows(modules []Module, perRow int) []Module {
	if perRow <= 0 {
		return modules
	}
	out := make([]Module, 0, len(modules)+len(modules)/perRow)
	for i, m := range modules {
		if i > 0 && i%perRow == 0 {
			out = append(out, BreakModule{})
		}
		out = append(out, m)
	}
	return out
}
