package narrator

import (
	"fmt"
	"html"
	"strings"
)

// Format selects the markup an ImageModule renders to.
type Format string

const (
	FormatURL      Format = "url"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// ParseFormat maps a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatURL, FormatMarkdown, FormatHTML:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unknown snippet format %q (available: url, markdown, html)", s)
	}
}

// ImageModule renders a badge image reference, optionally wrapped in a link.
type ImageModule struct {
	Alt    string // image alt text
	Src    string // image URL or relative path
	Link   string // click target (empty = no link wrapper)
	Format Format // empty = markdown
}

// Render produces the snippet for this badge.
func (m ImageModule) Render() string {
	switch m.Format {
	case FormatURL:
		return m.Src
	case FormatHTML:
		img := fmt.Sprintf(`<img src="%s" alt="%s" />`, html.EscapeString(m.Src), html.EscapeString(m.Alt))
		if m.Link != "" {
			return fmt.Sprintf(`<a href="%s">%s</a>`, html.EscapeString(m.Link), img)
		}
		return img
	default:
		alt := markdownAlt.Replace(m.Alt)
		if m.Link != "" {
			return fmt.Sprintf("[![%s](%s)](%s)", alt, m.Src, m.Link)
		}
		return fmt.Sprintf("![%s](%s)", alt, m.Src)
	}
}

var markdownAlt = strings.NewReplacer(`[`, `\[`, `]`, `\]`)
