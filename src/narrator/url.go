package narrator

import (
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sofmeright/codingbadge/src/badge"
)

// DefaultBaseURL is the endpoint placeholder used when no base URL is known.
const DefaultBaseURL = "https://your-domain.com/api/badge"

// BadgeURL builds the query URL that reproduces req against a badge endpoint
// at base. Parameters equal to their defaults are left out.
func BadgeURL(base string, req badge.Request) string {
	req = req.Normalize()

	v := url.Values{}
	v.Set("name", req.IconName)
	if req.Line1 != "" && req.Line1 != badge.DefaultLine1 {
		v.Set("line1", req.Line1)
	}
	if req.Line2 != "" && req.Line2 != req.IconName {
		v.Set("line2", req.Line2)
	}
	if req.Theme != badge.ThemeLight {
		v.Set("theme", string(req.Theme))
	}
	if req.ColorMode != badge.ColorOriginal {
		v.Set("colorMode", string(req.ColorMode))
	}
	for _, p := range []struct{ key, value string }{
		{"background", req.Colors.Background},
		{"border", req.Colors.Border},
		{"iconBg", req.Colors.IconBg},
		{"text1", req.Colors.Text1},
		{"text2", req.Colors.Text2},
		{"iconColor", req.Colors.IconColor},
	} {
		if p.value != "" {
			v.Set(p.key, p.value)
		}
	}

	if base == "" {
		base = DefaultBaseURL
	}
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + v.Encode()
}

// AltText is the alt text for a badge whose lines are line1 and line2,
// e.g. "Coding with Claude".
func AltText(line1, line2 string) string {
	line1 = strings.TrimSpace(line1)
	if line1 == "" {
		return line2
	}
	r, size := utf8.DecodeRuneInString(line1)
	return string(unicode.ToUpper(r)) + line1[size:] + " " + line2
}
