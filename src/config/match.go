package config

import (
	"fmt"
	"regexp"
	"strings"
)

// regexMetaChars are characters that indicate a string is an intentional regex.
const regexMetaChars = `^$.*+?()[]{}|\`

// containsRegexMeta returns true if s contains any regex metacharacters.
func containsRegexMeta(s string) bool {
	return strings.ContainsAny(s, regexMetaChars)
}

// CompiledPatterns holds pre-compiled include and exclude patterns for
// selecting badge items by name.
type CompiledPatterns struct {
	Include []*regexp.Regexp
	Exclude []*regexp.Regexp
}

// CompilePatterns compiles name selectors. A "!" prefix excludes. Plain
// names match exactly; anything with regex metacharacters is a regex
// anchored to the whole name.
func CompilePatterns(patterns []string) (*CompiledPatterns, error) {
	cp := &CompiledPatterns{}
	for _, p := range patterns {
		negate := false
		if rest, ok := strings.CutPrefix(p, "!"); ok {
			negate = true
			p = rest
		}
		expr := regexp.QuoteMeta(p)
		if containsRegexMeta(p) {
			expr = p
		}
		re, err := regexp.Compile("^(?:" + expr + ")$")
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", p, err)
		}
		if negate {
			cp.Exclude = append(cp.Exclude, re)
		} else {
			cp.Include = append(cp.Include, re)
		}
	}
	return cp, nil
}

// Match evaluates the compiled patterns against a value.
// Exclude-first semantics: if any exclude matches, rejected.
// Empty include list = everything not excluded passes.
func (cp *CompiledPatterns) Match(value string) bool {
	if cp == nil {
		return true
	}

	for _, re := range cp.Exclude {
		if re.MatchString(value) {
			return false
		}
	}

	if len(cp.Include) == 0 {
		return true
	}

	for _, re := range cp.Include {
		if re.MatchString(value) {
			return true
		}
	}
	return false
}
