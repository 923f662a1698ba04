package config

import "testing"

func TestCompiledPatterns(t *testing.T) {
	names := []string{"claude", "claude-dark", "gemini", "cursor"}

	tests := []struct {
		name     string
		patterns []string
		want     []string
	}{
		{name: "none", want: names},
		{name: "exact", patterns: []string{"claude"}, want: []string{"claude"}},
		{name: "regex", patterns: []string{"claude.*"}, want: []string{"claude", "claude-dark"}},
		{name: "alternation", patterns: []string{"gemini|cursor"}, want: []string{"gemini", "cursor"}},
		{name: "exclude only", patterns: []string{"!cursor"}, want: []string{"claude", "claude-dark", "gemini"}},
		{name: "exclude wins", patterns: []string{"c.*", "!.*-dark"}, want: []string{"claude", "cursor"}},
		{name: "no match", patterns: []string{"openai"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cp, err := CompilePatterns(tt.patterns)
			if err != nil {
				t.Fatalf("CompilePatterns: %v", err)
			}
			var got []string
			for _, n := range names {
				if cp.Match(n) {
					got = append(got, n)
				}
			}
			if len(got) != len(tt.want) {
				t.Fatalf("matched %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("matched %q, want %q", got, tt.want)
				}
			}
		})
	}

	if _, err := CompilePatterns([]string{"(unclosed"}); err == nil {
		t.Error("expected error for invalid regex")
	}
	var nilPatterns *CompiledPatterns
	if !nilPatterns.Match("anything") {
		t.Error("nil patterns must match")
	}
}
