package icons

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func testCatalog() *Catalog {
	return NewCatalog("1.2.3", []Record{
		{ID: "claude", Title: "Claude", FullTitle: "Claude", Color: "#D97757", Group: GroupModel},
		{ID: "openai", Title: "OpenAI", FullTitle: "OpenAI", Color: "#000", Group: GroupProvider},
		{ID: "copilot", Title: "Copilot", FullTitle: "GitHub Copilot", Color: "#000", Group: GroupApplication},
		{ID: "claude-dup", Title: "CLAUDE", Group: GroupModel},
	}, map[string]*Geometry{
		"Claude": {Paths: []PathSegment{{D: "M0 0h24v24H0z"}}},
		"ghost":  nil,
	})
}

func TestClassifyPaint(t *testing.T) {
	tests := []struct {
		name    string
		fill    string
		fillVar string
		shared  bool
		want    Paint
	}{
		{name: "empty", want: Paint{Kind: PaintInherit}},
		{name: "currentColor", fill: "currentColor", want: Paint{Kind: PaintInherit}},
		{name: "inherit", fill: " INHERIT ", want: Paint{Kind: PaintInherit}},
		{name: "literal", fill: "#FF0000", want: Paint{Kind: PaintFill, Color: "#FF0000"}},
		{name: "var", fillVar: "a", want: Paint{Kind: PaintGradient, Ref: "a"}},
		{name: "var keeps color", fill: "#111", fillVar: "a", want: Paint{Kind: PaintGradient, Ref: "a", Color: "#111"}},
		{name: "shared wins", fill: "#111", fillVar: "a", shared: true, want: Paint{Kind: PaintSharedGradient, Color: "#111"}},
		{name: "shared drops sentinel", fill: "currentColor", shared: true, want: Paint{Kind: PaintSharedGradient}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyPaint(tt.fill, tt.fillVar, tt.shared)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("paint mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSharedVar(t *testing.T) {
	var nilDefs *GradientDefs
	if v, ok := nilDefs.SharedVar(); ok || v != "" {
		t.Errorf("nil defs SharedVar = %q, %v", v, ok)
	}

	defs := &GradientDefs{
		Linear: []LinearGradient{{}, {VarName: "lin"}},
		Radial: []RadialGradient{{VarName: "rad"}},
	}
	if v, _ := defs.SharedVar(); v != "lin" {
		t.Errorf("SharedVar = %q, want lin", v)
	}

	defs = &GradientDefs{Linear: []LinearGradient{{}}, Radial: []RadialGradient{{VarName: "rad"}}}
	if v, _ := defs.SharedVar(); v != "rad" {
		t.Errorf("SharedVar = %q, want rad", v)
	}
}

func TestResolve(t *testing.T) {
	c := testCatalog()

	tests := []struct {
		name      string
		wantID    string
		wantFound bool
		wantGeo   bool
		wantTitle string
	}{
		{name: "claude", wantID: "claude", wantFound: true, wantGeo: true, wantTitle: "Claude"},
		{name: "CLAUDE", wantID: "claude", wantFound: true, wantGeo: true, wantTitle: "Claude"},
		{name: "openai", wantID: "openai", wantFound: true, wantTitle: "OpenAI"},
		{name: "copilot", wantID: "copilot", wantFound: true, wantTitle: "Copilot"},
		{name: "GitHub Copilot", wantID: "GitHub Copilot", wantTitle: "GitHub Copilot"},
		{name: "nope", wantID: "nope", wantTitle: "nope"},
		{name: "ghost", wantID: "ghost", wantTitle: "ghost"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Resolve(c, tt.name)
			if res.ID() != tt.wantID || res.Found != tt.wantFound || (res.Geometry != nil) != tt.wantGeo || res.Title() != tt.wantTitle {
				t.Errorf("Resolve(%q) = id %q found %v geo %v title %q", tt.name, res.ID(), res.Found, res.Geometry != nil, res.Title())
			}
		})
	}

	if res := Resolve(nil, "claude"); res.Found || res.Geometry != nil || res.ID() != "claude" {
		t.Errorf("Resolve(nil) = %+v", res)
	}
}

func TestCatalogQueries(t *testing.T) {
	c := testCatalog()

	if c.Len() != 4 || c.Version() != "1.2.3" {
		t.Fatalf("Len = %d, Version = %q", c.Len(), c.Version())
	}

	ids := func(rs []Record) []string {
		var out []string
		for _, r := range rs {
			out = append(out, r.ID)
		}
		return out
	}

	if diff := cmp.Diff([]string{"claude", "claude-dup"}, ids(c.ByGroup(GroupModel))); diff != "" {
		t.Errorf("ByGroup mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"copilot"}, ids(c.Search("github", ""))); diff != "" {
		t.Errorf("Search full title mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"claude", "claude-dup"}, ids(c.Search("CLA", ""))); diff != "" {
		t.Errorf("Search mismatch (-want +got):\n%s", diff)
	}
	if got := c.Search("claude", GroupProvider); len(got) != 0 {
		t.Errorf("Search with group = %v, want none", ids(got))
	}

	recs := c.Records()
	recs[0].ID = "mutated"
	if r, _ := c.ResolveByName("claude"); r.ID != "claude" {
		t.Error("Records returned shared backing array")
	}
}

func TestGroupLabel(t *testing.T) {
	if got := GroupApplication.Label(); got != "Applications & Tools" {
		t.Errorf("Label = %q", got)
	}
	if got := Group("other").Label(); got != "other" {
		t.Errorf("unknown Label = %q", got)
	}
}

const tocJSON = `[
  {"id": "claude", "title": "Claude", "fullTitle": "Claude", "color": "#D97757", "group": "model"},
  {"id": "gemini", "title": "Gemini", "fullTitle": "Google Gemini", "color": "#3186FF", "group": "model"}
]`

const pathsJSON = `{
  "claude": {"viewBox": "0 0 24 24", "paths": [{"d": "M1 1h22v22H1z", "fill": "#D97757"}]},
  "gemini": {
    "paths": [
      {"d": "M0 0h24v24H0z", "fillVar": "a", "fillRule": "evenodd", "opacity": 0.5},
      {"d": "M2 2h20v20H2z", "sharedGradient": true}
    ],
    "defs": {
      "linearGradients": [{"type": "linear", "idVar": "a", "x1": "0", "stops": [{"offset": "0", "stopColor": "#fff", "stopOpacity": 0.25}]}],
      "radialGradients": [{"type": "radial", "cx": "12", "stops": []}]
    },
    "colorPrimary": "#3186FF"
  }
}`

func TestLoadFSJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"toc.json":        {Data: []byte(tocJSON)},
		"icon-paths.json": {Data: []byte(pathsJSON)},
		"manifest.json":   {Data: []byte(`{"version": "1.75.0"}`)},
	}
	c, err := LoadFS(fsys)
	if err != nil {
		t.Fatalf("LoadFS: %v", err)
	}
	if c.Version() != "1.75.0" || c.Len() != 2 {
		t.Fatalf("Version = %q, Len = %d", c.Version(), c.Len())
	}

	g, ok := c.GeometryByKey("GEMINI")
	if !ok {
		t.Fatal("gemini geometry missing")
	}
	half, quarter := 0.5, 0.25
	want := &Geometry{
		ColorPrimary: "#3186FF",
		Paths: []PathSegment{
			{D: "M0 0h24v24H0z", Paint: Paint{Kind: PaintGradient, Ref: "a"}, FillRule: "evenodd", Opacity: &half},
			{D: "M2 2h20v20H2z", Paint: Paint{Kind: PaintSharedGradient}},
		},
		Defs: &GradientDefs{
			Linear: []LinearGradient{{VarName: "a", X1: "0", Stops: []GradientStop{{Offset: "0", StopColor: "#fff", StopOpacity: &quarter}}}},
			Radial: []RadialGradient{{CX: "12", Stops: []GradientStop{}}},
		},
	}
	if diff := cmp.Diff(want, g); diff != "" {
		t.Errorf("geometry mismatch (-want +got):\n%s", diff)
	}
	if !g.HasGradients() {
		t.Error("HasGradients = false")
	}
}

func TestLoadFSYAML(t *testing.T) {
	fsys := fstest.MapFS{
		"toc.yaml": {Data: []byte(`
- id: deepseek
  title: DeepSeek
  fullTitle: DeepSeek
  color: "#4D6BFE"
  group: model
`)},
		"icon-paths.yml": {Data: []byte(`
deepseek:
  paths:
    - d: M0 0h24v24H0z
      fill: currentColor
  monoPath: M0 0h24v24H0z
`)},
	}
	c, err := LoadFS(fsys)
	if err != nil {
		t.Fatalf("LoadFS: %v", err)
	}
	if c.Version() != "" {
		t.Errorf("Version = %q, want empty without manifest", c.Version())
	}
	res := Resolve(c, "DeepSeek")
	if !res.Found || res.Geometry == nil {
		t.Fatalf("Resolve = %+v", res)
	}
	if res.Record.Group != GroupModel || res.Geometry.MonoPath == "" {
		t.Errorf("record = %+v, geometry = %+v", res.Record, res.Geometry)
	}
	if k := res.Geometry.Paths[0].Paint.Kind; k != PaintInherit {
		t.Errorf("paint kind = %v, want inherit", k)
	}
}

func TestLoadFSErrors(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
		want error
	}{
		{
			name: "missing toc",
			fsys: fstest.MapFS{"icon-paths.json": {Data: []byte(`{}`)}},
			want: ErrDatasetUnavailable,
		},
		{
			name: "missing paths",
			fsys: fstest.MapFS{"toc.json": {Data: []byte(`[]`)}},
			want: ErrDatasetUnavailable,
		},
		{
			name: "bad json",
			fsys: fstest.MapFS{"toc.json": {Data: []byte(`[{`)}, "icon-paths.json": {Data: []byte(`{}`)}},
			want: ErrDatasetMalformed,
		},
		{
			name: "duplicate id",
			fsys: fstest.MapFS{
				"toc.json":        {Data: []byte(`[{"id":"a"},{"id":"A"}]`)},
				"icon-paths.json": {Data: []byte(`{}`)},
			},
			want: ErrDatasetMalformed,
		},
		{
			name: "empty id",
			fsys: fstest.MapFS{
				"toc.json":        {Data: []byte(`[{"id":" "}]`)},
				"icon-paths.json": {Data: []byte(`{}`)},
			},
			want: ErrDatasetMalformed,
		},
		{
			name: "bad viewBox",
			fsys: fstest.MapFS{
				"toc.json":        {Data: []byte(`[]`)},
				"icon-paths.json": {Data: []byte(`{"x":{"viewBox":"0 0 32 32","paths":[{"d":"M0 0"}]}}`)},
			},
			want: ErrDatasetMalformed,
		},
		{
			name: "empty path data",
			fsys: fstest.MapFS{
				"toc.json":        {Data: []byte(`[]`)},
				"icon-paths.json": {Data: []byte(`{"x":{"paths":[{"d":""}]}}`)},
			},
			want: ErrDatasetMalformed,
		},
		{
			name: "bad fill rule",
			fsys: fstest.MapFS{
				"toc.json":        {Data: []byte(`[]`)},
				"icon-paths.json": {Data: []byte(`{"x":{"paths":[{"d":"M0 0","fillRule":"winding"}]}}`)},
			},
			want: ErrDatasetMalformed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFS(tt.fsys)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	for name, data := range map[string]string{
		"toc.json":        tocJSON,
		"icon-paths.json": pathsJSON,
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if _, err := LoadDir(dir); err != nil {
		t.Fatalf("LoadDir: %v", err)
	}

	if _, err := LoadDir(filepath.Join(dir, "missing")); !errors.Is(err, ErrDatasetUnavailable) {
		t.Errorf("missing dir err = %v", err)
	}
	if _, err := LoadDir(filepath.Join(dir, "toc.json")); !errors.Is(err, ErrDatasetUnavailable) {
		t.Errorf("file as dir err = %v", err)
	}
}

func TestCheckVersion(t *testing.T) {
	c := NewCatalog("1.75.0", nil, nil)
	tests := []struct {
		name       string
		catalog    *Catalog
		constraint string
		wantErr    error
		anyErr     bool
	}{
		{name: "empty constraint", catalog: c},
		{name: "satisfied", catalog: c, constraint: ">= 1.70, < 2"},
		{name: "too old", catalog: c, constraint: ">= 2.0.0", wantErr: ErrDatasetVersion},
		{name: "no version", catalog: NewCatalog("", nil, nil), constraint: "^1", wantErr: ErrDatasetVersion},
		{name: "bad version", catalog: NewCatalog("latest", nil, nil), constraint: "^1", wantErr: ErrDatasetMalformed},
		{name: "bad constraint", catalog: c, constraint: "not a constraint", anyErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckVersion(tt.catalog, tt.constraint)
			switch {
			case tt.anyErr:
				if err == nil {
					t.Error("expected error")
				}
			case tt.wantErr == nil:
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			default:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("err = %v, want %v", err, tt.wantErr)
				}
			}
		})
	}
}
