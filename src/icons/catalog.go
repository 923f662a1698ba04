package icons

import "strings"

// Dataset is the read-only lookup surface the badge composer depends on.
type Dataset interface {
	// ResolveByName finds a record whose id or title equals name, ignoring case.
	ResolveByName(name string) (Record, bool)
	// GeometryByKey returns the artwork stored under the lowercased key.
	GeometryByKey(key string) (*Geometry, bool)
}

// Catalog is an in-memory Dataset. It is safe for concurrent readers once built.
type Catalog struct {
	version  string
	records  []Record
	geometry map[string]*Geometry
}

var _ Dataset = (*Catalog)(nil)

// NewCatalog builds a catalog from records and geometry. Geometry keys are
// lowercased; records keep their dataset order.
func NewCatalog(version string, records []Record, geometry map[string]*Geometry) *Catalog {
	geo := make(map[string]*Geometry, len(geometry))
	for k, g := range geometry {
		if g == nil {
			continue
		}
		geo[strings.ToLower(k)] = g
	}
	recs := make([]Record, len(records))
	copy(recs, records)
	return &Catalog{version: version, records: recs, geometry: geo}
}

// Version returns the dataset version string from the manifest, if any.
func (c *Catalog) Version() string { return c.version }

// Len returns the number of catalog records.
func (c *Catalog) Len() int { return len(c.records) }

// Records returns a copy of all records in dataset order.
func (c *Catalog) Records() []Record {
	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}

// ResolveByName implements Dataset. The first match wins.
func (c *Catalog) ResolveByName(name string) (Record, bool) {
	for _, r := range c.records {
		if strings.EqualFold(r.ID, name) || strings.EqualFold(r.Title, name) {
			return r, true
		}
	}
	return Record{}, false
}

// GeometryByKey implements Dataset.
func (c *Catalog) GeometryByKey(key string) (*Geometry, bool) {
	g, ok := c.geometry[strings.ToLower(key)]
	return g, ok
}

// ByGroup returns the records in one group.
func (c *Catalog) ByGroup(g Group) []Record {
	var out []Record
	for _, r := range c.records {
		if r.Group == g {
			out = append(out, r)
		}
	}
	return out
}

// Search returns records whose id, title or full title contains query,
// ignoring case. An empty group matches every group.
func (c *Catalog) Search(query string, g Group) []Record {
	q := strings.ToLower(query)
	var out []Record
	for _, r := range c.records {
		if g != "" && r.Group != g {
			continue
		}
		if strings.Contains(strings.ToLower(r.ID), q) ||
			strings.Contains(strings.ToLower(r.Title), q) ||
			strings.Contains(strings.ToLower(r.FullTitle), q) {
			out = append(out, r)
		}
	}
	return out
}

// Resolved is the outcome of resolving a requested icon name.
type Resolved struct {
	Name     string    // the name as requested
	Record   Record    // zero value when Found is false
	Found    bool
	Geometry *Geometry // nil when the dataset has no artwork for the id
}

// ID returns the record id, or the requested name verbatim when nothing matched.
func (r Resolved) ID() string {
	if r.Found {
		return r.Record.ID
	}
	return r.Name
}

// Title returns the record title, or the requested name when nothing matched.
func (r Resolved) Title() string {
	if r.Found && r.Record.Title != "" {
		return r.Record.Title
	}
	return r.Name
}

// Resolve looks name up in ds and fetches its geometry. A miss is not an
// error: the returned value simply has Found false and/or a nil Geometry.
func Resolve(ds Dataset, name string) Resolved {
	res := Resolved{Name: name}
	if ds == nil {
		return res
	}
	res.Record, res.Found = ds.ResolveByName(name)
	if g, ok := ds.GeometryByKey(res.ID()); ok {
		res.Geometry = g
	}
	return res
}
