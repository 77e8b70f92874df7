package demesresolve

import (
	"github.com/katalvlaran/demes/demesgraph"
	"github.com/katalvlaran/demes/demeserr"
	"github.com/katalvlaran/demes/demesunresolved"
	"github.com/katalvlaran/demes/demesvalue"
	"gopkg.in/yaml.v3"
)

// Builder accumulates an under-specified graph programmatically, as an
// alternative to decoding one from YAML/JSON. It does no validation
// beyond accumulation; every check happens in Resolve. It lives in
// demesresolve rather than demesunresolved
// because Resolve must call back into this package's own Resolve
// function; demesunresolved must stay a leaf package.
type Builder struct {
	graph demesunresolved.Graph
}

// NewBuilder returns a Builder for a graph with generations time units,
// matching the default an omitted "time_units" key would resolve to.
func NewBuilder() *Builder {
	return &Builder{graph: demesunresolved.Graph{TimeUnits: demesgraph.Generations}}
}

// SetTimeUnits sets the graph's time units.
func (b *Builder) SetTimeUnits(u demesgraph.TimeUnits) *Builder {
	b.graph.TimeUnits = u
	return b
}

// SetGenerationTime sets the graph's generation_time.
func (b *Builder) SetGenerationTime(g demesvalue.GenerationTime) *Builder {
	b.graph.GenerationTime = &g
	return b
}

// SetDescription sets the graph's top-level description.
func (b *Builder) SetDescription(description string) *Builder {
	b.graph.Description = description
	return b
}

// SetDOI sets the graph's digital object identifiers.
func (b *Builder) SetDOI(doi []string) *Builder {
	b.graph.DOI = doi
	return b
}

// SetDefaults sets the graph-level default cascade.
func (b *Builder) SetDefaults(d demesunresolved.Defaults) *Builder {
	b.graph.Defaults = d
	return b
}

// SetTopLevelMetadata round-trips v through YAML encoding so the stored
// tree has the same generic map/slice/scalar shape a YAML or JSON
// decoder would have produced, keeping Builder-constructed and
// file-loaded graphs indistinguishable downstream.
func (b *Builder) SetTopLevelMetadata(v interface{}) error {
	raw, err := yaml.Marshal(v)
	if err != nil {
		return demeserr.Wrap(demeserr.KindYAML, err, "failed to marshal metadata")
	}
	var tree interface{}
	if err := yaml.Unmarshal(raw, &tree); err != nil {
		return demeserr.Wrap(demeserr.KindYAML, err, "failed to round-trip metadata through yaml")
	}
	b.graph.Metadata = tree
	return nil
}

// AddDeme appends a deme declaration. Ancestors must already have been
// added, since resolution processes demes in the order AddDeme was called.
func (b *Builder) AddDeme(d demesunresolved.Deme) *Builder {
	b.graph.Demes = append(b.graph.Demes, d)
	return b
}

// AddMigration appends a migration declaration (symmetric or asymmetric).
func (b *Builder) AddMigration(m demesunresolved.Migration) *Builder {
	b.graph.Migrations = append(b.graph.Migrations, m)
	return b
}

// AddPulse appends a pulse declaration.
func (b *Builder) AddPulse(p demesunresolved.Pulse) *Builder {
	b.graph.Pulses = append(b.graph.Pulses, p)
	return b
}

// Resolve finalises every accumulated declaration into a fully resolved
// Graph, applying the same default cascade and inference rules a
// YAML/JSON-sourced graph goes through.
func (b *Builder) Resolve() (*demesgraph.Graph, error) {
	return Resolve(&b.graph)
}
