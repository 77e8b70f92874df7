package demesgraph

import (
	"github.com/katalvlaran/demes/demeserr"
	"github.com/katalvlaran/demes/demesvalue"
)

// Graph is the fully resolved, immutable demes model. It is produced
// exclusively by demesresolve.Resolve and is safe to share by reference
// from any number of goroutines: nothing mutates a Graph's fields after
// NewGraph returns.
type Graph struct {
	timeUnits      TimeUnits
	generationTime demesvalue.GenerationTime
	description    string
	doi            []string
	metadata       *Metadata
	demes          []Deme
	nameIndex      map[string]int
	migrations     []AsymmetricMigration
	pulses         []Pulse
}

// NewGraph validates and assembles a resolved Graph from already-resolved
// components. It enforces the one graph-wide structural invariant that
// does not belong to any single deme/migration/pulse: at least one deme,
// and no two demes sharing a name (names are assumed unique by
// construction order, but we check defensively since NewGraph is the
// last gate before a Graph escapes into caller code).
func NewGraph(
	timeUnits TimeUnits,
	generationTime demesvalue.GenerationTime,
	description string,
	doi []string,
	metadata *Metadata,
	demes []Deme,
	migrations []AsymmetricMigration,
	pulses []Pulse,
) (*Graph, error) {
	if len(demes) == 0 {
		return nil, demeserr.New(demeserr.KindGraph, "graph must have at least one deme")
	}
	nameIndex := make(map[string]int, len(demes))
	for i, d := range demes {
		if _, dup := nameIndex[d.Name()]; dup {
			return nil, demeserr.New(demeserr.KindGraph, "duplicate deme name %q", d.Name())
		}
		nameIndex[d.Name()] = i
	}
	return &Graph{
		timeUnits:      timeUnits,
		generationTime: generationTime,
		description:    description,
		doi:            append([]string(nil), doi...),
		metadata:       metadata,
		demes:          append([]Deme(nil), demes...),
		nameIndex:      nameIndex,
		migrations:     append([]AsymmetricMigration(nil), migrations...),
		pulses:         append([]Pulse(nil), pulses...),
	}, nil
}

// TimeUnits returns the graph's time unit.
func (g *Graph) TimeUnits() TimeUnits { return g.timeUnits }

// GenerationTime returns the graph's generation_time (1.0 for Generations units).
func (g *Graph) GenerationTime() demesvalue.GenerationTime { return g.generationTime }

// Description returns the graph's top-level description and whether one was set.
func (g *Graph) Description() (string, bool) { return g.description, g.description != "" }

// DOI returns the graph's list of digital object identifiers, possibly empty.
func (g *Graph) DOI() []string { return g.doi }

// Metadata returns the graph's free-form metadata, or nil if none was set.
func (g *Graph) Metadata() *Metadata { return g.metadata }

// Demes returns the graph's demes in resolution (declaration) order.
func (g *Graph) Demes() []Deme { return g.demes }

// Deme returns the deme at the given graph-level index.
func (g *Graph) Deme(index int) (Deme, bool) {
	if index < 0 || index >= len(g.demes) {
		return Deme{}, false
	}
	return g.demes[index], true
}

// DemeIndex looks a deme up by name, returning its graph-level index.
func (g *Graph) DemeIndex(name string) (int, bool) {
	idx, ok := g.nameIndex[name]
	return idx, ok
}

// DemeByName looks a deme up by name.
func (g *Graph) DemeByName(name string) (Deme, bool) {
	idx, ok := g.nameIndex[name]
	if !ok {
		return Deme{}, false
	}
	return g.demes[idx], true
}

// Migrations returns the graph's canonical asymmetric migrations.
func (g *Graph) Migrations() []AsymmetricMigration { return g.migrations }

// Pulses returns the graph's pulses, stably sorted descending by time
// (oldest first).
func (g *Graph) Pulses() []Pulse { return g.pulses }

// NumDemes returns the number of demes in the graph.
func (g *Graph) NumDemes() int { return len(g.demes) }

// HasNonIntegerSizes reports whether any epoch's start_size or end_size
// has a non-zero fractional component.
func (g *Graph) HasNonIntegerSizes() bool {
	for _, d := range g.demes {
		for _, e := range d.Epochs() {
			if !e.StartSize().IsInteger() || !e.EndSize().IsInteger() {
				return true
			}
		}
	}
	return false
}

// Equal reports structural equality between two resolved graphs. Two
// graphs are equal iff every field compares equal component-wise,
// including deme/migration/pulse order — this is the contract
// serialisation round-trips rely on.
func (g *Graph) Equal(other *Graph) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.timeUnits != other.timeUnits || !g.generationTime.Equal(other.generationTime) {
		return false
	}
	if g.description != other.description {
		return false
	}
	if len(g.doi) != len(other.doi) {
		return false
	}
	for i := range g.doi {
		if g.doi[i] != other.doi[i] {
			return false
		}
	}
	if !g.metadata.Equal(other.metadata) {
		return false
	}
	if len(g.demes) != len(other.demes) {
		return false
	}
	for i := range g.demes {
		if !g.demes[i].Equal(other.demes[i]) {
			return false
		}
	}
	if len(g.migrations) != len(other.migrations) {
		return false
	}
	for i := range g.migrations {
		if !g.migrations[i].Equal(other.migrations[i]) {
			return false
		}
	}
	if len(g.pulses) != len(other.pulses) {
		return false
	}
	for i := range g.pulses {
		if !g.pulses[i].Equal(other.pulses[i]) {
			return false
		}
	}
	return true
}
