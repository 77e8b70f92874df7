package demesgraph

import (
	"github.com/katalvlaran/demes/demeserr"
	"gopkg.in/yaml.v3"
)

// Metadata is the graph's opaque, free-form metadata tree: whatever a
// caller's builder set via SetTopLevelMetadata, or whatever a YAML/JSON
// document's top-level "metadata" key contained. A nil *Metadata means
// the graph carries none.
type Metadata struct {
	tree interface{}
}

// NewMetadata wraps a decoded tree (map[string]interface{}, slices,
// scalars) as Metadata. Returns nil if tree is nil or an empty map, so
// that a graph with no metadata key round-trips to a nil Metadata.
func NewMetadata(tree interface{}) *Metadata {
	if tree == nil {
		return nil
	}
	if m, ok := tree.(map[string]interface{}); ok && len(m) == 0 {
		return nil
	}
	return &Metadata{tree: tree}
}

// Tree returns the raw decoded metadata tree, or nil if m is nil.
func (m *Metadata) Tree() interface{} {
	if m == nil {
		return nil
	}
	return m.tree
}

// AsYAMLString renders the metadata tree as a YAML document, so a caller
// can decode it into their own struct.
func (m *Metadata) AsYAMLString() (string, error) {
	if m == nil {
		return "", demeserr.New(demeserr.KindGraph, "graph has no metadata")
	}
	out, err := yaml.Marshal(m.tree)
	if err != nil {
		return "", demeserr.Wrap(demeserr.KindYAML, err, "failed to marshal metadata")
	}
	return string(out), nil
}

// Equal reports deep equality between two metadata trees via their YAML
// rendering, since map key order in Go is unspecified but YAML marshaling
// of map[string]interface{} is alphabetically deterministic.
func (m *Metadata) Equal(other *Metadata) bool {
	if m == nil || other == nil {
		return m == nil && other == nil
	}
	a, errA := m.AsYAMLString()
	b, errB := other.AsYAMLString()
	return errA == nil && errB == nil && a == b
}
