// Package demesunresolved mirrors the resolved model (demesgraph) but
// with every field optional. Absent fields are
// represented as nil pointers/nil slices rather than zero values, so the
// resolver (demesresolve) can tell "not provided" apart from "provided as
// zero". This package holds pure data shapes only — it performs no
// validation and no inference beyond what a YAML/JSON decoder or a
// programmatic Builder naturally accumulates.
//
// The Graph.Defaults field carries the multi-level default cascade
// (graph-level and deme-level): for each field, the resolver applies
// deme-provided > deme-level defaults > graph-level defaults >
// hard-coded defaults.
package demesunresolved
