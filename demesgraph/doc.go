// Package demesgraph is the immutable, queryable resolved-graph model.
// A *Graph is produced exclusively by
// github.com/katalvlaran/demes/demesresolve.Resolve and never mutates
// after construction, so it is safe to share by reference across
// goroutines without locking.
//
// The constructors in this package (NewEpoch, NewDeme,
// NewAsymmetricMigration, NewPulse, NewGraph) check only structural,
// single-entity invariants (epoch chain contiguity, pulse proportion
// shape, duplicate deme names). Cross-entity invariants that require
// looking at the whole graph at once — ancestor existence, migration
// overlap, incoming-rate sums — are the resolver's job and are never
// duplicated here.
package demesgraph
