package demesgraph

import (
	"github.com/katalvlaran/demes/demeserr"
	"github.com/katalvlaran/demes/demesvalue"
)

// Pulse is an instantaneous mass-migration event: at a single backward
// time, a dest deme's population is partially replaced by individuals
// drawn from one or more source demes.
type Pulse struct {
	sources       []string
	sourceIndexes []int
	dest          string
	destIndex     int
	time          demesvalue.Time
	proportions   []demesvalue.Proportion
}

// NewPulse validates and constructs a Pulse, checking the invariants
// local to one pulse: non-empty sources, proportions matching sources in
// length, sources pairwise distinct and disjoint from dest, and
// proportions summing to at most 1 (within demesvalue.Tolerance). Source
// and dest existence at the pulse time is the resolver's job.
func NewPulse(
	sources []string,
	sourceIndexes []int,
	dest string,
	destIndex int,
	time demesvalue.Time,
	proportions []demesvalue.Proportion,
) (Pulse, error) {
	if len(sources) == 0 {
		return Pulse{}, demeserr.New(demeserr.KindPulse, "pulse must have at least one source")
	}
	if len(sources) != len(sourceIndexes) || len(sources) != len(proportions) {
		return Pulse{}, demeserr.New(demeserr.KindPulse, "pulse sources/sourceIndexes/proportions must have matching length")
	}
	seen := make(map[string]struct{}, len(sources))
	for _, s := range sources {
		if s == dest {
			return Pulse{}, demeserr.New(demeserr.KindPulse, "pulse source %q must not equal dest", s)
		}
		if _, dup := seen[s]; dup {
			return Pulse{}, demeserr.New(demeserr.KindPulse, "pulse sources must be pairwise distinct, %q repeated", s)
		}
		seen[s] = struct{}{}
	}
	var sum float64
	for _, p := range proportions {
		sum += p.Float64()
	}
	if sum > 1+demesvalue.Tolerance {
		return Pulse{}, demeserr.New(demeserr.KindPulse, "pulse proportions must sum to <= 1, got %v", sum)
	}

	return Pulse{
		sources:       append([]string(nil), sources...),
		sourceIndexes: append([]int(nil), sourceIndexes...),
		dest:          dest,
		destIndex:     destIndex,
		time:          time,
		proportions:   append([]demesvalue.Proportion(nil), proportions...),
	}, nil
}

// Sources returns the pulse's source deme names, in declaration order.
func (p Pulse) Sources() []string { return p.sources }

// SourceIndexes returns the graph-level indexes of the pulse's sources,
// parallel to Sources() and Proportions().
func (p Pulse) SourceIndexes() []int { return p.sourceIndexes }

// Dest returns the pulse's destination deme name.
func (p Pulse) Dest() string { return p.dest }

// DestIndex returns the graph-level index of the destination deme.
func (p Pulse) DestIndex() int { return p.destIndex }

// Time returns the pulse's backward time.
func (p Pulse) Time() demesvalue.Time { return p.time }

// Proportions returns the pulse's source proportions, parallel to Sources().
func (p Pulse) Proportions() []demesvalue.Proportion { return p.proportions }

// Equal reports structural equality between two pulses.
func (p Pulse) Equal(other Pulse) bool {
	if p.dest != other.dest || !p.time.Equal(other.time) {
		return false
	}
	if len(p.sources) != len(other.sources) {
		return false
	}
	for i := range p.sources {
		if p.sources[i] != other.sources[i] {
			return false
		}
		if !p.proportions[i].Equal(other.proportions[i]) {
			return false
		}
	}
	return true
}
