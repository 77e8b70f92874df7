package demesgraph

import (
	"github.com/katalvlaran/demes/demeserr"
	"github.com/katalvlaran/demes/demesvalue"
)

// Deme is a named population existing over a contiguous backward-time
// interval, divided into one or more epochs.
type Deme struct {
	name            string
	description     string
	startTime       demesvalue.Time
	epochs          []Epoch
	ancestors       []string
	ancestorIndexes []int
	proportions     []demesvalue.Proportion
}

// NewDeme validates and constructs a Deme. It checks the invariants local
// to a single deme: non-empty name, non-empty epoch chain, the first
// epoch starting at the deme's start_time, each subsequent epoch chaining
// from the previous one's end_time, and (when ancestors are present) that
// ancestors/ancestorIndexes/proportions all have matching length and that
// two or more ancestors' proportions sum to 1 within demesvalue.Tolerance.
// Ancestor existence and start_time-vs-ancestor validity are the
// resolver's job, since they require the rest of the graph.
func NewDeme(
	name, description string,
	startTime demesvalue.Time,
	epochs []Epoch,
	ancestors []string,
	ancestorIndexes []int,
	proportions []demesvalue.Proportion,
) (Deme, error) {
	if name == "" {
		return Deme{}, demeserr.New(demeserr.KindDeme, "deme name must not be empty")
	}
	if len(epochs) == 0 {
		return Deme{}, demeserr.New(demeserr.KindDeme, "deme %q must have at least one epoch", name)
	}
	if !epochs[0].StartTime().Equal(startTime) {
		return Deme{}, demeserr.New(demeserr.KindEpoch,
			"deme %q: first epoch start_time (%s) must equal deme start_time (%s)",
			name, epochs[0].StartTime(), startTime)
	}
	for i := 1; i < len(epochs); i++ {
		if !epochs[i].StartTime().Equal(epochs[i-1].EndTime()) {
			return Deme{}, demeserr.New(demeserr.KindEpoch,
				"deme %q: epoch %d start_time (%s) must equal epoch %d end_time (%s)",
				name, i, epochs[i].StartTime(), i-1, epochs[i-1].EndTime())
		}
	}
	if len(ancestors) != len(ancestorIndexes) {
		return Deme{}, demeserr.New(demeserr.KindDeme, "deme %q: ancestors/ancestorIndexes length mismatch", name)
	}
	if len(ancestors) > 0 && len(proportions) != len(ancestors) {
		return Deme{}, demeserr.New(demeserr.KindDeme, "deme %q: proportions must match ancestors in length", name)
	}
	if startTime.IsInfinite() && len(ancestors) > 0 {
		return Deme{}, demeserr.New(demeserr.KindDeme, "deme %q: infinite start_time must have no ancestors", name)
	}
	if len(ancestors) >= 2 {
		var sum float64
		for _, p := range proportions {
			sum += p.Float64()
		}
		if absDiff(sum, 1) > demesvalue.Tolerance {
			return Deme{}, demeserr.New(demeserr.KindDeme,
				"deme %q: ancestor proportions must sum to 1, got %v", name, sum)
		}
	}

	return Deme{
		name:            name,
		description:     description,
		startTime:       startTime,
		epochs:          append([]Epoch(nil), epochs...),
		ancestors:       append([]string(nil), ancestors...),
		ancestorIndexes: append([]int(nil), ancestorIndexes...),
		proportions:     append([]demesvalue.Proportion(nil), proportions...),
	}, nil
}

func absDiff(a, b float64) float64 {
	d := a - b
	if d < 0 {
		return -d
	}
	return d
}

// Name returns the deme's unique name.
func (d Deme) Name() string { return d.name }

// Description returns the deme's free-text description, empty if none.
func (d Deme) Description() string { return d.description }

// StartTime returns the deme's start time (first epoch's start_time).
func (d Deme) StartTime() demesvalue.Time { return d.startTime }

// EndTime returns the deme's end time (last epoch's end_time).
func (d Deme) EndTime() demesvalue.Time { return d.epochs[len(d.epochs)-1].EndTime() }

// TimeInterval returns the deme's (start_time, end_time] span.
func (d Deme) TimeInterval() Interval {
	return Interval{Start: d.startTime.Float64(), End: d.EndTime().Float64()}
}

// Epochs returns the deme's ordered, non-empty epoch list.
func (d Deme) Epochs() []Epoch { return d.epochs }

// Ancestors returns the deme's ancestor deme names, in declaration order.
func (d Deme) Ancestors() []string { return d.ancestors }

// AncestorIndexes returns the graph-level indexes of the deme's ancestors,
// parallel to Ancestors() and Proportions().
func (d Deme) AncestorIndexes() []int { return d.ancestorIndexes }

// Proportions returns the deme's ancestry proportions, parallel to Ancestors().
func (d Deme) Proportions() []demesvalue.Proportion { return d.proportions }

// StartSize returns the deme's first epoch's start_size.
func (d Deme) StartSize() demesvalue.DemeSize { return d.epochs[0].StartSize() }

// EndSize returns the deme's last epoch's end_size.
func (d Deme) EndSize() demesvalue.DemeSize { return d.epochs[len(d.epochs)-1].EndSize() }

// Equal reports structural equality between two demes.
func (d Deme) Equal(other Deme) bool {
	if d.name != other.name || d.description != other.description {
		return false
	}
	if !d.startTime.Equal(other.startTime) {
		return false
	}
	if len(d.epochs) != len(other.epochs) {
		return false
	}
	for i := range d.epochs {
		if !d.epochs[i].Equal(other.epochs[i]) {
			return false
		}
	}
	if len(d.ancestors) != len(other.ancestors) {
		return false
	}
	for i := range d.ancestors {
		if d.ancestors[i] != other.ancestors[i] || d.ancestorIndexes[i] != other.ancestorIndexes[i] {
			return false
		}
		if !d.proportions[i].Equal(other.proportions[i]) {
			return false
		}
	}
	return true
}
