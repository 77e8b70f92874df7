package demesresolve

import (
	"sort"

	"github.com/katalvlaran/demes/demesgraph"
	"github.com/katalvlaran/demes/demeserr"
	"github.com/katalvlaran/demes/demesunresolved"
	"github.com/katalvlaran/demes/demesvalue"
)

// resolvePulses applies the graph-level default
// cascade per pulse, checks source and dest existence at the pulse time,
// then stably sorts descending by time so that ties preserve declaration
// order. The forward engine relies on that canonical order: pulses at
// the same time are not commutative.
func resolvePulses(
	ups []demesunresolved.Pulse,
	graphDefault demesunresolved.Pulse,
	demes []demesgraph.Deme,
	nameIndex map[string]int,
) ([]demesgraph.Pulse, error) {
	resolved := make([]demesgraph.Pulse, 0, len(ups))

	for _, up := range ups {
		merged := mergePulse(up, graphDefault)

		if merged.Dest == nil {
			return nil, demeserr.New(demeserr.KindPulse, "pulse must specify a dest deme")
		}
		if merged.Time == nil {
			return nil, demeserr.New(demeserr.KindPulse, "pulse must specify a time")
		}
		if len(merged.Sources) == 0 {
			return nil, demeserr.New(demeserr.KindPulse, "pulse must specify at least one source deme")
		}
		if len(merged.Proportions) != len(merged.Sources) {
			return nil, demeserr.New(demeserr.KindPulse, "pulse proportions must match sources in length")
		}

		destIdx, ok := nameIndex[*merged.Dest]
		if !ok {
			return nil, demeserr.New(demeserr.KindPulse, "pulse dest %q is not a declared deme", *merged.Dest)
		}
		sourceIdx := make([]int, len(merged.Sources))
		for i, s := range merged.Sources {
			idx, ok := nameIndex[s]
			if !ok {
				return nil, demeserr.New(demeserr.KindPulse, "pulse source %q is not a declared deme", s)
			}
			sourceIdx[i] = idx
		}

		t := *merged.Time
		if !demeExistsAt(demes[destIdx], t) {
			return nil, demeserr.New(demeserr.KindPulse, "pulse dest %q does not exist at time %s", *merged.Dest, t)
		}
		for i, idx := range sourceIdx {
			if !demeExistsAt(demes[idx], t) {
				return nil, demeserr.New(demeserr.KindPulse, "pulse source %q does not exist at time %s", merged.Sources[i], t)
			}
		}

		p, err := demesgraph.NewPulse(merged.Sources, sourceIdx, *merged.Dest, destIdx, t, merged.Proportions)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, p)
	}

	sort.SliceStable(resolved, func(i, j int) bool {
		return resolved[j].Time().Less(resolved[i].Time())
	})
	return resolved, nil
}

// demeExistsAt reports whether a deme is extant at backward time t, i.e.
// end_time <= t <= start_time.
func demeExistsAt(d demesgraph.Deme, t demesvalue.Time) bool {
	return !t.Less(d.EndTime()) && !d.StartTime().Less(t)
}
