package demesresolve

import (
	"sort"

	"github.com/katalvlaran/demes/demesgraph"
	"github.com/katalvlaran/demes/demeserr"
	"github.com/katalvlaran/demes/demesunresolved"
	"github.com/katalvlaran/demes/demesvalue"
)

// directedPair is one (source, dest) leg produced by expanding either a
// symmetric or an asymmetric migration declaration.
type directedPair struct {
	source string
	dest   string
}

// resolveMigrations canonicalises the migration list: symmetric
// migrations expand into one AsymmetricMigration per ordered pair, each
// leg's time window defaults to the intersection of both demes'
// existence intervals, and the fully resolved set is checked for
// per-pair overlap and per-dest incoming-rate-sum violations.
func resolveMigrations(
	ums []demesunresolved.Migration,
	graphDefault demesunresolved.Migration,
	demes []demesgraph.Deme,
	nameIndex map[string]int,
) ([]demesgraph.AsymmetricMigration, error) {
	var resolved []demesgraph.AsymmetricMigration

	for _, um := range ums {
		merged := mergeMigration(um, graphDefault)

		pairs, err := expandMigrationPairs(merged)
		if err != nil {
			return nil, err
		}

		for _, pair := range pairs {
			m, err := resolveMigrationLeg(pair, merged, demes, nameIndex)
			if err != nil {
				return nil, err
			}
			resolved = append(resolved, m)
		}
	}

	if err := validateMigrationSet(resolved); err != nil {
		return nil, err
	}
	return resolved, nil
}

func expandMigrationPairs(merged demesunresolved.Migration) ([]directedPair, error) {
	if len(merged.Demes) > 0 {
		if merged.Source != nil || merged.Dest != nil {
			return nil, demeserr.New(demeserr.KindMigration,
				"migration must not specify both demes (symmetric shorthand) and source/dest")
		}
		if len(merged.Demes) < 2 {
			return nil, demeserr.New(demeserr.KindMigration, "symmetric migration requires at least 2 demes")
		}
		pairs := make([]directedPair, 0, len(merged.Demes)*(len(merged.Demes)-1))
		for i := range merged.Demes {
			for j := range merged.Demes {
				if i == j {
					continue
				}
				pairs = append(pairs, directedPair{source: merged.Demes[i], dest: merged.Demes[j]})
			}
		}
		return pairs, nil
	}
	if merged.Source == nil || merged.Dest == nil {
		return nil, demeserr.New(demeserr.KindMigration, "asymmetric migration requires both source and dest")
	}
	return []directedPair{{source: *merged.Source, dest: *merged.Dest}}, nil
}

func resolveMigrationLeg(
	pair directedPair,
	merged demesunresolved.Migration,
	demes []demesgraph.Deme,
	nameIndex map[string]int,
) (demesgraph.AsymmetricMigration, error) {
	sourceIdx, ok := nameIndex[pair.source]
	if !ok {
		return demesgraph.AsymmetricMigration{}, demeserr.New(demeserr.KindMigration,
			"migration source %q is not a declared deme", pair.source)
	}
	destIdx, ok := nameIndex[pair.dest]
	if !ok {
		return demesgraph.AsymmetricMigration{}, demeserr.New(demeserr.KindMigration,
			"migration dest %q is not a declared deme", pair.dest)
	}
	sourceDeme, destDeme := demes[sourceIdx], demes[destIdx]

	intersectionStart := minTime(sourceDeme.StartTime(), destDeme.StartTime())
	intersectionEnd := maxTime(sourceDeme.EndTime(), destDeme.EndTime())

	startTime := intersectionStart
	if merged.StartTime != nil {
		startTime = *merged.StartTime
		if intersectionStart.Less(startTime) {
			return demesgraph.AsymmetricMigration{}, demeserr.New(demeserr.KindMigration,
				"migration %s->%s: start_time (%s) exceeds both demes' existence interval", pair.source, pair.dest, startTime)
		}
	}

	endTime := intersectionEnd
	if merged.EndTime != nil {
		endTime = *merged.EndTime
		if endTime.Less(intersectionEnd) {
			return demesgraph.AsymmetricMigration{}, demeserr.New(demeserr.KindMigration,
				"migration %s->%s: end_time (%s) precedes both demes' existence interval", pair.source, pair.dest, endTime)
		}
	}

	if merged.Rate == nil {
		return demesgraph.AsymmetricMigration{}, demeserr.New(demeserr.KindMigration,
			"migration %s->%s: rate is required", pair.source, pair.dest)
	}

	return demesgraph.NewAsymmetricMigration(pair.source, pair.dest, sourceIdx, destIdx, startTime, endTime, *merged.Rate)
}

// validateMigrationSet checks the two cross-migration invariants that
// demesgraph.NewAsymmetricMigration cannot see on its own: no two
// migrations sharing a (source, dest) pair may have overlapping time
// windows, and at no instant may a deme's incoming migration rates sum
// to more than 1.
func validateMigrationSet(ms []demesgraph.AsymmetricMigration) error {
	byPair := map[[2]int][]demesgraph.AsymmetricMigration{}
	byDest := map[int][]demesgraph.AsymmetricMigration{}
	for _, m := range ms {
		key := [2]int{m.SourceIndex(), m.DestIndex()}
		byPair[key] = append(byPair[key], m)
		byDest[m.DestIndex()] = append(byDest[m.DestIndex()], m)
	}

	for _, group := range byPair {
		sort.Slice(group, func(i, j int) bool { return group[i].EndTime().Less(group[j].EndTime()) })
		for i := 1; i < len(group); i++ {
			if group[i].EndTime().Less(group[i-1].StartTime()) {
				return demeserr.New(demeserr.KindMigration,
					"migrations %s->%s have overlapping time windows", group[i].Source(), group[i].Dest())
			}
		}
	}

	for destIdx, group := range byDest {
		sampleTimes := make(map[float64]struct{}, len(group))
		for _, m := range group {
			sampleTimes[m.EndTime().Float64()] = struct{}{}
		}
		for t := range sampleTimes {
			sampleTime := demesvalue.Time(t)
			var sum float64
			for _, m := range group {
				if m.ActiveAt(sampleTime) {
					sum += m.Rate().Float64()
				}
			}
			if sum > 1+demesvalue.Tolerance {
				return demeserr.New(demeserr.KindMigration,
					"deme index %d: incoming migration rates sum to %v at time %v, exceeding 1", destIdx, sum, t)
			}
		}
	}
	return nil
}
