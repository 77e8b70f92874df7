package demesresolve

import (
	"github.com/katalvlaran/demes/demesgraph"
	"github.com/katalvlaran/demes/demeserr"
	"github.com/katalvlaran/demes/demesunresolved"
	"github.com/katalvlaran/demes/demesvalue"
)

// resolveDeme resolves a single deme: ancestry/proportions cascade,
// start_time inference from ancestors, and
// the epoch chain (resolveEpochs). resolved and nameIndex hold every
// deme already resolved earlier in declaration order — a deme's
// ancestors must have been declared, and therefore resolved, before it.
func resolveDeme(
	ud demesunresolved.Deme,
	defaults demesunresolved.Defaults,
	resolved []demesgraph.Deme,
	nameIndex map[string]int,
) (demesgraph.Deme, error) {
	history := mergeDemeHistory(ud.History, defaults.Deme)

	ancestors := history.Ancestors
	ancestorIndexes := make([]int, len(ancestors))
	ancestorDemes := make([]demesgraph.Deme, len(ancestors))
	seen := make(map[string]bool, len(ancestors))
	for i, name := range ancestors {
		idx, ok := nameIndex[name]
		if !ok {
			return demesgraph.Deme{}, demeserr.New(demeserr.KindDeme,
				"deme %q: ancestor %q is not a previously declared deme", ud.Name, name)
		}
		if seen[name] {
			return demesgraph.Deme{}, demeserr.New(demeserr.KindDeme,
				"deme %q: ancestor %q appears more than once", ud.Name, name)
		}
		seen[name] = true
		ancestorIndexes[i] = idx
		ancestorDemes[i] = resolved[idx]
	}

	startTime, err := resolveDemeStartTime(ud.Name, history, ancestors, ancestorDemes)
	if err != nil {
		return demesgraph.Deme{}, err
	}

	proportions, err := resolveDemeProportions(ud.Name, history.Proportions, ancestorDemes)
	if err != nil {
		return demesgraph.Deme{}, err
	}

	description := ""
	if history.Description != nil {
		description = *history.Description
	}

	if len(ud.Epochs) == 0 {
		return demesgraph.Deme{}, demeserr.New(demeserr.KindDeme, "deme %q must declare at least one epoch", ud.Name)
	}

	demeEpochDefault := demesunresolved.Epoch{}
	if ud.Defaults != nil {
		demeEpochDefault = ud.Defaults.Epoch
	}

	epochs, err := resolveEpochs(ud.Name, startTime, ud.Epochs, demeEpochDefault, defaults.Epoch)
	if err != nil {
		return demesgraph.Deme{}, err
	}

	return demesgraph.NewDeme(ud.Name, description, startTime, epochs, ancestors, ancestorIndexes, proportions)
}

// resolveDemeStartTime infers a deme's start_time when absent, and
// validates the result against each ancestor's existence interval:
// start_time must be no earlier than the ancestor's end_time (equality
// is the succession case, where the default for a single ancestor
// lands) and strictly before the ancestor's own start_time.
func resolveDemeStartTime(
	name string,
	history demesunresolved.DemeHistory,
	ancestors []string,
	ancestorDemes []demesgraph.Deme,
) (demesvalue.Time, error) {
	var startTime demesvalue.Time
	if history.StartTime != nil {
		startTime = *history.StartTime
	} else {
		switch len(ancestorDemes) {
		case 0:
			startTime = demesvalue.PositiveInfinity
		case 1:
			startTime = ancestorDemes[0].EndTime()
		default:
			return 0, demeserr.New(demeserr.KindDeme,
				"deme %q: start_time must be given explicitly when there is more than one ancestor", name)
		}
	}

	for i, a := range ancestorDemes {
		if startTime.Less(a.EndTime()) {
			return 0, demeserr.New(demeserr.KindDeme,
				"deme %q: start_time (%s) must not precede ancestor %q end_time (%s)",
				name, startTime, ancestors[i], a.EndTime())
		}
		if !startTime.Less(a.StartTime()) {
			return 0, demeserr.New(demeserr.KindDeme,
				"deme %q: start_time (%s) must be strictly before ancestor %q start_time (%s)",
				name, startTime, ancestors[i], a.StartTime())
		}
	}
	return startTime, nil
}

// resolveDemeProportions fills in the implicit single-ancestor
// proportion, validates length and sum for two-or-more ancestors, and
// normalises the stored values so their sum is exactly 1.
func resolveDemeProportions(name string, proportions []demesvalue.Proportion, ancestorDemes []demesgraph.Deme) ([]demesvalue.Proportion, error) {
	switch len(ancestorDemes) {
	case 0:
		return nil, nil
	case 1:
		if len(proportions) > 0 {
			return proportions, nil
		}
		one, err := demesvalue.NewProportion(1)
		if err != nil {
			return nil, demeserr.Wrap(demeserr.KindInternal, err, "failed to construct the implicit single-ancestor proportion")
		}
		return []demesvalue.Proportion{one}, nil
	default:
		if len(proportions) != len(ancestorDemes) {
			return nil, demeserr.New(demeserr.KindDeme,
				"deme %q: proportions must be given for every one of its %d ancestors", name, len(ancestorDemes))
		}
		var sum float64
		for _, p := range proportions {
			sum += p.Float64()
		}
		if absDiff(sum, 1) > demesvalue.Tolerance {
			return nil, demeserr.New(demeserr.KindDeme, "deme %q: ancestor proportions must sum to 1, got %v", name, sum)
		}
		normalised := make([]demesvalue.Proportion, len(proportions))
		for i, p := range proportions {
			np, err := demesvalue.NewProportion(p.Float64() / sum)
			if err != nil {
				return nil, demeserr.Wrap(demeserr.KindValue, err, "deme %q: failed to normalise ancestor proportions", name)
			}
			normalised[i] = np
		}
		return normalised, nil
	}
}

// resolveEpochs runs the epoch chain inference rules: each epoch's
// start_time defaults from the deme's start_time (first epoch) or the
// prior epoch's end_time; the last
// epoch's end_time defaults to 0; start_size defaults from the prior
// epoch's end_size; end_size defaults to start_size; size_function
// defaults to constant when sizes match, exponential otherwise.
func resolveEpochs(
	demeName string,
	demeStartTime demesvalue.Time,
	epochs []demesunresolved.Epoch,
	demeDefault demesunresolved.Epoch,
	graphDefault demesunresolved.Epoch,
) ([]demesgraph.Epoch, error) {
	resolved := make([]demesgraph.Epoch, 0, len(epochs))

	priorEndTime := demeStartTime
	var priorEndSize demesvalue.DemeSize

	for i, ue := range epochs {
		merged := mergeEpoch(ue, demeDefault, graphDefault)
		isFirst := i == 0
		isLast := i == len(epochs)-1

		var startTime demesvalue.Time
		switch {
		case merged.StartTime != nil:
			startTime = *merged.StartTime
		case isFirst:
			startTime = demeStartTime
		default:
			startTime = priorEndTime
		}

		var endTime demesvalue.Time
		switch {
		case merged.EndTime != nil:
			endTime = *merged.EndTime
		case isLast:
			endTime = demesvalue.Time(0)
		default:
			return nil, demeserr.New(demeserr.KindEpoch,
				"deme %q epoch %d: end_time is required for every epoch but the last", demeName, i)
		}

		var startSize demesvalue.DemeSize
		switch {
		case merged.StartSize != nil:
			startSize = *merged.StartSize
		case !isFirst:
			startSize = priorEndSize
		default:
			return nil, demeserr.New(demeserr.KindEpoch,
				"deme %q epoch %d: start_size is required for the first epoch", demeName, i)
		}

		endSize := startSize
		if merged.EndSize != nil {
			endSize = *merged.EndSize
		}

		sizeFunction := demesgraph.Constant
		switch {
		case merged.SizeFunction != nil:
			sizeFunction = *merged.SizeFunction
		case !startSize.Equal(endSize):
			sizeFunction = demesgraph.Exponential
		}

		cloningRate := demesvalue.MigrationRate(0)
		if merged.CloningRate != nil {
			cloningRate = *merged.CloningRate
		}
		selfingRate := demesvalue.MigrationRate(0)
		if merged.SelfingRate != nil {
			selfingRate = *merged.SelfingRate
		}

		epoch, err := demesgraph.NewEpoch(startTime, endTime, startSize, endSize, sizeFunction, cloningRate, selfingRate)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, epoch)
		priorEndTime = endTime
		priorEndSize = endSize
	}

	return resolved, nil
}
