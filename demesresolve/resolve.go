package demesresolve

import (
	"github.com/katalvlaran/demes/demesgraph"
	"github.com/katalvlaran/demes/demeserr"
	"github.com/katalvlaran/demes/demesunresolved"
	"github.com/katalvlaran/demes/demesvalue"
)

// Resolve turns an under-specified demesunresolved.Graph into a fully
// explicit, validated demesgraph.Graph: time units first, then demes in
// declaration order (applying the default cascade per field), then
// migration expansion, then pulse resolution and its stable sort.
func Resolve(u *demesunresolved.Graph) (*demesgraph.Graph, error) {
	if u == nil {
		return nil, demeserr.New(demeserr.KindGraph, "cannot resolve a nil graph")
	}

	generationTime, err := resolveTimeUnits(u)
	if err != nil {
		return nil, err
	}

	resolvedDemes := make([]demesgraph.Deme, 0, len(u.Demes))
	nameIndex := make(map[string]int, len(u.Demes))
	for _, ud := range u.Demes {
		if _, dup := nameIndex[ud.Name]; dup {
			return nil, demeserr.New(demeserr.KindGraph, "duplicate deme name %q", ud.Name)
		}
		d, derr := resolveDeme(ud, u.Defaults, resolvedDemes, nameIndex)
		if derr != nil {
			return nil, derr
		}
		nameIndex[ud.Name] = len(resolvedDemes)
		resolvedDemes = append(resolvedDemes, d)
	}

	migrations, err := resolveMigrations(u.Migrations, u.Defaults.Migration, resolvedDemes, nameIndex)
	if err != nil {
		return nil, err
	}

	pulses, err := resolvePulses(u.Pulses, u.Defaults.Pulse, resolvedDemes, nameIndex)
	if err != nil {
		return nil, err
	}

	metadata := demesgraph.NewMetadata(u.Metadata)

	return demesgraph.NewGraph(u.TimeUnits, generationTime, u.Description, u.DOI, metadata,
		resolvedDemes, migrations, pulses)
}

// resolveTimeUnits checks the units/generation_time pairing: generations
// units force generation_time to exactly 1 (if given at all), years
// units require an explicit generation_time.
func resolveTimeUnits(u *demesunresolved.Graph) (demesvalue.GenerationTime, error) {
	switch u.TimeUnits {
	case demesgraph.Generations:
		if u.GenerationTime != nil && u.GenerationTime.Float64() != 1 {
			return 0, demeserr.New(demeserr.KindGraph,
				"generation_time must be 1 when time_units is generations, got %s", *u.GenerationTime)
		}
		one, err := demesvalue.NewGenerationTime(1)
		if err != nil {
			return 0, demeserr.Wrap(demeserr.KindInternal, err, "failed to construct the generations-units generation_time")
		}
		return one, nil
	case demesgraph.Years:
		if u.GenerationTime == nil {
			return 0, demeserr.New(demeserr.KindGraph, "generation_time is required when time_units is years")
		}
		return *u.GenerationTime, nil
	default:
		return 0, demeserr.New(demeserr.KindGraph, "unrecognised time_units %v", u.TimeUnits)
	}
}

func absDiff(a, b float64) float64 {
	d := a - b
	if d < 0 {
		return -d
	}
	return d
}

func minTime(a, b demesvalue.Time) demesvalue.Time {
	if a.Less(b) {
		return a
	}
	return b
}

func maxTime(a, b demesvalue.Time) demesvalue.Time {
	if a.Less(b) {
		return b
	}
	return a
}
