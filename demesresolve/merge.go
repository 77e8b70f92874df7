package demesresolve

import (
	"github.com/katalvlaran/demes/demesgraph"
	"github.com/katalvlaran/demes/demesunresolved"
	"github.com/katalvlaran/demes/demesvalue"
)

// first returns the first non-nil candidate, in priority order (highest
// priority first), or nil if all are absent. Every optional scalar field
// in demesunresolved is a pointer, so one generic helper covers the
// entire default cascade: own field > deme-level default > graph-level
// default.
func first[T any](candidates ...*T) *T {
	for _, c := range candidates {
		if c != nil {
			return c
		}
	}
	return nil
}

func firstTime(c ...*demesvalue.Time) *demesvalue.Time                   { return first(c...) }
func firstDemeSize(c ...*demesvalue.DemeSize) *demesvalue.DemeSize       { return first(c...) }
func firstRate(c ...*demesvalue.MigrationRate) *demesvalue.MigrationRate { return first(c...) }
func firstString(c ...*string) *string                                   { return first(c...) }
func firstSizeFunction(c ...*demesgraph.SizeFunction) *demesgraph.SizeFunction {
	return first(c...)
}

// firstStrings returns the first non-nil candidate string slice. A
// present-but-empty slice (non-nil, len 0) counts as provided, matching
// "explicitly set to an empty list" semantics for Ancestors/DOI-like
// fields.
func firstStrings(candidates ...[]string) []string {
	for _, c := range candidates {
		if c != nil {
			return c
		}
	}
	return nil
}

// mergeEpoch is the flattened result of layering an epoch's own fields
// over deme-level and graph-level epoch defaults: own > deme-level >
// graph-level, field by field.
func mergeEpoch(own, demeDefault, graphDefault demesunresolved.Epoch) demesunresolved.Epoch {
	return demesunresolved.Epoch{
		StartTime:    firstTime(own.StartTime, demeDefault.StartTime, graphDefault.StartTime),
		EndTime:      firstTime(own.EndTime, demeDefault.EndTime, graphDefault.EndTime),
		StartSize:    firstDemeSize(own.StartSize, demeDefault.StartSize, graphDefault.StartSize),
		EndSize:      firstDemeSize(own.EndSize, demeDefault.EndSize, graphDefault.EndSize),
		SizeFunction: firstSizeFunction(own.SizeFunction, demeDefault.SizeFunction, graphDefault.SizeFunction),
		CloningRate:  firstRate(own.CloningRate, demeDefault.CloningRate, graphDefault.CloningRate),
		SelfingRate:  firstRate(own.SelfingRate, demeDefault.SelfingRate, graphDefault.SelfingRate),
	}
}

// mergeMigration layers an individual migration declaration's own fields
// over the graph-level migration defaults. There is no deme-level
// migration default: migrations are graph-scoped declarations.
func mergeMigration(own, graphDefault demesunresolved.Migration) demesunresolved.Migration {
	return demesunresolved.Migration{
		Demes:     firstStrings(own.Demes, graphDefault.Demes),
		Source:    firstString(own.Source, graphDefault.Source),
		Dest:      firstString(own.Dest, graphDefault.Dest),
		StartTime: firstTime(own.StartTime, graphDefault.StartTime),
		EndTime:   firstTime(own.EndTime, graphDefault.EndTime),
		Rate:      firstRate(own.Rate, graphDefault.Rate),
	}
}

// mergePulse layers an individual pulse declaration's own fields over the
// graph-level pulse defaults.
func mergePulse(own, graphDefault demesunresolved.Pulse) demesunresolved.Pulse {
	merged := demesunresolved.Pulse{
		Sources: firstStrings(own.Sources, graphDefault.Sources),
		Dest:    firstString(own.Dest, graphDefault.Dest),
		Time:    firstTime(own.Time, graphDefault.Time),
	}
	if own.Proportions != nil {
		merged.Proportions = own.Proportions
	} else {
		merged.Proportions = graphDefault.Proportions
	}
	return merged
}

// mergeDemeHistory layers a deme's own history fields over the
// graph-level top-level deme defaults.
func mergeDemeHistory(own demesunresolved.DemeHistory, graphDefault demesunresolved.TopLevelDemeDefaults) demesunresolved.DemeHistory {
	merged := demesunresolved.DemeHistory{
		Description: firstString(own.Description, graphDefault.Description),
		StartTime:   firstTime(own.StartTime, graphDefault.StartTime),
	}
	if own.Ancestors != nil {
		merged.Ancestors = own.Ancestors
	} else {
		merged.Ancestors = graphDefault.Ancestors
	}
	if own.Proportions != nil {
		merged.Proportions = own.Proportions
	} else {
		merged.Proportions = graphDefault.Proportions
	}
	return merged
}
