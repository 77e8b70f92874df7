package demesunresolved

import (
	"github.com/katalvlaran/demes/demesgraph"
	"github.com/katalvlaran/demes/demesvalue"
)

// Epoch is the optional-field mirror of demesgraph.Epoch.
type Epoch struct {
	EndTime      *demesvalue.Time
	StartTime    *demesvalue.Time
	StartSize    *demesvalue.DemeSize
	EndSize      *demesvalue.DemeSize
	SizeFunction *demesgraph.SizeFunction
	CloningRate  *demesvalue.MigrationRate
	SelfingRate  *demesvalue.MigrationRate
}

// DemeHistory carries the per-deme fields that sit outside the epoch
// list: description, start_time, and ancestry.
type DemeHistory struct {
	Description *string
	StartTime   *demesvalue.Time
	Ancestors   []string
	Proportions []demesvalue.Proportion
}

// Deme is the optional-field mirror of demesgraph.Deme, plus an optional
// per-deme defaults override layered between graph-level defaults and
// this deme's own fields.
type Deme struct {
	Name    string
	History DemeHistory
	Epochs  []Epoch
	// Defaults, when non-nil, overrides the graph-level epoch defaults
	// for this deme only.
	Defaults *DemeLevelDefaults
}

// DemeLevelDefaults carries deme-scoped default overrides for epoch
// fields, sitting between an epoch's own fields and the graph-level
// defaults in the cascade.
type DemeLevelDefaults struct {
	Epoch Epoch
}

// Migration is the optional-field mirror of a migration declaration.
// Demes, when non-empty, requests symmetric expansion over the named
// set; otherwise Source/Dest describe a single asymmetric declaration.
type Migration struct {
	Demes     []string
	Source    *string
	Dest      *string
	StartTime *demesvalue.Time
	EndTime   *demesvalue.Time
	Rate      *demesvalue.MigrationRate
}

// Pulse is the optional-field mirror of demesgraph.Pulse.
type Pulse struct {
	Sources     []string
	Dest        *string
	Time        *demesvalue.Time
	Proportions []demesvalue.Proportion
}

// TopLevelDemeDefaults carries graph-level default overrides applied to
// every deme's DemeHistory fields before that deme's own fields and any
// DemeLevelDefaults are layered on top.
type TopLevelDemeDefaults struct {
	Description *string
	StartTime   *demesvalue.Time
	Ancestors   []string
	Proportions []demesvalue.Proportion
}

// Defaults is the graph-level default cascade record.
type Defaults struct {
	Epoch     Epoch
	Migration Migration
	Pulse     Pulse
	Deme      TopLevelDemeDefaults
}

// Graph is the optional-field, input-shaped mirror of demesgraph.Graph.
// TimeUnits is not optional: it defaults to Generations exactly as the
// resolved model does.
type Graph struct {
	TimeUnits      demesgraph.TimeUnits
	GenerationTime *demesvalue.GenerationTime
	Description    string
	DOI            []string
	Metadata       interface{}
	Defaults       Defaults
	Demes          []Deme
	Migrations     []Migration
	Pulses         []Pulse
}
