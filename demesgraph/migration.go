package demesgraph

import (
	"github.com/katalvlaran/demes/demeserr"
	"github.com/katalvlaran/demes/demesvalue"
)

// AsymmetricMigration is a directed, continuous gene-flow rate from a
// source deme to a dest deme over the backward-time interval
// [end_time, start_time). Every migration stored in a resolved Graph is
// asymmetric: symmetric declarations are expanded to one record per
// ordered pair by the resolver, so downstream code only ever sees this
// canonical form.
type AsymmetricMigration struct {
	source      string
	dest        string
	sourceIndex int
	destIndex   int
	startTime   demesvalue.Time
	endTime     demesvalue.Time
	rate        demesvalue.MigrationRate
}

// NewAsymmetricMigration validates and constructs an AsymmetricMigration,
// checking the invariants local to one record: source != dest and
// start_time > end_time. Pairwise-overlap and incoming-rate-sum checks
// require the rest of the graph and are the resolver's job.
func NewAsymmetricMigration(
	source, dest string,
	sourceIndex, destIndex int,
	startTime, endTime demesvalue.Time,
	rate demesvalue.MigrationRate,
) (AsymmetricMigration, error) {
	if source == dest {
		return AsymmetricMigration{}, demeserr.New(demeserr.KindMigration,
			"migration source and dest must differ, both are %q", source)
	}
	if !endTime.Less(startTime) {
		return AsymmetricMigration{}, demeserr.New(demeserr.KindMigration,
			"migration start_time (%s) must be strictly greater than end_time (%s)", startTime, endTime)
	}
	return AsymmetricMigration{
		source: source, dest: dest,
		sourceIndex: sourceIndex, destIndex: destIndex,
		startTime: startTime, endTime: endTime,
		rate: rate,
	}, nil
}

// Source returns the migration's source deme name.
func (m AsymmetricMigration) Source() string { return m.source }

// Dest returns the migration's destination deme name.
func (m AsymmetricMigration) Dest() string { return m.dest }

// SourceIndex returns the graph-level index of the source deme.
func (m AsymmetricMigration) SourceIndex() int { return m.sourceIndex }

// DestIndex returns the graph-level index of the destination deme.
func (m AsymmetricMigration) DestIndex() int { return m.destIndex }

// StartTime returns the migration's start time (exclusive upper bound, backward time).
func (m AsymmetricMigration) StartTime() demesvalue.Time { return m.startTime }

// EndTime returns the migration's end time (inclusive lower bound, backward time).
func (m AsymmetricMigration) EndTime() demesvalue.Time { return m.endTime }

// Rate returns the migration's per-generation rate.
func (m AsymmetricMigration) Rate() demesvalue.MigrationRate { return m.rate }

// TimeInterval returns the migration's [end_time, start_time) span.
func (m AsymmetricMigration) TimeInterval() Interval {
	return Interval{Start: m.startTime.Float64(), End: m.endTime.Float64()}
}

// ActiveAt reports whether the migration is in force at backward time t,
// i.e. end_time <= t < start_time.
func (m AsymmetricMigration) ActiveAt(t demesvalue.Time) bool {
	return !t.Less(m.endTime) && t.Less(m.startTime)
}

// Equal reports structural equality between two migrations.
func (m AsymmetricMigration) Equal(other AsymmetricMigration) bool {
	return m.source == other.source && m.dest == other.dest &&
		m.startTime.Equal(other.startTime) && m.endTime.Equal(other.endTime) &&
		m.rate.Equal(other.rate)
}
