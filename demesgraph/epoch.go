package demesgraph

import (
	"math"

	"github.com/katalvlaran/demes/demeserr"
	"github.com/katalvlaran/demes/demesvalue"
)

// Epoch is a contiguous (start_time, end_time] sub-interval of a deme's
// existence governed by a single size-change regime.
type Epoch struct {
	startTime    demesvalue.Time
	endTime      demesvalue.Time
	startSize    demesvalue.DemeSize
	endSize      demesvalue.DemeSize
	sizeFunction SizeFunction
	cloningRate  demesvalue.MigrationRate
	selfingRate  demesvalue.MigrationRate
}

// NewEpoch validates and constructs an Epoch. It enforces the two
// invariants that require no information beyond the epoch itself:
// start_time > end_time, and size_function == Constant implies
// start_size == end_size.
func NewEpoch(
	startTime, endTime demesvalue.Time,
	startSize, endSize demesvalue.DemeSize,
	fn SizeFunction,
	cloningRate, selfingRate demesvalue.MigrationRate,
) (Epoch, error) {
	if !endTime.Less(startTime) {
		return Epoch{}, demeserr.New(demeserr.KindEpoch,
			"epoch start_time (%s) must be strictly greater than end_time (%s)", startTime, endTime)
	}
	if fn == Constant && !startSize.Equal(endSize) {
		return Epoch{}, demeserr.New(demeserr.KindEpoch,
			"epoch with size_function=constant must have start_size == end_size, got %s != %s",
			startSize, endSize)
	}
	return Epoch{
		startTime:    startTime,
		endTime:      endTime,
		startSize:    startSize,
		endSize:      endSize,
		sizeFunction: fn,
		cloningRate:  cloningRate,
		selfingRate:  selfingRate,
	}, nil
}

// StartTime returns the epoch's start time.
func (e Epoch) StartTime() demesvalue.Time { return e.startTime }

// EndTime returns the epoch's end time.
func (e Epoch) EndTime() demesvalue.Time { return e.endTime }

// StartSize returns the epoch's starting population size.
func (e Epoch) StartSize() demesvalue.DemeSize { return e.startSize }

// EndSize returns the epoch's ending population size.
func (e Epoch) EndSize() demesvalue.DemeSize { return e.endSize }

// SizeFunction returns the epoch's size-change regime.
func (e Epoch) SizeFunction() SizeFunction { return e.sizeFunction }

// CloningRate returns the epoch's per-generation cloning rate.
func (e Epoch) CloningRate() demesvalue.MigrationRate { return e.cloningRate }

// SelfingRate returns the epoch's per-generation selfing rate.
func (e Epoch) SelfingRate() demesvalue.MigrationRate { return e.selfingRate }

// TimeInterval returns the epoch's (start_time, end_time] span.
func (e Epoch) TimeInterval() Interval {
	return Interval{Start: e.startTime.Float64(), End: e.endTime.Float64()}
}

// Contains reports whether backward time t falls within [end_time, start_time),
// i.e. t is no earlier than end_time and strictly before start_time. This
// matches AsymmetricMigration.ActiveAt's convention and ensures a deme's
// youngest epoch contains its own end_time (typically the present, 0)
// while each internal chain boundary belongs to the older epoch only.
func (e Epoch) Contains(t demesvalue.Time) bool {
	return !t.Less(e.endTime) && t.Less(e.startTime)
}

// Equal reports structural equality between two epochs.
func (e Epoch) Equal(other Epoch) bool {
	return e.startTime.Equal(other.startTime) &&
		e.endTime.Equal(other.endTime) &&
		e.startSize.Equal(other.startSize) &&
		e.endSize.Equal(other.endSize) &&
		e.sizeFunction == other.sizeFunction &&
		e.cloningRate.Equal(other.cloningRate) &&
		e.selfingRate.Equal(other.selfingRate)
}

// SizeAt evaluates the epoch's size function at backward time t, which
// must satisfy e.Contains(t).
func (e Epoch) SizeAt(t demesvalue.Time) (demesvalue.CurrentSize, error) {
	switch e.sizeFunction {
	case Constant:
		return demesvalue.CurrentSizeFromDemeSize(e.startSize), nil
	case Linear:
		frac := (e.startTime.Float64() - t.Float64()) / (e.startTime.Float64() - e.endTime.Float64())
		v := e.startSize.Float64() + frac*(e.endSize.Float64()-e.startSize.Float64())
		cs, err := demesvalue.NewCurrentSize(v)
		if err != nil {
			return 0, demeserr.Wrap(demeserr.KindInvalidDemeSize, err, "linear size interpolation produced invalid size")
		}
		return cs, nil
	case Exponential:
		frac := (e.startTime.Float64() - t.Float64()) / (e.startTime.Float64() - e.endTime.Float64())
		ratio := e.endSize.Float64() / e.startSize.Float64()
		v := e.startSize.Float64() * math.Pow(ratio, frac)
		cs, err := demesvalue.NewCurrentSize(v)
		if err != nil {
			return 0, demeserr.Wrap(demeserr.KindInvalidDemeSize, err, "exponential size interpolation produced invalid size")
		}
		return cs, nil
	default:
		return 0, demeserr.New(demeserr.KindInternal, "unknown size function %v", e.sizeFunction)
	}
}
