package demesvalue

import (
	"math"

	"github.com/katalvlaran/demes/demeserr"
)

// Time is a non-negative extended real in the demes backward time axis:
// 0 is the present, +Inf denotes an unbounded past. Construction rejects
// NaN and negative values; +Inf is the one allowed non-finite value.
type Time float64

// PositiveInfinity is the Time value denoting an unbounded past.
var PositiveInfinity Time = Time(math.Inf(1))

// NewTime validates v and returns a Time, or a ValueError if v is NaN or
// negative. +Inf is accepted.
func NewTime(v float64) (Time, error) {
	if math.IsNaN(v) {
		return 0, demeserr.New(demeserr.KindValue, "time must not be NaN")
	}
	if v < 0 {
		return 0, demeserr.New(demeserr.KindValue, "time must be >= 0, got %v", v)
	}
	return Time(v), nil
}

// Float64 returns the underlying value.
func (t Time) Float64() float64 { return float64(t) }

// IsInfinite reports whether t denotes the unbounded past.
func (t Time) IsInfinite() bool { return math.IsInf(float64(t), 1) }

// Equal reports t == other.
func (t Time) Equal(other Time) bool { return float64(t) == float64(other) }

// Less reports t < other.
func (t Time) Less(other Time) bool { return float64(t) < float64(other) }

// Compare returns -1, 0, or 1 as t is less than, equal to, or greater than other.
func (t Time) Compare(other Time) int {
	switch {
	case t.Less(other):
		return -1
	case other.Less(t):
		return 1
	default:
		return 0
	}
}

// Add returns the raw float64 sum t + v; re-validate with NewTime to lift
// the result back into the domain.
func (t Time) Add(v float64) float64 { return float64(t) + v }

// Sub returns the raw float64 difference t - v.
func (t Time) Sub(v float64) float64 { return float64(t) - v }

// String implements fmt.Stringer.
func (t Time) String() string {
	if t.IsInfinite() {
		return "Infinity"
	}
	return formatFloat(float64(t))
}
