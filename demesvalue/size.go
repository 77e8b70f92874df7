package demesvalue

import (
	"math"

	"github.com/katalvlaran/demes/demeserr"
)

// DemeSize is a finite, strictly positive population size. Epoch
// start_size/end_size fields live in this domain: a deme that has not yet
// been born has no DemeSize, it simply does not exist at that time.
type DemeSize float64

// NewDemeSize validates v and returns a DemeSize, or a ValueError if v is
// not finite or not strictly positive.
func NewDemeSize(v float64) (DemeSize, error) {
	if !(v > 0) || math.IsInf(v, 0) {
		return 0, demeserr.New(demeserr.KindValue, "deme size must be finite and > 0, got %v", v)
	}
	return DemeSize(v), nil
}

// Float64 returns the underlying value.
func (d DemeSize) Float64() float64 { return float64(d) }

// Equal reports d == other.
func (d DemeSize) Equal(other DemeSize) bool { return float64(d) == float64(other) }

// IsInteger reports whether d has no fractional component.
func (d DemeSize) IsInteger() bool { return float64(d) == math.Trunc(float64(d)) }

// String implements fmt.Stringer.
func (d DemeSize) String() string { return formatFloat(float64(d)) }

// CurrentSize is a finite, non-negative population size observed during
// forward-time traversal. Unlike DemeSize it permits zero, which marks a
// deme that is not extant at the generation in question.
type CurrentSize float64

// NewCurrentSize validates v and returns a CurrentSize, or an
// InvalidDemeSize error if v is not finite or negative.
func NewCurrentSize(v float64) (CurrentSize, error) {
	if v < 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, demeserr.New(demeserr.KindInvalidDemeSize, "current size must be finite and >= 0, got %v", v)
	}
	return CurrentSize(v), nil
}

// Float64 returns the underlying value.
func (c CurrentSize) Float64() float64 { return float64(c) }

// IsExtant reports whether this size represents a living population (> 0).
func (c CurrentSize) IsExtant() bool { return float64(c) > 0 }

// Equal reports c == other.
func (c CurrentSize) Equal(other CurrentSize) bool { return float64(c) == float64(other) }

// String implements fmt.Stringer.
func (c CurrentSize) String() string { return formatFloat(float64(c)) }

// CurrentSizeFromDemeSize lifts a DemeSize (always > 0) into the CurrentSize domain.
func CurrentSizeFromDemeSize(d DemeSize) CurrentSize { return CurrentSize(d) }
