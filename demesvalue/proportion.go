package demesvalue

import (
	"math"

	"github.com/katalvlaran/demes/demeserr"
)

// Proportion is a finite value in (0, 1], used for ancestry and pulse
// proportions.
type Proportion float64

// NewProportion validates v and returns a Proportion, or a ValueError if v
// is not finite or lies outside (0, 1].
func NewProportion(v float64) (Proportion, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 || v > 1 {
		return 0, demeserr.New(demeserr.KindValue, "proportion must be finite and in (0, 1], got %v", v)
	}
	return Proportion(v), nil
}

// Float64 returns the underlying value.
func (p Proportion) Float64() float64 { return float64(p) }

// Equal reports p == other.
func (p Proportion) Equal(other Proportion) bool { return float64(p) == float64(other) }

// String implements fmt.Stringer.
func (p Proportion) String() string { return formatFloat(float64(p)) }

// MigrationRate is a finite value in [0, 1], the per-generation fraction
// of a deme's parents drawn continuously from a source deme.
type MigrationRate float64

// NewMigrationRate validates v and returns a MigrationRate, or a
// ValueError if v is not finite or lies outside [0, 1].
func NewMigrationRate(v float64) (MigrationRate, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > 1 {
		return 0, demeserr.New(demeserr.KindValue, "migration rate must be finite and in [0, 1], got %v", v)
	}
	return MigrationRate(v), nil
}

// Float64 returns the underlying value.
func (r MigrationRate) Float64() float64 { return float64(r) }

// Equal reports r == other.
func (r MigrationRate) Equal(other MigrationRate) bool { return float64(r) == float64(other) }

// String implements fmt.Stringer.
func (r MigrationRate) String() string { return formatFloat(float64(r)) }

// GenerationTime is a finite, strictly positive scalar converting
// calendar years to generations for graphs whose time_units is "years".
type GenerationTime float64

// NewGenerationTime validates v and returns a GenerationTime, or a
// ValueError if v is not finite or not strictly positive.
func NewGenerationTime(v float64) (GenerationTime, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || !(v > 0) {
		return 0, demeserr.New(demeserr.KindValue, "generation time must be finite and > 0, got %v", v)
	}
	return GenerationTime(v), nil
}

// Float64 returns the underlying value.
func (g GenerationTime) Float64() float64 { return float64(g) }

// Equal reports g == other.
func (g GenerationTime) Equal(other GenerationTime) bool { return float64(g) == float64(other) }

// String implements fmt.Stringer.
func (g GenerationTime) String() string { return formatFloat(float64(g)) }
