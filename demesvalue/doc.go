// Package demesvalue implements the validated scalar domains that back
// every numeric field in a demes graph: Time, DemeSize, CurrentSize,
// Proportion, MigrationRate, and GenerationTime.
//
// Each domain is a float64 newtype constructed only through a fallible
// New* function that rejects NaN, wrong-sign, or out-of-range input with a
// *demeserr.Error of kind ValueError (kind InvalidDemeSize for
// CurrentSize). Construction is the only validation gate: once a value
// exists, comparisons (Equal on every domain, plus Less and Compare on
// Time) never encounter NaN. Arithmetic between a Time and a raw
// float64 (Add, Sub) always yields a raw float64 — lifting the
// result back into the domain requires going through New* again, so an
// intermediate computation can never silently smuggle an invalid value
// across a package boundary.
//
// Time additionally supports PositiveInfinity, representing the
// unbounded past edge demes models use for founder populations.
package demesvalue
