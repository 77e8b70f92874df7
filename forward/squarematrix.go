package forward

import "github.com/katalvlaran/demes/demeserr"

// SquareMatrix is a contiguous, row-major N×N float64 grid, used as the
// ancestry-proportion matrix: row d holds, for every deme i, the
// fraction of deme d's offspring drawn from parental deme i. The matrix
// is allocated once at engine construction and reused every generation;
// a single backing array instead of a [][]float64 slice-of-slices keeps
// that reuse allocation-free.
type SquareMatrix struct {
	data []float64
	n    int
}

// NewSquareMatrix returns an n×n matrix of zeros.
func NewSquareMatrix(n int) *SquareMatrix {
	return &SquareMatrix{data: make([]float64, n*n), n: n}
}

// NRows returns the matrix's dimension.
func (m *SquareMatrix) NRows() int { return m.n }

// At returns the value at (row, col).
func (m *SquareMatrix) At(row, col int) float64 {
	return m.data[row*m.n+col]
}

// Set assigns the value at (row, col).
func (m *SquareMatrix) Set(row, col int, value float64) {
	m.data[row*m.n+col] = value
}

// Row returns a mutable view of a row's n entries.
func (m *SquareMatrix) Row(row int) []float64 {
	start := row * m.n
	return m.data[start : start+m.n]
}

// SetIdentity resets the matrix to the identity, the engine's baseline
// assumption that every offspring deme inherits entirely from itself
// before any splits, pulses, or migrations are applied.
func (m *SquareMatrix) SetIdentity() {
	for i := range m.data {
		m.data[i] = 0
	}
	for i := 0; i < m.n; i++ {
		m.Set(i, i, 1)
	}
}

// RowSum returns the sum of a row's entries. An extant offspring deme's
// ancestry row always sums to 1.
func (m *SquareMatrix) RowSum(row int) float64 {
	var sum float64
	for _, v := range m.Row(row) {
		sum += v
	}
	return sum
}

// applyProportions implements the scale-then-add update rule shared by
// pulse and migration application: existing
// row entries are scaled by 1 minus the sum of incoming proportions,
// then each source's proportion is added into its column. sources and
// proportions must have matching length; this is an internal invariant
// the caller (engine.go) already guarantees, so a length mismatch is an
// InternalError rather than a user-facing one.
func (m *SquareMatrix) applyProportions(row int, sources []int, proportions []float64) error {
	if len(sources) != len(proportions) {
		return demeserr.New(demeserr.KindInternal, "ancestry update: %d sources but %d proportions", len(sources), len(proportions))
	}
	if len(sources) == 0 {
		return nil
	}
	var sum float64
	for _, p := range proportions {
		sum += p
	}
	r := m.Row(row)
	scale := 1 - sum
	for i := range r {
		r[i] *= scale
	}
	for i, src := range sources {
		r[src] += proportions[i]
	}
	return nil
}
