// Package demesgraph_test exercises the resolved graph's local invariants
// and accessors directly, independent of the resolver.
package demesgraph_test

import (
	"testing"

	"github.com/katalvlaran/demes/demesgraph"
	"github.com/katalvlaran/demes/demesvalue"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, v float64) demesvalue.Time {
	t.Helper()
	tm, err := demesvalue.NewTime(v)
	require.NoError(t, err)
	return tm
}

func mustSize(t *testing.T, v float64) demesvalue.DemeSize {
	t.Helper()
	s, err := demesvalue.NewDemeSize(v)
	require.NoError(t, err)
	return s
}

func mustRate(t *testing.T, v float64) demesvalue.MigrationRate {
	t.Helper()
	r, err := demesvalue.NewMigrationRate(v)
	require.NoError(t, err)
	return r
}

func singleEpochDeme(t *testing.T, name string, start, end float64, size float64) demesgraph.Deme {
	t.Helper()
	e, err := demesgraph.NewEpoch(mustTime(t, start), mustTime(t, end), mustSize(t, size), mustSize(t, size),
		demesgraph.Constant, mustRate(t, 0), mustRate(t, 0))
	require.NoError(t, err)
	d, err := demesgraph.NewDeme(name, "", mustTime(t, start), []demesgraph.Epoch{e}, nil, nil, nil)
	require.NoError(t, err)
	return d
}

func TestNewEpoch_ConstantSizeMismatch(t *testing.T) {
	_, err := demesgraph.NewEpoch(mustTime(t, 100), mustTime(t, 0), mustSize(t, 100), mustSize(t, 50),
		demesgraph.Constant, mustRate(t, 0), mustRate(t, 0))
	require.Error(t, err)
}

func TestNewEpoch_TimeOrdering(t *testing.T) {
	_, err := demesgraph.NewEpoch(mustTime(t, 0), mustTime(t, 100), mustSize(t, 100), mustSize(t, 100),
		demesgraph.Constant, mustRate(t, 0), mustRate(t, 0))
	require.Error(t, err)
}

func TestEpochSizeAt(t *testing.T) {
	e, err := demesgraph.NewEpoch(mustTime(t, 100), mustTime(t, 0), mustSize(t, 100), mustSize(t, 200),
		demesgraph.Linear, mustRate(t, 0), mustRate(t, 0))
	require.NoError(t, err)

	v, err := e.SizeAt(mustTime(t, 100))
	require.NoError(t, err)
	require.InDelta(t, 100, v.Float64(), 1e-9)

	v, err = e.SizeAt(mustTime(t, 0))
	require.NoError(t, err)
	require.InDelta(t, 200, v.Float64(), 1e-9)

	v, err = e.SizeAt(mustTime(t, 50))
	require.NoError(t, err)
	require.InDelta(t, 150, v.Float64(), 1e-9)
}

func TestNewDeme_EpochChainMismatch(t *testing.T) {
	e0, err := demesgraph.NewEpoch(mustTime(t, 100), mustTime(t, 50), mustSize(t, 100), mustSize(t, 100),
		demesgraph.Constant, mustRate(t, 0), mustRate(t, 0))
	require.NoError(t, err)
	e1, err := demesgraph.NewEpoch(mustTime(t, 40), mustTime(t, 0), mustSize(t, 100), mustSize(t, 100),
		demesgraph.Constant, mustRate(t, 0), mustRate(t, 0))
	require.NoError(t, err)

	_, err = demesgraph.NewDeme("A", "", mustTime(t, 100), []demesgraph.Epoch{e0, e1}, nil, nil, nil)
	require.Error(t, err)
}

func TestNewDeme_ProportionsSumValidation(t *testing.T) {
	e, err := demesgraph.NewEpoch(mustTime(t, 200), mustTime(t, 0), mustSize(t, 100), mustSize(t, 100),
		demesgraph.Constant, mustRate(t, 0), mustRate(t, 0))
	require.NoError(t, err)

	badProportions := []demesvalue.Proportion{}
	for _, v := range []float64{0.4, 0.5} {
		p, perr := demesvalue.NewProportion(v)
		require.NoError(t, perr)
		badProportions = append(badProportions, p)
	}
	_, err = demesgraph.NewDeme("C", "", mustTime(t, 200), []demesgraph.Epoch{e},
		[]string{"A", "B"}, []int{0, 1}, badProportions)
	require.Error(t, err)
}

func TestNewGraph_DuplicateName(t *testing.T) {
	a := singleEpochDeme(t, "A", 100, 0, 100)
	a2 := singleEpochDeme(t, "A", 100, 0, 200)

	_, err := demesgraph.NewGraph(demesgraph.Generations, demesvalue.GenerationTime(1), "", nil, nil,
		[]demesgraph.Deme{a, a2}, nil, nil)
	require.Error(t, err)
}

func TestGraph_HasNonIntegerSizes(t *testing.T) {
	a := singleEpochDeme(t, "A", 100, 0, 100)
	g, err := demesgraph.NewGraph(demesgraph.Generations, demesvalue.GenerationTime(1), "", nil, nil,
		[]demesgraph.Deme{a}, nil, nil)
	require.NoError(t, err)
	require.False(t, g.HasNonIntegerSizes())

	b := singleEpochDeme(t, "B", 100, 0, 99.99000049998334)
	g, err = demesgraph.NewGraph(demesgraph.Generations, demesvalue.GenerationTime(1), "", nil, nil,
		[]demesgraph.Deme{b}, nil, nil)
	require.NoError(t, err)
	require.True(t, g.HasNonIntegerSizes())
}

func TestGraph_Equal(t *testing.T) {
	a := singleEpochDeme(t, "A", 100, 0, 100)
	g1, err := demesgraph.NewGraph(demesgraph.Generations, demesvalue.GenerationTime(1), "desc", nil, nil,
		[]demesgraph.Deme{a}, nil, nil)
	require.NoError(t, err)
	g2, err := demesgraph.NewGraph(demesgraph.Generations, demesvalue.GenerationTime(1), "desc", nil, nil,
		[]demesgraph.Deme{a}, nil, nil)
	require.NoError(t, err)
	require.True(t, g1.Equal(g2))

	desc, ok := g1.Description()
	require.True(t, ok)
	require.Equal(t, "desc", desc)
}

func TestPulse_InvariantViolations(t *testing.T) {
	p25, err := demesvalue.NewProportion(0.25)
	require.NoError(t, err)
	p30, err := demesvalue.NewProportion(0.3)
	require.NoError(t, err)

	_, err = demesgraph.NewPulse([]string{"A"}, []int{0}, "A", 0, mustTime(t, 100), []demesvalue.Proportion{p25})
	require.Error(t, err, "dest must not equal a source")

	_, err = demesgraph.NewPulse([]string{"A", "A"}, []int{0, 0}, "B", 1, mustTime(t, 100),
		[]demesvalue.Proportion{p25, p30})
	require.Error(t, err, "sources must be pairwise distinct")

	overOne := []demesvalue.Proportion{}
	for _, v := range []float64{0.7, 0.7} {
		p, perr := demesvalue.NewProportion(v)
		require.NoError(t, perr)
		overOne = append(overOne, p)
	}
	_, err = demesgraph.NewPulse([]string{"A", "B"}, []int{0, 1}, "C", 2, mustTime(t, 100), overOne)
	require.Error(t, err, "proportions summing over 1 must fail")
}

func TestAsymmetricMigration_ActiveAt(t *testing.T) {
	m, err := demesgraph.NewAsymmetricMigration("A", "B", 0, 1, mustTime(t, 100), mustTime(t, 10), mustRate(t, 0.1))
	require.NoError(t, err)
	require.True(t, m.ActiveAt(mustTime(t, 10)))
	require.True(t, m.ActiveAt(mustTime(t, 99)))
	require.False(t, m.ActiveAt(mustTime(t, 100)))
	require.False(t, m.ActiveAt(mustTime(t, 9)))
}
