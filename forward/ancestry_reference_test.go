package forward_test

import (
	"testing"

	"github.com/katalvlaran/demes/demesgraph"
	"github.com/katalvlaran/demes/demesresolve"
	"github.com/katalvlaran/demes/demesunresolved"
	"github.com/katalvlaran/demes/demesvalue"
	"github.com/katalvlaran/demes/forward"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func ptrTime(t *testing.T, v float64) *demesvalue.Time {
	t.Helper()
	tm, err := demesvalue.NewTime(v)
	require.NoError(t, err)
	return &tm
}

func ptrRate(t *testing.T, v float64) *demesvalue.MigrationRate {
	t.Helper()
	r, err := demesvalue.NewMigrationRate(v)
	require.NoError(t, err)
	return &r
}

func proportion(t *testing.T, v float64) demesvalue.Proportion {
	t.Helper()
	p, err := demesvalue.NewProportion(v)
	require.NoError(t, err)
	return p
}

// updateAncestryProportionsReference is an independent re-implementation
// of the scale-then-add update rule. It shares no code with
// forward.SquareMatrix.applyProportions, so agreement between the two is
// a meaningful cross-check rather than a tautology.
func updateAncestryProportionsReference(sources []int, sourceProportions []float64, row []float64) {
	var sum float64
	for _, p := range sourceProportions {
		sum += p
	}
	for i := range row {
		row[i] *= 1 - sum
	}
	for i, s := range sources {
		row[s] += sourceProportions[i]
	}
}

// ancestryProportionsFromGraphReference re-derives one child deme's
// ancestry row directly from the resolved graph's demes/migrations/pulses,
// independent of forward.Engine's own bookkeeping.
func ancestryProportionsFromGraphReference(g *demesgraph.Graph, childDeme int, parentalBackward demesvalue.Time) []float64 {
	n := g.NumDemes()
	row := make([]float64, n)

	deme := g.Demes()[childDeme]
	bw := parentalBackward.Float64()
	if bw > deme.StartTime().Float64() || bw < deme.EndTime().Float64() {
		return row
	}

	if len(deme.AncestorIndexes()) > 0 && bw == deme.StartTime().Float64() {
		for i, a := range deme.AncestorIndexes() {
			row[a] = deme.Proportions()[i].Float64()
		}
	} else {
		row[childDeme] = 1.0
	}

	offspringBW := bw - 1

	var sources []int
	var props []float64
	for _, p := range g.Pulses() {
		if p.Time().Float64() != offspringBW {
			continue
		}
		if p.DestIndex() != childDeme {
			continue
		}
		sources = nil
		props = nil
		for i, s := range p.SourceIndexes() {
			sources = append(sources, s)
			props = append(props, p.Proportions()[i].Float64())
		}
		updateAncestryProportionsReference(sources, props, row)
	}

	sources = nil
	props = nil
	for _, m := range g.Migrations() {
		if !(offspringBW >= m.EndTime().Float64() && offspringBW < m.StartTime().Float64()) {
			continue
		}
		if m.DestIndex() != childDeme {
			continue
		}
		sources = append(sources, m.SourceIndex())
		props = append(props, m.Rate().Float64())
	}
	updateAncestryProportionsReference(sources, props, row)

	return row
}

// migrationPulseScenarioGraph builds a three-deme model with an admixed
// descendant, a pulse, and both symmetric and asymmetric migration.
func migrationPulseScenarioGraph(t *testing.T) *demesgraph.Graph {
	t.Helper()
	linearFn := demesgraph.Linear
	u := &demesunresolved.Graph{
		TimeUnits: demesgraph.Generations,
		Demes: []demesunresolved.Deme{
			{
				Name:    "A",
				History: demesunresolved.DemeHistory{StartTime: infTime()},
				Epochs:  []demesunresolved.Epoch{{StartSize: ptrSize(t, 100), EndTime: ptrTime(t, 100)}},
			},
			{
				Name:    "B",
				History: demesunresolved.DemeHistory{StartTime: infTime()},
				Epochs: []demesunresolved.Epoch{
					{StartSize: ptrSize(t, 500), EndTime: ptrTime(t, 500)},
					{StartSize: ptrSize(t, 500), EndSize: ptrSize(t, 200), SizeFunction: &linearFn},
				},
			},
			{
				Name: "C",
				History: demesunresolved.DemeHistory{
					StartTime:   ptrTime(t, 200),
					Ancestors:   []string{"A", "B"},
					Proportions: []demesvalue.Proportion{proportion(t, 0.5), proportion(t, 0.5)},
				},
				Epochs: []demesunresolved.Epoch{
					{StartSize: ptrSize(t, 250), EndTime: ptrTime(t, 25)},
					{StartSize: ptrSize(t, 250), EndSize: ptrSize(t, 250)},
				},
			},
		},
		Migrations: []demesunresolved.Migration{
			{Demes: []string{"B", "C"}, StartTime: ptrTime(t, 49), Rate: ptrRate(t, 0.025)},
			{Demes: []string{"A", "B"}, StartTime: ptrTime(t, 550), Rate: ptrRate(t, 1e-4)},
		},
		Pulses: []demesunresolved.Pulse{
			{Sources: []string{"B"}, Dest: strPtr("C"), Time: ptrTime(t, 50), Proportions: []demesvalue.Proportion{proportion(t, 0.1)}},
		},
	}
	g, err := demesresolve.Resolve(u)
	require.NoError(t, err)
	return g
}

// TestAncestryProportions_AgreeWithIndependentReference cross-checks
// Engine.UpdateState's ancestry bookkeeping against a from-scratch
// reimplementation of the same rule over the whole model, for every
// generation and every deme.
func TestAncestryProportions_AgreeWithIndependentReference(t *testing.T) {
	g := migrationPulseScenarioGraph(t)
	burnin, err := forward.NewForwardTime(5)
	require.NoError(t, err)
	engine, err := forward.NewEngine(g, burnin)
	require.NoError(t, err)

	it := engine.Mapper().TimeIterator(nil)
	for {
		ft, ok := it.Next()
		if !ok {
			break
		}
		require.NoError(t, engine.UpdateState(ft))

		_, haveOffspring, err := engine.OffspringDemeSizes()
		require.NoError(t, err)
		if !haveOffspring {
			continue
		}

		bt, ok := engine.Mapper().Convert(ft)
		require.True(t, ok)

		m, err := engine.AncestryProportions()
		require.NoError(t, err)

		for deme := 0; deme < g.NumDemes(); deme++ {
			expected := ancestryProportionsFromGraphReference(g, deme, bt)
			require.InDeltaSlice(t, expected, m.Row(deme), 1e-9, "deme %d at forward time %s", deme, ft)
		}
	}
}
