package demesresolve_test

import (
	"testing"

	"github.com/katalvlaran/demes/demesgraph"
	"github.com/katalvlaran/demes/demeserr"
	"github.com/katalvlaran/demes/demesresolve"
	"github.com/katalvlaran/demes/demesunresolved"
	"github.com/katalvlaran/demes/demesvalue"
	"github.com/stretchr/testify/require"
)

func ptrTime(t *testing.T, v float64) *demesvalue.Time {
	t.Helper()
	tm, err := demesvalue.NewTime(v)
	require.NoError(t, err)
	return &tm
}

func infTime() *demesvalue.Time {
	inf := demesvalue.PositiveInfinity
	return &inf
}

func ptrSize(t *testing.T, v float64) *demesvalue.DemeSize {
	t.Helper()
	s, err := demesvalue.NewDemeSize(v)
	require.NoError(t, err)
	return &s
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

// TestResolve_SingleInfiniteStartDeme resolves a single-epoch deme with
// an infinite start_time.
func TestResolve_SingleInfiniteStartDeme(t *testing.T) {
	u := &demesunresolved.Graph{
		TimeUnits: demesgraph.Generations,
		Demes: []demesunresolved.Deme{
			{
				Name:    "A",
				History: demesunresolved.DemeHistory{StartTime: infTime()},
				Epochs:  []demesunresolved.Epoch{{StartSize: ptrSize(t, 100)}},
			},
		},
	}
	g, err := demesresolve.Resolve(u)
	require.NoError(t, err)
	require.Equal(t, 1, g.NumDemes())
	a, ok := g.DemeByName("A")
	require.True(t, ok)
	require.Len(t, a.Epochs(), 1)
	require.True(t, a.StartTime().IsInfinite())
	require.InDelta(t, 0, a.EndTime().Float64(), 1e-9)
	require.InDelta(t, 100, a.StartSize().Float64(), 1e-9)
	require.Equal(t, demesgraph.Constant, a.Epochs()[0].SizeFunction())
}

// TestResolve_PulseDefaultsEquivalentToExplicit covers concrete scenario 2:
// a graph-level pulse default must resolve identically to spelling the
// pulse out explicitly.
func TestResolve_PulseDefaultsEquivalentToExplicit(t *testing.T) {
	base := func() []demesunresolved.Deme {
		return []demesunresolved.Deme{
			{
				Name:    "A",
				History: demesunresolved.DemeHistory{StartTime: infTime()},
				Epochs:  []demesunresolved.Epoch{{StartSize: ptrSize(t, 100)}},
			},
			{
				Name:    "B",
				History: demesunresolved.DemeHistory{StartTime: infTime()},
				Epochs:  []demesunresolved.Epoch{{StartSize: ptrSize(t, 100)}},
			},
		}
	}

	withDefault := &demesunresolved.Graph{
		TimeUnits: demesgraph.Generations,
		Demes:     base(),
		Defaults: demesunresolved.Defaults{
			Pulse: demesunresolved.Pulse{
				Sources:     []string{"A"},
				Dest:        strPtr("B"),
				Time:        ptrTime(t, 100),
				Proportions: []demesvalue.Proportion{proportion(t, 0.25)},
			},
		},
		Pulses: []demesunresolved.Pulse{{}},
	}
	explicit := &demesunresolved.Graph{
		TimeUnits: demesgraph.Generations,
		Demes:     base(),
		Pulses: []demesunresolved.Pulse{
			{
				Sources:     []string{"A"},
				Dest:        strPtr("B"),
				Time:        ptrTime(t, 100),
				Proportions: []demesvalue.Proportion{proportion(t, 0.25)},
			},
		},
	}

	g1, err := demesresolve.Resolve(withDefault)
	require.NoError(t, err)
	g2, err := demesresolve.Resolve(explicit)
	require.NoError(t, err)
	require.True(t, g1.Equal(g2))
}

func strPtr(s string) *string { return &s }

// TestResolve_MigrationAndPulseScenario covers concrete scenario 3.
func TestResolve_MigrationAndPulseScenario(t *testing.T) {
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
	require.Equal(t, 3, g.NumDemes())

	var sawBtoC, sawCtoB, sawAtoB, sawBtoA bool
	for _, m := range g.Migrations() {
		switch {
		case m.Source() == "B" && m.Dest() == "C":
			sawBtoC = true
		case m.Source() == "C" && m.Dest() == "B":
			sawCtoB = true
		case m.Source() == "A" && m.Dest() == "B":
			sawAtoB = true
		case m.Source() == "B" && m.Dest() == "A":
			sawBtoA = true
		}
	}
	require.True(t, sawBtoC && sawCtoB && sawAtoB && sawBtoA)

	require.Len(t, g.Pulses(), 1)
}

// TestResolve_EpochConstantSizeMismatchFails covers concrete scenario 4.
func TestResolve_EpochConstantSizeMismatchFails(t *testing.T) {
	constantFn := demesgraph.Constant
	u := &demesunresolved.Graph{
		TimeUnits: demesgraph.Generations,
		Demes: []demesunresolved.Deme{
			{
				Name:    "A",
				History: demesunresolved.DemeHistory{StartTime: infTime()},
				Epochs: []demesunresolved.Epoch{
					{StartSize: ptrSize(t, 100), EndSize: ptrSize(t, 50), SizeFunction: &constantFn},
				},
			},
		},
	}
	_, err := demesresolve.Resolve(u)
	require.Error(t, err)
	require.True(t, demeserr.Is(err, demeserr.KindEpoch))
}

// TestResolve_TwoAncestorsMissingOrBadProportionsFails covers concrete scenario 5.
func TestResolve_TwoAncestorsMissingOrBadProportionsFails(t *testing.T) {
	build := func(proportions []demesvalue.Proportion) *demesunresolved.Graph {
		return &demesunresolved.Graph{
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
					Epochs:  []demesunresolved.Epoch{{StartSize: ptrSize(t, 100), EndTime: ptrTime(t, 100)}},
				},
				{
					Name: "C",
					History: demesunresolved.DemeHistory{
						StartTime:   ptrTime(t, 100),
						Ancestors:   []string{"A", "B"},
						Proportions: proportions,
					},
					Epochs: []demesunresolved.Epoch{{StartSize: ptrSize(t, 100)}},
				},
			},
		}
	}

	_, err := demesresolve.Resolve(build(nil))
	require.Error(t, err)
	require.True(t, demeserr.Is(err, demeserr.KindDeme))

	badSum := []demesvalue.Proportion{proportion(t, 0.4), proportion(t, 0.5)}
	_, err = demesresolve.Resolve(build(badSum))
	require.Error(t, err)
	require.True(t, demeserr.Is(err, demeserr.KindDeme))
}

// TestResolve_TimeUnitsValidation checks the units/generation_time pairing rules.
func TestResolve_TimeUnitsValidation(t *testing.T) {
	badGenerationTime := demesvalue.GenerationTime(2)
	u := &demesunresolved.Graph{
		TimeUnits:      demesgraph.Generations,
		GenerationTime: &badGenerationTime,
		Demes: []demesunresolved.Deme{
			{Name: "A", History: demesunresolved.DemeHistory{StartTime: infTime()},
				Epochs: []demesunresolved.Epoch{{StartSize: ptrSize(t, 100)}}},
		},
	}
	_, err := demesresolve.Resolve(u)
	require.Error(t, err)
	require.True(t, demeserr.Is(err, demeserr.KindGraph))

	missingYears := &demesunresolved.Graph{
		TimeUnits: demesgraph.Years,
		Demes: []demesunresolved.Deme{
			{Name: "A", History: demesunresolved.DemeHistory{StartTime: infTime()},
				Epochs: []demesunresolved.Epoch{{StartSize: ptrSize(t, 100)}}},
		},
	}
	_, err = demesresolve.Resolve(missingYears)
	require.Error(t, err)
	require.True(t, demeserr.Is(err, demeserr.KindGraph))
}

// TestBuilder_RoundTripsToResolve exercises the programmatic Builder path.
func TestBuilder_RoundTripsToResolve(t *testing.T) {
	b := demesresolve.NewBuilder().
		AddDeme(demesunresolved.Deme{
			Name:    "A",
			History: demesunresolved.DemeHistory{StartTime: infTime()},
			Epochs:  []demesunresolved.Epoch{{StartSize: ptrSize(t, 100)}},
		})
	g, err := b.Resolve()
	require.NoError(t, err)
	require.Equal(t, 1, g.NumDemes())
}
