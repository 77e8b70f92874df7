package forward_test

import (
	"testing"

	"github.com/katalvlaran/demes/forward"
	"github.com/katalvlaran/demes/internal/testfixtures"
	"github.com/stretchr/testify/require"
)

// TestJouganousOutOfAfrica_Traversal walks the six-deme worked example
// end to end through the forward engine, exercising a realistic graph
// with continuous gene flow and chained ancestries together with the
// textual loader.
func TestJouganousOutOfAfrica_Traversal(t *testing.T) {
	g := testfixtures.MustResolve(testfixtures.JouganousOutOfAfrica)

	burnin, err := forward.NewForwardTime(100)
	require.NoError(t, err)
	engine, err := forward.NewEngine(g, burnin)
	require.NoError(t, err)

	it := engine.Mapper().TimeIterator(nil)
	var generations int
	var sawOffspring bool
	for {
		ft, ok := it.Next()
		if !ok {
			break
		}
		require.NoError(t, engine.UpdateState(ft))
		generations++

		sizes, err := engine.ParentalDemeSizes()
		require.NoError(t, err)
		require.Len(t, sizes, g.NumDemes())
		for _, sz := range sizes {
			require.GreaterOrEqual(t, sz.Float64(), 0.0)
		}

		m, haveOffspring, err := engine.OffspringDemeSizes()
		require.NoError(t, err)
		if !haveOffspring {
			continue
		}
		sawOffspring = true
		require.Len(t, m, g.NumDemes())

		ancestry, err := engine.AncestryProportions()
		require.NoError(t, err)
		extant, err := engine.AnyExtantOffspringDemes()
		require.NoError(t, err)
		if extant {
			for d := 0; d < g.NumDemes(); d++ {
				sum := ancestry.RowSum(d)
				require.True(t, sum == 0 || sum > 0.999999, "deme %d row sum %v", d, sum)
			}
		}
	}

	require.Greater(t, generations, 1)
	require.True(t, sawOffspring)
}
