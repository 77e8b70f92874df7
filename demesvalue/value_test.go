// Package demesvalue_test exercises the validated scalar domains.
package demesvalue_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/demes/demeserr"
	"github.com/katalvlaran/demes/demesvalue"
	"github.com/stretchr/testify/require"
)

func TestNewTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"positive", 100, false},
		{"infinity", math.Inf(1), false},
		{"negative", -1, true},
		{"nan", math.NaN(), true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			v, err := demesvalue.NewTime(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				require.True(t, demeserr.Is(err, demeserr.KindValue))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.in, v.Float64())
		})
	}
}

func TestTimeOrderingAndInfinity(t *testing.T) {
	t.Parallel()

	a, err := demesvalue.NewTime(10)
	require.NoError(t, err)
	b, err := demesvalue.NewTime(20)
	require.NoError(t, err)

	require.True(t, a.Less(b))
	require.False(t, b.Less(a))
	require.Equal(t, -1, a.Compare(b))
	require.Equal(t, 1, b.Compare(a))
	require.Equal(t, 0, a.Compare(a))

	require.True(t, demesvalue.PositiveInfinity.IsInfinite())
	require.False(t, a.IsInfinite())
	require.Equal(t, "Infinity", demesvalue.PositiveInfinity.String())
}

func TestNewDemeSize(t *testing.T) {
	t.Parallel()

	_, err := demesvalue.NewDemeSize(0)
	require.Error(t, err)

	_, err = demesvalue.NewDemeSize(-5)
	require.Error(t, err)

	_, err = demesvalue.NewDemeSize(math.Inf(1))
	require.Error(t, err)

	d, err := demesvalue.NewDemeSize(100)
	require.NoError(t, err)
	require.True(t, d.IsInteger())

	d, err = demesvalue.NewDemeSize(99.99000049998334)
	require.NoError(t, err)
	require.False(t, d.IsInteger())
}

func TestNewCurrentSize(t *testing.T) {
	t.Parallel()

	c, err := demesvalue.NewCurrentSize(0)
	require.NoError(t, err)
	require.False(t, c.IsExtant())

	c, err = demesvalue.NewCurrentSize(12.5)
	require.NoError(t, err)
	require.True(t, c.IsExtant())

	_, err = demesvalue.NewCurrentSize(-1)
	require.Error(t, err)
	require.True(t, demeserr.Is(err, demeserr.KindInvalidDemeSize))
}

func TestNewProportion(t *testing.T) {
	t.Parallel()

	for _, v := range []float64{0, -0.1, 1.1, math.NaN(), math.Inf(1)} {
		_, err := demesvalue.NewProportion(v)
		require.Errorf(t, err, "expected error for %v", v)
	}

	p, err := demesvalue.NewProportion(1)
	require.NoError(t, err)
	require.Equal(t, 1.0, p.Float64())

	p, err = demesvalue.NewProportion(0.25)
	require.NoError(t, err)
	require.Equal(t, 0.25, p.Float64())
}

func TestNewMigrationRate(t *testing.T) {
	t.Parallel()

	for _, v := range []float64{-0.1, 1.1, math.NaN(), math.Inf(1)} {
		_, err := demesvalue.NewMigrationRate(v)
		require.Errorf(t, err, "expected error for %v", v)
	}

	r, err := demesvalue.NewMigrationRate(0)
	require.NoError(t, err)
	require.Equal(t, 0.0, r.Float64())

	r, err = demesvalue.NewMigrationRate(1)
	require.NoError(t, err)
	require.Equal(t, 1.0, r.Float64())
}

func TestNewGenerationTime(t *testing.T) {
	t.Parallel()

	for _, v := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := demesvalue.NewGenerationTime(v)
		require.Errorf(t, err, "expected error for %v", v)
	}

	g, err := demesvalue.NewGenerationTime(25)
	require.NoError(t, err)
	require.Equal(t, 25.0, g.Float64())
}
