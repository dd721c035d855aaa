package noise_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sprout/noise"
)

// TestSimplex_Deterministic checks that equal seeds give equal fields.
func TestSimplex_Deterministic(t *testing.T) {
	a, b := noise.NewSimplex(42), noise.NewSimplex(42)
	require.Equal(t, int64(42), a.Seed())
	for i := 0; i < 50; i++ {
		x, y, z := float64(i)*0.37, float64(i)*-0.11, float64(i)*0.05
		require.Equal(t, a.Eval2(x, y), b.Eval2(x, y))
		require.Equal(t, a.Eval3(x, y, z), b.Eval3(x, y, z))
	}
}

// TestSimplex_Range samples the field and checks the nominal bounds.
func TestSimplex_Range(t *testing.T) {
	f := noise.NewSimplex(7)
	for i := 0; i < 1000; i++ {
		x := float64(i) * 0.173
		v2 := f.Eval2(x, -x*0.5)
		v3 := f.Eval3(x, x*0.3, -x)
		require.GreaterOrEqual(t, v2, -1.0001)
		require.LessOrEqual(t, v2, 1.0001)
		require.GreaterOrEqual(t, v3, -1.0001)
		require.LessOrEqual(t, v3, 1.0001)
	}
}

// TestAdapters covers Func and Constant.
func TestAdapters(t *testing.T) {
	var f noise.Field = noise.Func{F3: func(x, y, z float64) float64 { return x + y + z }}
	require.Equal(t, 6.0, f.Eval3(1, 2, 3))
	require.Equal(t, 0.0, f.Eval2(1, 2))

	c := noise.Constant(0.5)
	require.Equal(t, 0.5, c.Eval2(9, 9))
	require.Equal(t, 0.5, c.Eval3(9, 9, 9))
}
