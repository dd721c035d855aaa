package core_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sprout/core"
)

// TestNewGraph_Order verifies vertex count and the negative-order clamp.
func TestNewGraph_Order(t *testing.T) {
	require.Equal(t, 4, core.NewGraph(4).Order())
	require.Equal(t, 0, core.NewGraph(-3).Order())
	require.Equal(t, 0, core.NewGraph(4).MaxDegree())
	require.Equal(t, 2, core.NewGraph(4, core.WithMaxDegree(2)).MaxDegree())
}

// TestWithMaxDegree_PanicsOnNonPositive checks option validation.
func TestWithMaxDegree_PanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { core.WithMaxDegree(0) })
	assert.Panics(t, func() { core.WithMaxDegree(-1) })
}

// TestAddEdge_Errors exercises every validation branch of AddEdge.
func TestAddEdge_Errors(t *testing.T) {
	cases := []struct {
		name     string
		from, to int
		weight   float64
		want     error
	}{
		{"FromOutOfRange", -1, 1, 1, core.ErrVertexNotFound},
		{"ToOutOfRange", 0, 9, 1, core.ErrVertexNotFound},
		{"SelfLoop", 2, 2, 1, core.ErrLoopNotAllowed},
		{"NegativeWeight", 0, 1, -0.5, core.ErrBadWeight},
		{"NaNWeight", 0, 1, math.NaN(), core.ErrBadWeight},
		{"InfWeight", 0, 1, math.Inf(1), core.ErrBadWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewGraph(3)
			err := g.AddEdge(tc.from, tc.to, tc.weight)
			require.True(t, errors.Is(err, tc.want), "got %v; want %v", err, tc.want)
			require.Equal(t, 0, g.Size())
		})
	}
}

// TestAddEdge_DegreeAndMulti checks the out-degree cap and parallel-edge rule.
func TestAddEdge_DegreeAndMulti(t *testing.T) {
	g := core.NewGraph(4, core.WithMaxDegree(2))
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.ErrorIs(t, g.AddEdge(0, 1, 2), core.ErrMultiEdgeNotAllowed)
	require.NoError(t, g.AddEdge(0, 2, 2))
	require.ErrorIs(t, g.AddEdge(0, 3, 3), core.ErrDegreeExceeded)

	// Reverse edge is a distinct directed edge.
	require.NoError(t, g.AddEdge(1, 0, 1))
	require.Equal(t, 3, g.Size())
	require.Equal(t, 2, g.OutDegree(0))
	require.Equal(t, 0, g.OutDegree(99))
}

// TestSeal verifies that sealed graphs reject mutation but still answer queries.
func TestSeal(t *testing.T) {
	g := core.NewGraph(2)
	require.NoError(t, g.AddEdge(0, 1, 1.5))
	require.False(t, g.Sealed())
	g.Seal()
	g.Seal()
	require.True(t, g.Sealed())
	require.ErrorIs(t, g.AddEdge(1, 0, 1), core.ErrSealed)

	w, ok := g.Weight(0, 1)
	require.True(t, ok)
	require.Equal(t, 1.5, w)
}

// TestQueries covers Neighbors, HasEdge, Weight and Edges ordering.
func TestQueries(t *testing.T) {
	g := core.NewGraph(3)
	require.NoError(t, g.AddEdge(2, 0, 4))
	require.NoError(t, g.AddEdge(0, 2, 3))
	require.NoError(t, g.AddEdge(0, 1, 1))

	nbrs, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Equal(t, []core.Edge{{From: 0, To: 2, Weight: 3}, {From: 0, To: 1, Weight: 1}}, nbrs)

	_, err = g.Neighbors(3)
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	require.True(t, g.HasEdge(2, 0))
	require.False(t, g.HasEdge(1, 0))
	_, ok := g.Weight(-1, 0)
	require.False(t, ok)

	require.Equal(t, []core.Edge{
		{From: 0, To: 2, Weight: 3},
		{From: 0, To: 1, Weight: 1},
		{From: 2, To: 0, Weight: 4},
	}, g.Edges())
	require.True(t, g.HasVertex(2))
	require.False(t, g.HasVertex(3))
}

// TestPointSet covers origin prefixing and the distance helpers.
func TestPointSet(t *testing.T) {
	samples := []core.Point{{X: 3, Y: 4}, {X: 0, Y: 0, Z: 2}}
	ps := core.NewPointSet(samples)
	samples[0].X = 100 // the set holds a copy

	require.Equal(t, 3, ps.Len())
	require.Equal(t, core.Point{}, ps.Origin())
	require.Equal(t, core.Point{X: 3, Y: 4}, ps.At(1))
	require.InDelta(t, 5.0, ps.Magnitude(1), 1e-12)
	require.InDelta(t, math.Sqrt(9+16+4), ps.Distance(1, 2), 1e-12)
	require.True(t, ps.Has(2))
	require.False(t, ps.Has(3))
	require.Equal(t, []core.Point{ps.At(2), ps.At(0)}, ps.Gather([]int{2, 0}))
}

// TestToSpherical checks the polar/azimuth convention.
func TestToSpherical(t *testing.T) {
	cases := []struct {
		name string
		p    core.Point
		want core.Spherical
	}{
		{"Zero", core.Point{}, core.Spherical{}},
		{"PlusY", core.Point{Y: 2}, core.Spherical{Radius: 2, Phi: 0, Theta: 0}},
		{"MinusY", core.Point{Y: -1}, core.Spherical{Radius: 1, Phi: math.Pi, Theta: 0}},
		{"PlusZ", core.Point{Z: 1}, core.Spherical{Radius: 1, Phi: math.Pi / 2, Theta: 0}},
		{"PlusX", core.Point{X: 1}, core.Spherical{Radius: 1, Phi: math.Pi / 2, Theta: math.Pi / 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := core.ToSpherical(tc.p)
			assert.InDelta(t, tc.want.Radius, got.Radius, 1e-12)
			assert.InDelta(t, tc.want.Phi, got.Phi, 1e-12)
			assert.InDelta(t, tc.want.Theta, got.Theta, 1e-12)
		})
	}

	a := core.Angular(core.Point{X: 1})
	assert.InDelta(t, math.Pi/2, a[0], 1e-12)
	assert.InDelta(t, math.Pi/2, a[1], 1e-12)
}
