package bfs_test

import (
	"context"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sprout/bfs"
	"github.com/katalvlaran/sprout/core"
	"github.com/katalvlaran/sprout/dijkstra"
	"github.com/katalvlaran/sprout/noise"
	"github.com/katalvlaran/sprout/proximity"
)

// chain returns 0→1→…→n-1.
func chain(n int) *core.Graph {
	g := core.NewGraph(n)
	for i := 0; i+1 < n; i++ {
		_ = g.AddEdge(i, i+1, 1)
	}
	return g
}

// TestWalk_Errors covers input validation.
func TestWalk_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := bfs.Walk(ctx, nil, 0)
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	for _, start := range []int{-1, 3} {
		_, err = bfs.Walk(ctx, core.NewGraph(3), start)
		require.ErrorIs(t, err, bfs.ErrStartVertexNotFound, "start %d", start)
	}
}

// TestWalk_Layers checks hop counts and order on small graphs.
func TestWalk_Layers(t *testing.T) {
	// 0→1→2→3→0 plus the chord 0→3.
	cycle := core.NewGraph(4)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 3}} {
		require.NoError(t, cycle.AddEdge(e[0], e[1], 7))
	}

	cases := []struct {
		name      string
		g         *core.Graph
		start     int
		wantOrder []int
		wantHops  []int
		wantEcc   int
	}{
		{"single vertex", core.NewGraph(1), 0, []int{0}, []int{0}, 0},
		{"cycle with chord", cycle, 0, []int{0, 1, 3, 2}, []int{0, 1, 2, 1}, 2},
		{"chain from middle", chain(4), 2, []int{2, 3}, []int{bfs.Unreached, bfs.Unreached, 0, 1}, 1},
		{"chain from origin", chain(4), 0, []int{0, 1, 2, 3}, []int{0, 1, 2, 3}, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := bfs.Walk(context.Background(), tc.g, tc.start)
			require.NoError(t, err)
			require.Equal(t, tc.start, res.Start)
			require.Equal(t, tc.wantOrder, res.Order)
			require.Equal(t, tc.wantHops, res.Hops)
			require.Equal(t, len(tc.wantOrder), res.Count())
			require.Equal(t, tc.wantEcc, res.Eccentricity())
		})
	}
}

// TestWalk_Reached checks the reached predicate, out-of-range included.
func TestWalk_Reached(t *testing.T) {
	res, err := bfs.Walk(context.Background(), chain(3), 1)
	require.NoError(t, err)
	require.False(t, res.Reached(0))
	require.True(t, res.Reached(1))
	require.True(t, res.Reached(2))
	require.False(t, res.Reached(-1))
	require.False(t, res.Reached(3))
}

// TestWalk_MatchesShortestPathReach compares hop reachability with Dijkstra
// reachability on a proximity graph: both follow the same directed edges.
func TestWalk_MatchesShortestPathReach(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	samples := make([]core.Point, 120)
	for i := range samples {
		samples[i] = core.Point{X: rng.Float64()*4 - 2, Y: rng.Float64()*4 - 2, Z: rng.Float64()*4 - 2}
	}
	ps := core.NewPointSet(samples)
	g, err := proximity.Build(ps, proximity.DefaultK, proximity.WithField(noise.NewSimplex(3)))
	require.NoError(t, err)

	res, err := bfs.Walk(context.Background(), g, core.OriginIndex)
	require.NoError(t, err)
	tree, err := dijkstra.Dijkstra(g, core.OriginIndex)
	require.NoError(t, err)

	for v := 0; v < ps.Len(); v++ {
		require.Equal(t, tree.Reached(v), res.Reached(v), "vertex %d", v)
	}
	// No edge out of a reached vertex skips a layer.
	for _, e := range g.Edges() {
		if res.Reached(e.From) {
			require.LessOrEqual(t, res.Hops[e.To], res.Hops[e.From]+1, "edge %d→%d", e.From, e.To)
		}
	}
}

// TestWalk_Canceled returns the partial result with the context error.
func TestWalk_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := bfs.Walk(ctx, chain(100), 0)
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	require.Zero(t, res.Count())
}

// TestWalk_Concurrent runs walks over one sealed graph in parallel.
func TestWalk_Concurrent(t *testing.T) {
	g := chain(50)
	g.Seal()

	var wg sync.WaitGroup
	results := make([]*bfs.Result, 4)
	errs := make([]error, 4)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = bfs.Walk(context.Background(), g, 0)
		}(i)
	}
	wg.Wait()

	for i := range results {
		require.NoError(t, errs[i])
		require.Equal(t, 50, results[i].Count())
		require.Equal(t, 49, results[i].Eccentricity())
	}
}
