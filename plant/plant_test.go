package plant_test

import (
	"bytes"
	"context"
	"log/slog"
	"strconv"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sprout/bfs"
	"github.com/katalvlaran/sprout/core"
	"github.com/katalvlaran/sprout/plant"
)

// smallConfig keeps generation fast: a coarse grid with a permissive threshold.
func smallConfig() plant.Config {
	cfg := plant.DefaultConfig()
	cfg.Field.Resolution = 12
	cfg.Field.Threshold = 0
	cfg.Growth.MaxDepth = 3
	return cfg
}

// TestNew_RejectsInvalid fails fast on a bad config.
func TestNew_RejectsInvalid(t *testing.T) {
	cfg := plant.DefaultConfig()
	cfg.Graph.K = 0
	_, err := plant.New(cfg)
	require.ErrorIs(t, err, plant.ErrInvalidConfig)

	require.Panics(t, func() { plant.WithLogger(nil) })
}

// TestGenerate_MetricsAndLogs runs the pipeline and checks its instrumentation.
func TestGenerate_MetricsAndLogs(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := plant.NewMetrics(reg)
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	gen, err := plant.New(smallConfig(), plant.WithMetrics(m), plant.WithLogger(logger))
	require.NoError(t, err)
	require.Equal(t, smallConfig(), gen.Config())

	p, err := gen.Generate(context.Background())
	require.NoError(t, err)
	require.Greater(t, p.Points.Len(), 1)
	require.Equal(t, p.Points.Len(), p.Graph.Order())
	require.NotEmpty(t, p.Segments)

	require.Equal(t, float64(p.Points.Len()), testutil.ToFloat64(m.Points))
	require.Equal(t, float64(p.Graph.Size()), testutil.ToFloat64(m.GraphEdges))
	require.Equal(t, float64(p.Reach.Count()-1), testutil.ToFloat64(m.Reachable))
	require.Equal(t, float64(len(p.Segments)), testutil.ToFloat64(m.PathLookups.WithLabelValues(plant.LookupFound)))

	byDepth := map[int]int{}
	for _, s := range p.Segments {
		byDepth[s.Depth]++
	}
	for d, n := range byDepth {
		require.Equal(t, float64(n), testutil.ToFloat64(m.Segments.WithLabelValues(strconv.Itoa(d))))
	}
	require.Equal(t, 3, testutil.CollectAndCount(m.StageDuration))

	for _, stage := range []string{plant.StagePoints, plant.StageGraph, plant.StageGrowth} {
		require.Contains(t, buf.String(), "stage="+stage)
	}
	require.Contains(t, buf.String(), "reachable="+strconv.Itoa(p.Reach.Count()-1))
}

// TestGenerate_Reach checks the origin layering against the graph: every
// trunk target is reached and no edge out of a reached point skips a layer.
func TestGenerate_Reach(t *testing.T) {
	gen, err := plant.New(smallConfig())
	require.NoError(t, err)
	p, err := gen.Generate(context.Background())
	require.NoError(t, err)

	require.Equal(t, core.OriginIndex, p.Reach.Start)
	require.Equal(t, 0, p.Reach.Hops[core.OriginIndex])
	require.Greater(t, p.Reach.Count(), 1)
	require.LessOrEqual(t, p.Reach.Count(), p.Points.Len())

	for _, s := range p.Segments {
		if s.Depth == 0 {
			require.True(t, p.Reach.Reached(s.Target), "trunk target %d", s.Target)
		}
	}
	for _, e := range p.Graph.Edges() {
		if p.Reach.Reached(e.From) {
			require.True(t, p.Reach.Reached(e.To))
			require.LessOrEqual(t, p.Reach.Hops[e.To], p.Reach.Hops[e.From]+1)
		}
	}

	again, err := bfs.Walk(context.Background(), p.Graph, core.OriginIndex)
	require.NoError(t, err)
	require.Equal(t, again.Order, p.Reach.Order)
}

// TestGenerate_Deterministic repeats a run without instrumentation.
func TestGenerate_Deterministic(t *testing.T) {
	gen, err := plant.New(smallConfig())
	require.NoError(t, err)

	a, err := gen.Generate(context.Background())
	require.NoError(t, err)
	b, err := gen.Generate(context.Background())
	require.NoError(t, err)

	require.Equal(t, a.Points, b.Points)
	require.Equal(t, a.Graph.Edges(), b.Graph.Edges())
	require.Len(t, b.Segments, len(a.Segments))
	for i := range a.Segments {
		require.Equal(t, a.Segments[i].Path, b.Segments[i].Path)
		require.Equal(t, a.Segments[i].Curve.ControlPoints(), b.Segments[i].Curve.ControlPoints())
	}
}

// TestGenerate_Canceled surfaces the context error.
func TestGenerate_Canceled(t *testing.T) {
	gen, err := plant.New(smallConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = gen.Generate(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
