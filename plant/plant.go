package plant

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/katalvlaran/sprout/bfs"
	"github.com/katalvlaran/sprout/core"
	"github.com/katalvlaran/sprout/curve"
	"github.com/katalvlaran/sprout/growth"
	"github.com/katalvlaran/sprout/noise"
	"github.com/katalvlaran/sprout/pointfield"
	"github.com/katalvlaran/sprout/proximity"
)

// Plant is the output of one generation run.
type Plant struct {
	Points core.PointSet
	Graph  *core.Graph

	// Reach layers Graph by hop count from the origin.
	Reach *bfs.Result

	Segments []growth.Segment
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("plant: WithLogger(nil)")
	}
	return func(g *Generator) { g.log = l }
}

// WithMetrics records pipeline metrics into m.
func WithMetrics(m *Metrics) Option {
	return func(g *Generator) { g.metrics = m }
}

// Generator runs the point field, graph and growth stages from a Config.
type Generator struct {
	cfg       Config
	curveType curve.Type
	log       *slog.Logger
	metrics   *Metrics
}

// New validates cfg and returns a Generator.
func New(cfg Config, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	typ, _ := curve.ParseType(cfg.Growth.Curve)
	g := &Generator{cfg: cfg, curveType: typ, log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// Config returns the configuration in use.
func (g *Generator) Config() Config { return g.cfg }

// Generate runs all three stages. Runs with the same Config produce the
// same Plant.
func (g *Generator) Generate(ctx context.Context) (*Plant, error) {
	rng := rand.New(rand.NewSource(g.cfg.Seed))
	field := noise.NewSimplex(g.cfg.NoiseSeed)

	// 1) Point field
	start := time.Now()
	points, err := pointfield.Build(g.fieldOptions(field, rng)...)
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}
	g.done(StagePoints, start, "points", points.Len())

	// 2) Proximity graph
	start = time.Now()
	graph, err := proximity.BuildContext(ctx, points, g.cfg.Graph.K, g.graphOptions(field)...)
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}
	g.done(StageGraph, start, "edges", graph.Size())

	reach, err := bfs.Walk(ctx, graph, core.OriginIndex)
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}
	reachable := reach.Count() - 1
	g.metrics.sizes(points.Len(), graph.Size(), reachable)
	if reachable == 0 {
		g.log.Warn("origin reaches no points", "points", points.Len())
	} else {
		g.log.Info("origin reach", "reachable", reachable, "hops", reach.Eccentricity())
	}

	// 3) Growth
	start = time.Now()
	segs, err := growth.GrowContext(ctx, points, graph, g.growthOptions(rng)...)
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}
	g.done(StageGrowth, start, "segments", len(segs))

	return &Plant{Points: points, Graph: graph, Reach: reach, Segments: segs}, nil
}

func (g *Generator) done(stage string, start time.Time, key string, n int) {
	d := time.Since(start)
	g.metrics.observe(stage, d)
	g.log.Info("stage complete", "stage", stage, key, n, "duration", d)
}

func (g *Generator) fieldOptions(field noise.Field, rng *rand.Rand) []pointfield.Option {
	f := g.cfg.Field
	return []pointfield.Option{
		pointfield.WithResolution(f.Resolution),
		pointfield.WithBounds(f.Min, f.Max),
		pointfield.WithRadius(f.Radius),
		pointfield.WithNoiseScale(f.NoiseScale),
		pointfield.WithThreshold(f.Threshold),
		pointfield.WithJitter(f.Jitter),
		pointfield.WithField(field),
		pointfield.WithRand(rng),
	}
}

func (g *Generator) graphOptions(field noise.Field) []proximity.Option {
	opts := []proximity.Option{proximity.WithField(field)}
	if g.cfg.Graph.Workers > 0 {
		opts = append(opts, proximity.WithWorkers(g.cfg.Graph.Workers))
	}

	return opts
}

func (g *Generator) growthOptions(rng *rand.Rand) []growth.Option {
	c := g.cfg.Growth
	return []growth.Option{
		growth.WithRand(rng),
		growth.WithMaxDepth(c.MaxDepth),
		growth.WithTrunkAttempts(c.TrunkAttempts),
		growth.WithCandidates(c.Candidates),
		growth.WithReach(c.Reach),
		growth.WithSamples(c.Samples),
		growth.WithCacheSize(c.CacheSize),
		growth.WithCurve(curve.WithType(g.curveType)),
		growth.WithOnSegment(func(s growth.Segment) { g.metrics.segment(s.Depth) }),
		growth.WithOnUnreachable(func(from, to int) {
			g.metrics.unreachable()
			g.log.Debug("no path", "from", from, "to", to)
		}),
	}
}
