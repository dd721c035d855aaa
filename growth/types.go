package growth

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/sprout/core"
	"github.com/katalvlaran/sprout/curve"
	"github.com/katalvlaran/sprout/dijkstra"
)

// Sentinel errors.
var (
	// ErrBadParameter is returned when a depth, count or reach option is out of range.
	ErrBadParameter = errors.New("growth: invalid parameter")

	// ErrNilInput is returned for a nil PointSet or graph.
	ErrNilInput = errors.New("growth: nil point set or graph")

	// ErrMismatch is returned when the graph order differs from the point count.
	ErrMismatch = errors.New("growth: graph order does not match point count")

	// ErrNeedRandSource is returned when no random source was configured.
	ErrNeedRandSource = errors.New("growth: random source required (use WithRand or WithSeed)")
)

// Defaults of the reference plant.
const (
	DefaultMaxDepth      = 5
	DefaultTrunkAttempts = 3
	DefaultCandidates    = 3
	DefaultReach         = 0.3
	DefaultSamples       = 4
)

// NoParent marks trunk segments in Segment.Parent.
const NoParent = -1

// Segment is one visible piece of the plant.
type Segment struct {
	// Curve interpolates the samples taken over [0, reach] of the path curve.
	Curve *curve.CatmullRom

	// Depth is 0 for trunks and parent depth + 1 for branches.
	Depth int

	// Parent is the position in the output of the segment this one grew
	// from, or NoParent for trunks.
	Parent int

	// Source and Target are the graph vertices of the path query.
	Source, Target int

	// Path is the shortest path the segment was cut from.
	Path dijkstra.Path
}

// Tip returns the end point of the segment, where its children start.
func (s Segment) Tip() core.Point { return s.Curve.PointAt(1) }

// Option configures Grow.
// Out-of-range values are recorded and reported as ErrBadParameter by Grow.
type Option func(*config)

type config struct {
	maxDepth      int
	trunkAttempts int
	candidates    int
	reach         float64
	samples       int
	cacheSize     int
	curveOpts     []curve.Option
	rng           *rand.Rand
	finder        *dijkstra.Finder
	onSegment     func(Segment)
	onUnreachable func(from, to int)
	err           error
}

func defaultConfig() config {
	return config{
		maxDepth:      DefaultMaxDepth,
		trunkAttempts: DefaultTrunkAttempts,
		candidates:    DefaultCandidates,
		reach:         DefaultReach,
		samples:       DefaultSamples,
		cacheSize:     dijkstra.DefaultCacheSize,
		onSegment:     func(Segment) {},
		onUnreachable: func(int, int) {},
	}
}

// fail records the first option violation.
func (c *config) fail(format string, args ...any) {
	if c.err == nil {
		c.err = fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrBadParameter)
	}
}

// WithMaxDepth sets the depth at which growth stops. Must be >= 1.
func WithMaxDepth(d int) Option {
	return func(c *config) {
		if d < 1 {
			c.fail("WithMaxDepth(%d)", d)
			return
		}
		c.maxDepth = d
	}
}

// WithTrunkAttempts sets how many trunks are grown from the origin. Must be >= 1.
func WithTrunkAttempts(n int) Option {
	return func(c *config) {
		if n < 1 {
			c.fail("WithTrunkAttempts(%d)", n)
			return
		}
		c.trunkAttempts = n
	}
}

// WithCandidates sets how many nearest points each growth step branches to. Must be >= 1.
func WithCandidates(n int) Option {
	return func(c *config) {
		if n < 1 {
			c.fail("WithCandidates(%d)", n)
			return
		}
		c.candidates = n
	}
}

// WithReach sets the arc-length fraction of each path that becomes visible, in (0, 1].
func WithReach(r float64) Option {
	return func(c *config) {
		if !(r > 0 && r <= 1) {
			c.fail("WithReach(%v)", r)
			return
		}
		c.reach = r
	}
}

// WithSamples sets how many evenly spaced samples of [0, reach] define a
// segment curve. Must be >= 2.
func WithSamples(n int) Option {
	return func(c *config) {
		if n < 2 {
			c.fail("WithSamples(%d)", n)
			return
		}
		c.samples = n
	}
}

// WithCurve forwards spline options to every curve built during growth.
func WithCurve(opts ...curve.Option) Option {
	return func(c *config) { c.curveOpts = append(c.curveOpts, opts...) }
}

// WithRand sets the random source for target selection. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("growth: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed seeds a fresh random source.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithFinder reuses an existing Finder, sharing its tree cache. Panics on nil.
// The Finder must have been built over the graph passed to Grow.
func WithFinder(f *dijkstra.Finder) Option {
	if f == nil {
		panic("growth: WithFinder(nil)")
	}
	return func(c *config) { c.finder = f }
}

// WithCacheSize sets the tree cache of the internal Finder. Must be >= 1.
// Ignored when WithFinder is given.
func WithCacheSize(n int) Option {
	return func(c *config) {
		if n < 1 {
			c.fail("WithCacheSize(%d)", n)
			return
		}
		c.cacheSize = n
	}
}

// WithOnSegment registers a hook called for every emitted segment, in output order.
func WithOnSegment(fn func(Segment)) Option {
	return func(c *config) {
		if fn != nil {
			c.onSegment = fn
		}
	}
}

// WithOnUnreachable registers a hook called for every path query that found no path.
func WithOnUnreachable(fn func(from, to int)) Option {
	return func(c *config) {
		if fn != nil {
			c.onUnreachable = fn
		}
	}
}
