package plant

import (
	"math/rand"

	"github.com/katalvlaran/sprout/core"
	"github.com/katalvlaran/sprout/dijkstra"
	"github.com/katalvlaran/sprout/growth"
	"github.com/katalvlaran/sprout/pointfield"
	"github.com/katalvlaran/sprout/proximity"
)

// BuildPointField samples a resolution³ grid over [min, max]³ and keeps the
// cells within radius whose noise exceeds threshold, jittered by rng.
// A nil rng disables jitter.
func BuildPointField(resolution int, min, max float64, noiseSeed int64, radius, threshold float64, rng *rand.Rand) (core.PointSet, error) {
	opts := []pointfield.Option{
		pointfield.WithResolution(resolution),
		pointfield.WithBounds(min, max),
		pointfield.WithNoiseSeed(noiseSeed),
		pointfield.WithRadius(radius),
		pointfield.WithThreshold(threshold),
	}
	if rng != nil {
		opts = append(opts, pointfield.WithRand(rng))
	} else {
		opts = append(opts, pointfield.WithJitter(0))
	}

	return pointfield.Build(opts...)
}

// BuildProximityGraph links every point to its k best-ranked neighbours.
func BuildProximityGraph(points core.PointSet, k int, opts ...proximity.Option) (*core.Graph, error) {
	return proximity.Build(points, k, opts...)
}

// FindShortestPath returns the minimum-weight path from s to t, or false
// when t is unreachable.
func FindShortestPath(g *core.Graph, s, t int) (dijkstra.Path, bool) {
	return dijkstra.ShortestPath(g, s, t)
}

// GrowPlant grows the ordered segment list with the given limits.
// rng drives every random draw. A nil rng returns growth.ErrNeedRandSource.
func GrowPlant(points core.PointSet, g *core.Graph, maxDepth, trunkAttempts, candidatesPerStep int, rng *rand.Rand) ([]growth.Segment, error) {
	if rng == nil {
		return growth.Grow(points, g,
			growth.WithMaxDepth(maxDepth), growth.WithTrunkAttempts(trunkAttempts), growth.WithCandidates(candidatesPerStep))
	}

	return growth.Grow(points, g, growth.WithRand(rng),
		growth.WithMaxDepth(maxDepth), growth.WithTrunkAttempts(trunkAttempts), growth.WithCandidates(candidatesPerStep))
}
