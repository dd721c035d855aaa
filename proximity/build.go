package proximity

import (
	"context"
	"fmt"
	"sort"

	"github.com/paulmach/orb/planar"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/sprout/core"
	"github.com/katalvlaran/sprout/noise"
	"github.com/katalvlaran/sprout/spatial"
)

// Build returns the sealed proximity graph of points with min(k, N−1)
// outgoing edges per point.
func Build(points core.PointSet, k int, opts ...Option) (*core.Graph, error) {
	return BuildContext(context.Background(), points, k, opts...)
}

// BuildContext is Build with cancellation.
//
// Steps:
//  1. Validate k and the point set.
//  2. Precompute plain and twisted angular coordinates.
//  3. Rank every point on the worker pool into its own result slot.
//  4. Insert edges in index order and seal the graph.
func BuildContext(ctx context.Context, points core.PointSet, k int, opts ...Option) (*core.Graph, error) {
	// 1) Validation
	if k < 1 {
		return nil, fmt.Errorf("Build: k=%d: %w", k, ErrBadK)
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("Build: %w", ErrEmptyPointSet)
	}
	cfg := newConfig(opts...)
	n := len(points)
	keep := k
	if keep > n-1 {
		keep = n - 1
	}

	// 2) Shared coordinates
	an := precompute(points, cfg.field)
	index := spatial.New(points)

	// 3) Ranking
	slots := make([][]Candidate, n)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.workers)
	for i := 0; i < n; i++ {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if i == core.OriginIndex {
				slots[i] = originNeighbors(points, an, index, keep)
			} else {
				slots[i] = topK(points, an, i, keep)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	// 4) Assembly
	g := core.NewGraph(n, core.WithMaxDegree(max(keep, 1)))
	for i, cands := range slots {
		for _, c := range cands {
			if err := g.AddEdge(i, c.Index, c.D1); err != nil {
				return nil, fmt.Errorf("Build: %w", err)
			}
		}
	}
	g.Seal()

	return g, nil
}

// Candidates returns every other point ranked the way Build ranks them for
// point i: by D1 for the origin, by D3 otherwise, ties by index. It returns
// nil when i is out of range.
func Candidates(points core.PointSet, i int, field noise.Field) []Candidate {
	if !points.Has(i) {
		return nil
	}
	if field == nil {
		field = noise.NewSimplex(0)
	}
	an := precompute(points, field)

	out := make([]Candidate, 0, len(points)-1)
	for j := range points {
		if j != i {
			out = append(out, candidate(points, an, i, j))
		}
	}
	byD1 := i == core.OriginIndex
	sort.SliceStable(out, func(a, b int) bool {
		if byD1 {
			return out[a].D1 < out[b].D1
		}
		return out[a].D3 < out[b].D3
	})

	return out
}

// candidate computes the three distances between i and j.
func candidate(points core.PointSet, an angles, i, j int) Candidate {
	return Candidate{
		Index: j,
		D1:    points.Distance(i, j),
		D2:    planar.Distance(an.plain[i], an.plain[j]),
		D3:    planar.Distance(an.plain[i], an.twisted[j]),
	}
}

// topK keeps the k candidates of i with the smallest (D3, index), scanning j
// in ascending order and maintaining a sorted window.
// Complexity: O(N·k)
func topK(points core.PointSet, an angles, i, k int) []Candidate {
	if k == 0 {
		return nil
	}
	best := make([]Candidate, 0, k+1)
	for j := range points {
		if j == i {
			continue
		}
		c := candidate(points, an, i, j)
		if len(best) == k && c.D3 >= best[k-1].D3 {
			continue
		}
		// Insert after every entry with D3 <= c.D3, since those have a smaller index.
		pos := sort.Search(len(best), func(x int) bool { return best[x].D3 > c.D3 })
		best = append(best, Candidate{})
		copy(best[pos+1:], best[pos:])
		best[pos] = c
		if len(best) > k {
			best = best[:k]
		}
	}

	return best
}

// originNeighbors ranks the origin's neighbours by Euclidean distance via the
// spatial index.
func originNeighbors(points core.PointSet, an angles, index *spatial.Index, k int) []Candidate {
	near := index.Nearest(points.Origin(), k, spatial.ExcludeOrigin)
	out := make([]Candidate, len(near))
	for x, nb := range near {
		out[x] = candidate(points, an, core.OriginIndex, nb.Index)
	}

	return out
}
