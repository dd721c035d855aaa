package growth

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/sprout/core"
	"github.com/katalvlaran/sprout/curve"
	"github.com/katalvlaran/sprout/dijkstra"
	"github.com/katalvlaran/sprout/spatial"
)

// Grow is GrowContext with context.Background().
func Grow(points core.PointSet, g *core.Graph, opts ...Option) ([]Segment, error) {
	return GrowContext(context.Background(), points, g, opts...)
}

// GrowContext grows a plant over points and its proximity graph g.
//
// Output order: every trunk first, then the branches of each trunk in
// depth-first pre-order. A segment's Parent always precedes it.
//
// Steps:
//  1. Validate options and inputs.
//  2. Trunks: pick targets reached by the Finder's origin tree, uniformly
//     with replacement, and emit one depth-0 segment per trunk.
//  3. Branches: from every trunk tip, drain an explicit stack of growth
//     frames until maxDepth.
//
// An origin-only PointSet, or an origin without outgoing edges, yields an
// empty result and a nil error.
// Complexity: O(S·(V + E) log V) worst case for S segments, less with cache hits.
func GrowContext(ctx context.Context, points core.PointSet, g *core.Graph, opts ...Option) ([]Segment, error) {
	// 1) Configuration
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, fmt.Errorf("Grow: %w", cfg.err)
	}
	if points == nil || g == nil {
		return nil, fmt.Errorf("Grow: %w", ErrNilInput)
	}
	if g.Order() != points.Len() {
		return nil, fmt.Errorf("Grow(order=%d, points=%d): %w", g.Order(), points.Len(), ErrMismatch)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("Grow: %w", ErrNeedRandSource)
	}
	finder := cfg.finder
	if finder == nil {
		var err error
		if finder, err = dijkstra.NewFinder(g, dijkstra.WithCacheSize(cfg.cacheSize)); err != nil {
			return nil, fmt.Errorf("Grow: %w", err)
		}
	}

	e := newEngine(points, finder, cfg)

	// 2) Trunks
	trunks, err := e.trunks(ctx)
	if err != nil {
		return e.out, err
	}

	// 3) Branches
	for _, t := range trunks {
		if err = e.branch(ctx, t.start, t.index); err != nil {
			return e.out, err
		}
	}

	return e.out, nil
}

// engine holds the per-call growth state.
type engine struct {
	cfg    config
	points core.PointSet
	finder *dijkstra.Finder
	index  *spatial.Index

	// Non-origin indices by ascending magnitude, and their magnitudes.
	byMag []int
	mags  []float64

	offsets []float64
	out     []Segment
}

func newEngine(points core.PointSet, finder *dijkstra.Finder, cfg config) *engine {
	e := &engine{
		cfg:     cfg,
		points:  points,
		finder:  finder,
		index:   spatial.New(points),
		offsets: curve.Offsets(0, cfg.reach, cfg.samples-1),
	}

	e.byMag = make([]int, 0, points.Len())
	for i := 1; i < points.Len(); i++ {
		e.byMag = append(e.byMag, i)
	}
	sort.SliceStable(e.byMag, func(a, b int) bool {
		return points.Magnitude(e.byMag[a]) < points.Magnitude(e.byMag[b])
	})
	e.mags = make([]float64, len(e.byMag))
	for k, i := range e.byMag {
		e.mags[k] = points.Magnitude(i)
	}

	return e
}

// grown is an emitted segment and the growth start at its tip.
type grown struct {
	index int
	start core.Point
}

// trunks emits the depth-0 segments. Targets are the vertices the Finder's
// origin tree reaches, so its search limits bound trunk eligibility too.
func (e *engine) trunks(ctx context.Context) ([]grown, error) {
	tree, err := e.finder.Tree(core.OriginIndex)
	if err != nil {
		return nil, fmt.Errorf("Grow: %w", err)
	}
	eligible := make([]int, 0, e.points.Len())
	for i := 1; i < e.points.Len(); i++ {
		if tree.Reached(i) {
			eligible = append(eligible, i)
		}
	}
	if len(eligible) == 0 {
		return nil, nil
	}

	origin := e.points.Origin()
	out := make([]grown, 0, e.cfg.trunkAttempts)
	for a := 0; a < e.cfg.trunkAttempts; a++ {
		if err = ctx.Err(); err != nil {
			return out, fmt.Errorf("Grow: %w", err)
		}
		target := eligible[e.cfg.rng.Intn(len(eligible))]
		path, _ := tree.PathTo(target)
		ctrl := append([]core.Point{origin}, e.points.Gather(path.Nodes)...)
		idx, start := e.emit(ctrl, 0, NoParent, path)
		out = append(out, grown{index: idx, start: start})
	}

	return out, nil
}

// frame is one pending growth step: the candidates around start that are
// still to be tried at depth.
type frame struct {
	start      core.Point
	depth      int
	parent     int
	candidates []spatial.Neighbor
	next       int
}

// branch grows everything below the segment at output position parent,
// starting from its tip.
//
// The stack replaces recursion: the top frame tries its next candidate and,
// on success, pushes the frame of the new tip, so a subtree is finished
// before the next sibling candidate is tried.
func (e *engine) branch(ctx context.Context, start core.Point, parent int) error {
	if e.cfg.maxDepth <= 1 {
		return nil
	}
	stack := []frame{e.frame(start, 1, parent)}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("Grow: %w", err)
		}
		top := &stack[len(stack)-1]
		if top.next >= len(top.candidates) {
			stack = stack[:len(stack)-1]
			continue
		}
		c := top.candidates[top.next].Index
		top.next++
		start, depth := top.start, top.depth

		// a) Target farther from the origin than the candidate.
		target, ok := e.farther(c)
		if !ok {
			continue
		}

		// b) Path from the candidate.
		path, ok := e.finder.Find(c, target)
		if !ok {
			e.cfg.onUnreachable(c, target)
			continue
		}

		// c) Segment, then descend.
		ctrl := append([]core.Point{start, e.points.At(c)}, e.points.Gather(path.Nodes)...)
		idx, tip := e.emit(ctrl, depth, top.parent, path)
		if depth+1 < e.cfg.maxDepth {
			stack = append(stack, e.frame(tip, depth+1, idx))
		}
	}

	return nil
}

func (e *engine) frame(start core.Point, depth, parent int) frame {
	return frame{
		start:      start,
		depth:      depth,
		parent:     parent,
		candidates: e.index.Nearest(start, e.cfg.candidates, spatial.ExcludeOrigin),
	}
}

// farther picks uniformly among non-origin points whose magnitude is
// strictly greater than that of point c.
func (e *engine) farther(c int) (int, bool) {
	m := e.points.Magnitude(c)
	lo := sort.Search(len(e.mags), func(k int) bool { return e.mags[k] > m })
	n := len(e.mags) - lo
	if n == 0 {
		return 0, false
	}

	return e.byMag[lo+e.cfg.rng.Intn(n)], true
}

// emit builds the path curve through ctrl, appends the visible segment and
// returns its output position and the new growth start.
func (e *engine) emit(ctrl []core.Point, depth, parent int, path dijkstra.Path) (int, core.Point) {
	full := curve.New(ctrl, e.cfg.curveOpts...)
	seg := Segment{
		Curve:  full.Resample(e.offsets...),
		Depth:  depth,
		Parent: parent,
		Source: path.Source(),
		Target: path.Target(),
		Path:   path,
	}
	e.out = append(e.out, seg)
	e.cfg.onSegment(seg)

	return len(e.out) - 1, full.PointAt(e.cfg.reach)
}
