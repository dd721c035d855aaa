package spatial

import (
	"sort"

	"github.com/dhconnelly/rtreego"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/sprout/core"
)

// R-tree shape: 3 dimensions, 4..16 entries per node.
const (
	dims        = 3
	minChildren = 4
	maxChildren = 16

	// fetchMargin extra neighbours are requested from the tree so that ties at
	// the k-th distance can be resolved by index.
	fetchMargin = 8
)

// Neighbor is one result of a nearest query.
type Neighbor struct {
	// Index is the point's position in the PointSet.
	Index int

	// Distance is the Euclidean distance to the query point.
	Distance float64
}

// Filter reports whether the point at index i must be skipped.
type Filter func(i int) bool

// ExcludeIndex returns a Filter skipping exactly index i.
func ExcludeIndex(i int) Filter {
	return func(j int) bool { return j == i }
}

// ExcludeOrigin skips core.OriginIndex.
var ExcludeOrigin = ExcludeIndex(core.OriginIndex)

// entry wraps a point for R-tree storage.
type entry struct {
	index int
	rect  rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *entry) Bounds() rtreego.Rect { return e.rect }

// Index answers nearest-point queries over a fixed PointSet.
type Index struct {
	points core.PointSet
	tree   *rtreego.Rtree
}

// New indexes every point of points.
func New(points core.PointSet) *Index {
	objs := make([]rtreego.Spatial, len(points))
	for i, p := range points {
		objs[i] = &entry{index: i, rect: toPoint(p).ToRect(0)}
	}

	return &Index{
		points: points,
		tree:   rtreego.NewTree(dims, minChildren, maxChildren, objs...),
	}
}

// Len returns the number of indexed points.
func (ix *Index) Len() int { return ix.tree.Size() }

// Nearest returns up to k points closest to p that no filter rejects, ordered
// by (distance, index) ascending.
//
// Steps:
//  1. Ask the R-tree for k+fetchMargin candidates, filters applied in-tree.
//  2. Re-rank them exactly by (distance, index).
//  3. If the fetch window was full and the k-th distance equals the last
//     fetched one, a tie may have been cut off: rank by linear scan instead.
func (ix *Index) Nearest(p core.Point, k int, filters ...Filter) []Neighbor {
	if k <= 0 || len(ix.points) == 0 {
		return nil
	}

	// 1) Tree query
	fetch := k + fetchMargin
	var treeFilters []rtreego.Filter
	if len(filters) > 0 {
		treeFilters = []rtreego.Filter{func(_ []rtreego.Spatial, obj rtreego.Spatial) (bool, bool) {
			return rejected(obj.(*entry).index, filters), false
		}}
	}
	found := ix.tree.NearestNeighbors(fetch, toPoint(p), treeFilters...)

	// 2) Exact re-rank
	out := make([]Neighbor, 0, len(found))
	for _, obj := range found {
		if obj == nil {
			continue
		}
		i := obj.(*entry).index
		out = append(out, Neighbor{Index: i, Distance: r3.Norm(r3.Sub(ix.points[i], p))})
	}
	sortNeighbors(out)

	// 3) Tie across the window boundary
	if len(out) == fetch && out[k-1].Distance == out[fetch-1].Distance {
		out = ix.scan(p, filters)
	}
	if len(out) > k {
		out = out[:k]
	}

	return out
}

// scan ranks every unfiltered point by (distance, index).
func (ix *Index) scan(p core.Point, filters []Filter) []Neighbor {
	out := make([]Neighbor, 0, len(ix.points))
	for i, q := range ix.points {
		if rejected(i, filters) {
			continue
		}
		out = append(out, Neighbor{Index: i, Distance: r3.Norm(r3.Sub(q, p))})
	}
	sortNeighbors(out)

	return out
}

func rejected(i int, filters []Filter) bool {
	for _, f := range filters {
		if f(i) {
			return true
		}
	}
	return false
}

func sortNeighbors(ns []Neighbor) {
	sort.Slice(ns, func(a, b int) bool {
		if ns[a].Distance != ns[b].Distance {
			return ns[a].Distance < ns[b].Distance
		}
		return ns[a].Index < ns[b].Index
	})
}

func toPoint(p core.Point) rtreego.Point {
	return rtreego.Point{p.X, p.Y, p.Z}
}
