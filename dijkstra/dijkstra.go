// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative edge weights.
// It processes vertices in order of increasing distance using a min-heap priority queue,
// relaxing edges and updating distances accordingly.
//
// Notes on implementation choices:
//
//   - Edge weights are validated by core.Graph at insertion, so no negative-weight scan is needed.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Heap ties are broken by vertex index so that results are reproducible.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/sprout/core"
)

// Dijkstra computes the shortest-path tree rooted at source over g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must index a vertex of g (ErrVertexNotFound).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, source int, opts ...Option) (*Tree, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph is non-nil
	if g == nil {
		return nil, ErrNilGraph
	}

	// 3) Validate source exists in the graph
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("Dijkstra(source=%d): %w", source, ErrVertexNotFound)
	}

	// 4) Prepare per-run state. dist is +Inf and prev is -1 for every vertex.
	V := g.Order()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]float64, V),
		prev:    make([]int, V),
		visited: make([]bool, V),
		pq:      make(nodePQ, 0, V),
	}

	// 5) Initialize and run the main loop.
	r.init(source)
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Tree{source: source, dist: r.dist, prev: r.prev}, nil
}

// ShortestPath returns the cheapest path from s to t, or false when t cannot
// be reached from s or either index is out of range.
// Complexity: O((V + E) log V)
func ShortestPath(g *core.Graph, s, t int) (Path, bool) {
	tree, err := Dijkstra(g, s)
	if err != nil {
		return Path{}, false
	}

	return tree.PathTo(t)
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph // The input graph; read-only within Dijkstra.
	options Options     // Configuration options (thresholds).
	dist    []float64   // dist[v] = current best distance from source.
	prev    []int       // prev[v] = predecessor on the shortest path, -1 if none.
	visited []bool      // Tracks if a vertex's distance is finalized.
	pq      nodePQ      // Min-heap of *nodeItem for lazy priority queue.
}

// init sets up initial distances and predecessors, and pushes source=0 into the heap.
func (r *runner) init(source int) {
	// 1) dist[v] = +∞, prev[v] = -1 for all vertices v.
	for v := range r.dist {
		r.dist[v] = math.Inf(1)
		r.prev[v] = -1
	}

	// 2) Distance to the source is zero.
	r.dist[source] = 0

	// 3) Initialize the heap and push the source.
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})
}

// process is the core loop of Dijkstra's algorithm. It repeatedly extracts the vertex
// with the minimum distance from the source and relaxes its outgoing edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable vertices processed).
//   - The minimum distance in the heap exceeds MaxDistance (no need to explore farther).
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// 2) Skip stale heap entries.
		if r.visited[u] {
			continue
		}

		// 3) Everything left in the heap is beyond MaxDistance.
		if item.dist > r.options.MaxDistance {
			break
		}

		// 4) u is final.
		r.visited[u] = true

		// 5) Relax all outgoing edges from u.
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge outgoing from vertex u and attempts to improve distances to its neighbors.
// Edges with weight ≥ InfEdgeThreshold are impassable. Only strictly shorter
// distances replace the current ones, so the first-found predecessor wins ties.
func (r *runner) relax(u int) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}

	for _, e := range neighbors {
		// Impassable wall
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}

		v := e.To
		newDist := r.dist[u] + e.Weight

		// Beyond the distance cap
		if newDist > r.options.MaxDistance {
			continue
		}

		// Not strictly better
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = u

		// Lazy decrease-key: the outdated entry stays in the heap and is
		// skipped when popped.
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem represents a vertex and its current distance from the source.
type nodeItem struct {
	id   int     // vertex index
	dist float64 // distance from source
}

// nodePQ is a min-heap (priority queue) of *nodeItem, ordered by (dist, id) ascending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority, then smaller id.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
