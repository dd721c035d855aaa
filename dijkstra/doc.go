// Package dijkstra provides a precise implementation of Dijkstra's
// shortest-path algorithm on index-addressed graphs with non-negative edge
// weights, plus a caching Finder for repeated queries.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + E) log V) time, where V = |vertices| and E = |edges|.
//   - It relies on a min-heap (priority queue) to always expand the next-closest vertex.
//   - The result is a Tree: distances plus predecessors, from which PathTo rebuilds
//     any path in O(path length).
//
// When to use:
//
//   - Growing branches: every trunk and branch of a plant is a shortest path
//     through the proximity graph.
//   - Any scenario where you need guaranteed shortest paths on a static weighted graph.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - MaxDistance: aborts exploration beyond a specified distance, saving work in large graphs.
//   - InfEdgeThreshold: treats any edge with weight ≥ threshold as impassable (infinite cost).
//   - Finder: keeps the trees of recently used sources in an LRU cache
//     (github.com/hashicorp/golang-lru/v2), so growth steps that share a source
//     never search twice.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is extracted at most once from the priority queue (V extracts total).
//   - Each edge relaxation may push one new entry (up to E pushes).
//   - Space: O(V + E)
//   - O(V) for the distance and predecessor slices.
//   - O(E) worst-case entries in the heap under “lazy decrease-key” strategy.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:
//     Returned if you pass a nil *core.Graph to Dijkstra or NewFinder.
//   - ErrVertexNotFound:
//     Returned if the specified source vertex does not exist in the graph.
//   - ErrBadMaxDistance:
//     Raised (via panic) if you set MaxDistance to a negative value.
//   - ErrBadInfThreshold:
//     Raised (via panic) if you set InfEdgeThreshold to zero or a negative value.
//   - ErrBadCacheSize:
//     Raised (via panic) if WithCacheSize receives n < 1.
//
// Unreachable targets are not errors: PathTo, ShortestPath and Finder.Find
// report them with a false boolean.
//
// API reference:
//
//	func Dijkstra(g *core.Graph, source int, opts ...Option) (*Tree, error)
//	func ShortestPath(g *core.Graph, s, t int) (Path, bool)
//	func NewFinder(g *core.Graph, opts ...FinderOption) (*Finder, error)
//
//	  - Tree.PathTo(v) (Path, bool)
//	  - Tree.DistanceTo(v) float64   (+Inf if unreachable)
//	  - Tree.Reached(v) bool
//	  - Finder.Find(s, t) (Path, bool)
//
// Thread safety:
//
//   - Trees are immutable. Finder is safe for concurrent use.
//   - The graph must not be mutated during a search; a sealed core.Graph never is.
package dijkstra
