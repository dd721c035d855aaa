package dijkstra

import "math"

// Tree is the result of one Dijkstra run: distances and predecessors from a
// fixed source. A Tree is immutable and safe for concurrent reads.
type Tree struct {
	source int
	dist   []float64
	prev   []int
}

// Source returns the root vertex.
func (t *Tree) Source() int { return t.source }

// Reached reports whether v was reached from the source.
func (t *Tree) Reached(v int) bool {
	return v >= 0 && v < len(t.dist) && !math.IsInf(t.dist[v], 1)
}

// DistanceTo returns the shortest distance to v, or +Inf when v is
// unreachable or out of range.
func (t *Tree) DistanceTo(v int) float64 {
	if v < 0 || v >= len(t.dist) {
		return math.Inf(1)
	}
	return t.dist[v]
}

// PathTo rebuilds the path from the source to v by walking predecessors.
// Returns false when v is not reached.
// Complexity: O(path length)
func (t *Tree) PathTo(v int) (Path, bool) {
	if !t.Reached(v) {
		return Path{}, false
	}

	// Walk back, then reverse in place.
	nodes := []int{v}
	for u := t.prev[v]; u != -1; u = t.prev[u] {
		nodes = append(nodes, u)
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}

	return Path{Nodes: nodes, Cost: t.dist[v]}, true
}
