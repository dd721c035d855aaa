// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/Seal/HasEdge/Weight/Neighbors/Edges.
// Determinism:
//   - Neighbors(u) returns edges in insertion order.
//   - Edges() returns edges sorted by From asc, then insertion order.
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock.

package core

import (
	"fmt"
	"math"
)

// AddEdge appends the directed edge from→to with the given weight.
//
// Steps:
//  1. Reject mutations on a sealed graph.
//  2. Validate indices, loop and weight.
//  3. Enforce the out-degree cap and the no-parallel-edge rule.
//  4. Append to adjacency[from].
//
// Complexity: O(d) where d is the current out-degree of from.
func (g *Graph) AddEdge(from, to int, weight float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	// 1) Sealed graphs are read-only.
	if g.sealed {
		return ErrSealed
	}

	// 2) Input validation
	if !g.inRange(from) {
		return fmt.Errorf("AddEdge(%d→%d): from: %w", from, to, ErrVertexNotFound)
	}
	if !g.inRange(to) {
		return fmt.Errorf("AddEdge(%d→%d): to: %w", from, to, ErrVertexNotFound)
	}
	if from == to {
		return fmt.Errorf("AddEdge(%d→%d): %w", from, to, ErrLoopNotAllowed)
	}
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("AddEdge(%d→%d, w=%g): %w", from, to, weight, ErrBadWeight)
	}

	// 3) Degree cap and parallel-edge check
	out := g.adjacency[from]
	if g.maxDegree > 0 && len(out) >= g.maxDegree {
		return fmt.Errorf("AddEdge(%d→%d): degree=%d: %w", from, to, len(out), ErrDegreeExceeded)
	}
	for _, e := range out {
		if e.To == to {
			return fmt.Errorf("AddEdge(%d→%d): %w", from, to, ErrMultiEdgeNotAllowed)
		}
	}

	// 4) Insert
	g.adjacency[from] = append(out, Edge{From: from, To: to, Weight: weight})
	g.size++

	return nil
}

// Seal marks the graph read-only. Sealing twice is a no-op.
func (g *Graph) Seal() {
	g.mu.Lock()
	g.sealed = true
	g.mu.Unlock()
}

// Sealed reports whether Seal has been called.
func (g *Graph) Sealed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.sealed
}

// Neighbors returns the outgoing edges of u in insertion order.
// The returned slice is shared with the graph and must not be modified;
// after Seal it never changes.
//
// Complexity: O(1)
func (g *Graph) Neighbors(u int) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(u) {
		return nil, fmt.Errorf("Neighbors(%d): %w", u, ErrVertexNotFound)
	}

	return g.adjacency[u], nil
}

// HasEdge reports whether the edge u→v exists.
// Complexity: O(d)
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.Weight(u, v)
	return ok
}

// Weight returns the weight of u→v and whether that edge exists.
// Complexity: O(d)
func (g *Graph) Weight(u, v int) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(u) {
		return 0, false
	}
	for _, e := range g.adjacency[u] {
		if e.To == v {
			return e.Weight, true
		}
	}

	return 0, false
}

// Edges returns a copy of every edge, sorted by From asc then insertion order.
// Complexity: O(E)
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.size)
	for _, list := range g.adjacency {
		out = append(out, list...)
	}

	return out
}

// Size returns the total number of edges.
func (g *Graph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.size
}
