package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/sprout/core"
)

var (
	// ErrGraphNil is returned when the graph pointer is nil.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start vertex is out of range.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")
)

// Unreached marks a vertex the walk never got to.
const Unreached = -1

// Result is the hop layering of one walk.
type Result struct {
	// Start is the vertex the walk began at.
	Start int

	// Order lists reached vertices by non-decreasing hop count.
	Order []int

	// Hops[v] is the fewest edges from Start to v, or Unreached.
	Hops []int
}

// Reached reports whether v was reached. Out-of-range v is not.
func (r *Result) Reached(v int) bool {
	return v >= 0 && v < len(r.Hops) && r.Hops[v] != Unreached
}

// Count returns the number of reached vertices, Start included.
func (r *Result) Count() int { return len(r.Order) }

// Eccentricity returns the largest hop count among reached vertices.
func (r *Result) Eccentricity() int {
	if len(r.Order) == 0 {
		return 0
	}
	return r.Hops[r.Order[len(r.Order)-1]]
}

// walker holds the mutable state of one walk.
type walker struct {
	graph *core.Graph
	queue []int
	head  int
	res   *Result
}

// Walk layers g from start by hop count.
//
// Steps:
//  1. Validate the graph and the start vertex.
//  2. Mark every vertex Unreached and seed the queue with start.
//  3. Pop in FIFO order, expanding each vertex's out-edges in insertion order.
//
// Complexity: O(V + E)
func Walk(ctx context.Context, g *core.Graph, start int) (*Result, error) {
	// 1) Inputs
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("Walk(%d): %w", start, ErrStartVertexNotFound)
	}

	// 2) State
	n := g.Order()
	w := &walker{
		graph: g,
		queue: make([]int, 0, n),
		res:   &Result{Start: start, Order: make([]int, 0, n), Hops: make([]int, n)},
	}
	for v := range w.res.Hops {
		w.res.Hops[v] = Unreached
	}
	w.push(start, 0)

	// 3) Loop
	for w.head < len(w.queue) {
		if err := ctx.Err(); err != nil {
			return w.res, fmt.Errorf("Walk(%d): %w", start, err)
		}
		u := w.queue[w.head]
		w.head++
		w.res.Order = append(w.res.Order, u)
		if err := w.expand(u); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

func (w *walker) push(v, hops int) {
	w.res.Hops[v] = hops
	w.queue = append(w.queue, v)
}

// expand queues every unseen out-neighbour of u one hop deeper.
func (w *walker) expand(u int) error {
	edges, err := w.graph.Neighbors(u)
	if err != nil {
		return fmt.Errorf("Walk: %w", err)
	}
	next := w.res.Hops[u] + 1
	for _, e := range edges {
		if w.res.Hops[e.To] == Unreached {
			w.push(e.To, next)
		}
	}

	return nil
}
