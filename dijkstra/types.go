// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on index-addressed graphs.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative edge weights.
// The algorithm maintains a priority queue of vertices to explore and
// relaxes edges in increasing order of distance from the source vertex.
//
// Complexity:
//
//	– Time:  O((V + E) log V)   where V = |vertices|, E = |edges|
//	– Space: O(V + E)
//
// Options:
//
//	– MaxDistance:      optional cap on distances to explore; vertices beyond this are skipped.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source vertex does not exist in the graph.
//	– ErrBadMaxDistance  if MaxDistance < 0 (panic in WithMaxDistance).
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0 (panic in WithInfEdgeThreshold).
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the specified source vertex does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative or NaN value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero, a negative
	// value or NaN, which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrBadCacheSize indicates a Finder cache that cannot hold a single tree.
	ErrBadCacheSize = errors.New("dijkstra: cache size must be >= 1")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – optional cap on distances to explore (vertices beyond are skipped).
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is +Inf (no obstacles).
type Options struct {
	MaxDistance      float64 // Maximum distance to explore
	InfEdgeThreshold float64 // Weight threshold at or above which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Panics with ErrBadMaxDistance on a negative or NaN value.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges are
// considered non-traversable (treated as infinite weight).
// Panics with ErrBadInfThreshold on zero, negative or NaN values.
func WithInfEdgeThreshold(threshold float64) Option {
	if !(threshold > 0) {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
// no distance cap and no impassable edges.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// Path is a vertex sequence from a source to a target and its total weight.
type Path struct {
	// Nodes lists vertex indices from source to target, both included.
	Nodes []int

	// Cost is the sum of edge weights along Nodes.
	Cost float64
}

// Len returns the number of vertices on the path.
func (p Path) Len() int { return len(p.Nodes) }

// Source returns the first vertex, or -1 for an empty path.
func (p Path) Source() int {
	if len(p.Nodes) == 0 {
		return -1
	}
	return p.Nodes[0]
}

// Target returns the last vertex, or -1 for an empty path.
func (p Path) Target() int {
	if len(p.Nodes) == 0 {
		return -1
	}
	return p.Nodes[len(p.Nodes)-1]
}
