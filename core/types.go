// Package core defines the Point, PointSet, Edge and Graph types together with
// the sentinel errors returned by graph construction.
//
// Errors:
//
//	ErrVertexNotFound      - requested vertex index does not exist.
//	ErrLoopNotAllowed      - self-loop attempted.
//	ErrMultiEdgeNotAllowed - parallel edge attempted.
//	ErrBadWeight           - negative, NaN or infinite weight.
//	ErrDegreeExceeded      - out-degree cap reached for the source vertex.
//	ErrSealed              - graph was sealed and is read-only.
package core

import (
	"errors"
	"sync"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex index outside [0, Order()).
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrBadWeight indicates a negative, NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be finite and non-negative")

	// ErrDegreeExceeded indicates the source vertex already holds MaxDegree() outgoing edges.
	ErrDegreeExceeded = errors.New("core: out-degree limit exceeded")

	// ErrSealed indicates a mutation on a sealed graph.
	ErrSealed = errors.New("core: graph is sealed")
)

// Point is a coordinate in 3D space.
type Point = r3.Vec

// Edge is a directed, weighted connection From→To.
//
// Weight is the true Euclidean distance between the endpoints when the graph
// is built by the proximity package; Dijkstra uses it as the traversal cost.
type Edge struct {
	// From is the source vertex index.
	From int

	// To is the destination vertex index.
	To int

	// Weight is the traversal cost of the edge.
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMaxDegree caps the number of outgoing edges per vertex.
// Panics if k <= 0.
func WithMaxDegree(k int) GraphOption {
	if k <= 0 {
		panic("core: WithMaxDegree(k<=0)")
	}
	return func(g *Graph) { g.maxDegree = k }
}

// Graph is a directed, weighted graph over the vertex indices 0..Order()-1.
//
// mu protects adjacency, size and sealed. Vertices are fixed at construction;
// only edges are added.
type Graph struct {
	mu sync.RWMutex

	// Configuration
	maxDegree int // 0 = unbounded

	// Storage
	adjacency [][]Edge // adjacency[u] = outgoing edges of u in insertion order
	size      int      // total edge count
	sealed    bool     // read-only once true
}

// NewGraph creates an edgeless Graph with order vertices.
// A negative order is treated as zero.
// Complexity: O(V)
func NewGraph(order int, opts ...GraphOption) *Graph {
	if order < 0 {
		order = 0
	}
	g := &Graph{
		adjacency: make([][]Edge, order),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}
