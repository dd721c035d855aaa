// Package core provides the shared data model of sprout: the point cloud a
// plant grows through and the sealed, index-keyed proximity Graph built over it.
//
// Points:
//
//   - Point is a gonum r3.Vec. A point's identity is its index in a PointSet.
//   - PointSet is an ordered, never-mutated slice of points. Index 0 is always
//     the origin (0,0,0), the seed the plant grows from; 1..N-1 are sampled.
//   - ToSpherical / Angular convert a point to (radius, polar, azimuth) using
//     the renderer's convention: Phi is measured from +Y, Theta = atan2(x, z).
//     Angular returns (Phi, Theta) as an orb.Point so that angular distances
//     are plain planar distances.
//
// Graph G = (V,E):
//
//   - V = {0..Order()-1}, fixed at construction (one vertex per point).
//   - E = directed, weighted edges From→To with non-negative finite weights.
//   - No self-loops, no parallel edges.
//   - Optional per-vertex out-degree cap (WithMaxDegree), used by the
//     proximity builder to enforce "at most K outgoing edges".
//   - Build once, then Seal(): every later AddEdge fails with ErrSealed and
//     the graph can be shared read-only by any number of readers.
//
// Core Methods:
//
//	// Construction
//	NewGraph(order int, opts ...GraphOption) *Graph  // O(V)
//	AddEdge(from, to int, weight float64) error       // O(d) duplicate check
//	Seal()                                            // O(1)
//
//	// Query
//	Order() int                          // O(1) number of vertices
//	Size() int                           // O(1) number of edges
//	HasVertex(u int) bool                // O(1)
//	Neighbors(u int) ([]Edge, error)     // O(1), insertion order
//	OutDegree(u int) int                 // O(1)
//	HasEdge(u, v int) bool               // O(d)
//	Weight(u, v int) (float64, bool)     // O(d)
//	Edges() []Edge                       // O(E), sorted by From then insertion
//
// Errors:
//
//	ErrVertexNotFound      – index outside [0, Order())
//	ErrLoopNotAllowed      – from == to
//	ErrMultiEdgeNotAllowed – (from,to) already present
//	ErrBadWeight           – negative, NaN or infinite weight
//	ErrDegreeExceeded      – out-degree cap reached
//	ErrSealed              – AddEdge after Seal
//
// Concurrency: mutations take a write lock; queries a read lock. After Seal
// the adjacency never changes again.
package core
