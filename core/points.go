// File: points.go
// Role: PointSet, the ordered point cloud with the origin at index 0.

package core

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// OriginIndex is the index of the fixed seed point in every PointSet.
const OriginIndex = 0

// PointSet is an ordered sequence of points; index 0 is the origin.
// A PointSet is never mutated after construction.
type PointSet []Point

// NewPointSet returns a PointSet holding the origin followed by a copy of samples.
// Complexity: O(n)
func NewPointSet(samples []Point) PointSet {
	ps := make(PointSet, 0, len(samples)+1)
	ps = append(ps, Point{})
	ps = append(ps, samples...)

	return ps
}

// Len returns the number of points, origin included.
func (ps PointSet) Len() int { return len(ps) }

// At returns the point at index i. Panics if i is out of range, like a slice index.
func (ps PointSet) At(i int) Point { return ps[i] }

// Origin returns the point at OriginIndex.
func (ps PointSet) Origin() Point { return ps[OriginIndex] }

// Has reports whether i indexes a point.
func (ps PointSet) Has(i int) bool { return i >= 0 && i < len(ps) }

// Magnitude returns the distance of point i from the coordinate origin.
func (ps PointSet) Magnitude(i int) float64 { return r3.Norm(ps[i]) }

// Distance returns the Euclidean distance between points i and j.
func (ps PointSet) Distance(i, j int) float64 { return r3.Norm(r3.Sub(ps[i], ps[j])) }

// Gather returns the points addressed by idx, in order.
// Complexity: O(len(idx))
func (ps PointSet) Gather(idx []int) []Point {
	out := make([]Point, len(idx))
	for k, i := range idx {
		out[k] = ps[i]
	}

	return out
}
