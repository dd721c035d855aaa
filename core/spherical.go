// File: spherical.go
// Role: Cartesian → spherical conversion and the 2D angular coordinate.
//
// Convention (matches the renderer):
//   - Radius = |p|
//   - Phi    = polar angle from +Y, in [0, π]
//   - Theta  = azimuth atan2(x, z), in (-π, π]
//   - The zero vector maps to (0, 0, 0).

package core

import (
	"math"

	"github.com/paulmach/orb"
	"gonum.org/v1/gonum/spatial/r3"
)

// Spherical holds spherical coordinates of a point.
type Spherical struct {
	Radius float64
	Phi    float64 // polar angle from +Y
	Theta  float64 // azimuth around +Y, measured from +Z toward +X
}

// ToSpherical converts p into spherical coordinates.
// Complexity: O(1)
func ToSpherical(p Point) Spherical {
	r := r3.Norm(p)
	if r == 0 {
		return Spherical{}
	}

	return Spherical{
		Radius: r,
		Phi:    math.Acos(clamp(p.Y/r, -1, 1)),
		Theta:  math.Atan2(p.X, p.Z),
	}
}

// Angular returns the (Phi, Theta) pair of p as a planar point, so that
// angular distances are orb/planar distances.
func Angular(p Point) orb.Point {
	s := ToSpherical(p)
	return orb.Point{s.Phi, s.Theta}
}

// clamp limits v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
