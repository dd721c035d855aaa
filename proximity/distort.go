package proximity

import (
	"github.com/paulmach/orb"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/sprout/core"
	"github.com/katalvlaran/sprout/noise"
)

var (
	axisX = r3.Vec{X: 1}
	axisY = r3.Vec{Y: 1}
	axisZ = r3.Vec{Z: 1}
)

// Twist returns the signed distortion angle for a point with angular
// coordinate (phi, theta).
func Twist(field noise.Field, phi, theta float64) float64 {
	v := field.Eval2(phi, theta)
	mag := minTwist + (v+1)*(maxTwist-minTwist)/2
	if v > 0 {
		return mag
	}

	return -mag
}

// RotateEuler applies the Euler rotation (a, a, a) in XYZ order, that is
// Rx(a)·Ry(a)·Rz(a)·p.
func RotateEuler(p core.Point, a float64) core.Point {
	p = r3.Rotate(p, a, axisZ)
	p = r3.Rotate(p, a, axisY)

	return r3.Rotate(p, a, axisX)
}

// angles holds the per-point coordinates shared by every ranking.
type angles struct {
	plain   []orb.Point // a_j
	twisted []orb.Point // r_j
}

// precompute derives a_j and r_j for every point. Both are independent of
// the point being ranked.
func precompute(points core.PointSet, field noise.Field) angles {
	an := angles{
		plain:   make([]orb.Point, len(points)),
		twisted: make([]orb.Point, len(points)),
	}
	for j, p := range points {
		s := core.ToSpherical(p)
		an.plain[j] = orb.Point{s.Phi, s.Theta}
		an.twisted[j] = core.Angular(RotateEuler(p, Twist(field, s.Phi, s.Theta)))
	}

	return an
}
