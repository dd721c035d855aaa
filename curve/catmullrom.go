package curve

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/sprout/core"
)

const (
	// minKnotSpacing is the chord length below which a knot interval is
	// replaced by its neighbour.
	minKnotSpacing = 1e-4

	// tangentDelta is the parameter step of the central difference in Tangent.
	tangentDelta = 1e-4
)

// CatmullRom is an open Catmull–Rom spline.
type CatmullRom struct {
	points  []core.Point
	typ     Type
	tension float64
	lengths []float64 // cumulative arc length at i/divisions
}

// New returns the spline through points. The slice is copied.
// Complexity: O(divisions)
func New(points []core.Point, opts ...Option) *CatmullRom {
	cfg := config{typ: Centripetal, tension: DefaultTension, divisions: DefaultDivisions}
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &CatmullRom{
		points:  append([]core.Point(nil), points...),
		typ:     cfg.typ,
		tension: cfg.tension,
	}
	c.lengths = c.arcLengths(cfg.divisions)

	return c
}

// Resample returns a spline of the same type through PointAt(u) for each
// offset u, in order.
func (c *CatmullRom) Resample(offsets ...float64) *CatmullRom {
	pts := make([]core.Point, len(offsets))
	for i, u := range offsets {
		pts[i] = c.PointAt(u)
	}

	return New(pts, c.options()...)
}

// Sub returns the spline through n+1 arc-length samples evenly spread over
// [u0, u1]. n < 1 is treated as 1.
func (c *CatmullRom) Sub(u0, u1 float64, n int) *CatmullRom {
	return c.Resample(Offsets(u0, u1, n)...)
}

// Offsets returns n+1 evenly spaced values from u0 to u1, both ends exact.
// n < 1 is treated as 1.
func Offsets(u0, u1 float64, n int) []float64 {
	if n < 1 {
		n = 1
	}
	out := make([]float64, n+1)
	for i := range out {
		out[i] = u0 + (u1-u0)*float64(i)/float64(n)
	}
	out[n] = u1

	return out
}

// ControlPoints returns a copy of the control points.
func (c *CatmullRom) ControlPoints() []core.Point {
	return append([]core.Point(nil), c.points...)
}

// Type returns the parameterization.
func (c *CatmullRom) Type() Type { return c.typ }

// Length returns the approximate arc length.
func (c *CatmullRom) Length() float64 { return c.lengths[len(c.lengths)-1] }

// Point evaluates the spline at raw parameter t ∈ [0, 1].
//
// Steps:
//  1. Locate the segment intPoint and the local weight.
//  2. Pick the four surrounding points, mirroring at the ends.
//  3. Build per-axis cubic coefficients and evaluate.
func (c *CatmullRom) Point(t float64) core.Point {
	l := len(c.points)
	switch l {
	case 0:
		return core.Point{}
	case 1:
		return c.points[0]
	}

	// 1) Segment and weight
	p := float64(l-1) * t
	intPoint := int(math.Floor(p))
	weight := p - float64(intPoint)
	if intPoint < 0 {
		intPoint, weight = 0, 0
	}
	if intPoint >= l-1 {
		intPoint, weight = l-2, 1
	}

	// 2) Neighbourhood
	p1, p2 := c.points[intPoint], c.points[intPoint+1]
	var p0, p3 core.Point
	if intPoint > 0 {
		p0 = c.points[intPoint-1]
	} else {
		p0 = r3.Sub(r3.Scale(2, c.points[0]), c.points[1])
	}
	if intPoint+2 < l {
		p3 = c.points[intPoint+2]
	} else {
		p3 = r3.Sub(r3.Scale(2, c.points[l-1]), c.points[l-2])
	}

	// 3) Coefficients
	var x, y, z cubic
	if c.typ == Uniform {
		x = uniformCubic(p0.X, p1.X, p2.X, p3.X, c.tension)
		y = uniformCubic(p0.Y, p1.Y, p2.Y, p3.Y, c.tension)
		z = uniformCubic(p0.Z, p1.Z, p2.Z, p3.Z, c.tension)
	} else {
		pow := 0.25
		if c.typ == Chordal {
			pow = 0.5
		}
		dt0 := math.Pow(r3.Norm2(r3.Sub(p0, p1)), pow)
		dt1 := math.Pow(r3.Norm2(r3.Sub(p1, p2)), pow)
		dt2 := math.Pow(r3.Norm2(r3.Sub(p2, p3)), pow)
		if dt1 < minKnotSpacing {
			dt1 = 1
		}
		if dt0 < minKnotSpacing {
			dt0 = dt1
		}
		if dt2 < minKnotSpacing {
			dt2 = dt1
		}
		x = nonuniformCubic(p0.X, p1.X, p2.X, p3.X, dt0, dt1, dt2)
		y = nonuniformCubic(p0.Y, p1.Y, p2.Y, p3.Y, dt0, dt1, dt2)
		z = nonuniformCubic(p0.Z, p1.Z, p2.Z, p3.Z, dt0, dt1, dt2)
	}

	return core.Point{X: x.at(weight), Y: y.at(weight), Z: z.at(weight)}
}

// PointAt evaluates the spline at arc-length fraction u ∈ [0, 1].
func (c *CatmullRom) PointAt(u float64) core.Point {
	return c.Point(c.UToT(u))
}

// Tangent returns the unit tangent at raw parameter t, by central
// difference clamped to [0, 1]. The zero vector is returned where the
// curve does not move.
func (c *CatmullRom) Tangent(t float64) core.Point {
	t1, t2 := math.Max(t-tangentDelta, 0), math.Min(t+tangentDelta, 1)
	d := r3.Sub(c.Point(t2), c.Point(t1))
	n := r3.Norm(d)
	if n == 0 {
		return core.Point{}
	}

	return r3.Scale(1/n, d)
}

// TangentAt returns the unit tangent at arc-length fraction u.
func (c *CatmullRom) TangentAt(u float64) core.Point {
	return c.Tangent(c.UToT(u))
}

// Points returns n+1 samples at evenly spaced raw parameters.
func (c *CatmullRom) Points(n int) []core.Point {
	ts := Offsets(0, 1, n)
	out := make([]core.Point, len(ts))
	for i, t := range ts {
		out[i] = c.Point(t)
	}

	return out
}

// SpacedPoints returns n+1 samples at evenly spaced arc-length fractions.
func (c *CatmullRom) SpacedPoints(n int) []core.Point {
	us := Offsets(0, 1, n)
	out := make([]core.Point, len(us))
	for i, u := range us {
		out[i] = c.PointAt(u)
	}

	return out
}

// UToT maps an arc-length fraction to the raw spline parameter.
// u is clamped to [0, 1].
func (c *CatmullRom) UToT(u float64) float64 {
	u = math.Max(0, math.Min(1, u))
	last := len(c.lengths) - 1
	target := u * c.lengths[last]

	// First index whose cumulative length is >= target.
	i := sort.SearchFloat64s(c.lengths, target)
	if i <= last && c.lengths[i] == target {
		return float64(i) / float64(last)
	}
	if i == 0 {
		return 0
	}
	if i > last {
		return 1
	}

	// target lies strictly between lengths[i-1] and lengths[i].
	before, after := c.lengths[i-1], c.lengths[i]
	frac := (target - before) / (after - before)

	return (float64(i-1) + frac) / float64(last)
}

// options reproduces the configuration for derived curves.
func (c *CatmullRom) options() []Option {
	return []Option{WithType(c.typ), WithTension(c.tension), WithDivisions(len(c.lengths) - 1)}
}

// arcLengths samples the cumulative chord length at i/divisions.
func (c *CatmullRom) arcLengths(divisions int) []float64 {
	lengths := make([]float64, divisions+1)
	last := c.Point(0)
	var sum float64
	for i := 1; i <= divisions; i++ {
		cur := c.Point(float64(i) / float64(divisions))
		sum += r3.Norm(r3.Sub(cur, last))
		lengths[i] = sum
		last = cur
	}

	return lengths
}

// cubic holds c0 + c1·t + c2·t² + c3·t³.
type cubic struct{ c0, c1, c2, c3 float64 }

func (p cubic) at(t float64) float64 {
	t2 := t * t
	return p.c0 + p.c1*t + p.c2*t2 + p.c3*t2*t
}

// hermite builds the cubic from x0 to x1 with end tangents t0 and t1.
func hermite(x0, x1, t0, t1 float64) cubic {
	return cubic{
		c0: x0,
		c1: t0,
		c2: -3*x0 + 3*x1 - 2*t0 - t1,
		c3: 2*x0 - 2*x1 + t0 + t1,
	}
}

func uniformCubic(x0, x1, x2, x3, tension float64) cubic {
	return hermite(x1, x2, tension*(x2-x0), tension*(x3-x1))
}

func nonuniformCubic(x0, x1, x2, x3, dt0, dt1, dt2 float64) cubic {
	t1 := (x1-x0)/dt0 - (x2-x0)/(dt0+dt1) + (x2-x1)/dt1
	t2 := (x2-x1)/dt1 - (x3-x1)/(dt1+dt2) + (x3-x2)/dt2
	// Rescale tangents for parameter range [0, 1].
	return hermite(x1, x2, t1*dt1, t2*dt1)
}
