package playback

import (
	"math"

	"github.com/katalvlaran/sprout/core"
	"github.com/katalvlaran/sprout/curve"
	"github.com/katalvlaran/sprout/growth"
)

// Geometry constants of the reference renderer.
const (
	// TubularSegments is the lengthwise resolution of every tube.
	TubularSegments = 20

	// SphereSegments is the width and height resolution of node spheres.
	SphereSegments = 12

	// LeafScale is the scale of a leaf mesh.
	LeafScale = 0.005

	radiusUnit = 0.01
	radialUnit = 4
)

// TipKind selects the decoration at a segment tip.
type TipKind int

const (
	// Node is a small sphere.
	Node TipKind = iota

	// Leaf is a leaf mesh, used on the last level.
	Leaf
)

// String implements fmt.Stringer.
func (k TipKind) String() string {
	if k == Leaf {
		return "leaf"
	}
	return "node"
}

// Tube is the visible part of one segment on one frame.
type Tube struct {
	// Segment is the index of the source segment.
	Segment int

	// Samples are the segment points at arc-length 0, 1/F, ... up to the fraction.
	Samples []core.Point

	// Curve is the spline through Samples, the tube's centre line.
	Curve *curve.CatmullRom

	Radius          float64
	RadialSegments  int
	TubularSegments int

	// Persistent tubes stay in the scene; others are drawn once.
	Persistent bool
}

// Tip is the decoration placed when a level completes.
type Tip struct {
	Kind    TipKind
	Segment int

	// Position is the last sample of the tube.
	Position core.Point

	// Direction is the unit tangent of the segment at its end.
	Direction core.Point

	// Size is the sphere radius for nodes and the mesh scale for leaves.
	Size float64

	// Tilt is the leaf rotation about its local X axis before facing
	// Direction; π/2 plus a random turn within ±π/3.
	Tilt float64
}

// Plan is everything the renderer draws on one frame.
type Plan struct {
	Stage
	Tubes []Tube
	Tips  []Tip
}

// Plan returns the drawing plan of the current frame for segs.
// Leaf tilts consume the Timeline's random source.
func (t *Timeline) Plan(segs []growth.Segment) Plan {
	p := Plan{Stage: t.Stage()}
	if p.Depth < 0 {
		return p
	}

	mult := t.levels - p.Depth
	if mult < 1 {
		mult = 1
	}
	for i, s := range segs {
		if s.Depth != p.Depth {
			continue
		}

		// 1) Samples up to the fraction.
		samples := make([]core.Point, 0, p.Steps+1)
		samples = append(samples, s.Curve.PointAt(0))
		for k := 1; k <= p.Steps; k++ {
			samples = append(samples, s.Curve.PointAt(math.Min(float64(k)/float64(t.framesPerCurve), 1)))
		}

		p.Tubes = append(p.Tubes, Tube{
			Segment:         i,
			Samples:         samples,
			Curve:           curve.New(samples),
			Radius:          radiusUnit * float64(mult),
			RadialSegments:  radialUnit * mult,
			TubularSegments: TubularSegments,
			Persistent:      p.Final,
		})

		// 2) Tip decoration once the level is complete.
		if p.Final {
			p.Tips = append(p.Tips, t.tip(i, s, samples[len(samples)-1], p.Depth, mult))
		}
	}

	return p
}

func (t *Timeline) tip(i int, s growth.Segment, pos core.Point, depth, mult int) Tip {
	tip := Tip{
		Kind:      Node,
		Segment:   i,
		Position:  pos,
		Direction: s.Curve.TangentAt(1),
		Size:      radiusUnit * float64(mult),
	}
	if depth == t.levels-1 {
		tip.Kind = Leaf
		tip.Size = LeafScale
		tip.Tilt = math.Pi / 2
		if t.rng != nil {
			tip.Tilt += (t.rng.Float64() - 0.5) * 2 * math.Pi / 3
		}
	}

	return tip
}
