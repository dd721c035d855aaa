// SPDX-License-Identifier: MIT
// Package: sprout/pointfield
//
// pointfield.go — grid sampling, noise carving and jitter.

package pointfield

import (
	"math"

	"github.com/katalvlaran/sprout/core"
	"github.com/katalvlaran/sprout/noise"
)

const methodBuild = "Build"

// Build samples the point field described by opts.
//
// Steps:
//  1. Resolve options and validate ranges.
//  2. Precompute the axis coordinates (mapLinear over [min, max]).
//  3. Walk the grid x→y→z, keep coordinates inside the radius whose noise
//     value exceeds the threshold, and jitter them.
//  4. Prepend the origin.
//
// When no field is supplied a Simplex field seeded from the RNG is used
// (seed 0 when there is no RNG either).
func Build(opts ...Option) (core.PointSet, error) {
	// 1) Configuration
	cfg := newConfig(opts...)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	field := cfg.field
	if field == nil {
		var seed int64
		if cfg.rng != nil {
			seed = cfg.rng.Int63()
		}
		field = noise.NewSimplex(seed)
	}

	// 2) Axis coordinates are shared by all three axes.
	axis := make([]float64, cfg.resolution)
	for i := range axis {
		axis[i] = MapLinear(float64(i), 0, float64(cfg.resolution-1), cfg.min, cfg.max)
	}

	// 3) Grid walk
	var kept []core.Point
	for _, x := range axis {
		for _, y := range axis {
			for _, z := range axis {
				p := core.Point{X: x, Y: y, Z: z}
				if !cfg.accept(field, p) {
					continue
				}
				if cfg.jitter > 0 {
					p.X += cfg.rng.Float64() * cfg.jitter
					p.Y += cfg.rng.Float64() * cfg.jitter
					p.Z += cfg.rng.Float64() * cfg.jitter
				}
				kept = append(kept, p)
			}
		}
	}

	// 4) Origin first
	return core.NewPointSet(kept), nil
}

// accept reports whether grid coordinate p survives the radius and noise tests.
func (c config) accept(field noise.Field, p core.Point) bool {
	s := core.ToSpherical(p)
	if s.Radius >= c.radius {
		return false
	}

	return field.Eval3(s.Radius*c.noiseScale, s.Phi, s.Theta) > c.threshold
}

// validate reports the first invalid knob as a wrapped sentinel.
func (c config) validate() error {
	switch {
	case c.resolution < 1:
		return fieldErrorf(methodBuild, ErrBadResolution, "resolution=%d", c.resolution)
	case math.IsNaN(c.min) || math.IsNaN(c.max) || math.IsInf(c.min, 0) || math.IsInf(c.max, 0) || c.min >= c.max:
		return fieldErrorf(methodBuild, ErrBadBounds, "min=%g max=%g", c.min, c.max)
	case !(c.radius > 0):
		return fieldErrorf(methodBuild, ErrBadRadius, "radius=%g", c.radius)
	case c.jitter < 0 || math.IsNaN(c.jitter):
		return fieldErrorf(methodBuild, ErrBadJitter, "jitter=%g", c.jitter)
	case c.jitter > 0 && c.rng == nil:
		return fieldErrorf(methodBuild, ErrNeedRandSource, "jitter=%g", c.jitter)
	}

	return nil
}

// MapLinear maps x from [a1, a2] onto [b1, b2]. A degenerate source range
// (a1 == a2) maps everything to b1.
func MapLinear(x, a1, a2, b1, b2 float64) float64 {
	if a1 == a2 {
		return b1
	}

	return b1 + (x-a1)*(b2-b1)/(a2-a1)
}
