// SPDX-License-Identifier: MIT
// Package: sprout/pointfield
//
// options.go — functional options and deterministic defaults.
//
// Contract:
//   • Option constructors panic on values that can never be meaningful
//     (nil field, nil RNG, NaN). Range checks that depend on combinations
//     of options (min < max, jitter vs RNG) are reported by Build as errors.
//   • Options apply in order; the last one wins.

package pointfield

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/sprout/noise"
)

// Option customizes a Build call.
type Option func(*config)

// Deterministic defaults.
const (
	DefaultResolution = 50
	DefaultMin        = -2.0
	DefaultMax        = 2.0
	DefaultRadius     = 2.0
	DefaultNoiseScale = 5.0
	DefaultThreshold  = 0.35
	DefaultJitter     = 0.1
)

// config is the resolved set of knobs for one Build call.
type config struct {
	resolution int
	min, max   float64
	radius     float64
	noiseScale float64
	threshold  float64
	jitter     float64
	field      noise.Field
	rng        *rand.Rand
}

// newConfig returns the defaults with opts applied in order.
func newConfig(opts ...Option) config {
	cfg := config{
		resolution: DefaultResolution,
		min:        DefaultMin,
		max:        DefaultMax,
		radius:     DefaultRadius,
		noiseScale: DefaultNoiseScale,
		threshold:  DefaultThreshold,
		jitter:     DefaultJitter,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithResolution sets the number of samples per axis.
// Validation is deferred to Build (ErrBadResolution).
func WithResolution(n int) Option {
	return func(c *config) { c.resolution = n }
}

// WithBounds sets the [min, max] range every axis is mapped onto.
// Validation is deferred to Build (ErrBadBounds).
func WithBounds(min, max float64) Option {
	return func(c *config) { c.min, c.max = min, max }
}

// WithRadius sets the acceptance radius around the origin.
func WithRadius(r float64) Option {
	return func(c *config) { c.radius = r }
}

// WithNoiseScale sets the factor applied to the radius before sampling noise.
// Panics on NaN or Inf.
func WithNoiseScale(s float64) Option {
	if math.IsNaN(s) || math.IsInf(s, 0) {
		panic("pointfield: WithNoiseScale(non-finite)")
	}
	return func(c *config) { c.noiseScale = s }
}

// WithThreshold sets the noise value a coordinate must exceed to be kept.
// Panics on NaN.
func WithThreshold(th float64) Option {
	if math.IsNaN(th) {
		panic("pointfield: WithThreshold(NaN)")
	}
	return func(c *config) { c.threshold = th }
}

// WithJitter sets the per-axis jitter amplitude; 0 disables jitter and the
// RNG requirement.
func WithJitter(j float64) Option {
	return func(c *config) { c.jitter = j }
}

// WithField sets the noise field. Panics on nil.
func WithField(f noise.Field) Option {
	if f == nil {
		panic("pointfield: WithField(nil)")
	}
	return func(c *config) { c.field = f }
}

// WithNoiseSeed is shorthand for WithField(noise.NewSimplex(seed)).
func WithNoiseSeed(seed int64) Option {
	return WithField(noise.NewSimplex(seed))
}

// WithRand provides the RNG used for jitter. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("pointfield: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed seeds a fresh RNG for jitter.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}
