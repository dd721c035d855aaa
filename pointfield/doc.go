// SPDX-License-Identifier: MIT
// Package: sprout/pointfield
//
// Package pointfield samples the noise-carved point cloud the plant grows
// through.
//
// A regular grid of Resolution³ coordinates is mapped linearly onto
// [Min, Max] on every axis. Each coordinate is converted to spherical form
// (r, φ, θ) and kept when
//
//	r < Radius  and  field.Eval3(r·NoiseScale, φ, θ) > Threshold
//
// Kept coordinates receive a uniform per-axis jitter in [0, Jitter) and are
// appended in grid order (x outer, then y, then z). The origin is prepended
// as index 0, so the result always has at least one point.
//
// Reference parameters (all defaults):
//
//	Resolution 50, bounds [-2, 2], Radius 2, NoiseScale 5,
//	Threshold 0.35, Jitter 0.1.
//
// Errors:
//
//	ErrBadResolution  - resolution < 1.
//	ErrBadBounds      - min >= max or non-finite bounds.
//	ErrBadRadius      - radius <= 0.
//	ErrBadJitter      - jitter < 0.
//	ErrNeedRandSource - jitter > 0 but no RNG was supplied.
//
// Complexity: O(Resolution³) time, O(kept) memory.
//
// Determinism: same options, same noise seed and same RNG seed give the same
// PointSet.
package pointfield
