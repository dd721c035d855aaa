// Package curve implements open Catmull–Rom splines through 3D control
// points, evaluated either by raw spline parameter or by normalized arc
// length.
//
// Parameterizations:
//
//	Centripetal (default)  knot spacing |Δp|^0.5
//	Chordal                knot spacing |Δp|
//	Uniform                classic cardinal spline with a tension (default 0.5)
//
// Chord lengths below 1e-4 fall back to the neighbouring spacing, so
// repeated control points never divide by zero. The end segments use
// mirrored phantom points (2·p0 − p1 and 2·pn − pn−1).
//
// Arc length:
//
//	New samples the spline at Divisions+1 evenly spaced parameters (200 by
//	default) and keeps the cumulative chord lengths. PointAt and TangentAt
//	map a length fraction u ∈ [0, 1] to the spline parameter by binary
//	search in that table with linear interpolation between samples.
//
// Degenerate input: with no control points every evaluation returns the
// zero vector; with one it returns that point. Tangents of degenerate or
// zero-length curves are the zero vector.
//
// A CatmullRom is immutable after New; all methods are safe for concurrent use.
package curve
