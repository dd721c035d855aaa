// Package playback stages the animated reveal of a grown plant.
//
// A Timeline is a frame counter. Every FramesPerCurve frames one depth level
// of segments is drawn, from its start up to a growing fraction, so the
// plant appears to grow trunk first and leaves last:
//
//	frame 0             nothing (depth -1)
//	frames 1..F         depth 0, fraction 1/F .. 1
//	frames F+1..2F      depth 1
//	...
//	frame (L+1)·F       last frame; the counter stops there
//
// where F = FramesPerCurve (60) and L = Levels (5). On the frame a level
// completes (fraction 1) its tubes become permanent and every segment tip
// gets a decoration: a node sphere, or a leaf on the last level. Earlier
// frames produce transient tubes that the renderer discards after drawing.
//
// Plan is pure geometry: sample points, tube dimensions and tip poses. Mesh
// construction and disposal belong to the renderer. The Timeline is owned by
// the renderer and reset when growth restarts; the growth core never sees it.
package playback
