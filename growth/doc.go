// Package growth grows a branching plant over a proximity graph.
//
// Overview:
//
//   - Trunks: up to TrunkAttempts shortest paths from the origin to targets
//     drawn uniformly (with replacement) from the vertices the origin can
//     reach. Each trunk contributes one depth-0 segment.
//   - Branches: from the tip of a segment at depth d, the Candidates points
//     nearest to the tip are tried in order of distance. For each candidate
//     a target is drawn among the points strictly farther from the origin
//     than the candidate, and the path candidate → target becomes a segment
//     at depth d+1. Growth stops at MaxDepth.
//   - A segment is not the whole path: the path curve (a centripetal
//     Catmull–Rom spline through the start, the candidate and the path
//     vertices) is sampled at Samples evenly spaced arc-length offsets over
//     [0, Reach], and the segment is the spline through those samples. The
//     next growth start is the path curve's point at Reach.
//
// Ordering:
//
//	All trunks come first. The branches of each trunk follow in depth-first
//	pre-order, so every segment appears after the segment it grew from
//	(Segment.Parent) and the first TrunkAttempts segments have depth 0
//	whenever that many trunks grew.
//
// Termination:
//
//	Growth never retries a draw. Targets are sampled from precomputed
//	eligible sets (vertices the Finder's origin tree reaches for trunks,
//	magnitude-sorted points for branches) and an empty set simply ends that line of growth.
//	The segment count is bounded by TrunkAttempts·Σ_{d<MaxDepth} Candidates^d.
//	Branch growth runs on an explicit stack, not recursion.
//
// Errors:
//
//   - ErrBadParameter: an option out of range (depth, counts, reach, samples).
//   - ErrNilInput, ErrMismatch: missing inputs or a graph over another PointSet.
//   - ErrNeedRandSource: neither WithRand nor WithSeed given.
//
// Unreachable branch targets are not errors; they are reported to
// WithOnUnreachable and skipped. Trunk targets always have a path, even under
// WithFinder search limits.
//
// Complexity:
//
//	O(S·(V+E)·log V) for S segments in the worst case. Shortest-path trees
//	are cached per source by dijkstra.Finder.
package growth
