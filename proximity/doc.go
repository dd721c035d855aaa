// Package proximity builds the directed K-nearest proximity graph the plant
// grows along.
//
// Overview:
//
//   - Every point j gets an angular coordinate a_j = (φ_j, θ_j) and a
//     distorted one r_j: the spherical angles of p_j after an Euler rotation
//     by (α_j, α_j, α_j) in XYZ order, where α_j is derived from the noise
//     value v = field.Eval2(φ_j, θ_j):
//     |α_j| = map(v, [-1, 1] → [π/10, π/6]), sign +1 if v > 0 else -1.
//   - For a pair (i, j) three distances are defined:
//     D1 = |p_i − p_j|, D2 = |a_i − a_j|, D3 = |a_i − r_j| (planar, in
//     angle space).
//   - The origin (index 0) keeps its k closest points by D1; every other
//     point keeps its k closest by D3. Ties go to the smaller index.
//   - Edges i→j are weighted by D1 regardless of the ranking metric.
//
// D3 makes the graph prefer neighbours along a twisted angular direction,
// which produces the curling look of the branches; D1 weights keep path
// costs geometric.
//
// Complexity:
//
//   - Build: O(N²·k) time spread across the worker pool, O(N·k) memory.
//   - Candidates: O(N log N) for one point.
//
// Errors:
//
//   - ErrBadK          - k < 1.
//   - ErrEmptyPointSet - no points at all.
//
// Determinism: the graph depends only on the points, k and the noise field.
// The worker count never changes the result.
package proximity
