// Package spatial is a 3D nearest-neighbour index over a PointSet, backed by
// an R-tree (github.com/dhconnelly/rtreego).
//
// Nearest returns exactly the k closest points by Euclidean distance with ties
// broken by ascending index, which is the order a stable sort over the whole
// PointSet would produce. The R-tree narrows the search; results are then
// re-ranked exactly, and the index falls back to a linear scan when a tie
// straddles the fetch window.
//
// Complexity: New O(n log n); Nearest O(log n + k) typical, O(n log n) worst
// case on massive ties.
//
// An Index is immutable after New and safe for concurrent queries.
package spatial
