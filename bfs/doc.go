// Package bfs layers a proximity graph by hop count from a start vertex.
//
// Walk ignores edge weights and records, for every vertex, the number of
// edges on the fewest-hop path from the start. The plant generator runs it
// from the origin right after the graph is built to report how much of the
// point field the growth can ever touch and how deep the graph is in hops.
//
// Determinism
//
//	core.Graph.Neighbors returns edges in insertion order and Walk expands
//	them in that order, so Result.Order is reproducible for a given graph.
//
// Cancellation
//
//	ctx is checked once per dequeued vertex. A canceled walk returns the
//	partial Result together with the context error.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.Walk(ctx, g, core.OriginIndex)
//	if err != nil {
//	    return err
//	}
//	log.Info("reach", "points", res.Count(), "hops", res.Eccentricity())
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ctx.Err()               wrapped, when the walk is canceled.
package bfs
