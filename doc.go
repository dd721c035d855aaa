// Package sprout grows procedural plants through 3D point clouds.
//
// 🌱 What is sprout?
//
//	A small pipeline that turns seeded noise into a branching plant:
//		• Point field: a noise-carved grid of points inside a sphere
//		• Proximity graph: k best neighbours per point, chosen by a twisted
//		  angular distance and weighted by true distance
//		• Shortest paths: Dijkstra with a per-source tree cache
//		• Growth: trunks and branches cut from shortest paths, smoothed into
//		  Catmull–Rom segments tagged with their depth
//		• Playback: a frame timeline that reveals the plant level by level
//
// Under the hood:
//
//	core/       — Point, PointSet and the sealed index graph
//	noise/      — seeded coherent noise (OpenSimplex)
//	pointfield/ — grid sampling, noise carving, jitter
//	spatial/    — R-tree nearest-neighbour index
//	proximity/  — the K-nearest proximity graph
//	bfs/        — hop layering of the graph from the origin
//	dijkstra/   — shortest paths and the caching Finder
//	curve/      — Catmull–Rom splines with arc-length sampling
//	growth/     — trunk and branch growth
//	playback/   — staged animation plans for a renderer
//	plant/      — YAML config, logging, metrics and the full pipeline
//
// Quick start:
//
//	gen, _ := plant.New(plant.DefaultConfig())
//	p, _ := gen.Generate(context.Background())
//	for _, s := range p.Segments {
//		fmt.Println(s.Depth, s.Curve.PointAt(1))
//	}
//
// See examples/ for a headless end-to-end run.
package sprout
