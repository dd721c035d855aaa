// Package plant wires the sprout pipeline together.
//
// Stages:
//
//  1. pointfield: a noise-carved, jittered grid of points inside a sphere,
//     the origin at index 0.
//  2. proximity: a directed graph linking each point to its k best
//     neighbours, ranked by a noise-twisted angular distance and weighted
//     by true distance.
//  3. growth: trunks and branches cut from shortest paths (dijkstra) and
//     smoothed into Catmull–Rom segments (curve).
//
// Generator runs the stages from a Config, which can be decoded from YAML:
//
//	seed: 7
//	noise_seed: 3
//	field:
//	  resolution: 40
//	  threshold: 0.3
//	graph:
//	  k: 5
//	growth:
//	  max_depth: 4
//	  curve: chordal
//
// Omitted keys keep DefaultConfig values. Stages are logged through
// log/slog at Info (discarded unless WithLogger is given) and measured by
// optional Prometheus collectors (NewMetrics, WithMetrics).
//
// BuildPointField, BuildProximityGraph, FindShortestPath and GrowPlant
// expose each stage with plain parameters.
package plant
