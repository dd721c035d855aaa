// File: methods_vertices.go
// Role: Vertex queries. Vertices are the fixed index range [0, Order()).

package core

// Order returns the number of vertices.
func (g *Graph) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// HasVertex reports whether u is a valid vertex index.
func (g *Graph) HasVertex(u int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.inRange(u)
}

// OutDegree returns the number of outgoing edges of u, or 0 for an unknown vertex.
func (g *Graph) OutDegree(u int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(u) {
		return 0
	}

	return len(g.adjacency[u])
}

// MaxDegree returns the configured out-degree cap (0 means unbounded).
func (g *Graph) MaxDegree() int {
	return g.maxDegree
}

// inRange reports whether u indexes a vertex. Callers hold mu.
func (g *Graph) inRange(u int) bool {
	return u >= 0 && u < len(g.adjacency)
}
