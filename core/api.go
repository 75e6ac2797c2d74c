package core

// GraphStats is a read-only snapshot of catalog sizes and weight totals.
type GraphStats struct {
	VertexCount int     // number of vertices
	EdgeCount   int     // number of edges
	Isolated    int     // vertices with no incident edge
	TotalWeight float64 // sum of all edge weights
}

// Stats produces a snapshot of the graph's size.
//
// Implementation:
//   - Stage 1: Acquire muVert then muEdgeAdj read locks.
//   - Stage 2: Count vertices, isolated vertices, edges and the weight total.
//
// Complexity: O(V+E).
func (g *Graph) Stats() GraphStats {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	stats := GraphStats{
		VertexCount: len(g.vertices),
		EdgeCount:   len(g.edges),
	}
	for id := range g.vertices {
		if len(g.adjacency[id]) == 0 {
			stats.Isolated++
		}
	}
	var e *Edge
	for _, e = range g.edges {
		stats.TotalWeight += e.Weight
	}

	return stats
}
