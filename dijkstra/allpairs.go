package dijkstra

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/metro/core"
)

// Matrix is an all-pairs distance table.
// Dist[i][j] is the distance from Nodes[i] to Nodes[j], +Inf if unreachable.
type Matrix struct {
	Nodes []string
	Dist  [][]float64
}

// At returns the distance between two nodes and whether both are in the matrix.
func (m *Matrix) At(from, to string) (float64, bool) {
	i, j := m.index(from), m.index(to)
	if i < 0 || j < 0 {
		return math.Inf(1), false
	}

	return m.Dist[i][j], true
}

func (m *Matrix) index(id string) int {
	for i, n := range m.Nodes {
		if n == id {
			return i
		}
	}

	return -1
}

// AllPairs runs Distances from every node of g (in sorted order).
//
// Complexity: V × Distances, i.e. O(V (V + E) log V) with StrategyHeap.
func AllPairs(ctx context.Context, g *core.Graph, opts ...Option) (*Matrix, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	nodes := g.Vertices()
	m := &Matrix{Nodes: nodes, Dist: make([][]float64, len(nodes))}
	for i, src := range nodes {
		dist, _, err := Distances(ctx, g, src, opts...)
		if err != nil {
			return nil, fmt.Errorf("dijkstra: all-pairs from %q: %w", src, err)
		}
		row := make([]float64, len(nodes))
		for j, dst := range nodes {
			row[j] = dist[dst]
		}
		m.Dist[i] = row
	}

	return m, nil
}
