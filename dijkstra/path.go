package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/metro/core"
)

// PathWeight returns the sum of edge weights along consecutive nodes of path.
// An empty or single-node path weighs 0.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - *UnknownNodeError for a node missing from g.
//   - ErrBrokenPath (wrapped with the offending pair) if two consecutive
//     nodes share no edge.
func PathWeight(g *core.Graph, path []string) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}

	var total float64
	for i, id := range path {
		if !g.HasVertex(id) {
			return 0, &UnknownNodeError{Node: id}
		}
		if i == 0 {
			continue
		}
		e, err := g.Edge(path[i-1], id)
		if err != nil {
			return 0, fmt.Errorf("%w: %q-%q", ErrBrokenPath, path[i-1], id)
		}
		total += e.Weight
	}

	return total, nil
}
