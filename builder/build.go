package builder

import (
	"errors"
	"fmt"
	"sort"

	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/metro/core"
)

// EdgeSpec is one (from, to, weight) row of an edge table.
type EdgeSpec struct {
	From   string  `yaml:"from" validate:"required"`
	To     string  `yaml:"to" validate:"required,nefield=From"`
	Weight float64 `yaml:"weight" validate:"gte=0"`
}

// Neighbor is one entry of an adjacency-dict row: the far station and the cost.
type Neighbor struct {
	To     string
	Weight float64
}

// pairKey is the canonical (ordered) key of an unordered pair.
type pairKey struct{ a, b string }

func keyOf(from, to string) pairKey {
	if to < from {
		from, to = to, from
	}

	return pairKey{from, to}
}

// FromTriples validates edges and builds an undirected weighted graph.
//
// Steps:
//  1. Validate every row; collect all failures into one multierror.
//  2. Resolve repeated pairs according to the duplicate policy.
//  3. Insert the surviving edges into a fresh core.Graph in first-seen order.
//
// Complexity: O(E) time and space.
func FromTriples(edges []EdgeSpec, opts ...Option) (*core.Graph, error) {
	cfg := newConfig(opts)

	// 1) Row validation and 2) duplicate resolution in one pass.
	var result *multierror.Error
	order := make([]pairKey, 0, len(edges))
	weights := make(map[pairKey]float64, len(edges))
	firstRow := make(map[pairKey]EdgeSpec, len(edges))

	var (
		i int
		e EdgeSpec
	)
	for i, e = range edges {
		if err := validateRow(i, e); err != nil {
			result = multierror.Append(result, err)
			continue
		}
		k := keyOf(e.From, e.To)
		prev, seen := weights[k]
		if !seen {
			order = append(order, k)
			firstRow[k] = e
			weights[k] = e.Weight
			continue
		}
		switch cfg.duplicates {
		case DuplicateReject:
			result = multierror.Append(result, rowError(i, e, ErrDuplicateEdge))
		case DuplicateKeepMin:
			if e.Weight < prev {
				weights[k] = e.Weight
			}
		default:
			weights[k] = e.Weight
		}
	}
	for _, id := range cfg.vertices {
		if id == "" {
			result = multierror.Append(result, fmt.Errorf("vertex: %w", ErrEmptyNode))
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	// 3) Insertion into the graph.
	g := core.NewGraph(core.WithCapacity(len(order)*2+len(cfg.vertices), len(order)))
	for _, id := range cfg.vertices {
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("builder: AddVertex(%q): %w", id, err)
		}
	}
	var k pairKey
	for _, k = range order {
		row := firstRow[k]
		if _, err := g.AddEdge(row.From, row.To, weights[k]); err != nil {
			return nil, fmt.Errorf("builder: AddEdge(%q, %q): %w", row.From, row.To, err)
		}
	}

	return g, nil
}

// FromAdjacency builds a graph from an adjacency-dict view. Rows are visited
// in sorted key order and neighbors in slice order, then handed to FromTriples.
func FromAdjacency(adj map[string][]Neighbor, opts ...Option) (*core.Graph, error) {
	return FromTriples(Flatten(adj), opts...)
}

// Flatten converts an adjacency-dict view into triples, rows in sorted key order.
func Flatten(adj map[string][]Neighbor) []EdgeSpec {
	keys := make([]string, 0, len(adj))
	n := 0
	for k, row := range adj {
		keys = append(keys, k)
		n += len(row)
	}
	sort.Strings(keys)

	out := make([]EdgeSpec, 0, n)
	for _, from := range keys {
		for _, nb := range adj[from] {
			out = append(out, EdgeSpec{From: from, To: nb.To, Weight: nb.Weight})
		}
	}

	return out
}

// validateRow checks a single triple against the graph invariants.
func validateRow(i int, e EdgeSpec) error {
	var errs []error
	if e.From == "" || e.To == "" {
		errs = append(errs, rowError(i, e, ErrEmptyNode))
	} else if e.From == e.To {
		errs = append(errs, rowError(i, e, ErrSelfLoop))
	}
	if !core.ValidWeight(e.Weight) {
		errs = append(errs, rowError(i, e, ErrInvalidWeight))
	}

	return errors.Join(errs...)
}
