// Package bfs provides breadth-first traversal over a core.Graph, ignoring
// weights: hop counts, reachability and connected components.
//
// The metro CLI uses it to flag networks whose stations are split into
// several disconnected parts, and the engine tests use it as an
// independent reachability oracle.
package bfs

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/metro/core"
)

type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS walks g from start in increasing segment count. Neighbors are
// enqueued in lexical order, so Order is deterministic.
// Returns ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation or the
// context's error.
func BFS(ctx context.Context, g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.enqueue(start, 0, "")

	return w.res, w.loop()
}

func (w *walker) enqueue(id string, d int, parent string) {
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty or cancelled.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return fmt.Errorf("bfs: %w", w.ctx.Err())
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		neighbors, err := w.graph.NeighborIDs(item.id)
		if err != nil {
			return fmt.Errorf("bfs: neighbors of %q: %w", item.id, err)
		}
		for _, nbr := range neighbors {
			if !w.res.Reached(nbr) {
				w.enqueue(nbr, next, item.id)
			}
		}
	}

	return nil
}

// Components partitions the vertices of g into connected components.
// Each component is sorted, and components are ordered by their smallest ID.
func Components(ctx context.Context, g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	seen := make(map[string]bool, g.VertexCount())
	var out [][]string
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		res, err := BFS(ctx, g, v)
		if err != nil {
			return nil, err
		}
		comp := make([]string, 0, len(res.Order))
		for _, id := range res.Order {
			seen[id] = true
			comp = append(comp, id)
		}
		sort.Strings(comp)
		out = append(out, comp)
	}

	return out, nil
}
