// Package dijkstra implements the single-source relaxation loop.
//
// Notes on implementation choices:
//
//   - Validation (nil graph, unknown source/target) happens before any table
//     is allocated, so a rejected query has no side effects.
//   - A finalized set replaces removal from an unvisited list; the frontier
//     strategy only decides which non-finalized node comes next.
//   - Relaxation is strict (candidate < current), and neighbors arrive sorted
//     by ID from core.Graph.Neighbors, which makes predecessor choice stable.
package dijkstra

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/metro/core"
)

// ShortestPath computes a minimum-weight path from source to target in g.
//
// Returns:
//
//   - (*Result, nil) on success. Result.Found is false when target is
//     unreachable from source (or lies beyond WithMaxDistance).
//   - (nil, err) when g is nil (ErrNilGraph), when source or target is not a
//     node of g (*UnknownNodeError), or when ctx is cancelled mid-run.
//
// Preconditions and validation (in order):
//  1. g must be non-nil.
//  2. g must contain source.
//  3. g must contain target.
//
// source == target yields the single-node path with distance 0.
//
// Complexity:
//
//   - StrategyHeap:       O((V + E) log V) time, O(V + E) space.
//   - StrategyLinearScan: O(V² + E) time, O(V) space.
func ShortestPath(ctx context.Context, g *core.Graph, source, target string, opts ...Option) (*Result, error) {
	// 1) Build options.
	cfg := resolve(opts)

	// 2) Validate inputs before touching any state.
	if err := validate(g, source, target); err != nil {
		return nil, err
	}

	// 3) Trivial query.
	if source == target {
		return &Result{Source: source, Target: target, Path: []string{source}, Distance: 0, Found: true}, nil
	}

	// 4) Relaxation loop with early exit on target.
	r := newRunner(ctx, g, cfg, source, target)
	if err := r.process(); err != nil {
		return nil, err
	}

	// 5) Path reconstruction.
	return r.result(), nil
}

// Distances runs the full single-source pass from source.
//
// Returns:
//
//   - dist: every node of g mapped to its distance from source (+Inf if unreachable).
//   - prev: every node mapped to its predecessor on one shortest path,
//     "" for source and for unreachable nodes.
//   - err:  ErrNilGraph, *UnknownNodeError or a context error.
func Distances(ctx context.Context, g *core.Graph, source string, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg := resolve(opts)
	if err := validate(g, source, source); err != nil {
		return nil, nil, err
	}

	r := newRunner(ctx, g, cfg, source, "")
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	// Drop tentative values that were never finalized (MaxDistance cut-off).
	for v := range r.dist {
		if !r.done[v] {
			r.dist[v] = math.Inf(1)
			r.prev[v] = ""
		}
	}

	return r.dist, r.prev, nil
}

func resolve(opts []Option) Options {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	return cfg
}

func validate(g *core.Graph, source, target string) error {
	if g == nil {
		return ErrNilGraph
	}
	if !g.HasVertex(source) {
		return &UnknownNodeError{Node: source}
	}
	if !g.HasVertex(target) {
		return &UnknownNodeError{Node: target}
	}

	return nil
}

// runner holds the mutable state for a single query.
type runner struct {
	ctx     context.Context
	g       *core.Graph        // read-only within the query
	options Options            // resolved configuration
	log     zerolog.Logger     // per-step debug sink
	source  string             // query source
	target  string             // early-exit node; "" runs to exhaustion
	dist    map[string]float64 // node → best-known distance from source
	prev    map[string]string  // node → predecessor on the best-known path
	done    map[string]bool    // finalized nodes
	front   frontier           // next-node selection strategy
}

// newRunner allocates fresh tables and seeds the frontier with the source.
func newRunner(ctx context.Context, g *core.Graph, cfg Options, source, target string) *runner {
	vertices := g.Vertices()
	V := len(vertices)

	r := &runner{
		ctx:     ctx,
		g:       g,
		options: cfg,
		log:     cfg.Logger.With().Str("source", source).Str("target", target).Logger(),
		source:  source,
		target:  target,
		dist:    make(map[string]float64, V),
		prev:    make(map[string]string, V),
		done:    make(map[string]bool, V),
	}

	// 1) dist[v] = +Inf and prev[v] = "" for every v; dist[source] = 0.
	for _, v := range vertices {
		r.dist[v] = math.Inf(1)
		r.prev[v] = ""
	}
	r.dist[source] = 0

	// 2) Frontier over the not-yet-finalized nodes.
	switch cfg.Strategy {
	case StrategyLinearScan:
		r.front = &scanFrontier{nodes: vertices, dist: r.dist, done: r.done}
	default:
		r.front = newHeapFrontier(V, r.done)
	}
	r.front.push(source, 0)

	return r
}

// process repeatedly finalizes the closest non-finalized node and relaxes its edges.
//
// Loop termination conditions:
//
//   - The frontier is exhausted, or its closest node is at +Inf (nothing else reachable).
//   - The closest node lies beyond MaxDistance.
//   - The closest node is the target (early exit).
//   - The context is cancelled.
func (r *runner) process() error {
	var (
		u  string
		d  float64
		ok bool
	)
	for {
		// 1) Cooperative cancellation, once per finalized node.
		if err := r.ctx.Err(); err != nil {
			return fmt.Errorf("dijkstra: %w", err)
		}

		// 2) Select the closest non-finalized node.
		u, d, ok = r.front.pop()
		if !ok || math.IsInf(d, 1) {
			return nil
		}
		if d > r.options.MaxDistance {
			return nil
		}

		// 3) Its distance is now final.
		r.done[u] = true
		r.log.Debug().Str("node", u).Float64("dist", d).Msg("finalize")

		// 4) Early exit: distances beyond the target are not needed.
		if u == r.target {
			return nil
		}

		// 5) Relax incident edges.
		if err := r.relax(u); err != nil {
			return err
		}
	}
}

// relax tries to improve the distance of every non-finalized neighbor of u.
// Assumes r.dist[u] is final.
func (r *runner) relax(u string) error {
	edges, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %q: %w", u, err)
	}

	var (
		e    *core.Edge
		v    string
		cand float64
	)
	for _, e = range edges {
		v = e.Other(u)
		if r.done[v] {
			continue
		}

		cand = r.dist[u] + e.Weight
		if cand > r.options.MaxDistance {
			continue
		}
		// Strict improvement only: an equal-cost path never replaces the first one.
		if cand >= r.dist[v] {
			continue
		}

		r.dist[v] = cand
		r.prev[v] = u
		r.front.push(v, cand)
		r.log.Debug().Str("from", u).Str("to", v).Float64("dist", cand).Msg("relax")
	}

	return nil
}

// result builds the Result for r.target from the predecessor table.
func (r *runner) result() *Result {
	res := &Result{Source: r.source, Target: r.target, Distance: math.Inf(1)}
	if !r.done[r.target] {
		return res
	}

	// Walk predecessors backward from target; a missing link means no path.
	var back []string
	for cur := r.target; ; {
		back = append(back, cur)
		if cur == r.source {
			break
		}
		p := r.prev[cur]
		if p == "" {
			return res
		}
		cur = p
	}

	// Reverse into source→target order.
	path := make([]string, len(back))
	for i, id := range back {
		path[len(back)-1-i] = id
	}

	res.Path = path
	res.Distance = r.dist[r.target]
	res.Found = true

	return res
}
