// Package dijkstra computes shortest paths between stations of a core.Graph
// with non-negative edge weights.
//
// Overview:
//
//   - ShortestPath answers a single (source, target) query and stops as soon
//     as the target is finalized (target-aware early exit).
//   - Distances runs the full single-source pass and returns the distance and
//     predecessor tables.
//   - AllPairs repeats Distances from every station.
//
// Selection strategies (identical results, different cost):
//
//   - StrategyHeap (default): lazy decrease-key min-heap, O((V + E) log V).
//   - StrategyLinearScan: re-scan the non-finalized nodes each round, O(V²).
//     Adequate for a few dozen stations.
//
// Both strategies select the non-finalized node with the smallest tentative
// distance, breaking ties by the lexical order of node IDs, and relax
// neighbors in lexical order. Predecessors change only on a strictly shorter
// candidate, so equal-cost alternatives never displace the first one found.
// The outcome is therefore reproducible across runs and strategies.
//
// Results and errors:
//
//   - An unreachable target is a normal outcome: Result.Found == false and err == nil.
//     Result.Err converts it into a *NotFoundError for callers preferring error flow.
//   - A source or target missing from the graph returns *UnknownNodeError
//     (errors.Is(err, ErrUnknownNode)) before any relaxation happens.
//   - Negative weights cannot reach the engine: core.Graph and the builder
//     package refuse them at construction time.
//
// Thread safety:
//
//   - Every call allocates its own distance, predecessor and finalized tables.
//     Concurrent queries against one graph are safe as long as the graph is
//     not mutated at the same time.
//   - The context is checked once per finalized node.
//
// Example:
//
//	res, err := dijkstra.ShortestPath(ctx, g, "S1", "S21")
//	if err != nil {
//	    return err
//	}
//	if !res.Found {
//	    return res.Err()
//	}
//	fmt.Println(res.Path, res.Distance)
package dijkstra
