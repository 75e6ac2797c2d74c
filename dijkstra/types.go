// Package dijkstra defines result, error and option types for the
// shortest-path engine.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/rs/zerolog"
)

// Sentinel errors returned by the engine.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnknownNode indicates that a query referenced a node absent from the graph.
	ErrUnknownNode = errors.New("dijkstra: unknown node")

	// ErrNotFound indicates that the target is unreachable from the source.
	ErrNotFound = errors.New("dijkstra: no path")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative or NaN value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBrokenPath indicates two consecutive path nodes that share no edge.
	ErrBrokenPath = errors.New("dijkstra: consecutive path nodes are not adjacent")
)

// UnknownNodeError reports the node a query referenced but the graph lacks.
type UnknownNodeError struct {
	Node string
}

// Error implements error.
func (e *UnknownNodeError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownNode, e.Node)
}

// Unwrap returns ErrUnknownNode so errors.Is matches the sentinel.
func (e *UnknownNodeError) Unwrap() error { return ErrUnknownNode }

// NotFoundError reports an unreachable (source, target) pair.
type NotFoundError struct {
	Source, Target string
}

// Error implements error.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s from %q to %q", ErrNotFound, e.Source, e.Target)
}

// Unwrap returns ErrNotFound so errors.Is matches the sentinel.
func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// Result is the outcome of one ShortestPath query. It is never mutated after
// it is returned; the caller owns it.
type Result struct {
	Source string // query source
	Target string // query target

	// Path lists the nodes from Source to Target inclusive; nil when !Found.
	Path []string

	// Distance is the total weight of Path; +Inf when !Found.
	Distance float64

	// Found is false when Target is unreachable from Source.
	Found bool
}

// Err returns nil for a found path and a *NotFoundError otherwise.
func (r *Result) Err() error {
	if r.Found {
		return nil
	}

	return &NotFoundError{Source: r.Source, Target: r.Target}
}

// Hops returns the number of edges on the path (0 for a trivial or missing path).
func (r *Result) Hops() int {
	if len(r.Path) == 0 {
		return 0
	}

	return len(r.Path) - 1
}

// Strategy selects how the next node to finalize is chosen.
type Strategy int

const (
	// StrategyHeap uses a lazy decrease-key binary heap.
	StrategyHeap Strategy = iota

	// StrategyLinearScan scans every non-finalized node each round.
	StrategyLinearScan
)

// String returns the strategy name as accepted by ParseStrategy.
func (s Strategy) String() string {
	switch s {
	case StrategyHeap:
		return "heap"
	case StrategyLinearScan:
		return "linear"
	default:
		return "Strategy(" + strconv.Itoa(int(s)) + ")"
	}
}

// ParseStrategy maps "heap" or "linear" to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "heap", "":
		return StrategyHeap, nil
	case "linear":
		return StrategyLinearScan, nil
	default:
		return 0, fmt.Errorf("dijkstra: unknown strategy %q", s)
	}
}

// Options configures the engine.
//
// Strategy:    node selection strategy (default StrategyHeap).
// MaxDistance: nodes farther than this are never finalized. Default +Inf.
// Logger:      receives debug-level selection/relaxation events. Default disabled.
type Options struct {
	Strategy    Strategy
	MaxDistance float64
	Logger      zerolog.Logger
}

// Option represents a functional option for configuring the engine.
type Option func(*Options)

// WithStrategy selects the node selection strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithMaxDistance caps the explored radius around the source. A target
// beyond the cap is reported as not found.
// Panics with ErrBadMaxDistance on a negative or NaN value.
func WithMaxDistance(d float64) Option {
	if d < 0 || math.IsNaN(d) {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = d
	}
}

// WithLogger routes per-step debug events to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns the defaults used before any Option is applied.
//
// Defaults:
//   - Strategy:    StrategyHeap.
//   - MaxDistance: +Inf (no cap).
//   - Logger:      zerolog.Nop().
func DefaultOptions() Options {
	return Options{
		Strategy:    StrategyHeap,
		MaxDistance: math.Inf(1),
		Logger:      zerolog.Nop(),
	}
}
