package builder

import "fmt"

// DuplicatePolicy selects how a repeated unordered pair is handled.
type DuplicatePolicy int

const (
	// DuplicateLastWins keeps the weight of the last occurrence.
	DuplicateLastWins DuplicatePolicy = iota

	// DuplicateKeepMin keeps the smallest weight seen for the pair.
	DuplicateKeepMin

	// DuplicateReject reports every repeat as ErrDuplicateEdge.
	DuplicateReject
)

// String returns the policy name.
func (p DuplicatePolicy) String() string {
	switch p {
	case DuplicateLastWins:
		return "last-wins"
	case DuplicateKeepMin:
		return "keep-min"
	case DuplicateReject:
		return "reject"
	default:
		return fmt.Sprintf("DuplicatePolicy(%d)", int(p))
	}
}

// Option customizes graph construction.
type Option func(*config)

// config is the resolved option set for one construction call.
type config struct {
	duplicates DuplicatePolicy
	vertices   []string
}

// WithDuplicatePolicy sets the policy for repeated pairs.
// Panics on an unknown policy value.
func WithDuplicatePolicy(p DuplicatePolicy) Option {
	if p < DuplicateLastWins || p > DuplicateReject {
		panic(fmt.Sprintf("builder: WithDuplicatePolicy(%d): unknown policy", int(p)))
	}

	return func(c *config) { c.duplicates = p }
}

// WithVertices adds stations that may have no incident edge.
func WithVertices(ids ...string) Option {
	return func(c *config) { c.vertices = append(c.vertices, ids...) }
}

func newConfig(opts []Option) config {
	cfg := config{duplicates: DuplicateLastWins}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
