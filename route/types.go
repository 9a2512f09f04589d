package route

import (
	"errors"
	"math"
)

// Sentinel errors for route operations.
var (
	// ErrNilGraph indicates a nil graph.
	ErrNilGraph = errors.New("route: graph is nil")
	// ErrUnknownNode indicates an endpoint that is not a member node.
	ErrUnknownNode = errors.New("route: node not in graph")
	// ErrNoRoute indicates no route exists within the configured limits.
	ErrNoRoute = errors.New("route: no route between nodes")
	// ErrMaxDistance indicates a negative distance cutoff.
	ErrMaxDistance = errors.New("route: max distance must be non-negative")
)

// Options contains tunable parameters for a search.
type Options struct {
	// MaxDistance bounds exploration: nodes farther than this from the
	// start are never finalized.
	MaxDistance float64
}

// DefaultOptions returns an Options with default settings: no distance
// cutoff.
func DefaultOptions() Options {
	return Options{MaxDistance: math.Inf(1)}
}

// Option adjusts a search.
type Option func(*Options) error

// WithMaxDistance bounds exploration to routes no longer than x.
func WithMaxDistance(x float64) Option {
	return func(o *Options) error {
		if x < 0 {
			return ErrMaxDistance
		}
		o.MaxDistance = x
		return nil
	}
}

// Path is a route through the graph: the node sequence from start to
// destination inclusive, and its total metric length.
type Path[N comparable] struct {
	Nodes  []N
	Length float64
}
