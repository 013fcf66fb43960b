package astar

import (
	"errors"

	"github.com/waypath/waypath/core"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilGraph indicates a nil *core.Graph was supplied.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNodeNotFound indicates the source or goal node is absent.
	ErrNodeNotFound = errors.New("astar: endpoint not in graph")

	// ErrNoPath indicates the goal is unreachable from the source.
	ErrNoPath = errors.New("astar: no path between endpoints")
)

// Heuristic estimates the remaining distance from n to goal. For optimal
// results it must be admissible: it never overestimates the true shortest
// remaining distance.
type Heuristic func(n, goal core.Node) float64

// EuclideanHeuristic is the straight-line distance to the goal, the
// canonical admissible and consistent estimate for Euclidean edge weights.
func EuclideanHeuristic(n, goal core.Node) float64 { return core.Distance(n, goal) }

// ZeroHeuristic disables goal direction, reducing the search to Dijkstra.
// Useful as a cross-check in tests.
func ZeroHeuristic(core.Node, core.Node) float64 { return 0 }

// Options configures ShortestPath.
type Options struct {
	// Heuristic estimates remaining distance; defaults to EuclideanHeuristic.
	Heuristic Heuristic
}

// Option is a functional option for ShortestPath.
type Option func(*Options)

// WithHeuristic overrides the distance estimate used to order expansion.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// DefaultOptions returns the default configuration.
func DefaultOptions() Options {
	return Options{Heuristic: EuclideanHeuristic}
}
