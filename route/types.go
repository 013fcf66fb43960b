package route

import (
	"errors"
	"fmt"
	"strings"

	"github.com/waypath/waypath/core"
)

// Sentinel errors for reduction, solving and expansion.
var (
	// ErrNilGraph indicates a nil graph (base or reduced) was supplied.
	ErrNilGraph = errors.New("route: graph is nil")

	// ErrNoTargets indicates an empty target set after resolution.
	ErrNoTargets = errors.New("route: no target nodes to visit")

	// ErrUnknownStop indicates a requested stop name is not in the graph.
	ErrUnknownStop = errors.New("route: stop not found in graph")

	// ErrDisconnectedGraph indicates a required pair has no connecting
	// path. This signals an upstream violation of the repair invariant;
	// it is fatal and never retried.
	ErrDisconnectedGraph = errors.New("route: required nodes are disconnected")

	// ErrUnknownAlgorithm indicates an unrecognized solver name.
	ErrUnknownAlgorithm = errors.New("route: unknown algorithm")

	// ErrIncompleteReduction indicates the reduced graph is missing a
	// required edge; the solver is undefined on incomplete inputs.
	ErrIncompleteReduction = errors.New("route: reduced graph is not complete")

	// ErrForeignNode indicates a route references a node outside the
	// reduced graph it is being expanded against.
	ErrForeignNode = errors.New("route: node not part of the reduced graph")
)

// Algorithm names a route-solving strategy.
type Algorithm string

const (
	// BruteForce enumerates every ordering of the non-start stops and
	// returns the exact optimum. Factorial cost; callers are responsible
	// for bounding the stop count before choosing it.
	BruteForce Algorithm = "brute-force"

	// Greedy repeatedly visits the nearest unvisited stop. Fast and
	// deterministic, but not guaranteed optimal.
	Greedy Algorithm = "greedy"
)

// Algorithms lists the supported solver names in canonical order.
func Algorithms() []Algorithm { return []Algorithm{BruteForce, Greedy} }

// ParseAlgorithm maps a user-supplied name onto an Algorithm,
// case-insensitively. The error enumerates the supported set.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(BruteForce):
		return BruteForce, nil
	case string(Greedy):
		return Greedy, nil
	default:
		return "", fmt.Errorf("%w: %q (supported: %s)", ErrUnknownAlgorithm, s, supportedList())
	}
}

// supportedList renders the supported algorithm names for error messages.
func supportedList() string {
	names := make([]string, len(Algorithms()))
	for i, a := range Algorithms() {
		names[i] = string(a)
	}

	return strings.Join(names, ", ")
}

// Result is the outcome of a solve: the ordered reduced-node route
// starting at the reduction's start node, and its total length (the sum
// of traversed reduced-edge weights).
type Result struct {
	Route  []core.Node
	Length float64
}
