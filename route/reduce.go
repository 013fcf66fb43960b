package route

import (
	"errors"
	"fmt"
	"sort"

	"github.com/waypath/waypath/astar"
	"github.com/waypath/waypath/core"
)

// Reduce builds the complete ReducedGraph over start plus the named
// targets by running one A* search per unordered required pair.
//
// Target names are resolved against g's directory; duplicates and the
// start's own name are dropped. The base graph must already satisfy the
// repair invariant: any unreachable pair aborts the reduction with
// ErrDisconnectedGraph, which signals a broken precondition rather than
// a condition to retry.
//
// Errors: ErrNilGraph, ErrUnknownStop, ErrNoTargets, ErrDisconnectedGraph.
//
// Complexity: O(R² · S) for R required nodes and per-pair search cost S;
// this is the dominant phase when the base graph is large and R is small.
func Reduce(g *core.Graph, start core.Node, targets []string) (*ReducedGraph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: start %q", ErrUnknownStop, start.Name)
	}

	required, err := resolveRequired(g, start, targets)
	if err != nil {
		return nil, err
	}

	rg := newReducedGraph(required)

	// Pairwise shortest paths over every unordered required pair. The
	// straight-line heuristic is admissible and consistent for Euclidean
	// edge weights, so each stored path is optimal.
	n := len(required)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			path, dist, perr := astar.ShortestPath(g, required[i], required[j])
			if perr != nil {
				if errors.Is(perr, astar.ErrNoPath) {
					return nil, fmt.Errorf("%w: %q ↔ %q", ErrDisconnectedGraph,
						required[i].Name, required[j].Name)
				}

				return nil, perr
			}
			rg.addEdge(i, j, path, dist)
		}
	}

	return rg, nil
}

// resolveRequired maps target names onto nodes and fixes the arena order:
// start first, then targets ascending by name, duplicates collapsed.
func resolveRequired(g *core.Graph, start core.Node, targets []string) ([]core.Node, error) {
	seen := map[string]struct{}{start.Name: {}}
	stops := make([]core.Node, 0, len(targets))

	for _, name := range targets {
		if _, dup := seen[name]; dup {
			continue
		}
		node, ok := g.NodeByName(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStop, name)
		}
		seen[name] = struct{}{}
		stops = append(stops, node)
	}

	if len(stops) == 0 {
		return nil, ErrNoTargets
	}

	sort.Slice(stops, func(i, j int) bool { return stops[i].Name < stops[j].Name })

	return append([]core.Node{start}, stops...), nil
}
