package route

import (
	"fmt"

	"github.com/waypath/waypath/core"
)

// Expand replaces each consecutive reduced edge of route with its stored
// base-graph path, producing one continuous walk over original nodes.
// The junction node shared by adjacent segments appears exactly once:
// every segment except the last contributes all but its final node, and
// the final segment is appended whole.
//
// Invariants on success: the walk's first and last nodes equal the
// route's first and last reduced nodes, and the interior length equals
// the sum of segment lengths minus the de-duplicated shared nodes.
//
// Errors: ErrNilGraph, ErrForeignNode (a route node outside rg),
// ErrIncompleteReduction (a consecutive pair with no stored path).
//
// Complexity: O(total expanded length).
func Expand(rg *ReducedGraph, route []core.Node) ([]core.Node, error) {
	if rg == nil {
		return nil, ErrNilGraph
	}

	for _, n := range route {
		if _, ok := rg.index[n]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrForeignNode, n.Name)
		}
	}

	// Trivial routes expand to themselves.
	if len(route) <= 1 {
		return append([]core.Node(nil), route...), nil
	}

	walk := make([]core.Node, 0, len(route)*2)
	for i := 0; i+1 < len(route); i++ {
		u, v := route[i], route[i+1]
		segment, ok := rg.Path(u, v)
		if !ok {
			return nil, fmt.Errorf("%w: missing edge %q–%q", ErrIncompleteReduction, u.Name, v.Name)
		}

		if i+2 < len(route) {
			// Drop the segment's terminal node; the next segment starts
			// with the same node.
			walk = append(walk, segment[:len(segment)-1]...)
		} else {
			walk = append(walk, segment...)
		}
	}

	return walk, nil
}
