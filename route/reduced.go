package route

import (
	"math"

	"github.com/waypath/waypath/core"
)

// ReducedGraph is a complete graph over the required nodes of one solve
// request: the start node plus every target. Each edge carries the
// shortest-path weight between its endpoints in the base graph and the
// full ordered path it was computed from, stored for both directions
// (reversed for the reverse direction) so expansion never re-searches.
//
// Required nodes are interned in a fixed arena (start at index 0, then
// targets in ascending name order) and all adjacency state is indexed
// by arena position: a dense weight matrix and a directed path table.
// Absent edges hold +Inf until Reduce fills them in.
//
// A ReducedGraph is built once per solve request and discarded after
// expansion; it is not safe for concurrent mutation but, like the base
// graph, is read-only by the time the solver sees it.
type ReducedGraph struct {
	nodes []core.Node       // arena: start first, targets name-sorted
	index map[core.Node]int // node value → arena index
	w     [][]float64       // w[i][j] = shortest-path weight, +Inf if unset
	paths map[[2]int][]core.Node
}

// newReducedGraph builds the empty complete-graph skeleton for the given
// required nodes. required[0] must be the start node.
func newReducedGraph(required []core.Node) *ReducedGraph {
	n := len(required)
	rg := &ReducedGraph{
		nodes: append([]core.Node(nil), required...),
		index: make(map[core.Node]int, n),
		w:     make([][]float64, n),
		paths: make(map[[2]int][]core.Node, n*(n-1)),
	}

	for i, node := range required {
		rg.index[node] = i
		rg.w[i] = make([]float64, n)
		for j := range rg.w[i] {
			if i != j {
				rg.w[i][j] = math.Inf(1)
			}
		}
	}

	return rg
}

// addEdge records the reduced edge i–j with its base-graph path (ordered
// from i to j) and weight, mirroring both directions.
func (rg *ReducedGraph) addEdge(i, j int, path []core.Node, weight float64) {
	rg.w[i][j] = weight
	rg.w[j][i] = weight
	rg.paths[[2]int{i, j}] = path
	rg.paths[[2]int{j, i}] = reversed(path)
}

// Start returns the designated start node (arena index 0).
func (rg *ReducedGraph) Start() core.Node { return rg.nodes[0] }

// Size returns the number of required nodes.
func (rg *ReducedGraph) Size() int { return len(rg.nodes) }

// Nodes returns a copy of the required nodes in arena order.
func (rg *ReducedGraph) Nodes() []core.Node {
	return append([]core.Node(nil), rg.nodes...)
}

// Weight returns the reduced-edge weight between u and v, or false when
// either node is foreign or the edge has not been computed.
func (rg *ReducedGraph) Weight(u, v core.Node) (float64, bool) {
	i, okU := rg.index[u]
	j, okV := rg.index[v]
	if !okU || !okV || math.IsInf(rg.w[i][j], 1) {
		return 0, false
	}

	return rg.w[i][j], true
}

// Path returns a copy of the stored base-graph path from u to v, or
// false when either node is foreign or the edge has not been computed.
func (rg *ReducedGraph) Path(u, v core.Node) ([]core.Node, bool) {
	i, okU := rg.index[u]
	j, okV := rg.index[v]
	if !okU || !okV {
		return nil, false
	}
	p, ok := rg.paths[[2]int{i, j}]
	if !ok {
		return nil, false
	}

	return append([]core.Node(nil), p...), true
}

// validateComplete verifies the full-connectivity invariant: every
// off-diagonal pair holds a finite, non-negative weight. The solver is
// undefined until this holds.
func (rg *ReducedGraph) validateComplete() error {
	n := len(rg.nodes)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.IsInf(rg.w[i][j], 1) || rg.w[i][j] < 0 {
				return ErrIncompleteReduction
			}
		}
	}

	return nil
}

// reversed returns a reversed copy of path.
func reversed(path []core.Node) []core.Node {
	out := make([]core.Node, len(path))
	for i, n := range path {
		out[len(path)-1-i] = n
	}

	return out
}
