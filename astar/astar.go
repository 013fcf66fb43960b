package astar

import (
	"container/heap"
	"fmt"

	"github.com/waypath/waypath/core"
)

// ShortestPath returns the minimum-weight path from source to goal in g,
// together with its total weight.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source and goal must exist in g (ErrNodeNotFound).
//
// The source==goal case short-circuits to a single-node path of weight 0.
//
// Returns ErrNoPath when the open set drains before the goal is reached.
// Negative weights cannot occur: core.Graph rejects them at insertion.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func ShortestPath(g *core.Graph, source, goal core.Node, opts ...Option) ([]core.Node, float64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, 0, ErrNilGraph
	}
	if !g.HasNode(source) {
		return nil, 0, fmt.Errorf("%w: source %q", ErrNodeNotFound, source.Name)
	}
	if !g.HasNode(goal) {
		return nil, 0, fmt.Errorf("%w: goal %q", ErrNodeNotFound, goal.Name)
	}
	if source == goal {
		return []core.Node{source}, 0, nil
	}

	r := &runner{
		g:      g,
		goal:   goal,
		h:      cfg.Heuristic,
		gScore: make(map[core.Node]float64),
		prev:   make(map[core.Node]core.Node),
		closed: make(map[core.Node]bool),
	}

	r.gScore[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &openItem{node: source, f: r.h(source, goal)})

	return r.process(source)
}

// runner holds the mutable state of a single search.
type runner struct {
	g      *core.Graph
	goal   core.Node
	h      Heuristic
	gScore map[core.Node]float64   // best-known distance from source
	prev   map[core.Node]core.Node // predecessor on the best-known path
	closed map[core.Node]bool      // finalized nodes
	pq     openPQ                  // open set ordered by f = g + h
}

// process runs the best-first loop until the goal is finalized or the
// open set drains.
func (r *runner) process(source core.Node) ([]core.Node, float64, error) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*openItem)
		u := item.node

		// Stale entry from the lazy decrease-key pattern.
		if r.closed[u] {
			continue
		}

		// With a consistent heuristic the first pop of the goal is optimal.
		if u == r.goal {
			return r.reconstruct(source), r.gScore[u], nil
		}

		r.closed[u] = true
		if err := r.relax(u); err != nil {
			return nil, 0, err
		}
	}

	return nil, 0, fmt.Errorf("%w: %q → %q", ErrNoPath, source.Name, r.goal.Name)
}

// relax attempts to improve the score of every neighbor of u.
func (r *runner) relax(u core.Node) error {
	nbrs, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("astar: neighbors of %q: %w", u.Name, err)
	}

	for _, he := range nbrs {
		v := he.To
		if r.closed[v] {
			continue
		}

		cand := r.gScore[u] + he.Weight
		if best, seen := r.gScore[v]; seen && cand >= best {
			continue
		}

		r.gScore[v] = cand
		r.prev[v] = u
		heap.Push(&r.pq, &openItem{node: v, f: cand + r.h(v, r.goal), g: cand})
	}

	return nil
}

// reconstruct walks the predecessor chain from the goal back to source.
func (r *runner) reconstruct(source core.Node) []core.Node {
	// Count hops first so the path is allocated exactly once.
	hops := 1
	for n := r.goal; n != source; n = r.prev[n] {
		hops++
	}

	path := make([]core.Node, hops)
	for n, i := r.goal, hops-1; ; n, i = r.prev[n], i-1 {
		path[i] = n
		if n == source {
			break
		}
	}

	return path
}

// openItem is a node in the open set with its priority scores.
type openItem struct {
	node core.Node
	f    float64 // g + h, the heap key
	g    float64 // distance from source, tie-break favoring progress
}

// openPQ is a min-heap of *openItem ordered by f ascending. Ties resolve
// by larger g (deeper progress) and finally by node name, keeping pop
// order fully deterministic.
type openPQ []*openItem

func (pq openPQ) Len() int { return len(pq) }

func (pq openPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	if pq[i].g != pq[j].g {
		return pq[i].g > pq[j].g
	}

	return pq[i].node.Name < pq[j].node.Name
}

func (pq openPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *openPQ) Push(x interface{}) { *pq = append(*pq, x.(*openItem)) }

func (pq *openPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
