package core

import (
	"fmt"
	"sync"
)

// Graph is an undirected, edge-weighted graph of Node values.
//
// Adjacency is keyed by the full node value; a name directory supports
// resolving external references (target lists, CLI arguments) to nodes.
// The zero weight is legal: coincident endpoints produce zero-length
// edges during repair.
//
// mu guards both maps. All mutation happens during loading and repair;
// afterwards the graph is effectively read-only and may be shared across
// goroutines freely.
type Graph struct {
	mu sync.RWMutex

	// adj[u][v] = weight of the undirected edge u–v (mirrored at adj[v][u]).
	adj map[Node]map[Node]float64

	// byName resolves a unique node name to its full value.
	byName map[string]Node
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		adj:    make(map[Node]map[Node]float64),
		byName: make(map[string]Node),
	}
}

// AddNode inserts n if missing (idempotent for an identical node).
//
// Errors:
//   - ErrEmptyNodeName if n.Name == "".
//   - ErrDuplicateName if a *different* node already holds n.Name; names
//     are the unique key the rest of the pipeline resolves nodes by.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(n Node) error {
	if n.Name == "" {
		return ErrEmptyNodeName
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addNodeLocked(n)
}

// addNodeLocked implements AddNode; the caller must hold g.mu.
func (g *Graph) addNodeLocked(n Node) error {
	if existing, ok := g.byName[n.Name]; ok {
		if existing != n {
			return fmt.Errorf("%w: %q", ErrDuplicateName, n.Name)
		}

		return nil // same value, nothing to do
	}

	g.byName[n.Name] = n
	g.adj[n] = make(map[Node]float64)

	return nil
}

// AddEdge records the undirected edge u–v with weight w, inserting either
// endpoint if it is not yet present. Re-adding an existing edge replaces
// its weight. Self-edges (u == v) are ignored: walking distance from a
// node to itself is meaningless.
//
// Errors: ErrNegativeWeight, plus node-insertion errors from AddNode.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v Node, w float64) error {
	if w < 0 {
		return fmt.Errorf("%w: %s–%s weight=%g", ErrNegativeWeight, u.Name, v.Name, w)
	}
	if u.Name == "" || v.Name == "" {
		return ErrEmptyNodeName
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.addNodeLocked(u); err != nil {
		return err
	}
	if err := g.addNodeLocked(v); err != nil {
		return err
	}

	if u == v {
		return nil
	}

	g.adj[u][v] = w
	g.adj[v][u] = w

	return nil
}

// HasNode reports whether n (the exact value) is present.
// Complexity: O(1).
func (g *Graph) HasNode(n Node) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adj[n]

	return ok
}

// NodeByName resolves a node by its unique name.
// Complexity: O(1).
func (g *Graph) NodeByName(name string) (Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.byName[name]

	return n, ok
}

// Weight returns the weight of edge u–v and whether the edge exists.
// Complexity: O(1).
func (g *Graph) Weight(u, v Node) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	w, ok := g.adj[u][v]

	return w, ok
}

// Degree returns the number of edges incident to n (0 for absent nodes).
// Complexity: O(1).
func (g *Graph) Degree(n Node) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj[n])
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	total := 0
	for _, nbrs := range g.adj {
		total += len(nbrs)
	}

	// Every edge is mirrored once; self-edges are never stored.
	return total / 2
}
