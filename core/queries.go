// File: queries.go
// Role: Read-only enumeration and attribute-filtering surface.
// Determinism:
//   - Every slice returned here is sorted by node name ascending, so
//     downstream algorithms see a stable order regardless of map layout.
package core

import (
	"fmt"
	"sort"

	"github.com/waypath/waypath/geom"
)

// Halfedge is one endpoint of an undirected edge as seen from a node.
type Halfedge struct {
	To     Node
	Weight float64
}

// Nodes returns every node, sorted by name.
// Complexity: O(V log V).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	out := make([]Node, 0, len(g.adj))
	for n := range g.adj {
		out = append(out, n)
	}
	g.mu.RUnlock()

	sortByName(out)

	return out
}

// NodesOfKind returns the nodes of the requested kind, sorted by name.
//
// Complexity: O(V log V).
func (g *Graph) NodesOfKind(k Kind) []Node {
	g.mu.RLock()
	out := make([]Node, 0, len(g.adj))
	for n := range g.adj {
		if n.Kind == k {
			out = append(out, n)
		}
	}
	g.mu.RUnlock()

	sortByName(out)

	return out
}

// Neighbors returns the halfedges incident to n, sorted by neighbor name.
//
// Errors: ErrNodeNotFound if n is absent.
//
// Complexity: O(deg log deg).
func (g *Graph) Neighbors(n Node) ([]Halfedge, error) {
	g.mu.RLock()
	nbrs, ok := g.adj[n]
	if !ok {
		g.mu.RUnlock()

		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, n.Name)
	}

	out := make([]Halfedge, 0, len(nbrs))
	for m, w := range nbrs {
		out = append(out, Halfedge{To: m, Weight: w})
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].To.Name < out[j].To.Name })

	return out, nil
}

// Levels returns the distinct floor levels present, ascending.
// Complexity: O(V log V).
func (g *Graph) Levels() []int {
	g.mu.RLock()
	seen := make(map[int]struct{})
	for n := range g.adj {
		seen[n.Level] = struct{}{}
	}
	g.mu.RUnlock()

	out := make([]int, 0, len(seen))
	for l := range seen {
		out = append(out, l)
	}
	sort.Ints(out)

	return out
}

// Names projects a node slice onto its names, preserving order.
func Names(nodes []Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Name
	}

	return out
}

// Positions projects a node slice onto planar positions, preserving order.
func Positions(nodes []Node) []geom.Point {
	out := make([]geom.Point, len(nodes))
	for i, n := range nodes {
		out[i] = n.Pos()
	}

	return out
}

// Positions3D projects a node slice onto (x, y, level) triples for 3-D
// presentations, preserving order. The level becomes the z-axis.
func Positions3D(nodes []Node) []geom.Point {
	out := make([]geom.Point, len(nodes))
	for i, n := range nodes {
		out[i] = geom.Point{n.X, n.Y, float64(n.Level)}
	}

	return out
}

// sortByName orders nodes lexicographically by name, in place.
func sortByName(nodes []Node) {
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].Name < nodes[j].Name })
}
