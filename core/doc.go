// Package core defines the building model shared by every stage of the
// planner: the immutable value Node and the undirected, edge-weighted
// Graph keyed by it.
//
// A Node is a plain comparable value (kind, name, level, position);
// two nodes are identical only when every field matches, which makes
// nodes directly usable as adjacency-map keys. Nodes are created once,
// by the loader or by connectivity repair, and never mutated.
//
// The Graph guards its maps with a sync.RWMutex, so concurrent readers
// are safe once the mutating repair phase has completed. Enumeration
// methods (Nodes, NodesOfKind, Neighbors) return name-sorted slices:
// every downstream algorithm relies on that stable order for
// reproducible results.
//
// Errors:
//
//	ErrEmptyNodeName  - node name is the empty string.
//	ErrDuplicateName  - a different node already holds the name.
//	ErrNegativeWeight - negative edge weight.
//	ErrNodeNotFound   - requested node does not exist.
package core
