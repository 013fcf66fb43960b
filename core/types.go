package core

import (
	"errors"
	"fmt"

	"github.com/waypath/waypath/geom"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeName indicates a Node with an empty Name.
	ErrEmptyNodeName = errors.New("core: node name is empty")

	// ErrDuplicateName indicates a different node already holds this name.
	// Names are the unique lookup key within a graph.
	ErrDuplicateName = errors.New("core: node name already in use")

	// ErrNegativeWeight indicates a negative edge weight was supplied.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrNodeNotFound indicates an operation referenced a node that is not
	// present in the graph.
	ErrNodeNotFound = errors.New("core: node not found")
)

// JunctionPrefix marks the names of connector nodes synthesized by
// connectivity repair. The loader rejects input names carrying it, so a
// junction name can never collide with a floor-plan name.
const JunctionPrefix = "J-"

// Kind classifies a node's role in the building.
type Kind uint8

const (
	// KindConnector is traversal infrastructure, e.g. a hallway waypoint.
	KindConnector Kind = iota

	// KindTarget is a location the route must visit, e.g. a classroom.
	KindTarget
)

// String returns the canonical spelling used by the loader and the CLI.
func (k Kind) String() string {
	switch k {
	case KindConnector:
		return "connector"
	case KindTarget:
		return "target"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Node is an immutable location in the building.
//
// Name uniquely identifies the node within its Graph. Level is the floor
// the node sits on; it partitions nearest-neighbor searches and serves as
// the z-axis in 3-D presentations, but it does not enter the planar
// distance between nodes. X and Y are the 2-D Euclidean coordinates.
//
// Node is a comparable value type: equality and map hashing derive from
// all four fields, never from pointer identity.
type Node struct {
	Kind  Kind
	Name  string
	Level int
	X, Y  float64
}

// Pos returns the planar position of n as a geom.Point.
func (n Node) Pos() geom.Point { return geom.Point{n.X, n.Y} }

// String renders the node for logs and error messages.
func (n Node) String() string {
	return fmt.Sprintf("%s %q L%d (%g,%g)", n.Kind, n.Name, n.Level, n.X, n.Y)
}

// Distance returns the planar Euclidean distance between two nodes.
// Levels are deliberately ignored: edge weights measure walking distance
// within a floor plan, not vertical travel.
//
// Complexity: O(1).
func Distance(u, v Node) float64 {
	// Node positions are 2-D by construction, so the dimension check in
	// geom.Distance cannot fail here.
	d, _ := geom.Distance(u.Pos(), v.Pos())

	return d
}

// NewJunction builds the synthetic connector produced by projecting src
// onto a corridor segment. The junction inherits src's level and takes
// its name from src with the JunctionPrefix applied.
func NewJunction(src Node, at geom.Point) Node {
	return Node{
		Kind:  KindConnector,
		Name:  JunctionPrefix + src.Name,
		Level: src.Level,
		X:     at[0],
		Y:     at[1],
	}
}
