// Package geom provides the Euclidean primitives the route planner is
// built on: distance between n-dimensional points and orthogonal
// projection of a point onto a line segment.
//
// Both operations are pure functions; the only failure mode is
// ErrDimensionMismatch when point dimensionalities disagree (or when
// Project is asked to work outside the plane).
//
// Complexity: Distance is O(d) in the point dimension d; Project is O(1).
package geom
