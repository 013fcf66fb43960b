// Package waypath plans multi-stop walking routes through a building
// modeled as a weighted Euclidean graph.
//
// The pipeline, in order:
//
//	loader/   — parse a CSV floor plan into a core.Graph
//	repair/   — attach detached target rooms to the corridor network
//	route/    — reduce the graph over the required stops and solve the
//	            open-path route (brute force or greedy nearest-neighbor)
//	estimate/ — convert route length into a wall-clock delivery estimate
//
// Supporting packages:
//
//	geom/  — Euclidean distance and orthogonal segment projection
//	core/  — the Node and Graph model shared by every stage
//	astar/ — goal-directed shortest-path search used by route.Reduce
//
// The cmd/waypath binary wires the stages together behind a small CLI.
//
//	go get github.com/waypath/waypath
package waypath
