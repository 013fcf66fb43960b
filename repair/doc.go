// Package repair establishes the connectivity invariant the reducer
// depends on: every target node must be reachable through the connector
// network before shortest paths are computed.
//
// Connect walks the graph's target nodes and, for each one that has no
// connector neighbor, attaches it by orthogonal projection:
//
//	( A ) - ( J ) - - ( B )        A, B: two nearest same-level connectors
//	          |                    J:    synthesized junction
//	          T                    T:    detached target
//
// Three weighted edges are added per repair: A–J, B–J and T–J, each
// carrying the Euclidean distance between its endpoints.
//
// Candidate policy: by default the connector candidate set is a live view
// of the graph, so a junction synthesized by an earlier repair may become
// a nearest neighbor of a later one. WithCandidateSnapshot freezes the candidate
// set before the first repair, making the result independent of target
// processing order. Targets are always processed in ascending name order.
package repair
