// Package route turns a repaired building graph into a multi-stop walking
// route. It is organized as three stages sharing one data structure:
//
//	Reduce — collapse the base graph to a complete ReducedGraph over
//	         {start} ∪ targets via pairwise A* shortest paths, keeping
//	         each path for later expansion.
//	Solve  — find an open Hamiltonian path over the ReducedGraph from
//	         the start node: BruteForce enumerates every ordering
//	         (exact, O((R−1)!) — practical only for R ≲ 10–12), Greedy
//	         repeatedly walks to the nearest unvisited stop (O(R²),
//	         deterministic, not guaranteed optimal).
//	Expand — splice the stored per-edge paths back into one continuous
//	         walk over the original nodes.
//
// The reduction dominates the cost when the base graph is large:
// O(R² · search) for R required nodes.
//
// Determinism: required nodes live in a fixed arena (start first, then
// targets in ascending name order); greedy ties resolve to the
// first-encountered minimum under that order, i.e. the lexically
// smallest name; brute force keeps the earliest ordering among equals.
// Route lengths are rounded to 1e-9 to stay stable across platforms.
package route
