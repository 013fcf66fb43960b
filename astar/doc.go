// Package astar implements goal-directed shortest-path search over a
// core.Graph using best-first expansion with an admissible heuristic.
//
// The default straight-line Euclidean heuristic never overestimates the
// true remaining walking distance and is consistent for Euclidean edge
// weights, so the returned path is optimal while the search explores far
// fewer nodes than an uninformed scan. Substituting
// ZeroHeuristic degrades the search to plain Dijkstra.
//
// The implementation keeps a min-heap of open nodes ordered by
// f = g + h and uses the lazy decrease-key pattern: improved nodes are
// pushed again and stale heap entries are skipped when popped.
//
// Complexity:
//
//   - Time:  O((V + E) log V) worst case; typically much less with a
//     well-informed heuristic.
//   - Space: O(V + E) for the score maps and the heap.
package astar
