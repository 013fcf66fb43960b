package route

import (
	"fmt"
	"math"

	"github.com/waypath/waypath/core"
)

// roundScale stabilizes route lengths at 1e-9 absolute precision so
// results do not drift across platforms or summation orders.
const roundScale = 1e9

// Solve computes an open Hamiltonian path over rg: it starts at the
// reduction's start node, visits every other required node exactly once,
// and does not return to the start.
//
// The full-connectivity invariant is re-checked before dispatch; an
// incomplete reduction yields ErrIncompleteReduction rather than an
// undefined answer.
//
// Errors: ErrNilGraph, ErrIncompleteReduction, ErrUnknownAlgorithm (the
// message enumerates the supported names).
func Solve(rg *ReducedGraph, algo Algorithm) (Result, error) {
	if rg == nil {
		return Result{}, ErrNilGraph
	}
	if err := rg.validateComplete(); err != nil {
		return Result{}, err
	}

	switch algo {
	case BruteForce:
		return bruteForce(rg), nil
	case Greedy:
		return greedy(rg), nil
	default:
		return Result{}, fmt.Errorf("%w: %q (supported: %s)", ErrUnknownAlgorithm, algo, supportedList())
	}
}

// bruteForce enumerates every permutation of the non-start stops,
// prefixes each with the start node and keeps the minimum-length
// ordering. Exact optimum.
//
// Orderings are generated in lexicographic arena order and only a
// strictly shorter candidate replaces the incumbent, so among equal-cost
// optima the earliest ordering always wins.
//
// Complexity: O((R−1)!) time, O(R) auxiliary space. Practical only for
// small R (≈ 10–12); callers switch to Greedy above that.
func bruteForce(rg *ReducedGraph) Result {
	n := rg.Size()
	if n == 1 {
		return Result{Route: rg.Nodes(), Length: 0}
	}

	var (
		perm    = make([]int, 0, n)     // current prefix, start implicit
		used    = make([]bool, n)       // arena index → already placed
		best    = make([]int, 0, n)     // best ordering found so far
		bestLen = math.Inf(1)           // length of best
		search  func(last int, acc float64)
	)

	search = func(last int, acc float64) {
		// Prefix already no better than the incumbent: no completion can
		// strictly improve, so the subtree is safe to skip.
		if acc >= bestLen {
			return
		}
		if len(perm) == n-1 {
			bestLen = acc
			best = append(best[:0], perm...)

			return
		}
		for next := 1; next < n; next++ {
			if used[next] {
				continue
			}
			used[next] = true
			perm = append(perm, next)
			search(next, acc+rg.w[last][next])
			perm = perm[:len(perm)-1]
			used[next] = false
		}
	}
	search(0, 0)

	route := make([]int, 0, n)
	route = append(route, 0)
	route = append(route, best...)

	return Result{Route: rg.materialize(route), Length: round1e9(bestLen)}
}

// greedy walks from the start to the nearest unvisited stop until none
// remain. Deterministic: candidates are scanned in ascending arena order
// (start, then name-sorted stops) and only a strictly smaller weight
// displaces the current choice, so distance ties resolve to the first
// encountered minimum, which is the lexically smallest name. Not
// guaranteed optimal.
//
// Complexity: O(R²) time, O(R) space.
func greedy(rg *ReducedGraph) Result {
	n := rg.Size()

	var (
		route   = make([]int, 0, n)
		visited = make([]bool, n)
		total   float64
		cur     = 0
	)
	route = append(route, cur)
	visited[cur] = true

	for len(route) < n {
		next := -1
		nearest := math.Inf(1)
		for cand := 1; cand < n; cand++ {
			if visited[cand] {
				continue
			}
			if w := rg.w[cur][cand]; w < nearest {
				nearest = w
				next = cand
			}
		}

		route = append(route, next)
		visited[next] = true
		total += nearest
		cur = next
	}

	return Result{Route: rg.materialize(route), Length: round1e9(total)}
}

// materialize maps arena indices back onto their nodes.
func (rg *ReducedGraph) materialize(indices []int) []core.Node {
	out := make([]core.Node, len(indices))
	for i, idx := range indices {
		out[i] = rg.nodes[idx]
	}

	return out
}

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
