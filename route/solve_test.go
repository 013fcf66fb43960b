package route

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/waypath/waypath/core"
)

// stop builds a target node for solver tests; positions are irrelevant
// once weights are fixed directly on the reduced graph.
func stop(name string) core.Node {
	return core.Node{Kind: core.KindTarget, Name: name, Level: 1}
}

// buildReduced interns the given nodes (first one is the start) and wires
// the supplied symmetric weights with trivial two-node paths.
func buildReduced(nodes []core.Node, weights map[[2]string]float64) *ReducedGraph {
	rg := newReducedGraph(nodes)
	for pair, w := range weights {
		var i, j = -1, -1
		for idx, n := range nodes {
			if n.Name == pair[0] {
				i = idx
			}
			if n.Name == pair[1] {
				j = idx
			}
		}
		rg.addEdge(i, j, []core.Node{nodes[i], nodes[j]}, w)
	}

	return rg
}

// TestSolve_CanonicalScenario pins the documented three-node instance:
// S–A=10, S–B=14, A–B=8. Brute force must pick S,A,B (18) over S,B,A
// (22); greedy agrees here because 10 < 14.
func TestSolve_CanonicalScenario(t *testing.T) {
	rg := buildReduced(
		[]core.Node{stop("S"), stop("A"), stop("B")},
		map[[2]string]float64{
			{"S", "A"}: 10,
			{"S", "B"}: 14,
			{"A", "B"}: 8,
		},
	)

	for _, algo := range Algorithms() {
		res, err := Solve(rg, algo)
		if err != nil {
			t.Fatalf("%s: %v", algo, err)
		}
		if got := core.Names(res.Route); len(got) != 3 || got[0] != "S" || got[1] != "A" || got[2] != "B" {
			t.Errorf("%s route = %v; want [S A B]", algo, got)
		}
		if res.Length != 18 {
			t.Errorf("%s length = %v; want 18", algo, res.Length)
		}
	}
}

// TestSolve_BruteForceDominatesGreedy uses collinear stops where greedy's
// myopic first hop is a mistake: S=0, A=1, B=-2, C=3 on a line.
// Greedy walks S→A→C→B (1+2+5 = 8); the optimum is S→B→A→C (2+3+2 = 7).
func TestSolve_BruteForceDominatesGreedy(t *testing.T) {
	rg := buildReduced(
		[]core.Node{stop("S"), stop("A"), stop("B"), stop("C")},
		map[[2]string]float64{
			{"S", "A"}: 1,
			{"S", "B"}: 2,
			{"S", "C"}: 3,
			{"A", "B"}: 3,
			{"A", "C"}: 2,
			{"B", "C"}: 5,
		},
	)

	exact, err := Solve(rg, BruteForce)
	if err != nil {
		t.Fatal(err)
	}
	heur, err := Solve(rg, Greedy)
	if err != nil {
		t.Fatal(err)
	}

	if exact.Length != 7 {
		t.Errorf("brute-force length = %v; want 7", exact.Length)
	}
	if got := core.Names(exact.Route); got[1] != "B" || got[2] != "A" || got[3] != "C" {
		t.Errorf("brute-force route = %v; want [S B A C]", got)
	}
	if heur.Length != 8 {
		t.Errorf("greedy length = %v; want 8", heur.Length)
	}
	if exact.Length > heur.Length {
		t.Errorf("optimality dominance violated: brute %v > greedy %v", exact.Length, heur.Length)
	}
}

// TestSolve_GreedyDeterministic repeats the solve on an instance full of
// distance ties; the lexical tie-break must pin one route.
func TestSolve_GreedyDeterministic(t *testing.T) {
	rg := buildReduced(
		[]core.Node{stop("S"), stop("A"), stop("B"), stop("C")},
		map[[2]string]float64{
			{"S", "A"}: 5,
			{"S", "B"}: 5,
			{"S", "C"}: 5,
			{"A", "B"}: 5,
			{"A", "C"}: 5,
			{"B", "C"}: 5,
		},
	)

	first, err := Solve(rg, Greedy)
	if err != nil {
		t.Fatal(err)
	}
	// All weights tie, so the tie-break selects stops in name order.
	if got := core.Names(first.Route); got[1] != "A" || got[2] != "B" || got[3] != "C" {
		t.Errorf("tie-break route = %v; want [S A B C]", got)
	}

	for i := 0; i < 20; i++ {
		again, err := Solve(rg, Greedy)
		if err != nil {
			t.Fatal(err)
		}
		if again.Length != first.Length {
			t.Fatalf("run %d: length %v != %v", i, again.Length, first.Length)
		}
		for j := range first.Route {
			if first.Route[j] != again.Route[j] {
				t.Fatalf("run %d: route diverged at %d", i, j)
			}
		}
	}
}

func TestSolve_StartOnly(t *testing.T) {
	rg := newReducedGraph([]core.Node{stop("S")})

	res, err := Solve(rg, BruteForce)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Route) != 1 || res.Length != 0 {
		t.Errorf("single-node solve = %v (%v); want [S] with length 0", core.Names(res.Route), res.Length)
	}
}

func TestSolve_Errors(t *testing.T) {
	if _, err := Solve(nil, Greedy); !errors.Is(err, ErrNilGraph) {
		t.Errorf("nil reduced graph: expected ErrNilGraph, got %v", err)
	}

	// Skeleton without edges: the completeness invariant is violated.
	rg := newReducedGraph([]core.Node{stop("S"), stop("A")})
	if _, err := Solve(rg, Greedy); !errors.Is(err, ErrIncompleteReduction) {
		t.Errorf("incomplete reduction: expected ErrIncompleteReduction, got %v", err)
	}

	complete := buildReduced(
		[]core.Node{stop("S"), stop("A")},
		map[[2]string]float64{{"S", "A"}: 1},
	)
	_, err := Solve(complete, Algorithm("simulated-annealing"))
	if !errors.Is(err, ErrUnknownAlgorithm) {
		t.Fatalf("expected ErrUnknownAlgorithm, got %v", err)
	}
	// The message must enumerate the supported set for the caller.
	for _, name := range []string{string(BruteForce), string(Greedy)} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not mention %q", err.Error(), name)
		}
	}
}

func TestParseAlgorithm(t *testing.T) {
	cases := []struct {
		in   string
		want Algorithm
		ok   bool
	}{
		{"brute-force", BruteForce, true},
		{"Brute-Force", BruteForce, true},
		{" greedy ", Greedy, true},
		{"GREEDY", Greedy, true},
		{"dijkstra", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, err := ParseAlgorithm(tc.in)
		if tc.ok {
			if err != nil || got != tc.want {
				t.Errorf("ParseAlgorithm(%q) = (%v, %v); want %v", tc.in, got, err, tc.want)
			}
		} else if !errors.Is(err, ErrUnknownAlgorithm) {
			t.Errorf("ParseAlgorithm(%q): expected ErrUnknownAlgorithm, got %v", tc.in, err)
		}
	}
}

// TestSolve_LengthRounding checks the 1e-9 stabilization is applied.
func TestSolve_LengthRounding(t *testing.T) {
	w := 0.1 + 0.2 // 0.30000000000000004 in binary floating point
	rg := buildReduced(
		[]core.Node{stop("S"), stop("A")},
		map[[2]string]float64{{"S", "A"}: w},
	)

	res, err := Solve(rg, Greedy)
	if err != nil {
		t.Fatal(err)
	}
	if res.Length != 0.3 {
		t.Errorf("length = %.17g; want exactly 0.3 after rounding", res.Length)
	}
}

// sanity: greedy on an instance with an unreachable optimum ordering must
// still produce a finite, valid open path.
func TestSolve_GreedyAlwaysFinite(t *testing.T) {
	rg := buildReduced(
		[]core.Node{stop("S"), stop("A"), stop("B")},
		map[[2]string]float64{
			{"S", "A"}: 1,
			{"S", "B"}: 4,
			{"A", "B"}: 2,
		},
	)

	res, err := Solve(rg, Greedy)
	if err != nil {
		t.Fatal(err)
	}
	if math.IsInf(res.Length, 1) || len(res.Route) != 3 {
		t.Fatalf("greedy result = %v (%v)", core.Names(res.Route), res.Length)
	}
}
