package repair

import (
	"fmt"
	"sort"

	"github.com/waypath/waypath/core"
	"github.com/waypath/waypath/geom"
)

// Connect mutates g so every target node is attached to the connector
// network, synthesizing one junction node per detached target. It must
// complete before route.Reduce runs; the reducer treats an unreachable
// pair as a fatal upstream invariant violation.
//
// Targets are processed in ascending name order. A target counts as
// attached when at least one of its neighbors is a connector; everything
// else, including targets linked only to other targets, gets repaired.
//
// Errors:
//   - ErrNilGraph for a nil graph.
//   - ErrInsufficientNeighbors (wrapped with the target name) when fewer
//     than two same-level, non-coincident connectors are available.
//
// Complexity: O(T · C log C) for T targets and C connector candidates.
// Building graphs hold tens of nodes, so the nearest-neighbor scan is a
// plain linear pass.
func Connect(g *core.Graph, opts ...Option) error {
	if g == nil {
		return ErrNilGraph
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// NodesOfKind returns name-sorted slices, which fixes the repair order.
	targets := g.NodesOfKind(core.KindTarget)

	// Snapshot mode: one candidate set for every repair, taken up front.
	var frozen []core.Node
	if cfg.Snapshot {
		frozen = g.NodesOfKind(core.KindConnector)
	}

	for _, tgt := range targets {
		attached, err := hasConnectorNeighbor(g, tgt)
		if err != nil {
			return err
		}
		if attached {
			continue
		}

		candidates := frozen
		if !cfg.Snapshot {
			// Live view: junctions added by earlier repairs are eligible.
			candidates = g.NodesOfKind(core.KindConnector)
		}

		a, b, err := nearestAnchors(tgt, candidates)
		if err != nil {
			return fmt.Errorf("target %q: %w", tgt.Name, err)
		}

		// Project the target onto the anchor segment; anchors and target
		// are planar by construction, so Project cannot fail here.
		foot, err := geom.Project(a.Pos(), b.Pos(), tgt.Pos())
		if err != nil {
			return err
		}
		j := core.NewJunction(tgt, foot)

		if err = g.AddEdge(a, j, core.Distance(a, j)); err != nil {
			return err
		}
		if err = g.AddEdge(b, j, core.Distance(b, j)); err != nil {
			return err
		}
		if err = g.AddEdge(tgt, j, core.Distance(tgt, j)); err != nil {
			return err
		}
	}

	return nil
}

// hasConnectorNeighbor reports whether any neighbor of n is a connector.
func hasConnectorNeighbor(g *core.Graph, n core.Node) (bool, error) {
	nbrs, err := g.Neighbors(n)
	if err != nil {
		return false, err
	}
	for _, he := range nbrs {
		if he.To.Kind == core.KindConnector {
			return true, nil
		}
	}

	return false, nil
}

// nearestAnchors returns the two candidates closest to tgt after
// filtering: same level only, zero-distance (self-coincident) candidates
// excluded. Distance ties break on ascending name so the selection is
// deterministic.
func nearestAnchors(tgt core.Node, candidates []core.Node) (core.Node, core.Node, error) {
	type ranked struct {
		node core.Node
		dist float64
	}

	eligible := make([]ranked, 0, len(candidates))
	for _, c := range candidates {
		if c.Level != tgt.Level {
			continue
		}
		d := core.Distance(tgt, c)
		if d == 0 {
			continue
		}
		eligible = append(eligible, ranked{node: c, dist: d})
	}

	if len(eligible) < anchorCount {
		return core.Node{}, core.Node{}, fmt.Errorf("%w: %d candidate(s) after filtering",
			ErrInsufficientNeighbors, len(eligible))
	}

	sort.Slice(eligible, func(i, j int) bool {
		if eligible[i].dist != eligible[j].dist {
			return eligible[i].dist < eligible[j].dist
		}

		return eligible[i].node.Name < eligible[j].node.Name
	})

	return eligible[0].node, eligible[1].node, nil
}
