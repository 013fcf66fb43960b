package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/waypath/waypath/core"
	"github.com/waypath/waypath/estimate"
	"github.com/waypath/waypath/loader"
	"github.com/waypath/waypath/repair"
	"github.com/waypath/waypath/route"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	stopStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	viaStyle   = lipgloss.NewStyle().Faint(true)
	totalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

func newRouteCmd(a *app) *cobra.Command {
	var (
		plan        string
		startName   string
		visit       []string
		algoName    string
		speedConfig string
	)

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Compute a walking route visiting the given stops",
		RunE: func(cmd *cobra.Command, _ []string) error {
			algo, err := route.ParseAlgorithm(algoName)
			if err != nil {
				return err
			}

			cfg := estimate.DefaultConfig()
			if speedConfig != "" {
				if cfg, err = estimate.LoadConfig(speedConfig); err != nil {
					return err
				}
			}

			g, err := loader.LoadFile(plan)
			if err != nil {
				return err
			}
			a.log.Debug("plan loaded",
				zap.String("plan", plan),
				zap.Int("nodes", g.NodeCount()),
				zap.Int("edges", g.EdgeCount()))

			if err := repair.Connect(g); err != nil {
				return err
			}
			a.log.Debug("connectivity repaired", zap.Int("edges", g.EdgeCount()))

			start, ok := g.NodeByName(startName)
			if !ok {
				return fmt.Errorf("start node %q not in plan", startName)
			}

			rg, err := route.Reduce(g, start, visit)
			if err != nil {
				return err
			}

			res, err := route.Solve(rg, algo)
			if err != nil {
				return err
			}
			a.log.Debug("route solved",
				zap.String("algo", string(algo)),
				zap.Float64("length", res.Length))

			walk, err := route.Expand(rg, res.Route)
			if err != nil {
				return err
			}

			eta, err := cfg.Walk(res.Length, len(res.Route)-1)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render("Route")+" "+renderStops(res.Route))
			fmt.Fprintln(out, viaStyle.Render("walk: ")+renderWalk(walk))
			fmt.Fprintln(out, totalStyle.Render(
				fmt.Sprintf("length %.2f units, about %s", res.Length, eta.Round(time.Second))))

			return nil
		},
	}

	cmd.Flags().StringVar(&plan, "plan", "", "CSV floor plan file")
	cmd.Flags().StringVar(&startName, "start", "", "name of the start node")
	cmd.Flags().StringSliceVar(&visit, "visit", nil, "comma-separated stop names")
	cmd.Flags().StringVar(&algoName, "algo", string(route.Greedy),
		fmt.Sprintf("ordering algorithm (%s)", strings.Join(algoNames(), "|")))
	cmd.Flags().StringVar(&speedConfig, "speed-config", "", "YAML walking-speed override")
	for _, f := range []string{"plan", "start", "visit"} {
		_ = cmd.MarkFlagRequired(f)
	}

	return cmd
}

func algoNames() []string {
	algos := route.Algorithms()
	names := make([]string, len(algos))
	for i, a := range algos {
		names[i] = string(a)
	}

	return names
}

// renderStops prints the ordered stops only.
func renderStops(stops []core.Node) string {
	parts := make([]string, len(stops))
	for i, n := range stops {
		parts[i] = stopStyle.Render(n.Name)
	}

	return strings.Join(parts, " → ")
}

// renderWalk prints the full expanded walk, with pass-through nodes
// dimmed so the stops stand out.
func renderWalk(walk []core.Node) string {
	parts := make([]string, len(walk))
	for i, n := range walk {
		if n.Kind == core.KindTarget {
			parts[i] = stopStyle.Render(n.Name)
		} else {
			parts[i] = viaStyle.Render(n.Name)
		}
	}

	return strings.Join(parts, " → ")
}
