package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/waypath/waypath/core"
	"github.com/waypath/waypath/loader"
)

func newShowCmd(a *app) *cobra.Command {
	var plan string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "List the nodes of a floor plan, grouped by level",
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := loader.LoadFile(plan)
			if err != nil {
				return err
			}
			a.log.Debug("plan loaded", zap.String("plan", plan), zap.Int("nodes", g.NodeCount()))

			out := cmd.OutOrStdout()
			for _, level := range g.Levels() {
				fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("Level %d", level)))
				for _, n := range g.Nodes() {
					if n.Level != level {
						continue
					}
					line := fmt.Sprintf("  %-12s %-9s (%.1f, %.1f)  degree %d",
						n.Name, n.Kind, n.X, n.Y, g.Degree(n))
					if n.Kind == core.KindTarget {
						fmt.Fprintln(out, stopStyle.Render(line))
					} else {
						fmt.Fprintln(out, viaStyle.Render(line))
					}
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&plan, "plan", "", "CSV floor plan file")
	_ = cmd.MarkFlagRequired("plan")

	return cmd
}
