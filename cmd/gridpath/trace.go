package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/replan"
)

func newTraceCmd(a *app) *cobra.Command {
	var f searchFlags
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Print the expansion trace and path of a scenario's last search",
		Long: `Trace runs a scenario like run does, then prints the cells of the last
search in push order, one "push x y" line each, followed by "path x y"
lines when the goal was reached and a final status line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var g *grid.Graph
			out, err := play(cmd.Context(), a.cfg, f, func(built *grid.Graph) replan.Sink {
				g = built
				return replan.SinkFunc(func(replan.Outcome) {})
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, p := range g.Positions(out.Trace) {
				if _, err := fmt.Fprintf(w, "push %d %d\n", p.X, p.Y); err != nil {
					return err
				}
			}
			for _, p := range g.Positions(out.Path) {
				if _, err := fmt.Fprintf(w, "path %d %d\n", p.X, p.Y); err != nil {
					return err
				}
			}
			_, err = fmt.Fprintln(w, out.Status)
			return err
		},
	}
	addSearchFlags(cmd, &f)
	return cmd
}
