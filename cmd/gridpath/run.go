package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/replan"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		f       searchFlags
		noColor bool
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a scenario and draw every search it triggers",
		Long: `Run replays a scenario the way a user would edit the grid: obstacles are
painted in one gesture, then start and goal are placed and autoplay is
switched on. Every search that fires is drawn. Without --scenario the
configured grid is searched corner to corner.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := render.Options{
				Color:    a.cfg.Render.Color && !noColor,
				Expanded: a.cfg.Render.Expanded,
			}
			var printer *render.Printer
			_, err := play(cmd.Context(), a.cfg, f, func(g *grid.Graph) replan.Sink {
				printer = render.NewPrinter(cmd.OutOrStdout(), g, opts)
				return printer
			})
			if err != nil {
				return err
			}
			return printer.Err()
		},
	}
	addSearchFlags(cmd, &f)
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colours")
	return cmd
}

func addSearchFlags(cmd *cobra.Command, f *searchFlags) {
	cmd.Flags().StringVar(&f.scenarioPath, "scenario", "", "HCL scenario file")
	cmd.Flags().StringVar(&f.strategy, "strategy", "", "search strategy: fifo or best-first")
	cmd.Flags().StringVar(&f.heuristic, "heuristic", "", "heuristic: product, euclidean, manhattan, octile or zero")
}
