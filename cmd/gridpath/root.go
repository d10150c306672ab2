package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/internal/ctxlog"
	"github.com/katalvlaran/gridpath/internal/logging"
)

// app is the state shared by subcommands once the root has loaded config.
type app struct {
	outW, errW io.Writer

	configPath string
	logLevel   string

	cfg *config.Config
}

func newRootCmd(outW, errW io.Writer) *cobra.Command {
	a := &app{outW: outW, errW: errW}

	root := &cobra.Command{
		Use:   "gridpath",
		Short: "Grid pathfinding in the terminal",
		Long: `gridpath lays out start, goal and obstacle cells on a rectangular grid,
runs a search between them and draws the explored cells and the route.

Scenarios are HCL files; settings come from a YAML config file and
GRIDPATH_* environment variables.`,
		PersistentPreRunE: a.loadConfig,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
	root.SetOut(outW)
	root.SetErr(errW)

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(newRunCmd(a), newTraceCmd(a), newConfigCmd(a))
	return root
}

// loadConfig reads configuration, applies flag overrides and puts a logger
// in the command context.
func (a *app) loadConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
		if err := config.Validate(cfg); err != nil {
			return fmt.Errorf("--log-level: %w", err)
		}
	}
	a.cfg = cfg

	logger := logging.New(cfg.Logging, a.errW)
	cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))
	logger.Debug("configuration loaded", "path", a.configPath,
		"grid", fmt.Sprintf("%dx%d", cfg.Grid.Width, cfg.Grid.Height),
		"strategy", cfg.Search.Strategy)
	return nil
}
