package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/ctxlog"
	"github.com/katalvlaran/gridpath/replan"
	"github.com/katalvlaran/gridpath/scenario"
	"github.com/katalvlaran/gridpath/search"
)

// searchFlags are the overrides shared by run and trace.
type searchFlags struct {
	scenarioPath string
	strategy     string
	heuristic    string
}

// loadScenario reads the scenario file, or lays out a corner-to-corner run
// on the configured grid when no file is given.
func loadScenario(cfg *config.Config, path string) (*scenario.Scenario, error) {
	if path != "" {
		return scenario.Load(path)
	}
	return &scenario.Scenario{
		Source: "default",
		Width:  cfg.Grid.Width,
		Height: cfg.Grid.Height,
		Start:  &grid.Position{X: 0, Y: 0},
		Goal:   &grid.Position{X: cfg.Grid.Width - 1, Y: cfg.Grid.Height - 1},
	}, nil
}

// resolveStrategy picks strategy and heuristic names: flags first, then the
// scenario, then the config.
func resolveStrategy(cfg *config.Config, sc *scenario.Scenario, f searchFlags) (search.Strategy, error) {
	name := firstNonEmpty(f.strategy, sc.Strategy, cfg.Search.Strategy)
	hName := firstNonEmpty(f.heuristic, sc.Heuristic, cfg.Search.Heuristic)

	var opts []search.Option
	if hName != "" {
		h, err := search.HeuristicByName(hName)
		if err != nil {
			return nil, err
		}
		opts = append(opts, search.WithHeuristic(h))
	}
	return search.NewStrategy(name, opts...)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// play builds the graph, replays the scenario on a controller feeding sink,
// and makes sure at least one search has run.
func play(ctx context.Context, cfg *config.Config, f searchFlags, sink func(*grid.Graph) replan.Sink) (*replan.Outcome, error) {
	logger := ctxlog.FromContext(ctx)

	sc, err := loadScenario(cfg, f.scenarioPath)
	if err != nil {
		return nil, err
	}
	strategy, err := resolveStrategy(cfg, sc, f)
	if err != nil {
		return nil, err
	}

	g, err := grid.BuildGrid(sc.Width, sc.Height)
	if err != nil {
		return nil, err
	}
	ctrl, err := replan.New(g,
		replan.WithStrategy(strategy),
		replan.WithSink(sink(g)),
		replan.WithLogger(logger.With("scenario", sc.Source)),
		replan.WithAutoplay(cfg.Search.Autoplay),
	)
	if err != nil {
		return nil, err
	}

	out, err := sc.Apply(ctrl)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out, err = ctrl.Replan(replan.TriggerManual)
		if errors.Is(err, replan.ErrMissingEndpoints) {
			return nil, fmt.Errorf("%s: %w", sc.Source, err)
		}
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
