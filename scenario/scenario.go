package scenario

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/region"
	"github.com/katalvlaran/gridpath/replan"
	"github.com/katalvlaran/gridpath/search"
)

// Validate checks that the scenario describes a buildable grid. All problems
// found are reported together.
func (s *Scenario) Validate() error {
	var errs []error
	if s.Width <= 0 || s.Height <= 0 {
		// nothing else can be checked against a degenerate grid
		return fmt.Errorf("%w: %w: %dx%d", ErrInvalid, grid.ErrBadDimensions, s.Width, s.Height)
	}
	inBounds := func(p grid.Position) bool {
		return p.X >= 0 && p.X < s.Width && p.Y >= 0 && p.Y < s.Height
	}

	walls, err := s.wallIndex()
	if err != nil {
		errs = append(errs, err)
	}
	blocked := func(p grid.Position) bool {
		for _, o := range s.Obstacles {
			if o == p {
				return true
			}
		}
		return walls != nil && walls.Covers(p)
	}

	for _, ep := range []struct {
		name string
		p    *grid.Position
	}{{"start", s.Start}, {"goal", s.Goal}} {
		switch {
		case ep.p == nil:
		case !inBounds(*ep.p):
			errs = append(errs, fmt.Errorf("%s %v outside %dx%d grid", ep.name, *ep.p, s.Width, s.Height))
		case blocked(*ep.p):
			errs = append(errs, fmt.Errorf("%s %v is covered by an obstacle", ep.name, *ep.p))
		}
	}
	if s.Start != nil && s.Goal != nil && *s.Start == *s.Goal {
		errs = append(errs, fmt.Errorf("start and goal share %v", *s.Start))
	}
	for _, o := range s.Obstacles {
		if !inBounds(o) {
			errs = append(errs, fmt.Errorf("obstacle %v outside %dx%d grid", o, s.Width, s.Height))
		}
	}
	if _, err := s.NewStrategy(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s: %w", ErrInvalid, s.Source, errors.Join(errs...))
	}
	return nil
}

// wallIndex indexes the wall rectangles, or returns nil when there are none.
func (s *Scenario) wallIndex() (*region.Index, error) {
	if len(s.Walls) == 0 {
		return nil, nil
	}
	idx, err := region.NewIndex()
	if err != nil {
		return nil, err
	}
	for _, w := range s.Walls {
		if err := idx.Insert(w.Rect); err != nil {
			return nil, fmt.Errorf("wall %q: %w", w.Name, err)
		}
	}
	return idx, nil
}

// NewStrategy builds the search the scenario asks for. Empty names select
// the strategy defaults.
func (s *Scenario) NewStrategy() (search.Strategy, error) {
	var opts []search.Option
	if s.Heuristic != "" {
		h, err := search.HeuristicByName(s.Heuristic)
		if err != nil {
			return nil, err
		}
		opts = append(opts, search.WithHeuristic(h))
	}
	return search.NewStrategy(s.Strategy, opts...)
}

// ObstacleCells lists the obstacle nodes of g, points and walls together, in
// arena order without repeats. Cells outside g are skipped.
func (s *Scenario) ObstacleCells(g *grid.Graph) ([]grid.NodeID, error) {
	walls, err := s.wallIndex()
	if err != nil {
		return nil, err
	}
	seen := make(map[grid.NodeID]bool)
	for _, p := range s.Obstacles {
		if id, ok := g.Lookup(p); ok {
			seen[id] = true
		}
	}
	if walls != nil {
		for _, id := range walls.Cells(g) {
			seen[id] = true
		}
	}

	out := make([]grid.NodeID, 0, len(seen))
	g.Each(func(id grid.NodeID, _ *grid.Node) {
		if seen[id] {
			out = append(out, id)
		}
	})
	return out, nil
}

// Build validates the scenario and returns a fresh graph with its obstacles,
// start and goal designated. No search is run.
func (s *Scenario) Build() (*grid.Graph, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	g, err := grid.BuildGrid(s.Width, s.Height)
	if err != nil {
		return nil, err
	}
	cells, err := s.ObstacleCells(g)
	if err != nil {
		return nil, err
	}
	for _, id := range cells {
		if err := g.SetRole(id, grid.RoleObstacle); err != nil {
			return nil, err
		}
	}
	if s.Start != nil {
		id, _ := g.Lookup(*s.Start)
		if err := g.SetRole(id, grid.RoleStart); err != nil {
			return nil, err
		}
	}
	if s.Goal != nil {
		id, _ := g.Lookup(*s.Goal)
		if err := g.SetRole(id, grid.RoleGoal); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Apply replays the scenario on ctrl as a user would: one paint gesture for
// all obstacles, then the start and goal designations, then the play toggle
// when the scenario asks for autoplay and ctrl is not already playing.
// It returns the outcome of the last run triggered, or nil when none was.
func (s *Scenario) Apply(ctrl *replan.Controller) (*replan.Outcome, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	g := ctrl.Graph()
	if g.Width() != s.Width || g.Height() != s.Height {
		return nil, fmt.Errorf("%w: graph %dx%d, scenario %dx%d",
			ErrSizeMismatch, g.Width(), g.Height(), s.Width, s.Height)
	}

	var last *replan.Outcome
	keep := func(out *replan.Outcome, err error) error {
		if out != nil {
			last = out
		}
		return err
	}

	cells, err := s.ObstacleCells(g)
	if err != nil {
		return nil, err
	}
	for _, id := range cells {
		if err := ctrl.PaintObstacle(id); err != nil {
			return nil, err
		}
	}
	if err := keep(ctrl.EndGesture()); err != nil {
		return nil, err
	}
	if s.Start != nil {
		id, _ := g.Lookup(*s.Start)
		if err := keep(ctrl.SetStart(id)); err != nil {
			return nil, err
		}
	}
	if s.Goal != nil {
		id, _ := g.Lookup(*s.Goal)
		if err := keep(ctrl.SetGoal(id)); err != nil {
			return nil, err
		}
	}
	if s.Autoplay && !ctrl.Autoplay() {
		if err := keep(ctrl.TogglePlay()); err != nil {
			return nil, err
		}
	}
	return last, nil
}
