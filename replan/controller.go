package replan

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Controller owns the replanning state for one graph.
type Controller struct {
	g    *grid.Graph
	opts Options
	log  *slog.Logger

	lastStart grid.NodeID
	lastGoal  grid.NodeID
	hasRun    bool
	autoplay  bool

	// pending edits of the current gesture
	newObstacle     bool
	obstacleRemoved bool

	last *Outcome
}

// New wraps g. The graph's current designations are taken as they are; no run
// happens until a trigger fires.
func New(g *grid.Graph, opts ...Option) (*Controller, error) {
	if g == nil {
		return nil, ErrNoGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Controller{
		g:         g,
		opts:      o,
		log:       o.Logger.With("strategy", o.Strategy.Name()),
		lastStart: grid.NoNode,
		lastGoal:  grid.NoNode,
		autoplay:  o.Autoplay,
	}, nil
}

// Graph returns the controlled graph.
func (c *Controller) Graph() *grid.Graph { return c.g }

// Autoplay reports whether edits trigger runs.
func (c *Controller) Autoplay() bool { return c.autoplay }

// HasRun reports whether a run happened since autoplay was last switched on.
func (c *Controller) HasRun() bool { return c.hasRun }

// Pending reports the unconsumed obstacle edits of the current gesture.
func (c *Controller) Pending() (added, removed bool) {
	return c.newObstacle, c.obstacleRemoved
}

// Last returns the most recent outcome, or nil.
func (c *Controller) Last() *Outcome { return c.last }

// SetStart designates id as start, clearing the previous start node, then
// evaluates the autoplay triggers.
func (c *Controller) SetStart(id grid.NodeID) (*Outcome, error) {
	if err := c.g.SetRole(id, grid.RoleStart); err != nil {
		return nil, err
	}
	return c.Sync()
}

// SetGoal designates id as goal, clearing the previous goal node, then
// evaluates the autoplay triggers.
func (c *Controller) SetGoal(id grid.NodeID) (*Outcome, error) {
	if err := c.g.SetRole(id, grid.RoleGoal); err != nil {
		return nil, err
	}
	return c.Sync()
}

// PaintObstacle turns id into an obstacle as part of a paint gesture. Painting
// over the start or goal erases that designation. Painting an existing
// obstacle changes nothing.
func (c *Controller) PaintObstacle(id grid.NodeID) error {
	if !c.g.Contains(id) {
		return fmt.Errorf("%w: %d", grid.ErrNodeOutOfRange, id)
	}
	if c.g.Node(id).IsObstacle {
		return nil
	}
	c.g.ClearCell(id, false)
	if err := c.g.SetRole(id, grid.RoleObstacle); err != nil {
		return err
	}
	c.newObstacle = true
	return nil
}

// Erase fully clears a start, goal or obstacle node as part of an erase
// gesture. Nodes without a role are left alone.
func (c *Controller) Erase(id grid.NodeID) error {
	if !c.g.Contains(id) {
		return fmt.Errorf("%w: %d", grid.ErrNodeOutOfRange, id)
	}
	n := c.g.Node(id)
	if n.Role() == grid.RoleNone {
		return nil
	}
	if n.IsObstacle {
		c.obstacleRemoved = true
	}
	c.g.ClearCell(id, false)
	return nil
}

// EndGesture closes a paint or erase stroke. With autoplay on, both endpoints
// designated and an obstacle edit pending, it replans. Otherwise the pending
// flags are kept for a later gesture or run.
func (c *Controller) EndGesture() (*Outcome, error) {
	if !c.newObstacle && !c.obstacleRemoved {
		return nil, nil
	}
	if !c.autoplay || !c.ready() {
		c.log.Debug("gesture ended without replan",
			"autoplay", c.autoplay, "added", c.newObstacle, "removed", c.obstacleRemoved)
		return nil, nil
	}
	trigger := TriggerObstacleRemoved
	if c.newObstacle {
		trigger = TriggerObstacleAdded
	}
	return c.Replan(trigger)
}

// Sync evaluates the endpoint and autoplay triggers: with autoplay on and
// both endpoints designated, it runs when nothing has run yet or when start
// or goal differ from the last run's.
func (c *Controller) Sync() (*Outcome, error) {
	if !c.autoplay || !c.ready() {
		return nil, nil
	}
	switch {
	case !c.hasRun:
		return c.Replan(TriggerAutoplay)
	case c.g.Start() != c.lastStart || c.g.Goal() != c.lastGoal:
		return c.Replan(TriggerEndpointMoved)
	default:
		return nil, nil
	}
}

// TogglePlay flips autoplay. Switching it on runs at once when both endpoints
// are designated; switching it off forgets that a run happened.
func (c *Controller) TogglePlay() (*Outcome, error) {
	if c.autoplay {
		c.autoplay = false
		c.hasRun = false
		c.log.Debug("autoplay off")
		return nil, nil
	}
	c.autoplay = true
	c.log.Debug("autoplay on")
	return c.Sync()
}

// Clear erases every role and all bookkeeping on the graph and forgets the
// recorded endpoints and pending edits. Autoplay is left as it is.
func (c *Controller) Clear() {
	c.g.ClearAll()
	c.lastStart, c.lastGoal = grid.NoNode, grid.NoNode
	c.newObstacle, c.obstacleRemoved = false, false
	c.hasRun = false
	c.last = nil
	c.log.Debug("grid cleared")
}

// Replan resets stale bookkeeping, runs the search between the designated
// endpoints and forwards the outcome to the Sink. Start and goal keep their
// roles through the reset; their labels are cleared and rewritten by the run.
// It runs regardless of autoplay and consumes any pending obstacle edits.
func (c *Controller) Replan(trigger Trigger) (*Outcome, error) {
	start, goal := c.g.Start(), c.g.Goal()
	if start == grid.NoNode || goal == grid.NoNode {
		return nil, ErrMissingEndpoints
	}

	reset := c.g.ResetStale()
	// endpoints keep their roles but not labels from earlier runs
	c.g.ResetSearchState(start)
	c.g.ResetSearchState(goal)
	res, err := search.RequestSearch(c.g, start, goal, c.opts.Strategy)
	if err != nil {
		return nil, fmt.Errorf("replan %s: %w", trigger, err)
	}

	out := &Outcome{
		RunID:    uuid.New(),
		Trigger:  trigger,
		Strategy: c.opts.Strategy.Name(),
		Start:    start,
		Goal:     goal,
		Status:   res.Status,
		Trace:    res.Trace,
		Dequeued: res.Dequeued,
	}
	if res.Found() {
		path, err := search.ExtractPath(c.g, goal)
		if err != nil {
			return nil, fmt.Errorf("replan %s: %w", trigger, err)
		}
		out.Path = path
	}

	c.lastStart, c.lastGoal = start, goal
	c.hasRun = true
	c.newObstacle, c.obstacleRemoved = false, false
	c.last = out

	c.log.Info("search finished",
		"run_id", out.RunID.String(),
		"trigger", trigger.String(),
		"status", res.Status.String(),
		"start", c.g.Position(start).String(),
		"goal", c.g.Position(goal).String(),
		"trace", len(out.Trace),
		"path", len(out.Path),
	)
	c.log.Debug("stale nodes reset", "run_id", out.RunID.String(), "nodes", reset)

	c.opts.Sink.Present(*out)
	return out, nil
}

// ready reports whether both endpoints are designated.
func (c *Controller) ready() bool {
	return c.g.Start() != grid.NoNode && c.g.Goal() != grid.NoNode
}
