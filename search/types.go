package search

import (
	"errors"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for search execution.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrSameEndpoints is returned when start and goal are the same node.
	ErrSameEndpoints = errors.New("search: start and goal must differ")

	// ErrObstacleEndpoint is returned when start or goal is an obstacle.
	ErrObstacleEndpoint = errors.New("search: start and goal must not be obstacles")

	// ErrNoPath is returned by ExtractPath when the goal has no parent.
	ErrNoPath = errors.New("search: goal was not reached by the last search")

	// ErrBrokenChain is returned by ExtractPath when the parent chain does
	// not end in a self-parented root.
	ErrBrokenChain = errors.New("search: parent chain does not terminate at a root")

	// ErrUnknownStrategy is returned for an unrecognised strategy name.
	ErrUnknownStrategy = errors.New("search: unknown strategy")

	// ErrUnknownHeuristic is returned for an unrecognised heuristic name.
	ErrUnknownHeuristic = errors.New("search: unknown heuristic")
)

// Status is the terminal state of a run.
type Status int

const (
	// Exhausted means the frontier emptied without reaching the goal.
	Exhausted Status = iota
	// Found means the goal was reached.
	Found
)

func (s Status) String() string {
	if s == Found {
		return "found"
	}
	return "exhausted"
}

// Result holds the outcome of one run:
//   - Status: Found or Exhausted.
//   - Trace: nodes in the order they were pushed to the frontier, start and
//     goal excluded, duplicates kept.
//   - Dequeued: how many frontier entries were taken off and scanned.
type Result struct {
	Status   Status
	Trace    []grid.NodeID
	Dequeued int
}

// Found reports whether the goal was reached.
func (r Result) Found() bool { return r.Status == Found }

// HeuristicFn estimates the cost of reaching goal from a node at p.
type HeuristicFn func(p, goal grid.Position) float64

// Strategy is a search over a grid.Graph. Implementations mutate node
// bookkeeping (costs, parents, IsExpanded) and leave goal.Parent set on
// success. Callers are expected to pass distinct, non-obstacle endpoints
// of g and to reset stale bookkeeping between runs.
type Strategy interface {
	Name() string
	RunSearch(g *grid.Graph, start, goal grid.NodeID) Result
}

// Option configures a strategy via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks shared by the strategies.
type Options struct {
	// Heuristic estimates remaining cost. nil selects the strategy default.
	Heuristic HeuristicFn

	// OnPush is called each time a node is pushed to the frontier, with the
	// node it was reached from.
	OnPush func(id, parent grid.NodeID)

	// OnDequeue is called when a node is taken off the frontier.
	OnDequeue func(id grid.NodeID)
}

// DefaultOptions returns Options with no heuristic override and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Heuristic: nil,
		OnPush:    func(grid.NodeID, grid.NodeID) {},
		OnDequeue: func(grid.NodeID) {},
	}
}

// WithHeuristic overrides the strategy's heuristic.
func WithHeuristic(fn HeuristicFn) Option {
	return func(o *Options) {
		if fn != nil {
			o.Heuristic = fn
		}
	}
}

// WithOnPush registers a callback to run on every frontier push.
func WithOnPush(fn func(id, parent grid.NodeID)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}

// WithOnDequeue registers a callback to run on every frontier pop.
func WithOnDequeue(fn func(id grid.NodeID)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

func buildOptions(def HeuristicFn, opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Heuristic == nil {
		o.Heuristic = def
	}
	return o
}
