package search

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Strategy names accepted by NewStrategy.
const (
	StrategyFIFO      = "fifo"
	StrategyBestFirst = "best-first"
)

// NewStrategy builds a strategy by name.
func NewStrategy(name string, opts ...Option) (Strategy, error) {
	switch name {
	case StrategyFIFO, "":
		return NewFIFO(opts...), nil
	case StrategyBestFirst:
		return NewBestFirst(opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q (known: %s, %s)", ErrUnknownStrategy, name, StrategyFIFO, StrategyBestFirst)
	}
}

// RequestSearch checks the endpoints and runs s over g. A nil s runs FIFO.
//
// Preconditions checked in order:
//  1. g is non-nil (ErrNilGraph).
//  2. start and goal address nodes of g (grid.ErrNodeOutOfRange).
//  3. start != goal (ErrSameEndpoints).
//  4. neither endpoint is an obstacle (ErrObstacleEndpoint).
//
// Stale bookkeeping is not reset here; that is the replan layer's job.
func RequestSearch(g *grid.Graph, start, goal grid.NodeID, s Strategy) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if !g.Contains(start) || !g.Contains(goal) {
		return Result{}, fmt.Errorf("%w: start=%d goal=%d", grid.ErrNodeOutOfRange, start, goal)
	}
	if start == goal {
		return Result{}, fmt.Errorf("%w: both at %v", ErrSameEndpoints, g.Position(start))
	}
	if g.Node(start).IsObstacle || g.Node(goal).IsObstacle {
		return Result{}, ErrObstacleEndpoint
	}
	if s == nil {
		s = NewFIFO()
	}

	return s.RunSearch(g, start, goal), nil
}
