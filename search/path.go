package search

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// ExtractPath follows Parent links from goal back to the self-parented root
// and returns the route start-to-goal, root and goal included. Every node on
// the route is marked IsOnPath.
//
// It is only meaningful right after a run that returned Found with no reset
// in between. Otherwise it returns ErrNoPath when goal has no parent, or
// ErrBrokenChain when the chain hits an empty parent or runs longer than the
// graph (a stale cycle); nothing is marked in either case.
func ExtractPath(g *grid.Graph, goal grid.NodeID) ([]grid.NodeID, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Contains(goal) {
		return nil, fmt.Errorf("%w: goal %d", grid.ErrNodeOutOfRange, goal)
	}
	if g.Node(goal).Parent == grid.NoNode {
		return nil, fmt.Errorf("%w: %v", ErrNoPath, g.Position(goal))
	}

	// build reversed path
	path := make([]grid.NodeID, 0, 16)
	for cur := goal; ; {
		if len(path) >= g.Len() {
			return nil, fmt.Errorf("%w: chain from %v exceeds %d nodes", ErrBrokenChain, g.Position(goal), g.Len())
		}
		path = append(path, cur)
		parent := g.Node(cur).Parent
		if parent == cur {
			break
		}
		if !g.Contains(parent) {
			return nil, fmt.Errorf("%w: %v has no parent", ErrBrokenChain, g.Position(cur))
		}
		cur = parent
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	for _, id := range path {
		g.Node(id).IsOnPath = true
	}

	return path, nil
}
