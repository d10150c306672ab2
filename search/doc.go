// Package search explores a grid.Graph from a start node towards a goal node
// and reports the ordered expansion trace plus a parent chain a path can be
// extracted from.
//
// What
//
//   - Strategy is the capability every search exposes: RunSearch(g, start, goal).
//   - FIFO is the frontier-labeling search the visualizer ships with:
//   - first-in-first-out frontier, no cost ordering;
//   - neighbors scanned North, East, South, West, NE, SE, SW, NW;
//   - the goal is matched while scanning and ends the run at once;
//   - a neighbor is (re)pushed whenever StepCost + h improves on the cost it
//     already holds, so the trace may list a node several times.
//   - BestFirst is a priority-ordered A* over the same graph, with accumulated
//     path costs and √2 diagonal moves.
//   - ExtractPath walks the parent chain from the goal back to the self-parented
//     root and marks the route IsOnPath.
//   - RequestSearch validates endpoints before delegating to a Strategy.
//
// Cost policy of FIFO
//
//	h(n)     = sqrt(n.x*goal.x + n.y*goal.y)   (Product heuristic)
//	total(n) = n.StepCost + h(n)                (parent cost is not added)
//
// Neither term is a distance; routes FIFO finds are not shortest in general.
//
// Determinism
//
//	Scan order and frontier order are fixed, so a run over the same graph
//	state yields the same trace and the same parent chain.
//
// Complexity (V = W×H nodes)
//
//   - FIFO:      O(V × 8) per labeling pass; repeated pushes bounded by how
//     often a node's estimate can improve.
//   - BestFirst: O(V log V).
//   - ExtractPath: O(path length).
//
// Errors
//
//   - ErrNilGraph, ErrSameEndpoints, ErrObstacleEndpoint from RequestSearch.
//   - ErrNoPath, ErrBrokenChain from ExtractPath.
//   - ErrUnknownStrategy, ErrUnknownHeuristic from the name lookups.
package search
