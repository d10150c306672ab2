package search

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// BestFirst is a priority-ordered A*: the frontier is a min-heap on
// g + h, g accumulates StepCost along the route (×√2 on diagonal moves) and
// the goal is accepted when it is popped. With an admissible heuristic
// (Octile, Euclidean, Zero) the parent chain is a cheapest route.
//
// Node bookkeeping follows the FIFO conventions: TotalCost holds g + h,
// HeuristicCost holds h, Parent the predecessor, IsExpanded marks pushed
// nodes, and the trace lists every push except the goal's.
type BestFirst struct {
	opts Options
}

// NewBestFirst builds a BestFirst strategy. The heuristic defaults to Octile.
func NewBestFirst(opts ...Option) *BestFirst {
	return &BestFirst{opts: buildOptions(Octile, opts)}
}

// Name returns "best-first".
func (b *BestFirst) Name() string { return "best-first" }

// bestFirstRunner holds the mutable state for a single BestFirst execution.
type bestFirstRunner struct {
	g       *grid.Graph
	opts    Options
	goal    grid.NodeID
	goalPos grid.Position
	cost    []float64 // accumulated route cost from start
	closed  []bool
	pq      frontierPQ
	pushes  int
	res     Result
}

// RunSearch explores g from start until goal is popped or the heap empties.
func (b *BestFirst) RunSearch(g *grid.Graph, start, goal grid.NodeID) Result {
	r := &bestFirstRunner{
		g:       g,
		opts:    b.opts,
		goal:    goal,
		goalPos: g.Position(goal),
		cost:    make([]float64, g.Len()),
		closed:  make([]bool, g.Len()),
		pq:      make(frontierPQ, 0, g.Len()),
	}
	for i := range r.cost {
		r.cost[i] = math.Inf(1)
	}
	r.init(start)
	r.process()
	return r.res
}

// init labels the root and pushes it with priority 0.
func (r *bestFirstRunner) init(start grid.NodeID) {
	n := r.g.Node(start)
	n.TotalCost = 0
	n.HeuristicCost = 0
	n.Parent = start
	r.cost[start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &frontierItem{id: start, priority: 0})
}

// process pops the cheapest entry until the goal surfaces or the heap empties.
// Stale entries of already closed nodes are skipped (lazy decrease-key).
func (r *bestFirstRunner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*frontierItem)
		u := item.id
		if r.closed[u] {
			continue
		}
		r.closed[u] = true
		r.res.Dequeued++
		r.opts.OnDequeue(u)
		if u == r.goal {
			r.res.Status = Found
			return
		}
		r.relax(u)
	}
	r.res.Status = Exhausted
}

// relax pushes every open, passable neighbor of u whose route cost improves.
func (r *bestFirstRunner) relax(u grid.NodeID) {
	for _, d := range grid.ScanOrder {
		v := r.g.Neighbor(u, d)
		if v == grid.NoNode || r.closed[v] {
			continue
		}
		n := r.g.Node(v)
		if n.IsObstacle {
			continue
		}
		step := n.StepCost()
		if d >= grid.NorthEast {
			step *= math.Sqrt2
		}
		newCost := r.cost[u] + step
		if newCost >= r.cost[v] {
			continue
		}
		r.cost[v] = newCost
		h := r.opts.Heuristic(n.Position(), r.goalPos)
		n.HeuristicCost = h
		n.TotalCost = newCost + h
		n.Parent = u
		r.pushes++
		heap.Push(&r.pq, &frontierItem{id: v, priority: n.TotalCost, seq: r.pushes})
		r.opts.OnPush(v, u)
		if v == r.goal {
			continue
		}
		n.IsExpanded = true
		r.res.Trace = append(r.res.Trace, v)
	}
}

// frontierItem is a heap entry; seq breaks priority ties in push order so
// runs stay deterministic.
type frontierItem struct {
	id       grid.NodeID
	priority float64
	seq      int
}

// frontierPQ is a min-heap of *frontierItem ordered by priority, then seq.
type frontierPQ []*frontierItem

func (pq frontierPQ) Len() int { return len(pq) }

func (pq frontierPQ) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}
	return pq[i].seq < pq[j].seq
}

func (pq frontierPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends an item; called by heap.Push.
func (pq *frontierPQ) Push(x any) {
	*pq = append(*pq, x.(*frontierItem))
}

// Pop removes the last item; called by heap.Pop.
func (pq *frontierPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}
