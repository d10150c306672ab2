package search

import "github.com/katalvlaran/gridpath/grid"

// FIFO is the first-in-first-out frontier-labeling search. See the package
// documentation for its cost policy.
type FIFO struct {
	opts Options
}

// NewFIFO builds a FIFO strategy. The heuristic defaults to Product.
func NewFIFO(opts ...Option) *FIFO {
	return &FIFO{opts: buildOptions(Product, opts)}
}

// Name returns "fifo".
func (f *FIFO) Name() string { return "fifo" }

// fifoWalker encapsulates the mutable state of one FIFO run.
type fifoWalker struct {
	g        *grid.Graph
	opts     Options
	goal     grid.NodeID
	goalPos  grid.Position
	frontier []grid.NodeID
	closed   []bool
	res      Result
}

// RunSearch explores g from start until goal is matched or the frontier
// empties. Endpoints are not validated; see RequestSearch.
func (f *FIFO) RunSearch(g *grid.Graph, start, goal grid.NodeID) Result {
	w := &fifoWalker{
		g:        g,
		opts:     f.opts,
		goal:     goal,
		goalPos:  g.Position(goal),
		frontier: make([]grid.NodeID, 0, g.Len()),
		closed:   make([]bool, g.Len()),
	}
	w.seed(start)
	w.loop()
	return w.res
}

// seed labels the root and puts it on the frontier.
func (w *fifoWalker) seed(start grid.NodeID) {
	n := w.g.Node(start)
	n.TotalCost = 0
	n.HeuristicCost = 0
	n.Parent = start
	w.frontier = append(w.frontier, start)
}

// loop pops the frontier until the goal is matched or nothing is left.
func (w *fifoWalker) loop() {
	for len(w.frontier) > 0 {
		current := w.dequeue()
		if w.scan(current) {
			w.res.Status = Found
			return
		}
	}
	w.res.Status = Exhausted
}

// dequeue pops the first node, closes it and invokes OnDequeue.
func (w *fifoWalker) dequeue() grid.NodeID {
	id := w.frontier[0]
	w.frontier = w.frontier[1:]
	w.closed[id] = true
	w.res.Dequeued++
	w.opts.OnDequeue(id)
	return id
}

// scan examines current's neighbors in scan order. It returns true as soon
// as the goal is one of them; later directions are never looked at.
func (w *fifoWalker) scan(current grid.NodeID) bool {
	for _, d := range grid.ScanOrder {
		nb := w.g.Neighbor(current, d)
		if nb == grid.NoNode {
			continue
		}
		if nb == w.goal {
			w.g.Node(nb).Parent = current
			return true
		}
		n := w.g.Node(nb)
		if w.closed[nb] || n.IsObstacle {
			continue
		}
		h := w.opts.Heuristic(n.Position(), w.goalPos)
		total := n.StepCost() + h
		if !n.Labeled() || total < n.TotalCost {
			w.push(nb, current, h, total)
		}
	}
	return false
}

// push labels nb, appends it to the frontier and to the trace.
func (w *fifoWalker) push(nb, parent grid.NodeID, h, total float64) {
	n := w.g.Node(nb)
	n.HeuristicCost = h
	n.TotalCost = total
	n.Parent = parent
	n.IsExpanded = true
	w.frontier = append(w.frontier, nb)
	w.res.Trace = append(w.res.Trace, nb)
	w.opts.OnPush(nb, parent)
}
