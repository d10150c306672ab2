package grid

// Start returns the node designated as start, or NoNode.
func (g *Graph) Start() NodeID { return g.start }

// Goal returns the node designated as goal, or NoNode.
func (g *Graph) Goal() NodeID { return g.goal }

// SetRole designates id as start, goal or obstacle, or clears its designation
// with RoleNone. Roles are exclusive on a node: assigning one drops any other
// role the node held. Start and goal are unique on the graph: assigning either
// fully clears the previous holder (roles and bookkeeping).
// Search bookkeeping of id itself is left untouched.
func (g *Graph) SetRole(id NodeID, role Role) error {
	if err := g.checkID(id); err != nil {
		return err
	}
	switch role {
	case RoleNone:
		g.ClearRole(id)
	case RoleStart:
		if g.start == id {
			return nil
		}
		if g.start != NoNode {
			g.ClearCell(g.start, false)
		}
		g.ClearRole(id)
		g.nodes[id].IsStart = true
		g.start = id
	case RoleGoal:
		if g.goal == id {
			return nil
		}
		if g.goal != NoNode {
			g.ClearCell(g.goal, false)
		}
		g.ClearRole(id)
		g.nodes[id].IsGoal = true
		g.goal = id
	case RoleObstacle:
		g.ClearRole(id)
		g.nodes[id].IsObstacle = true
	default:
		return ErrUnknownRole
	}
	return nil
}

// ResetSearchState returns id's costs to Unset, drops its parent and clears
// the on-path and expanded flags. Role flags are kept.
func (g *Graph) ResetSearchState(id NodeID) {
	n := &g.nodes[id]
	n.HeuristicCost = Unset
	n.TotalCost = Unset
	n.Parent = NoNode
	n.IsOnPath = false
	n.IsExpanded = false
}

// ClearRole erases id's start, goal and obstacle flags and forgets it as the
// graph's start or goal.
func (g *Graph) ClearRole(id NodeID) {
	n := &g.nodes[id]
	n.IsStart = false
	n.IsGoal = false
	n.IsObstacle = false
	if g.start == id {
		g.start = NoNode
	}
	if g.goal == id {
		g.goal = NoNode
	}
}

// ClearCell resets id's search bookkeeping and, unless preserveRole is set,
// its role as well.
func (g *Graph) ClearCell(id NodeID, preserveRole bool) {
	g.ResetSearchState(id)
	if !preserveRole {
		g.ClearRole(id)
	}
}

// ResetStale resets the search bookkeeping of every node that is not the
// start, the goal or an obstacle, and returns how many nodes it touched.
func (g *Graph) ResetStale() int {
	touched := 0
	for i := range g.nodes {
		n := &g.nodes[i]
		if n.IsStart || n.IsGoal || n.IsObstacle {
			continue
		}
		g.ResetSearchState(NodeID(i))
		touched++
	}
	return touched
}

// ClearAll erases roles and bookkeeping on every node.
func (g *Graph) ClearAll() {
	for i := range g.nodes {
		g.ClearCell(NodeID(i), false)
	}
}

// Obstacles lists obstacle nodes in row-major order.
func (g *Graph) Obstacles() []NodeID {
	var out []NodeID
	for i := range g.nodes {
		if g.nodes[i].IsObstacle {
			out = append(out, NodeID(i))
		}
	}
	return out
}
