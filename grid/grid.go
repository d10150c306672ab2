package grid

import "fmt"

// BuildGrid allocates a width×height node arena, records the one-cell border
// rim around it and wires every node to its in-bounds neighbors.
// Every node starts with unset costs, no parent and no role.
// Returns ErrBadDimensions if width or height is not positive.
// Complexity: O(W×H) time and memory.
func BuildGrid(width, height int) (*Graph, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrBadDimensions, width, height)
	}
	g := &Graph{
		width:  width,
		height: height,
		nodes:  make([]Node, width*height),
		border: make([]Position, 0, 2*(width+height)+4),
		start:  NoNode,
		goal:   NoNode,
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			n := &g.nodes[g.index(x, y)]
			n.pos = Position{X: x, Y: y}
			n.stepCost = DefaultStepCost
			n.HeuristicCost = Unset
			n.TotalCost = Unset
			n.Parent = NoNode
		}
	}
	g.buildBorder()
	g.wireNeighbors()

	return g, nil
}

// buildBorder records the rim positions, bottom and top rows first, then the
// left and right columns between them.
func (g *Graph) buildBorder() {
	for x := -1; x <= g.width; x++ {
		g.border = append(g.border, Position{X: x, Y: -1}, Position{X: x, Y: g.height})
	}
	for y := 0; y < g.height; y++ {
		g.border = append(g.border, Position{X: -1, Y: y}, Position{X: g.width, Y: y})
	}
}

// wireNeighbors fills every node's direction table once. Links that would
// leave [0,W)×[0,H) stay NoNode, so edge nodes get 5 links and corners 3.
func (g *Graph) wireNeighbors() {
	for i := range g.nodes {
		x, y := g.Coordinate(NodeID(i))
		for d := Direction(0); d < NumDirections; d++ {
			dx, dy := d.Offset()
			nx, ny := x+dx, y+dy
			if !g.InBounds(nx, ny) {
				g.nodes[i].neighbors[d] = NoNode
				continue
			}
			g.nodes[i].neighbors[d] = NodeID(g.index(nx, ny))
		}
	}
}

// Width returns the navigable width.
func (g *Graph) Width() int { return g.width }

// Height returns the navigable height.
func (g *Graph) Height() int { return g.height }

// Len returns the number of navigable nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// Border returns the rim positions surrounding the navigable region.
// They have no nodes and take part in no graph operation.
func (g *Graph) Border() []Position {
	out := make([]Position, len(g.border))
	copy(out, g.border)
	return out
}

// InBounds reports whether (x,y) lies within the navigable region.
// Complexity: O(1).
func (g *Graph) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Contains reports whether id addresses a node of g.
func (g *Graph) Contains(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}

// index maps (x,y) to a row-major index: y*Width + x.
func (g *Graph) index(x, y int) int {
	return y*g.width + x
}

// Coordinate converts a NodeID back to (x,y).
// Complexity: O(1).
func (g *Graph) Coordinate(id NodeID) (x, y int) {
	return int(id) % g.width, int(id) / g.width
}

// At returns the node at (x,y), or NoNode and false when out of bounds.
func (g *Graph) At(x, y int) (NodeID, bool) {
	if !g.InBounds(x, y) {
		return NoNode, false
	}
	return NodeID(g.index(x, y)), true
}

// Lookup is At for a Position.
func (g *Graph) Lookup(p Position) (NodeID, bool) {
	return g.At(p.X, p.Y)
}

// Node returns the record for id. It panics if id is out of range, like a
// slice index would; callers holding IDs from this graph never hit that.
func (g *Graph) Node(id NodeID) *Node {
	return &g.nodes[id]
}

// Position returns the coordinate of id.
func (g *Graph) Position(id NodeID) Position {
	return g.nodes[id].pos
}

// Neighbor returns id's link in direction d, or NoNode.
func (g *Graph) Neighbor(id NodeID, d Direction) NodeID {
	return g.nodes[id].neighbors[d]
}

// Neighbors returns id's full direction table.
func (g *Graph) Neighbors(id NodeID) [NumDirections]NodeID {
	return g.nodes[id].neighbors
}

// Degree counts id's existing links.
func (g *Graph) Degree(id NodeID) int {
	n := 0
	for _, nb := range g.nodes[id].neighbors {
		if nb != NoNode {
			n++
		}
	}
	return n
}

// Each calls fn for every node in row-major order.
func (g *Graph) Each(fn func(id NodeID, n *Node)) {
	for i := range g.nodes {
		fn(NodeID(i), &g.nodes[i])
	}
}

// Positions maps ids to their coordinates, preserving order and duplicates.
func (g *Graph) Positions(ids []NodeID) []Position {
	out := make([]Position, len(ids))
	for i, id := range ids {
		out[i] = g.nodes[id].pos
	}
	return out
}

// checkID returns ErrNodeOutOfRange for ids outside the arena.
func (g *Graph) checkID(id NodeID) error {
	if !g.Contains(id) {
		return fmt.Errorf("%w: %d (graph has %d nodes)", ErrNodeOutOfRange, id, len(g.nodes))
	}
	return nil
}
