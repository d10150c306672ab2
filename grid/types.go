package grid

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for grid operations.
var (
	// ErrBadDimensions indicates a non-positive width or height.
	ErrBadDimensions = errors.New("grid: width and height must be positive")
	// ErrNodeOutOfRange indicates a NodeID outside the arena.
	ErrNodeOutOfRange = errors.New("grid: node id out of range")
	// ErrUnknownRole indicates SetRole received an unsupported Role.
	ErrUnknownRole = errors.New("grid: unknown role")
)

// Unset is the cost sentinel of a node no search has labeled yet.
// It compares greater than any finite cost.
var Unset = math.Inf(1)

// DefaultStepCost is the intrinsic traversal cost every node is built with.
const DefaultStepCost = 1.0

// NodeID addresses a node inside a Graph's arena.
type NodeID int

// NoNode is the empty reference used for absent neighbors and cleared parents.
const NoNode NodeID = -1

// Valid reports whether id refers to some node (it does not check bounds
// against a particular graph; use Graph.Contains for that).
func (id NodeID) Valid() bool { return id >= 0 }

// Position is an integer lattice coordinate.
type Position struct {
	X, Y int
}

// String renders the position as "(x,y)".
func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Direction indexes a node's neighbor links.
type Direction int

// The eight directions, in the order a search scans them.
const (
	North Direction = iota
	East
	South
	West
	NorthEast
	SouthEast
	SouthWest
	NorthWest

	// NumDirections is the size of a node's neighbor table.
	NumDirections = 8
)

// ScanOrder lists the directions in the fixed order searches examine them.
var ScanOrder = [NumDirections]Direction{North, East, South, West, NorthEast, SouthEast, SouthWest, NorthWest}

// directionOffsets holds the (dx, dy) vector of each Direction.
var directionOffsets = [NumDirections][2]int{
	North:     {0, 1},
	East:      {1, 0},
	South:     {0, -1},
	West:      {-1, 0},
	NorthEast: {1, 1},
	SouthEast: {1, -1},
	SouthWest: {-1, -1},
	NorthWest: {-1, 1},
}

var directionNames = [NumDirections]string{"N", "E", "S", "W", "NE", "SE", "SW", "NW"}

// Offset returns the (dx, dy) step of d.
func (d Direction) Offset() (dx, dy int) {
	o := directionOffsets[d]
	return o[0], o[1]
}

func (d Direction) String() string {
	if d < 0 || d >= NumDirections {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Role is an exclusive designation a caller can assign to a node.
type Role int

const (
	// RoleNone clears start, goal and obstacle designations.
	RoleNone Role = iota
	// RoleStart marks the search origin.
	RoleStart
	// RoleGoal marks the search destination.
	RoleGoal
	// RoleObstacle marks a cell that is never expanded.
	RoleObstacle
)

func (r Role) String() string {
	switch r {
	case RoleNone:
		return "none"
	case RoleStart:
		return "start"
	case RoleGoal:
		return "goal"
	case RoleObstacle:
		return "obstacle"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Node is the per-cell record. Position, step cost and neighbor links are
// fixed at construction; the exported fields are mutable bookkeeping shared
// by searches and the replan layer.
type Node struct {
	pos       Position
	stepCost  float64
	neighbors [NumDirections]NodeID

	IsStart    bool
	IsGoal     bool
	IsObstacle bool
	IsOnPath   bool
	IsExpanded bool

	HeuristicCost float64
	TotalCost     float64

	// Parent is the node this one was reached from, itself for the root of
	// a chain, or NoNode.
	Parent NodeID
}

// Position returns the node's lattice coordinate.
func (n *Node) Position() Position { return n.pos }

// StepCost returns the node's intrinsic traversal cost.
func (n *Node) StepCost() float64 { return n.stepCost }

// Role reports the node's designation, RoleNone for a plain cell.
func (n *Node) Role() Role {
	switch {
	case n.IsStart:
		return RoleStart
	case n.IsGoal:
		return RoleGoal
	case n.IsObstacle:
		return RoleObstacle
	default:
		return RoleNone
	}
}

// Labeled reports whether a search has assigned the node a cost.
func (n *Node) Labeled() bool { return !math.IsInf(n.TotalCost, 1) }

// Graph is the node arena built by BuildGrid. Node i sits at
// (i % Width, i / Width). The neighbor wiring never changes after
// construction; start and goal designations are tracked so at most one node
// holds each.
type Graph struct {
	width, height int
	nodes         []Node
	border        []Position
	start, goal   NodeID
}
