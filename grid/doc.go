// Package grid models a rectangular lattice of navigable cells as an arena of
// nodes addressed by stable integer IDs.
//
// What:
//
//   - BuildGrid allocates a W×H arena of Node records plus a one-cell border
//     rim that is kept only for framing and never linked into navigation.
//   - Every node is wired once to the up-to-eight neighbors that exist inside
//     [0,W)×[0,H), indexed by Direction. Links are immutable; obstacles block
//     expansion, they never remove links.
//   - Nodes carry role flags (start, goal, obstacle, on-path, expanded) and
//     search bookkeeping (heuristic/total cost, parent) that searches mutate
//     in place and the replan layer resets.
//
// Directions follow the lattice orientation, with north pointing towards
// increasing Y:
//
//	NW  N  NE        (-1,+1) (0,+1) (+1,+1)
//	 W  ·  E         (-1, 0)   ·    (+1, 0)
//	SW  S  SE        (-1,-1) (0,-1) (+1,-1)
//
// Complexity:
//
//   - BuildGrid:        O(W×H) time and memory (8 links per node, fixed).
//   - Neighbor, Node:   O(1).
//   - ResetSearchState, ClearRole, SetRole: O(1).
//
// Errors:
//
//   - ErrBadDimensions:  width or height is not positive.
//   - ErrNodeOutOfRange: a NodeID does not address a node of this graph.
//   - ErrUnknownRole:    SetRole was given a role it cannot assign.
package grid
