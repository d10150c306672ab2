package search

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/gridpath/grid"
)

// Product is the visualizer's heuristic: the square root of the dot product
// of the two absolute coordinates. It is not a distance and is not
// admissible; FIFO uses it by default.
func Product(p, goal grid.Position) float64 {
	return math.Sqrt(float64(p.X*goal.X + p.Y*goal.Y))
}

// Euclidean is the straight-line distance.
func Euclidean(p, goal grid.Position) float64 {
	return math.Hypot(float64(p.X-goal.X), float64(p.Y-goal.Y))
}

// Manhattan is the 4-connected step distance.
func Manhattan(p, goal grid.Position) float64 {
	return math.Abs(float64(p.X-goal.X)) + math.Abs(float64(p.Y-goal.Y))
}

// Octile is the exact 8-connected distance with unit orthogonal and √2
// diagonal steps; BestFirst uses it by default.
func Octile(p, goal grid.Position) float64 {
	dx := math.Abs(float64(p.X - goal.X))
	dy := math.Abs(float64(p.Y - goal.Y))
	return math.Max(dx, dy) + (math.Sqrt2-1)*math.Min(dx, dy)
}

// Zero turns BestFirst into a uniform-cost search.
func Zero(grid.Position, grid.Position) float64 { return 0 }

var heuristics = map[string]HeuristicFn{
	"product":   Product,
	"euclidean": Euclidean,
	"manhattan": Manhattan,
	"octile":    Octile,
	"zero":      Zero,
}

// HeuristicByName resolves a heuristic by its lower-case name.
func HeuristicByName(name string) (HeuristicFn, error) {
	fn, ok := heuristics[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownHeuristic, name, HeuristicNames())
	}
	return fn, nil
}

// HeuristicNames lists the registered heuristic names, sorted.
func HeuristicNames() []string {
	names := make([]string, 0, len(heuristics))
	for n := range heuristics {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
