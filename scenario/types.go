package scenario

import (
	"errors"

	"github.com/hashicorp/hcl/v2"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/region"
)

var (
	// ErrInvalid is returned when a decoded scenario cannot be built.
	ErrInvalid = errors.New("scenario: invalid scenario")

	// ErrSizeMismatch is returned by Apply for a graph of other dimensions.
	ErrSizeMismatch = errors.New("scenario: graph size does not match scenario")
)

// Scenario is a decoded grid set-up.
type Scenario struct {
	// Source is the file name the scenario was parsed from.
	Source string

	Width, Height int

	// Start and Goal are nil when the file leaves them out.
	Start *grid.Position
	Goal  *grid.Position

	Obstacles []grid.Position
	Walls     []Wall

	Autoplay  bool
	Strategy  string
	Heuristic string
}

// Wall is a named block of obstacle cells.
type Wall struct {
	Name string
	Rect region.Rect
}

// fileHeader is the first decoding pass: only the grid block.
type fileHeader struct {
	Grid   gridBlock `hcl:"grid,block"`
	Remain hcl.Body  `hcl:",remain"`
}

type gridBlock struct {
	Width  int `hcl:"width"`
	Height int `hcl:"height"`
}

// fileBody is the second decoding pass, evaluated with width and height.
type fileBody struct {
	Start     []int       `hcl:"start,optional"`
	Goal      []int       `hcl:"goal,optional"`
	Obstacles [][]int     `hcl:"obstacles,optional"`
	Walls     []wallBlock `hcl:"wall,block"`
	Autoplay  *bool       `hcl:"autoplay,optional"`
	Strategy  string      `hcl:"strategy,optional"`
	Heuristic string      `hcl:"heuristic,optional"`
}

type wallBlock struct {
	Name   string `hcl:"name,label"`
	X      int    `hcl:"x"`
	Y      int    `hcl:"y"`
	Width  int    `hcl:"width"`
	Height int    `hcl:"height"`
}
