// Package scenario loads grid set-ups from HCL files and replays them on a
// replan.Controller.
//
// A scenario file looks like:
//
//	grid {
//	  width  = 10
//	  height = 6
//	}
//
//	start     = [0, 0]
//	goal      = [width - 1, height - 1]
//	obstacles = [[3, 3], [4, 3]]
//
//	wall "divider" {
//	  x      = 5
//	  y      = 0
//	  width  = 1
//	  height = height - 1
//	}
//
//	autoplay  = true
//	strategy  = "fifo"
//	heuristic = "product"
//
// The grid block is decoded first; every other expression may then refer to
// width and height and call min, max, floor and ceil.
//
// Errors
//
//   - ErrInvalid for decoded scenarios that cannot be built (bad sizes,
//     out-of-range or clashing cells, unknown strategy or heuristic).
//   - ErrSizeMismatch from Apply when the controller's graph has other
//     dimensions.
//   - HCL diagnostics are wrapped with the file name.
package scenario
