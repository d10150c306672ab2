// Package gridpath is an interactive pathfinding playground on a rectangular
// 8-connected grid: paint obstacles, drop a start and a goal, and watch the
// search replan every time the picture changes.
//
// What is inside?
//
//	grid/      the node arena: positions, roles, search labels and the 8-way neighborhood
//	search/    FIFO labeling search, heap-ordered best-first, heuristics and path extraction
//	replan/    the controller that turns edits into replanning runs (autoplay, gestures)
//	region/    rectangular wall regions indexed in an R-tree
//	scenario/  HCL scenario files decoded into a grid set-up
//	config/    viper-backed configuration with validation
//	render/    text frames and run summaries for a terminal
//	cmd/       the gridpath command line
//
// Quick start:
//
//	g, _ := grid.BuildGrid(8, 8)
//	ctrl, _ := replan.New(g, replan.WithAutoplay(true))
//	start, _ := g.At(0, 0)
//	goal, _ := g.At(7, 7)
//	_, _ = ctrl.SetStart(start)
//	out, _ := ctrl.SetGoal(goal)
//	fmt.Println(out.Status, len(out.Path))
//
// Or from the shell:
//
//	gridpath run --scenario examples/rooms.hcl --strategy best-first
package gridpath
