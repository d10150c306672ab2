// Package replan decides when the search bookkeeping on a grid.Graph has gone
// stale and re-runs the search, forwarding every outcome to a Sink.
//
// What
//
//   - Controller records the start and goal of the last run, whether a run
//     has happened since autoplay was enabled, and the pending
//     obstacle-added / obstacle-removed flags of the current edit gesture.
//   - Edits arrive as gestures: SetStart, SetGoal, PaintObstacle and Erase
//     mutate the graph; EndGesture closes a paint or erase stroke.
//   - While autoplay is on, a run is triggered when
//   - start or goal moves to a different node,
//   - an obstacle was added or removed during the gesture just ended,
//   - autoplay is switched on with both endpoints in place.
//   - Each run resets stale bookkeeping (every node that is not start, goal
//     or obstacle), calls search.RequestSearch, extracts the path when the
//     goal was found, and hands an Outcome to the Sink.
//
// Concurrency
//
//	A Controller is not safe for concurrent use. It owns the graph while it
//	runs; callers serialise edits the way a UI event loop does.
//
// Errors
//
//   - ErrNoGraph from New.
//   - ErrMissingEndpoints from Replan when start or goal is not designated.
//   - grid and search errors are passed through wrapped.
package replan
