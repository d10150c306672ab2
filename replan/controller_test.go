package replan_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/replan"
	"github.com/katalvlaran/gridpath/search"
)

// ControllerSuite drives a Controller over a fresh 6×6 graph per test and
// records every outcome its sink receives.
type ControllerSuite struct {
	suite.Suite
	g        *grid.Graph
	ctrl     *replan.Controller
	received []replan.Outcome
}

func (s *ControllerSuite) SetupTest() {
	g, err := grid.BuildGrid(6, 6)
	s.Require().NoError(err)
	s.g = g
	s.received = nil
	s.ctrl, err = replan.New(g, replan.WithSink(replan.SinkFunc(func(o replan.Outcome) {
		s.received = append(s.received, o)
	})))
	s.Require().NoError(err)
}

func (s *ControllerSuite) at(x, y int) grid.NodeID {
	id, ok := s.g.At(x, y)
	s.Require().True(ok, "(%d,%d) out of bounds", x, y)
	return id
}

// designate sets start and goal with autoplay off.
func (s *ControllerSuite) designate(start, goal grid.NodeID) {
	out, err := s.ctrl.SetStart(start)
	s.Require().NoError(err)
	s.Require().Nil(out)
	out, err = s.ctrl.SetGoal(goal)
	s.Require().NoError(err)
	s.Require().Nil(out)
}

// play switches autoplay on and expects a run.
func (s *ControllerSuite) play() *replan.Outcome {
	out, err := s.ctrl.TogglePlay()
	s.Require().NoError(err)
	s.Require().NotNil(out)
	return out
}

// requireFreshBookkeeping checks that exactly the last run's trace is marked
// expanded and exactly its path is marked on-path.
func (s *ControllerSuite) requireFreshBookkeeping(out *replan.Outcome) {
	traced := make(map[grid.NodeID]bool, len(out.Trace))
	for _, id := range out.Trace {
		traced[id] = true
	}
	onPath := make(map[grid.NodeID]bool, len(out.Path))
	for _, id := range out.Path {
		onPath[id] = true
	}
	s.g.Each(func(id grid.NodeID, n *grid.Node) {
		s.Require().Equal(traced[id], n.IsExpanded, "IsExpanded at %v", n.Position())
		s.Require().Equal(onPath[id], n.IsOnPath, "IsOnPath at %v", n.Position())
	})
}

func (s *ControllerSuite) TestNewNilGraph() {
	_, err := replan.New(nil)
	s.Require().ErrorIs(err, replan.ErrNoGraph)
}

func (s *ControllerSuite) TestReplanNeedsEndpoints() {
	_, err := s.ctrl.Replan(replan.TriggerManual)
	s.Require().ErrorIs(err, replan.ErrMissingEndpoints)

	_, err = s.ctrl.SetStart(s.at(0, 0))
	s.Require().NoError(err)
	_, err = s.ctrl.Replan(replan.TriggerManual)
	s.Require().ErrorIs(err, replan.ErrMissingEndpoints)
	s.Require().Empty(s.received)
}

func (s *ControllerSuite) TestNoRunWithoutAutoplay() {
	s.designate(s.at(0, 0), s.at(5, 5))
	s.Require().NoError(s.ctrl.PaintObstacle(s.at(2, 2)))
	out, err := s.ctrl.EndGesture()
	s.Require().NoError(err)
	s.Require().Nil(out)
	s.Require().Empty(s.received)
	s.Require().False(s.ctrl.HasRun())

	added, removed := s.ctrl.Pending()
	s.Require().True(added)
	s.Require().False(removed)
}

func (s *ControllerSuite) TestTogglePlayRuns() {
	start, goal := s.at(0, 0), s.at(5, 5)
	s.designate(start, goal)

	out := s.play()
	s.Require().Equal(replan.TriggerAutoplay, out.Trigger)
	s.Require().True(out.Found())
	s.Require().NotEqual(uuid.Nil, out.RunID)
	s.Require().Equal("fifo", out.Strategy)
	s.Require().Equal(start, out.Path[0])
	s.Require().Equal(goal, out.Path[len(out.Path)-1])
	s.Require().True(s.ctrl.HasRun())
	s.Require().Len(s.received, 1)
	s.Require().Equal(*out, s.received[0])
	s.Require().Same(out, s.ctrl.Last())
	s.requireFreshBookkeeping(out)

	// nothing changed: no second run
	out, err := s.ctrl.Sync()
	s.Require().NoError(err)
	s.Require().Nil(out)
	s.Require().Len(s.received, 1)
}

func (s *ControllerSuite) TestTogglePlayOffForgetsRun() {
	s.designate(s.at(0, 0), s.at(5, 5))
	s.play()

	out, err := s.ctrl.TogglePlay()
	s.Require().NoError(err)
	s.Require().Nil(out)
	s.Require().False(s.ctrl.Autoplay())
	s.Require().False(s.ctrl.HasRun())

	out = s.play()
	s.Require().Equal(replan.TriggerAutoplay, out.Trigger)
	s.Require().Len(s.received, 2)
}

func (s *ControllerSuite) TestTogglePlayWithoutEndpoints() {
	out, err := s.ctrl.TogglePlay()
	s.Require().NoError(err)
	s.Require().Nil(out)
	s.Require().True(s.ctrl.Autoplay())

	// the first complete designation runs
	out, err = s.ctrl.SetStart(s.at(0, 0))
	s.Require().NoError(err)
	s.Require().Nil(out)
	out, err = s.ctrl.SetGoal(s.at(3, 4))
	s.Require().NoError(err)
	s.Require().NotNil(out)
	s.Require().Equal(replan.TriggerAutoplay, out.Trigger)
	s.Require().True(out.Found())
}

func (s *ControllerSuite) TestReplanOnGoalMove() {
	start, oldGoal, newGoal := s.at(0, 0), s.at(5, 5), s.at(5, 0)
	s.designate(start, oldGoal)
	first := s.play()
	s.Require().True(first.Found())

	out, err := s.ctrl.SetGoal(newGoal)
	s.Require().NoError(err)
	s.Require().NotNil(out)
	s.Require().Equal(replan.TriggerEndpointMoved, out.Trigger)
	s.Require().Equal(newGoal, out.Goal)
	s.Require().True(out.Found())
	s.Require().Equal(newGoal, out.Path[len(out.Path)-1])
	s.Require().NotEqual(first.RunID, out.RunID)

	old := s.g.Node(oldGoal)
	s.Require().False(old.IsGoal)
	s.Require().Equal(newGoal, s.g.Goal())
	s.requireFreshBookkeeping(out)

	// re-designating the same goal is not a move
	out, err = s.ctrl.SetGoal(newGoal)
	s.Require().NoError(err)
	s.Require().Nil(out)
	s.Require().Len(s.received, 2)
}

func (s *ControllerSuite) TestReplanOnStartMove() {
	s.designate(s.at(0, 0), s.at(5, 5))
	s.play()

	out, err := s.ctrl.SetStart(s.at(0, 5))
	s.Require().NoError(err)
	s.Require().NotNil(out)
	s.Require().Equal(replan.TriggerEndpointMoved, out.Trigger)
	s.Require().Equal(s.at(0, 5), out.Path[0])
	s.Require().False(s.g.Node(s.at(0, 0)).IsStart)
	s.requireFreshBookkeeping(out)
}

func (s *ControllerSuite) TestObstacleGestureReplans() {
	s.designate(s.at(0, 0), s.at(5, 5))
	s.play()

	wall := []grid.NodeID{s.at(1, 1), s.at(2, 2), s.at(3, 3)}
	for _, id := range wall {
		s.Require().NoError(s.ctrl.PaintObstacle(id))
	}
	s.Require().Len(s.received, 1, "no run before the gesture ends")

	out, err := s.ctrl.EndGesture()
	s.Require().NoError(err)
	s.Require().NotNil(out)
	s.Require().Equal(replan.TriggerObstacleAdded, out.Trigger)
	s.Require().True(out.Found())
	for _, id := range wall {
		s.Require().NotContains(out.Trace, id)
		s.Require().NotContains(out.Path, id)
	}
	s.requireFreshBookkeeping(out)

	added, removed := s.ctrl.Pending()
	s.Require().False(added)
	s.Require().False(removed)

	// an empty gesture does nothing
	out, err = s.ctrl.EndGesture()
	s.Require().NoError(err)
	s.Require().Nil(out)
}

func (s *ControllerSuite) TestRepaintingObstacleIsNoEdit() {
	s.designate(s.at(0, 0), s.at(5, 5))
	s.play()
	s.Require().NoError(s.ctrl.PaintObstacle(s.at(2, 2)))
	_, err := s.ctrl.EndGesture()
	s.Require().NoError(err)

	s.Require().NoError(s.ctrl.PaintObstacle(s.at(2, 2)))
	out, err := s.ctrl.EndGesture()
	s.Require().NoError(err)
	s.Require().Nil(out)
	s.Require().Len(s.received, 2)
}

func (s *ControllerSuite) TestEraseObstacleReplans() {
	s.designate(s.at(0, 0), s.at(5, 5))
	s.Require().NoError(s.ctrl.PaintObstacle(s.at(3, 3)))
	s.play()

	s.Require().NoError(s.ctrl.Erase(s.at(3, 3)))
	_, removed := s.ctrl.Pending()
	s.Require().True(removed)

	out, err := s.ctrl.EndGesture()
	s.Require().NoError(err)
	s.Require().NotNil(out)
	s.Require().Equal(replan.TriggerObstacleRemoved, out.Trigger)
	s.Require().False(s.g.Node(s.at(3, 3)).IsObstacle)
	s.requireFreshBookkeeping(out)
}

func (s *ControllerSuite) TestEraseEmptyCell() {
	s.designate(s.at(0, 0), s.at(5, 5))
	s.play()
	s.Require().NoError(s.ctrl.Erase(s.at(2, 3)))

	added, removed := s.ctrl.Pending()
	s.Require().False(added)
	s.Require().False(removed)
}

func (s *ControllerSuite) TestPaintOverGoalForgetsIt() {
	goal := s.at(5, 5)
	s.designate(s.at(0, 0), goal)
	s.play()

	s.Require().NoError(s.ctrl.PaintObstacle(goal))
	s.Require().Equal(grid.NoNode, s.g.Goal())
	s.Require().True(s.g.Node(goal).IsObstacle)
	s.Require().False(s.g.Node(goal).IsGoal)

	// missing goal: the gesture ends quietly and the edit stays pending
	out, err := s.ctrl.EndGesture()
	s.Require().NoError(err)
	s.Require().Nil(out)
	added, _ := s.ctrl.Pending()
	s.Require().True(added)

	// a new goal replans and consumes the pending edit
	out, err = s.ctrl.SetGoal(s.at(5, 4))
	s.Require().NoError(err)
	s.Require().NotNil(out)
	s.Require().Equal(replan.TriggerEndpointMoved, out.Trigger)
	added, _ = s.ctrl.Pending()
	s.Require().False(added)
}

func (s *ControllerSuite) TestEraseStart() {
	start := s.at(0, 0)
	s.designate(start, s.at(5, 5))
	s.Require().NoError(s.ctrl.Erase(start))
	s.Require().Equal(grid.NoNode, s.g.Start())
	s.Require().Equal(grid.RoleNone, s.g.Node(start).Role())
}

func (s *ControllerSuite) TestExhaustedOutcome() {
	s.designate(s.at(0, 0), s.at(5, 5))
	for y := 0; y < 6; y++ {
		s.Require().NoError(s.ctrl.PaintObstacle(s.at(3, y)))
	}
	out := s.play()
	s.Require().False(out.Found())
	s.Require().Equal(search.Exhausted, out.Status)
	s.Require().Nil(out.Path)
	s.Require().NotEmpty(out.Trace)
	s.requireFreshBookkeeping(out)
}

func (s *ControllerSuite) TestClear() {
	s.designate(s.at(0, 0), s.at(5, 5))
	s.Require().NoError(s.ctrl.PaintObstacle(s.at(2, 2)))
	s.play()

	s.ctrl.Clear()
	s.Require().Equal(grid.NoNode, s.g.Start())
	s.Require().Equal(grid.NoNode, s.g.Goal())
	s.Require().Empty(s.g.Obstacles())
	s.Require().Nil(s.ctrl.Last())
	s.Require().True(s.ctrl.Autoplay())
	s.g.Each(func(_ grid.NodeID, n *grid.Node) {
		s.Require().Equal(grid.RoleNone, n.Role())
		s.Require().False(n.Labeled())
		s.Require().Equal(grid.NoNode, n.Parent)
	})

	// autoplay is still on: a fresh designation runs
	_, err := s.ctrl.SetStart(s.at(1, 0))
	s.Require().NoError(err)
	out, err := s.ctrl.SetGoal(s.at(4, 5))
	s.Require().NoError(err)
	s.Require().NotNil(out)
}

func (s *ControllerSuite) TestOutOfRangeEdits() {
	_, err := s.ctrl.SetStart(grid.NodeID(99))
	s.Require().ErrorIs(err, grid.ErrNodeOutOfRange)
	s.Require().ErrorIs(s.ctrl.PaintObstacle(grid.NoNode), grid.ErrNodeOutOfRange)
	s.Require().ErrorIs(s.ctrl.Erase(grid.NodeID(36)), grid.ErrNodeOutOfRange)
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func TestStrategyOption(t *testing.T) {
	g, err := grid.BuildGrid(5, 5)
	require.NoError(t, err)
	ctrl, err := replan.New(g, replan.WithStrategy(search.NewBestFirst()), replan.WithAutoplay(true))
	require.NoError(t, err)
	require.True(t, ctrl.Autoplay())

	start, _ := g.At(0, 0)
	goal, _ := g.At(4, 4)
	_, err = ctrl.SetStart(start)
	require.NoError(t, err)
	out, err := ctrl.SetGoal(goal)
	require.NoError(t, err)
	require.NotNil(t, out)
	require.Equal(t, "best-first", out.Strategy)
	require.Len(t, out.Path, 5)
}

func TestTriggerString(t *testing.T) {
	require.Equal(t, "manual", replan.TriggerManual.String())
	require.Equal(t, "obstacle-removed", replan.TriggerObstacleRemoved.String())
	require.Equal(t, "unknown", replan.Trigger(42).String())
}
