package replan

import (
	"errors"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

var (
	// ErrNoGraph is returned by New when the graph is nil.
	ErrNoGraph = errors.New("replan: graph is nil")

	// ErrMissingEndpoints is returned by Replan when start or goal is unset.
	ErrMissingEndpoints = errors.New("replan: start and goal must both be designated")
)

// Trigger names the event that caused a run.
type Trigger int

const (
	// TriggerManual is an explicit Replan call.
	TriggerManual Trigger = iota
	// TriggerAutoplay is autoplay being switched on, or the first run after it.
	TriggerAutoplay
	// TriggerEndpointMoved is start or goal moving to another node.
	TriggerEndpointMoved
	// TriggerObstacleAdded is a paint gesture that added obstacles.
	TriggerObstacleAdded
	// TriggerObstacleRemoved is an erase gesture that removed obstacles.
	TriggerObstacleRemoved
)

var triggerNames = [...]string{
	TriggerManual:          "manual",
	TriggerAutoplay:        "autoplay",
	TriggerEndpointMoved:   "endpoint-moved",
	TriggerObstacleAdded:   "obstacle-added",
	TriggerObstacleRemoved: "obstacle-removed",
}

func (t Trigger) String() string {
	if t < 0 || int(t) >= len(triggerNames) {
		return "unknown"
	}
	return triggerNames[t]
}

// Outcome is what a run hands to the Sink.
type Outcome struct {
	RunID    uuid.UUID
	Trigger  Trigger
	Strategy string
	Start    grid.NodeID
	Goal     grid.NodeID
	Status   search.Status
	Trace    []grid.NodeID // push order, duplicates kept
	Path     []grid.NodeID // start→goal; nil unless Found
	Dequeued int
}

// Found reports whether the goal was reached.
func (o Outcome) Found() bool { return o.Status == search.Found }

// Sink consumes outcomes, typically a presentation layer.
type Sink interface {
	Present(Outcome)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Outcome)

// Present calls f(o).
func (f SinkFunc) Present(o Outcome) { f(o) }

// Option configures a Controller.
type Option func(*Options)

// Options holds the Controller collaborators.
type Options struct {
	Strategy search.Strategy
	Sink     Sink
	Logger   *slog.Logger
	Autoplay bool
}

// DefaultOptions returns FIFO search, a discarding sink and logger, autoplay off.
func DefaultOptions() Options {
	return Options{
		Strategy: search.NewFIFO(),
		Sink:     SinkFunc(func(Outcome) {}),
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Autoplay: false,
	}
}

// WithStrategy sets the search run on every trigger.
func WithStrategy(s search.Strategy) Option {
	return func(o *Options) {
		if s != nil {
			o.Strategy = s
		}
	}
}

// WithSink sets the outcome consumer.
func WithSink(s Sink) Option {
	return func(o *Options) {
		if s != nil {
			o.Sink = s
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithAutoplay starts the controller with autoplay on. No run happens until
// the first Sync or gesture.
func WithAutoplay(on bool) Option {
	return func(o *Options) {
		o.Autoplay = on
	}
}
