package render

import (
	"fmt"
	"io"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/replan"
)

// Summary describes an outcome in one line.
func Summary(g *grid.Graph, o replan.Outcome) string {
	from, to := g.Position(o.Start), g.Position(o.Goal)
	head := fmt.Sprintf("run %s [%s] %s %v→%v", shortID(o), o.Trigger, o.Strategy, from, to)
	if !o.Found() {
		return fmt.Sprintf("%s: destination cannot be reached (%d pushes)", head, len(o.Trace))
	}
	return fmt.Sprintf("%s: path of %d cells (%d pushes)", head, len(o.Path), len(o.Trace))
}

func shortID(o replan.Outcome) string {
	return o.RunID.String()[:8]
}

// Printer is a replan.Sink writing a summary and a frame per outcome.
type Printer struct {
	w    io.Writer
	g    *grid.Graph
	opts Options
	err  error
}

// NewPrinter returns a Printer drawing g to w.
func NewPrinter(w io.Writer, g *grid.Graph, opts Options) *Printer {
	return &Printer{w: w, g: g, opts: opts}
}

// Present implements replan.Sink. The first write error is kept and later
// outcomes are dropped; see Err.
func (p *Printer) Present(o replan.Outcome) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, "%s\n%s\n\n", Summary(p.g, o), Frame(p.g, p.opts))
}

// Err returns the first write error.
func (p *Printer) Err() error { return p.err }
