// Package render draws a grid.Graph as text for terminals and logs, and
// prints replan outcomes as they arrive.
//
// Rows run from the northern rim (y = height) down to the southern rim
// (y = -1). Glyphs, in priority order:
//
//	S start   G goal   # obstacle   * path   . expanded   + rim
//
// Empty cells are blank.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridpath/grid"
)

// Glyphs used by Frame.
const (
	GlyphStart    = 'S'
	GlyphGoal     = 'G'
	GlyphObstacle = '#'
	GlyphPath     = '*'
	GlyphExpanded = '.'
	GlyphEmpty    = ' '
	GlyphRim      = '+'
)

// Options controls Frame.
type Options struct {
	// Color styles glyphs with lipgloss. The terminal profile decides
	// whether escape codes are actually emitted.
	Color bool
	// Expanded marks cells the search pushed.
	Expanded bool
}

// palette follows the visualizer's cell colours.
var palette = map[rune]lipgloss.Style{
	GlyphStart:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#000000")),
	GlyphGoal:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#00FF00")),
	GlyphObstacle: lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")),
	GlyphPath:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF0000")),
	GlyphExpanded: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD966")),
	GlyphRim:      lipgloss.NewStyle().Foreground(lipgloss.Color("#444444")),
}

// Glyph returns the character drawn for n.
func Glyph(n *grid.Node, expanded bool) rune {
	switch {
	case n.IsStart:
		return GlyphStart
	case n.IsGoal:
		return GlyphGoal
	case n.IsObstacle:
		return GlyphObstacle
	case n.IsOnPath:
		return GlyphPath
	case expanded && n.IsExpanded:
		return GlyphExpanded
	default:
		return GlyphEmpty
	}
}

// Frame draws g, rim included, one line per row without a trailing newline.
func Frame(g *grid.Graph, opts Options) string {
	rim := make(map[grid.Position]bool, 2*(g.Width()+g.Height())+4)
	for _, p := range g.Border() {
		rim[p] = true
	}

	var sb strings.Builder
	for y := g.Height(); y >= -1; y-- {
		if y != g.Height() {
			sb.WriteByte('\n')
		}
		for x := -1; x <= g.Width(); x++ {
			var r rune
			if id, ok := g.At(x, y); ok {
				r = Glyph(g.Node(id), opts.Expanded)
			} else if rim[grid.Position{X: x, Y: y}] {
				r = GlyphRim
			} else {
				r = GlyphEmpty
			}
			sb.WriteString(paint(r, opts.Color))
		}
	}
	return sb.String()
}

func paint(r rune, color bool) string {
	if style, ok := palette[r]; ok && color {
		return style.Render(string(r))
	}
	return string(r)
}
