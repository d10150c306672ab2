package region

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dhconnelly/rtreego"

	"github.com/katalvlaran/gridpath/grid"
)

// ErrEmptyRect is returned for rectangles without area.
var ErrEmptyRect = errors.New("region: rectangle must have positive width and height")

// Rect is a block of cells with its lower-left cell at (X, Y).
type Rect struct {
	X, Y          int
	Width, Height int
}

// Validate reports ErrEmptyRect for non-positive sizes.
func (r Rect) Validate() error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("%w: %v", ErrEmptyRect, r)
	}
	return nil
}

// Contains reports whether the cell at p lies inside r.
func (r Rect) Contains(p grid.Position) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Overlaps reports whether r and o share at least one cell.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.Width && o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}

func (r Rect) String() string {
	return fmt.Sprintf("[%d,%d %dx%d]", r.X, r.Y, r.Width, r.Height)
}

// inset is the margin shaved off query boxes so rects that merely touch
// along an edge are not reported.
const inset = 0.25

// bounds maps r to its R-tree box. r must be valid.
func (r Rect) bounds(shrink float64) rtreego.Rect {
	box, err := rtreego.NewRect(
		rtreego.Point{float64(r.X) + shrink, float64(r.Y) + shrink},
		[]float64{float64(r.Width) - 2*shrink, float64(r.Height) - 2*shrink},
	)
	if err != nil {
		// unreachable for validated rects with shrink < 0.5
		panic(fmt.Sprintf("region: bounds of %v: %v", r, err))
	}
	return box
}

// entry wraps a Rect for R-tree storage.
type entry struct {
	rect Rect
	seq  int
	box  rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *entry) Bounds() rtreego.Rect { return e.box }

// Index is an R-tree of rectangles.
type Index struct {
	tree *rtreego.Rtree
}

// NewIndex builds an index holding rects. The first invalid rect aborts.
func NewIndex(rects ...Rect) (*Index, error) {
	idx := &Index{tree: rtreego.NewTree(2, 25, 50)}
	for _, r := range rects {
		if err := idx.Insert(r); err != nil {
			return nil, err
		}
	}
	return idx, nil
}

// Insert adds r to the index.
func (idx *Index) Insert(r Rect) error {
	if err := r.Validate(); err != nil {
		return err
	}
	idx.tree.Insert(&entry{rect: r, seq: idx.tree.Size(), box: r.bounds(0)})
	return nil
}

// Len returns the number of rects stored.
func (idx *Index) Len() int { return idx.tree.Size() }

// Covers reports whether any rect contains the cell at p.
func (idx *Index) Covers(p grid.Position) bool {
	cell := Rect{X: p.X, Y: p.Y, Width: 1, Height: 1}
	return len(idx.tree.SearchIntersect(cell.bounds(inset), rtreego.LimitFilter(1))) > 0
}

// Query returns the stored rects sharing a cell with r, in insertion order.
func (idx *Index) Query(r Rect) ([]Rect, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	hits := idx.tree.SearchIntersect(r.bounds(inset))
	entries := make([]*entry, 0, len(hits))
	for _, h := range hits {
		entries = append(entries, h.(*entry))
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })

	out := make([]Rect, len(entries))
	for i, e := range entries {
		out[i] = e.rect
	}
	return out, nil
}

// Cells lists the nodes of g covered by any rect, in arena order. Parts of
// rects outside g are ignored.
func (idx *Index) Cells(g *grid.Graph) []grid.NodeID {
	if g == nil || idx.Len() == 0 {
		return nil
	}
	var out []grid.NodeID
	g.Each(func(id grid.NodeID, n *grid.Node) {
		if idx.Covers(n.Position()) {
			out = append(out, id)
		}
	})
	return out
}
