package region_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/region"
)

func TestRect_Validate(t *testing.T) {
	require.NoError(t, region.Rect{Width: 1, Height: 1}.Validate())
	for _, r := range []region.Rect{
		{Width: 0, Height: 3},
		{Width: 2, Height: 0},
		{Width: -1, Height: 2},
	} {
		require.ErrorIs(t, r.Validate(), region.ErrEmptyRect, "%v", r)
	}
}

func TestRect_ContainsOverlaps(t *testing.T) {
	r := region.Rect{X: 2, Y: 1, Width: 3, Height: 2}
	assert.True(t, r.Contains(grid.Position{X: 2, Y: 1}))
	assert.True(t, r.Contains(grid.Position{X: 4, Y: 2}))
	assert.False(t, r.Contains(grid.Position{X: 5, Y: 2}))
	assert.False(t, r.Contains(grid.Position{X: 2, Y: 3}))

	assert.True(t, r.Overlaps(region.Rect{X: 4, Y: 2, Width: 5, Height: 5}))
	// sharing an edge is not sharing a cell
	assert.False(t, r.Overlaps(region.Rect{X: 5, Y: 1, Width: 1, Height: 1}))
	assert.Equal(t, "[2,1 3x2]", r.String())
}

func TestIndex_Covers(t *testing.T) {
	idx, err := region.NewIndex(
		region.Rect{X: 0, Y: 0, Width: 2, Height: 2},
		region.Rect{X: 5, Y: 3, Width: 1, Height: 4},
	)
	require.NoError(t, err)
	require.Equal(t, 2, idx.Len())

	covered := []grid.Position{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 5, Y: 3}, {X: 5, Y: 6}}
	for _, p := range covered {
		assert.True(t, idx.Covers(p), "%v", p)
	}
	free := []grid.Position{{X: 2, Y: 0}, {X: 0, Y: 2}, {X: 5, Y: 7}, {X: 4, Y: 3}, {X: 6, Y: 3}}
	for _, p := range free {
		assert.False(t, idx.Covers(p), "%v", p)
	}
}

func TestIndex_InsertRejectsEmpty(t *testing.T) {
	_, err := region.NewIndex(region.Rect{X: 1, Y: 1, Width: 0, Height: 1})
	require.ErrorIs(t, err, region.ErrEmptyRect)

	idx, err := region.NewIndex()
	require.NoError(t, err)
	require.ErrorIs(t, idx.Insert(region.Rect{Width: 1}), region.ErrEmptyRect)
	require.Zero(t, idx.Len())
}

func TestIndex_Query(t *testing.T) {
	a := region.Rect{X: 0, Y: 0, Width: 3, Height: 1}
	b := region.Rect{X: 2, Y: 0, Width: 1, Height: 5}
	c := region.Rect{X: 10, Y: 10, Width: 2, Height: 2}
	idx, err := region.NewIndex(a, b, c)
	require.NoError(t, err)

	got, err := idx.Query(region.Rect{X: 2, Y: 0, Width: 1, Height: 1})
	require.NoError(t, err)
	require.Equal(t, []region.Rect{a, b}, got)

	// touching c's edge only
	got, err = idx.Query(region.Rect{X: 8, Y: 10, Width: 2, Height: 2})
	require.NoError(t, err)
	require.Empty(t, got)

	_, err = idx.Query(region.Rect{})
	require.ErrorIs(t, err, region.ErrEmptyRect)
}

func TestIndex_QueryManyRects(t *testing.T) {
	// enough entries to force node splits
	idx, err := region.NewIndex()
	require.NoError(t, err)
	var want []region.Rect
	for i := 0; i < 200; i++ {
		r := region.Rect{X: i * 2, Y: i % 7, Width: 1, Height: 1}
		require.NoError(t, idx.Insert(r))
		if r.X < 40 {
			want = append(want, r)
		}
	}
	got, err := idx.Query(region.Rect{X: 0, Y: 0, Width: 40, Height: 7})
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestIndex_Cells(t *testing.T) {
	g, err := grid.BuildGrid(4, 3)
	require.NoError(t, err)
	idx, err := region.NewIndex(
		region.Rect{X: 1, Y: 0, Width: 1, Height: 2},
		region.Rect{X: 3, Y: 2, Width: 5, Height: 5}, // mostly off-grid
		region.Rect{X: 1, Y: 1, Width: 2, Height: 1}, // overlaps the first
	)
	require.NoError(t, err)

	cells := idx.Cells(g)
	require.Equal(t, []grid.Position{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 2}}, g.Positions(cells))

	empty, _ := region.NewIndex()
	require.Empty(t, empty.Cells(g))
	require.Empty(t, idx.Cells(nil))
}
