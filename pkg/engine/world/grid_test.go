package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid_AllEmpty(t *testing.T) {
	g := NewGrid(4, 3)
	require.Equal(t, 4, g.Width())
	require.Equal(t, 3, g.Height())
	assert.Equal(t, 0, g.CountSolid())
}

func TestNewGrid_NonPositivePanics(t *testing.T) {
	assert.Panics(t, func() { NewGrid(0, 3) })
	assert.Panics(t, func() { NewGrid(3, -1) })
}

func TestGrid_SetOutOfRangeIgnored(t *testing.T) {
	g := NewGrid(2, 2)
	assert.False(t, g.Set(-1, 0, Solid))
	assert.False(t, g.Set(0, 2, Solid))
	assert.True(t, g.Set(1, 1, Solid))
	assert.Equal(t, 1, g.CountSolid())
	assert.Equal(t, Empty, g.Get(5, 5))
}

func TestGrid_IsEmptyOutsideIsFalse(t *testing.T) {
	g := NewGrid(2, 2)
	assert.True(t, g.IsEmpty(0, 0))
	assert.False(t, g.IsEmpty(0, 2), "cells beyond the top are neither solid nor empty")
	assert.False(t, g.IsSolid(0, 2))
}

func TestGrid_ForEachCellScanOrder(t *testing.T) {
	g := NewGrid(3, 2)
	var visited []Coord
	g.ForEachCell(func(x, y int, _ CellState) {
		visited = append(visited, Coord{X: x, Y: y})
	})
	want := []Coord{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}
	assert.Equal(t, want, visited)
}

func TestParseGrid_TopRowFirst(t *testing.T) {
	g := ParseGrid(
		"#..",
		"##.",
	)
	require.Equal(t, 3, g.Width())
	require.Equal(t, 2, g.Height())
	assert.True(t, g.IsSolid(0, 0))
	assert.True(t, g.IsSolid(1, 0))
	assert.True(t, g.IsSolid(0, 1))
	assert.True(t, g.IsEmpty(1, 1))
	assert.Equal(t, "#..\n##.\n", g.String())
}

func TestGrid_CloneIsIndependent(t *testing.T) {
	g := ParseGrid("#.", ".#")
	c := g.Clone()
	require.True(t, g.Equal(c))
	c.Set(0, 0, Solid)
	assert.False(t, g.Equal(c))
	assert.False(t, g.IsSolid(0, 0))
}

func TestGrid_Neighbor(t *testing.T) {
	g := NewGrid(2, 2)
	c, ok := g.Neighbor(0, 0, Up)
	assert.True(t, ok)
	assert.Equal(t, Coord{X: 0, Y: 1}, c)
	_, ok = g.Neighbor(0, 0, Left)
	assert.False(t, ok)
}

func TestTileFor(t *testing.T) {
	g := ParseGrid(
		"#.",
		"##",
	)
	assert.Equal(t, TileTop, TileFor(g, 0, 1))
	assert.Equal(t, TileGround, TileFor(g, 0, 0))
	assert.Equal(t, TileTop, TileFor(g, 1, 0))
	assert.Equal(t, TileNone, TileFor(g, 1, 1))
}

func TestDirection_OppositeRoundTrip(t *testing.T) {
	for _, d := range AllDirections() {
		assert.Equal(t, d, d.Opposite().Opposite(), d.String())
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		assert.Equal(t, 0, dx+ox)
		assert.Equal(t, 0, dy+oy)
	}
}

func TestPosition_Cell(t *testing.T) {
	assert.Equal(t, Coord{X: 2, Y: 3}, CellCenter(2, 3).Cell())
	assert.Equal(t, Coord{X: -1, Y: 0}, Position{X: -0.5, Y: 0.2}.Cell())
}
