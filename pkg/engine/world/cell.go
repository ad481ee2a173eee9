// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

import "fmt"

// CellState is the occupancy of a single grid cell.
type CellState uint8

const (
	Empty CellState = iota // open air
	Solid                  // terrain
)

// String returns the string representation of a cell state
func (s CellState) String() string {
	switch s {
	case Empty:
		return "Empty"
	case Solid:
		return "Solid"
	default:
		return fmt.Sprintf("CellState(%d)", uint8(s))
	}
}

// Glyph returns the single-character symbol used in text dumps
func (s CellState) Glyph() rune {
	if s == Solid {
		return '#'
	}
	return '.'
}

// Coord addresses a grid cell by column and row
type Coord struct {
	X int
	Y int
}

// String formats the coordinate as "x,y"
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Step returns the coordinate one cell away in the given direction
func (c Coord) Step(dir Direction) Coord {
	dx, dy := dir.Delta()
	return Coord{X: c.X + dx, Y: c.Y + dy}
}
