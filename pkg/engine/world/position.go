package world

import "fmt"

// Position is a point in world space, measured in cells.
// Cell (x, y) spans [x, x+1) x [y, y+1); y grows upwards.
type Position struct {
	X float64
	Y float64
}

// String formats the position with one decimal place
func (p Position) String() string {
	return fmt.Sprintf("(%.1f, %.1f)", p.X, p.Y)
}

// CellCenter returns the world position at the center of a cell
func CellCenter(x, y int) Position {
	return Position{X: float64(x) + 0.5, Y: float64(y) + 0.5}
}

// Offset returns the position moved by dx, dy
func (p Position) Offset(dx, dy float64) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Cell returns the coordinate of the cell containing p
func (p Position) Cell() Coord {
	return Coord{X: floor(p.X), Y: floor(p.Y)}
}

func floor(v float64) int {
	i := int(v)
	if v < 0 && float64(i) != v {
		i--
	}
	return i
}
