package world

import "strings"

// Grid is a fixed-size occupancy grid indexed [x][y].
// x runs left to right, y runs bottom to top. Dimensions never change after construction.
type Grid struct {
	cells  [][]CellState
	width  int
	height int
}

// NewGrid creates a new grid with every cell Empty
func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Build(width, height)
	return g
}

// Build initializes the grid with the given dimensions
func (g *Grid) Build(width, height int) {
	if width <= 0 || height <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.width = width
	g.height = height
	g.cells = make([][]CellState, width)
	for x := range g.cells {
		g.cells[x] = make([]CellState, height)
	}
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.height
}

// IsValidPosition checks if an x/y position is within grid bounds
func (g *Grid) IsValidPosition(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the state of the cell at x, y. Out-of-range cells read as Empty.
func (g *Grid) Get(x, y int) CellState {
	if !g.IsValidPosition(x, y) {
		return Empty
	}
	return g.cells[x][y]
}

// Set writes the state of the cell at x, y.
// Writes outside the grid are ignored and reported by returning false.
func (g *Grid) Set(x, y int, state CellState) bool {
	if !g.IsValidPosition(x, y) {
		return false
	}
	g.cells[x][y] = state
	return true
}

// IsSolid returns true if the cell exists and is Solid
func (g *Grid) IsSolid(x, y int) bool {
	return g.IsValidPosition(x, y) && g.cells[x][y] == Solid
}

// IsEmpty returns true if the cell exists and is Empty.
// Cells outside the grid are neither solid nor empty.
func (g *Grid) IsEmpty(x, y int) bool {
	return g.IsValidPosition(x, y) && g.cells[x][y] == Empty
}

// Neighbor returns the coordinate next to x, y in the given direction and whether it is inside the grid
func (g *Grid) Neighbor(x, y int, dir Direction) (Coord, bool) {
	c := Coord{X: x, Y: y}.Step(dir)
	return c, dir.IsValid() && g.IsValidPosition(c.X, c.Y)
}

// Clear resets every cell to Empty
func (g *Grid) Clear() {
	for x := range g.cells {
		for y := range g.cells[x] {
			g.cells[x][y] = Empty
		}
	}
}

// ForEachCell visits every cell with y in the outer loop and x in the inner loop.
// Placement passes depend on this order.
func (g *Grid) ForEachCell(fn func(x, y int, state CellState)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(x, y, g.cells[x][y])
		}
	}
}

// CountSolid returns the number of Solid cells
func (g *Grid) CountSolid() int {
	n := 0
	g.ForEachCell(func(x, y int, state CellState) {
		if state == Solid {
			n++
		}
	})
	return n
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.width, g.height)
	for x := range g.cells {
		copy(c.cells[x], g.cells[x])
	}
	return c
}

// Equal reports whether both grids have the same dimensions and cell states
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for x := range g.cells {
		for y := range g.cells[x] {
			if g.cells[x][y] != other.cells[x][y] {
				return false
			}
		}
	}
	return true
}

// String renders the grid top row first, one line per row
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := g.height - 1; y >= 0; y-- {
		for x := 0; x < g.width; x++ {
			sb.WriteRune(g.cells[x][y].Glyph())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseGrid builds a grid from rows listed top row first, using '#' for Solid and anything else for Empty.
// Rows shorter than the widest row are padded with Empty cells.
func ParseGrid(rows ...string) *Grid {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	g := NewGrid(width, len(rows))
	for i, row := range rows {
		y := len(rows) - 1 - i
		for x, ch := range []byte(row) {
			if ch == '#' {
				g.cells[x][y] = Solid
			}
		}
	}
	return g
}
