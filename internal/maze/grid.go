package maze

import "fmt"

// Grid is the square board the engine walks.
// Cells are stored in row-major order: index = y*N + x.
type Grid struct {
	n     int
	cells []Cell
}

// NewGrid creates an n x n grid with every cell empty.
func NewGrid(n int) *Grid {
	if n < 0 {
		n = 0
	}
	g := &Grid{
		n:     n,
		cells: make([]Cell, n*n),
	}
	for i := range g.cells {
		g.cells[i] = Empty{}
	}
	return g
}

// FromRows builds a grid from rows of cells.
// Every row must have exactly len(rows) cells.
func FromRows(rows [][]Cell) (*Grid, error) {
	n := len(rows)
	g := NewGrid(n)
	for y, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has %d cells, want %d", y, len(row), n)
		}
		for x, c := range row {
			if c == nil {
				c = Empty{}
			}
			g.cells[y*n+x] = c
		}
	}
	return g, nil
}

// Size returns the side length of the grid, 0 for a nil grid.
func (g *Grid) Size() int {
	if g == nil {
		return 0
	}
	return g.n
}

// InBounds returns true if the coordinate is within the grid boundaries.
// A nil grid has no cells.
func (g *Grid) InBounds(c Coord) bool {
	if g == nil {
		return false
	}
	return c.X >= 0 && c.X < g.n && c.Y >= 0 && c.Y < g.n
}

// Get returns the cell at (x, y) and whether the position is on the grid.
func (g *Grid) Get(x, y int) (Cell, bool) {
	return g.At(C(x, y))
}

// At is Get for a Coord.
func (g *Grid) At(c Coord) (Cell, bool) {
	if !g.InBounds(c) {
		return nil, false
	}
	return g.cells[c.Y*g.n+c.X], true
}

// Set replaces the cell at (x, y). Out of range positions are ignored.
func (g *Grid) Set(x, y int, cell Cell) {
	c := C(x, y)
	if !g.InBounds(c) {
		return
	}
	if cell == nil {
		cell = Empty{}
	}
	g.cells[c.Y*g.n+c.X] = cell
}

// Row returns a copy of row y.
func (g *Grid) Row(y int) []Cell {
	if y < 0 || y >= g.Size() {
		return nil
	}
	row := make([]Cell, g.n)
	copy(row, g.cells[y*g.n:(y+1)*g.n])
	return row
}

// Clone returns a deep copy of the grid, including enemy hit sets.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	for i, c := range g.cells {
		if e, ok := c.(*Enemy); ok {
			c = e.clone()
		}
		cells[i] = c
	}
	return &Grid{n: g.n, cells: cells}
}

// Equal returns true if two grids have the same size and contents.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.n != other.n {
		return false
	}
	for i, c := range g.cells {
		if !CellsEqual(c, other.cells[i]) {
			return false
		}
	}
	return true
}

// Count returns the number of cells matching pred.
func (g *Grid) Count(pred func(Cell) bool) int {
	count := 0
	for _, c := range g.cells {
		if pred(c) {
			count++
		}
	}
	return count
}
