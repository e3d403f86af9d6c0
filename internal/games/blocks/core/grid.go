package core

// Grid is the square game board.
// Cells are stored in row-major order: index = row*Size + col.
type Grid struct {
	Size  int    // Side length of the board
	Cells []Cell // Flat array of cells, length Size*Size
}

// NewGrid creates an empty size×size grid.
func NewGrid(size int) *Grid {
	return &Grid{
		Size:  size,
		Cells: make([]Cell, size*size),
	}
}

// index converts a position to a flat array index.
func (g *Grid) index(p Position) int {
	return p.Row*g.Size + p.Col
}

// InBounds returns true if the position is on the board.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.Size && p.Col >= 0 && p.Col < g.Size
}

// Get returns the cell at the given position.
// Returns an empty cell if out of bounds.
func (g *Grid) Get(p Position) Cell {
	if !g.InBounds(p) {
		return Empty()
	}
	return g.Cells[g.index(p)]
}

// Occupied reports whether the cell at p is filled.
func (g *Grid) Occupied(p Position) bool {
	return g.Get(p).Filled
}

// Fill occupies the cell at p with the given color.
func (g *Grid) Fill(p Position, color RGB) {
	if g.InBounds(p) {
		g.Cells[g.index(p)] = FilledCell(color)
	}
}

// SetEmpty clears the cell at p. Occupancy and color are reset together.
func (g *Grid) SetEmpty(p Position) {
	if g.InBounds(p) {
		g.Cells[g.index(p)] = Empty()
	}
}

// RowFull reports whether every cell in row r is occupied.
func (g *Grid) RowFull(r int) bool {
	for c := 0; c < g.Size; c++ {
		if !g.Cells[r*g.Size+c].Filled {
			return false
		}
	}
	return true
}

// ColFull reports whether every cell in column c is occupied.
func (g *Grid) ColFull(c int) bool {
	for r := 0; r < g.Size; r++ {
		if !g.Cells[r*g.Size+c].Filled {
			return false
		}
	}
	return true
}

// FullLines returns the indices of all full rows and all full columns.
// Both sets are judged against the same grid state.
func (g *Grid) FullLines() (rows, cols []int) {
	for r := 0; r < g.Size; r++ {
		if g.RowFull(r) {
			rows = append(rows, r)
		}
	}
	for c := 0; c < g.Size; c++ {
		if g.ColFull(c) {
			cols = append(cols, c)
		}
	}
	return rows, cols
}

// ClearLines empties every cell of the given rows and columns.
// Cells at an intersection are cleared once.
func (g *Grid) ClearLines(rows, cols []int) {
	for _, r := range rows {
		for c := 0; c < g.Size; c++ {
			g.SetEmpty(P(r, c))
		}
	}
	for _, c := range cols {
		for r := 0; r < g.Size; r++ {
			g.SetEmpty(P(r, c))
		}
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{
		Size:  g.Size,
		Cells: cells,
	}
}

// FilledCount returns the number of occupied cells.
func (g *Grid) FilledCount() int {
	count := 0
	for _, cell := range g.Cells {
		if cell.Filled {
			count++
		}
	}
	return count
}

// Equal returns true if two grids have the same size and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.Size != other.Size {
		return false
	}
	for i, cell := range g.Cells {
		if cell != other.Cells[i] {
			return false
		}
	}
	return true
}

// GridView is a read-only snapshot of a grid handed out by the engine.
type GridView struct {
	g *Grid
}

// Size returns the side length of the board.
func (v GridView) Size() int {
	return v.g.Size
}

// Occupied reports whether the cell at (row, col) is filled.
func (v GridView) Occupied(row, col int) bool {
	return v.g.Occupied(P(row, col))
}

// Color returns the color at (row, col) and whether the cell is filled.
func (v GridView) Color(row, col int) (RGB, bool) {
	cell := v.g.Get(P(row, col))
	return cell.Color, cell.Filled
}

// Cell returns the cell at (row, col).
func (v GridView) Cell(row, col int) Cell {
	return v.g.Get(P(row, col))
}

// FilledCount returns the number of occupied cells.
func (v GridView) FilledCount() int {
	return v.g.FilledCount()
}

// Rows renders occupancy as text rows using '#' and '.'.
func (v GridView) Rows() []string {
	rows := make([]string, v.g.Size)
	buf := make([]byte, v.g.Size)
	for r := 0; r < v.g.Size; r++ {
		for c := 0; c < v.g.Size; c++ {
			if v.g.Cells[r*v.g.Size+c].Filled {
				buf[c] = '#'
			} else {
				buf[c] = '.'
			}
		}
		rows[r] = string(buf)
	}
	return rows
}
