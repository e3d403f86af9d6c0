package core

import (
	"errors"
	"fmt"
	"strings"
)

// Shape is an immutable rectangular pattern of filled cells.
// Cells are stored row-major: index = row*cols + col.
type Shape struct {
	rows  int
	cols  int
	cells []bool
}

// NewShape builds a shape from a boolean matrix.
// Every row must have the same non-zero length.
func NewShape(m [][]bool) (Shape, error) {
	if len(m) == 0 || len(m[0]) == 0 {
		return Shape{}, errors.New("shape: empty matrix")
	}
	cols := len(m[0])
	cells := make([]bool, 0, len(m)*cols)
	for r, row := range m {
		if len(row) != cols {
			return Shape{}, fmt.Errorf("shape: row %d has %d cells, want %d", r, len(row), cols)
		}
		cells = append(cells, row...)
	}
	return Shape{rows: len(m), cols: cols, cells: cells}, nil
}

// ParseShape builds a shape from rows of text where '#' marks a filled cell
// and any other rune an empty one.
func ParseShape(rows ...string) (Shape, error) {
	m := make([][]bool, len(rows))
	for r, line := range rows {
		m[r] = make([]bool, 0, len(line))
		for _, ch := range line {
			m[r] = append(m[r], ch == '#')
		}
	}
	return NewShape(m)
}

// MustParseShape is like ParseShape but panics on malformed input.
// Intended for static tables.
func MustParseShape(rows ...string) Shape {
	s, err := ParseShape(rows...)
	if err != nil {
		panic(err)
	}
	return s
}

// Height returns the number of rows in the bounding box.
func (s Shape) Height() int {
	return s.rows
}

// Width returns the number of columns in the bounding box.
func (s Shape) Width() int {
	return s.cols
}

// Filled reports whether the cell at (r, c) of the bounding box is filled.
// Out-of-box coordinates report false.
func (s Shape) Filled(r, c int) bool {
	if r < 0 || r >= s.rows || c < 0 || c >= s.cols {
		return false
	}
	return s.cells[r*s.cols+c]
}

// BlockCount returns the number of filled cells.
func (s Shape) BlockCount() int {
	n := 0
	for _, f := range s.cells {
		if f {
			n++
		}
	}
	return n
}

// Offsets returns the filled cells relative to the top-left of the box,
// ordered by row then column.
func (s Shape) Offsets() []Position {
	out := make([]Position, 0, len(s.cells))
	for r := 0; r < s.rows; r++ {
		for c := 0; c < s.cols; c++ {
			if s.cells[r*s.cols+c] {
				out = append(out, P(r, c))
			}
		}
	}
	return out
}

// Rotate returns the shape turned a quarter clockwise: the rows are reversed
// and the result transposed, so out[i][j] = in[rows-1-j][i].
func (s Shape) Rotate() Shape {
	out := Shape{rows: s.cols, cols: s.rows, cells: make([]bool, len(s.cells))}
	for i := 0; i < out.rows; i++ {
		for j := 0; j < out.cols; j++ {
			out.cells[i*out.cols+j] = s.cells[(s.rows-1-j)*s.cols+i]
		}
	}
	return out
}

// RotateN applies Rotate n times. Negative n is treated as zero.
func (s Shape) RotateN(n int) Shape {
	for ; n > 0; n-- {
		s = s.Rotate()
	}
	return s
}

// Equal reports whether two shapes have the same box and cells.
func (s Shape) Equal(other Shape) bool {
	if s.rows != other.rows || s.cols != other.cols {
		return false
	}
	for i := range s.cells {
		if s.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Rows returns the shape as text rows using '#' and '.'.
func (s Shape) Rows() []string {
	rows := make([]string, s.rows)
	var sb strings.Builder
	for r := 0; r < s.rows; r++ {
		sb.Reset()
		for c := 0; c < s.cols; c++ {
			if s.cells[r*s.cols+c] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		rows[r] = sb.String()
	}
	return rows
}

// String returns the rows joined with '/'.
func (s Shape) String() string {
	return strings.Join(s.Rows(), "/")
}
