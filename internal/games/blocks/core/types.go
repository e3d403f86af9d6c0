// Package core provides the block puzzle engine: the grid, the shape catalog,
// the active piece set, placement, line clearing and game-over detection.
// This package is UI-agnostic and deterministic for a given piece dealer.
package core

import "fmt"

// RGB is a 24-bit block color.
type RGB struct {
	R, G, B uint8
}

// String returns the color as "rgb(r, g, b)".
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Cell represents a single cell in the grid.
type Cell struct {
	Filled bool // Whether the cell is occupied
	Color  RGB  // Valid only when Filled is true
}

// Empty returns an empty cell.
func Empty() Cell {
	return Cell{}
}

// FilledCell returns an occupied cell with the given color.
func FilledCell(c RGB) Cell {
	return Cell{Filled: true, Color: c}
}

// State is the lifecycle state of a game.
type State string

const (
	StatePlaying  State = "playing"
	StateGameOver State = "game_over"
)

// Position is a (row, column) grid coordinate.
type Position struct {
	Row int
	Col int
}

// P is shorthand for creating a Position.
func P(row, col int) Position {
	return Position{Row: row, Col: col}
}
