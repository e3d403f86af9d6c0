package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned when an engine is built with a non-positive size.
	ErrInvalidSize = errors.New("blocks: grid size must be positive")

	// ErrInvalidPlacement is returned by Place when the piece does not fit.
	ErrInvalidPlacement = errors.New("blocks: invalid placement")
)

// PlacementError describes a rejected placement.
// It matches ErrInvalidPlacement with errors.Is.
type PlacementError struct {
	Index int
	Row   int
	Col   int
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("%v: piece %d at (%d, %d)", ErrInvalidPlacement, e.Index, e.Row, e.Col)
}

// Unwrap lets errors.Is match ErrInvalidPlacement.
func (e *PlacementError) Unwrap() error {
	return ErrInvalidPlacement
}
