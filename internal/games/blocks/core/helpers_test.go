package core_test

import (
	"testing"

	"github.com/vovakirdan/tui-blocks/internal/games/blocks/core"
)

// scriptedDealer hands out predefined sets, then sets of monominoes.
type scriptedDealer struct {
	sets [][]core.Piece
}

func (d *scriptedDealer) Deal(n int) []core.Piece {
	if len(d.sets) > 0 {
		set := d.sets[0]
		d.sets = d.sets[1:]
		return set
	}
	out := make([]core.Piece, n)
	for i := range out {
		out[i] = piece(core.RGB{R: 9, G: 9, B: 9}, "#")
	}
	return out
}

func piece(color core.RGB, rows ...string) core.Piece {
	return core.Piece{Shape: core.MustParseShape(rows...), Color: color}
}

var (
	red   = core.RGB{R: 255}
	green = core.RGB{G: 255}
	blue  = core.RGB{B: 255}
)

func newEngine(t *testing.T, size int, sets ...[]core.Piece) *core.Engine {
	t.Helper()
	e, err := core.NewWithDealer(core.Settings{Size: size}, &scriptedDealer{sets: sets})
	if err != nil {
		t.Fatalf("NewWithDealer() failed: %v", err)
	}
	return e
}

func mustPlace(t *testing.T, e *core.Engine, index, row, col int) core.Outcome {
	t.Helper()
	out, err := e.Place(index, row, col)
	if err != nil {
		t.Fatalf("Place(%d, %d, %d) failed: %v", index, row, col, err)
	}
	return out
}
