package core_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/tui-blocks/internal/games/blocks/core"
)

// pieceSummary is a comparable view of a piece.
type pieceSummary struct {
	ID    core.ShapeID
	Turns int
	Rows  []string
	Color core.RGB
}

func summarize(pieces []core.Piece) []pieceSummary {
	out := make([]pieceSummary, 0, len(pieces))
	for _, p := range pieces {
		out = append(out, pieceSummary{ID: p.ShapeID, Turns: p.Turns, Rows: p.Shape.Rows(), Color: p.Color})
	}
	return out
}

func TestRandomDealerDeterminism(t *testing.T) {
	a := core.NewRandomDealer(7, false, core.RGB{})
	b := core.NewRandomDealer(7, false, core.RGB{})

	for i := 0; i < 10; i++ {
		if diff := cmp.Diff(summarize(a.Deal(3)), summarize(b.Deal(3))); diff != "" {
			t.Fatalf("deal %d differs for the same seed (-a +b):\n%s", i, diff)
		}
	}
}

func TestRandomDealerPieces(t *testing.T) {
	d := core.NewRandomDealer(99, false, core.RGB{})

	for _, p := range d.Deal(300) {
		base, ok := core.CatalogShape(p.ShapeID)
		if !ok {
			t.Fatalf("dealt unknown shape id %d", p.ShapeID)
		}
		if p.Turns < 0 || p.Turns > 3 {
			t.Errorf("turns out of range: %d", p.Turns)
		}
		if !p.Shape.Equal(base.RotateN(p.Turns)) {
			t.Errorf("shape %s is not catalog %d rotated %d times", p.Shape, p.ShapeID, p.Turns)
		}
		for _, ch := range []uint8{p.Color.R, p.Color.G, p.Color.B} {
			if ch < 50 {
				t.Errorf("color channel %d below 50 in %s", ch, p.Color)
			}
		}
	}
}

func TestRandomDealerUniformColor(t *testing.T) {
	color := core.RGB{R: 100, G: 200, B: 150}
	d := core.NewRandomDealer(3, true, color)

	for _, p := range d.Deal(50) {
		if p.Color != color {
			t.Fatalf("expected uniform %s, got %s", color, p.Color)
		}
	}
}

func TestSeededEnginesMatch(t *testing.T) {
	s := core.DefaultSettings()
	a, err := core.New(s, 1234)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	b, err := core.New(s, 1234)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if diff := cmp.Diff(summarize(a.ActivePieces()), summarize(b.ActivePieces())); diff != "" {
		t.Errorf("initial sets differ (-a +b):\n%s", diff)
	}
}
