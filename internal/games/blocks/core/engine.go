package core

import (
	"fmt"
	"time"
)

// Scoring constants.
const (
	BaseScorePerBlock = 10 // Points per placed block
	BonusMultiplier   = 5  // Points per cleared line, per cell of board side
)

// PiecesPerSet is the number of pieces dealt at a time.
const PiecesPerSet = 3

// Settings configures an engine. It is fixed for the engine's lifetime;
// build a new engine to change it.
type Settings struct {
	Size         int  // Board side length, must be positive
	UniformColor bool // Use BlockColor for every piece
	BlockColor   RGB  // Color used in uniform mode
}

// DefaultSettings returns the standard 10×10 configuration.
func DefaultSettings() Settings {
	return Settings{
		Size:         10,
		UniformColor: false,
		BlockColor:   RGB{R: 100, G: 200, B: 150},
	}
}

// Outcome describes the effects of a successful placement.
type Outcome struct {
	BlocksPlaced int        // Filled cells of the placed piece
	Placed       []Position // Board cells the piece was stamped on
	ClearedRows  []int      // Rows that were full and got cleared
	ClearedCols  []int      // Columns that were full and got cleared
	LinesCleared int        // len(ClearedRows) + len(ClearedCols)
	ScoreDelta   int        // Points earned by this placement
	Score        int        // Score after the placement
	Refreshed    bool       // Whether a new set of pieces was dealt
	State        State      // Game state after the placement
}

// Engine owns the board, the active set, the score and the game state.
// All mutation goes through Place. Engine is not safe for concurrent use.
type Engine struct {
	settings Settings
	dealer   Dealer
	grid     *Grid
	pieces   []Piece
	score    int
	state    State
}

// New creates an engine whose pieces come from a RandomDealer seeded with seed.
// A zero seed uses the current time.
func New(s Settings, seed int64) (*Engine, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewWithDealer(s, NewRandomDealer(seed, s.UniformColor, s.BlockColor))
}

// NewWithDealer creates an engine that takes its pieces from dealer.
func NewWithDealer(s Settings, dealer Dealer) (*Engine, error) {
	if s.Size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, s.Size)
	}
	e := &Engine{
		settings: s,
		dealer:   dealer,
		grid:     NewGrid(s.Size),
		state:    StatePlaying,
	}
	e.deal()
	return e, nil
}

// deal replaces the active set with a fresh one.
func (e *Engine) deal() {
	e.pieces = e.dealer.Deal(PiecesPerSet)
}

// Settings returns the settings the engine was built with.
func (e *Engine) Settings() Settings {
	return e.settings
}

// Size returns the board side length.
func (e *Engine) Size() int {
	return e.settings.Size
}

// Grid returns a read-only snapshot of the board.
func (e *Engine) Grid() GridView {
	return GridView{g: e.grid.Clone()}
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// State returns the current game state.
func (e *Engine) State() State {
	return e.state
}

// ActivePieces returns the pieces currently offered, in slot order.
func (e *Engine) ActivePieces() []Piece {
	out := make([]Piece, len(e.pieces))
	copy(out, e.pieces)
	return out
}

// CanPlace reports whether the piece at index fits with its top-left corner
// at (row, col). An index outside the active set is simply not placeable.
func (e *Engine) CanPlace(index, row, col int) bool {
	if index < 0 || index >= len(e.pieces) {
		return false
	}
	return e.fits(e.pieces[index].Shape, row, col)
}

func (e *Engine) fits(s Shape, row, col int) bool {
	if s.Height() == 0 {
		return false
	}
	if row < 0 || col < 0 || row+s.Height() > e.settings.Size || col+s.Width() > e.settings.Size {
		return false
	}
	for r := 0; r < s.Height(); r++ {
		for c := 0; c < s.Width(); c++ {
			if s.Filled(r, c) && e.grid.Occupied(P(row+r, col+c)) {
				return false
			}
		}
	}
	return true
}

// Place puts the piece at index on the board with its top-left corner at
// (row, col), clears full lines, deals a new set when the last piece is used
// and updates the game state. A rejected placement leaves the engine untouched.
func (e *Engine) Place(index, row, col int) (Outcome, error) {
	if !e.CanPlace(index, row, col) {
		return Outcome{}, &PlacementError{Index: index, Row: row, Col: col}
	}

	piece := e.pieces[index]
	out := Outcome{BlocksPlaced: piece.Shape.BlockCount()}
	out.ScoreDelta = out.BlocksPlaced * BaseScorePerBlock

	for _, off := range piece.Shape.Offsets() {
		p := P(row+off.Row, col+off.Col)
		e.grid.Fill(p, piece.Color)
		out.Placed = append(out.Placed, p)
	}

	// Ordered removal: slots keep their relative order.
	e.pieces = append(e.pieces[:index:index], e.pieces[index+1:]...)

	out.ClearedRows, out.ClearedCols = e.grid.FullLines()
	out.LinesCleared = len(out.ClearedRows) + len(out.ClearedCols)
	if out.LinesCleared > 0 {
		e.grid.ClearLines(out.ClearedRows, out.ClearedCols)
		out.ScoreDelta += out.LinesCleared * e.settings.Size * BonusMultiplier
	}
	e.score += out.ScoreDelta

	if len(e.pieces) == 0 {
		e.deal()
		out.Refreshed = true
	}

	if !e.HasAvailableMoves() {
		e.state = StateGameOver
	}

	out.Score = e.score
	out.State = e.state
	return out, nil
}

// HasAvailableMoves reports whether any active piece fits anywhere.
func (e *Engine) HasAvailableMoves() bool {
	for i := range e.pieces {
		if e.CanPlaceAnywhere(i) {
			return true
		}
	}
	return false
}

// CanPlaceAnywhere reports whether the piece at index fits at some position.
func (e *Engine) CanPlaceAnywhere(index int) bool {
	if index < 0 || index >= len(e.pieces) {
		return false
	}
	s := e.pieces[index].Shape
	for r := 0; r+s.Height() <= e.settings.Size; r++ {
		for c := 0; c+s.Width() <= e.settings.Size; c++ {
			if e.fits(s, r, c) {
				return true
			}
		}
	}
	return false
}
