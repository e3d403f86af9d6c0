package blocks

import "github.com/vovakirdan/tui-blocks/internal/games/blocks/core"

// StateType is the adapter-level game state.
type StateType string

const (
	StatePlaying     StateType = "playing"
	StateGameOver    StateType = "game_over"
	StatePaused      StateType = "paused"
	StateHelp        StateType = "help"
	StatePausedSmall StateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Size     int
	Score    int
	Best     int
	State    StateType
	Board    []string   // One string per row, '#' filled and '.' empty
	Pieces   [][]string // Active set shapes, in slot order
	Selected int
	Cursor   core.Position
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.engine == nil {
		return Snapshot{}
	}

	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.help:
		state = StateHelp
	case g.paused:
		state = StatePaused
	}

	pieces := g.engine.ActivePieces()
	shapes := make([][]string, len(pieces))
	for i, p := range pieces {
		shapes[i] = p.Shape.Rows()
	}

	return Snapshot{
		Tick:     g.tick,
		Size:     g.engine.Size(),
		Score:    g.engine.Score(),
		Best:     max(g.best, g.engine.Score()),
		State:    state,
		Board:    g.engine.Grid().Rows(),
		Pieces:   shapes,
		Selected: g.selected,
		Cursor:   g.cursor,
	}
}
