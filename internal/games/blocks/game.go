// Package blocks adapts the block puzzle engine to the platform: it maps
// input to placements, keeps the cursor and selected piece, and draws the
// board, tray and HUD.
package blocks

import (
	"fmt"

	platformcore "github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks/core"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

// ID is the registry and score-storage identifier of the game.
const ID = "blocks"

// Effect durations in seconds.
const (
	noticeSeconds = 1.5
	flashSeconds  = 0.4
	glowSeconds   = 0.8
	pulseSeconds  = 0.3
)

// effect is a countdown with the ticks it started from.
type effect struct {
	left, total int
}

func (e *effect) start(ticks int) {
	e.left, e.total = ticks, ticks
}

func (e *effect) step() {
	if e.left > 0 {
		e.left--
	}
}

func (e effect) active() bool {
	return e.left > 0
}

// remaining returns the fraction of the effect still to run, in [0, 1].
func (e effect) remaining() float64 {
	if e.total == 0 {
		return 0
	}
	return float64(e.left) / float64(e.total)
}

// Game implements the block puzzle on top of core.Engine.
type Game struct {
	settings Settings
	palette  Palette
	engine   *core.Engine
	tick     uint64
	tickRate int

	screenW int
	screenH int
	layout  layout

	cursor   core.Position // Anchor for the selected piece's top-left cell
	selected int           // Index into the active set
	best     int

	gameOver bool
	paused   bool
	help     bool
	tooSmall bool

	notice      string
	noticeTimer effect
	lastDelta   int
	pulse       effect
	glowCells   []core.Position
	glow        effect
	flashRows   []int
	flashCols   []int
	flash       effect
}

// New creates a block puzzle game. Call Reset before use.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Block Puzzle"
}

// Reset starts a new game with CurrentSettings.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	settings := CurrentSettings()
	engine, err := core.New(settings.Engine, cfg.Seed)
	if err != nil {
		settings.Engine = core.DefaultSettings()
		engine, _ = core.New(settings.Engine, cfg.Seed)
	}

	*g = Game{
		settings: settings,
		palette:  PaletteFor(settings.Theme),
		engine:   engine,
		tickRate: cfg.TickRate,
		best:     cfg.Best,
	}
	if g.tickRate <= 0 {
		g.tickRate = platformcore.DefaultConfig().TickRate
	}

	center := engine.Size() / 2
	g.cursor = core.P(center, center)
	g.Resize(cfg.ScreenW, cfg.ScreenH)

	// Small boards can deal a set with no legal move.
	g.gameOver = !engine.HasAvailableMoves()
}

// Resize updates the layout for a new screen size without restarting.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	if g.engine == nil {
		return
	}
	l, ok := computeLayout(g.engine.Size(), w, h)
	g.layout = l
	g.tooSmall = !ok
}

// GridSize returns the board side length of the running game.
func (g *Game) GridSize() int {
	if g.engine == nil {
		return 0
	}
	return g.engine.Size()
}

// ticks converts seconds to simulation ticks, at least one.
func (g *Game) ticks(seconds float64) int {
	return max(1, int(seconds*float64(g.tickRate)))
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++
	g.stepEffects()

	if g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionHelp) {
		g.help = !g.help
	}
	if in.Has(platformcore.ActionPause) && !g.help {
		g.paused = !g.paused
	}

	// Restart is handled by the platform calling Reset
	if g.paused || g.help || g.gameOver {
		return platformcore.StepResult{State: g.State()}
	}

	placed := false
	if in.Pointer.Active() {
		placed = g.handlePointer(in.Pointer)
	}

	for i := 0; i < core.PiecesPerSet; i++ {
		if in.Has(platformcore.SelectAction(i)) {
			g.selectSlot(i)
		}
	}
	if in.Has(platformcore.ActionNextPiece) {
		g.nextPiece()
	}

	g.moveCursor(in)

	if in.Has(platformcore.ActionConfirm) && !placed {
		g.place(g.cursor)
	}

	return platformcore.StepResult{State: g.State()}
}

func (g *Game) stepEffects() {
	g.noticeTimer.step()
	if !g.noticeTimer.active() {
		g.notice = ""
	}
	g.pulse.step()
	g.glow.step()
	g.flash.step()
}

// handlePointer moves the cursor with the mouse and places or selects on click.
// It reports whether a placement was attempted.
func (g *Game) handlePointer(p platformcore.Pointer) bool {
	if pos, ok := g.layout.cellAt(p.X, p.Y); ok {
		g.cursor = pos
		if p.Clicked {
			g.place(pos)
			return true
		}
		return false
	}

	if p.Clicked {
		if slot, ok := g.layout.slotAt(p.X, p.Y); ok {
			g.selectSlot(slot)
		}
	}
	return false
}

func (g *Game) selectSlot(i int) {
	if i < 0 || i >= len(g.engine.ActivePieces()) {
		g.setNotice(fmt.Sprintf("Slot %d is empty", i+1))
		return
	}
	g.selected = i
}

func (g *Game) nextPiece() {
	n := len(g.engine.ActivePieces())
	if n > 0 {
		g.selected = (g.selected + 1) % n
	}
}

func (g *Game) moveCursor(in platformcore.InputFrame) {
	last := g.engine.Size() - 1
	switch {
	case in.Has(platformcore.ActionUp):
		g.cursor.Row--
	case in.Has(platformcore.ActionDown):
		g.cursor.Row++
	}
	switch {
	case in.Has(platformcore.ActionLeft):
		g.cursor.Col--
	case in.Has(platformcore.ActionRight):
		g.cursor.Col++
	}
	g.cursor.Row = platformcore.Clamp(g.cursor.Row, 0, last)
	g.cursor.Col = platformcore.Clamp(g.cursor.Col, 0, last)
}

// place puts the selected piece at anchor and starts the effects.
func (g *Game) place(anchor core.Position) {
	out, err := g.engine.Place(g.selected, anchor.Row, anchor.Col)
	if err != nil {
		g.setNotice("Can't place there")
		return
	}

	g.lastDelta = out.ScoreDelta
	g.pulse.start(g.ticks(pulseSeconds))
	g.best = max(g.best, out.Score)

	// Cells cleared in the same move do not glow.
	grid := g.engine.Grid()
	g.glowCells = g.glowCells[:0]
	for _, p := range out.Placed {
		if grid.Occupied(p.Row, p.Col) {
			g.glowCells = append(g.glowCells, p)
		}
	}
	g.glow.start(g.ticks(glowSeconds))

	if out.LinesCleared > 0 {
		g.flashRows, g.flashCols = out.ClearedRows, out.ClearedCols
		g.flash.start(g.ticks(flashSeconds))
		g.setNotice(fmt.Sprintf("%s cleared! +%d", plural(out.LinesCleared, "line"), out.ScoreDelta))
	}

	g.selected = 0
	g.gameOver = out.State == core.StateGameOver
}

func (g *Game) setNotice(msg string) {
	g.notice = msg
	g.noticeTimer.start(g.ticks(noticeSeconds))
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	if g.engine == nil {
		return platformcore.GameState{}
	}
	return platformcore.GameState{
		Score:    g.engine.Score(),
		GameOver: g.gameOver,
		Paused:   g.paused || g.help || g.tooSmall,
	}
}
