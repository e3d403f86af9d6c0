package blocks

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	platformcore "github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks/core"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

var testConfig = platformcore.RuntimeConfig{
	Seed:    12345,
	ScreenW: 80,
	ScreenH: 24,
}

// setDealer hands out predefined sets, then sets of monominoes.
type setDealer struct {
	sets [][]core.Piece
}

func (d *setDealer) Deal(n int) []core.Piece {
	if len(d.sets) > 0 {
		set := d.sets[0]
		d.sets = d.sets[1:]
		return set
	}
	out := make([]core.Piece, n)
	for i := range out {
		out[i] = testPiece("#")
	}
	return out
}

func testPiece(rows ...string) core.Piece {
	return core.Piece{Shape: core.MustParseShape(rows...), Color: core.RGB{R: 200, G: 80, B: 80}}
}

// scriptedGame returns a reset game whose engine deals the given sets.
func scriptedGame(t *testing.T, size int, sets ...[]core.Piece) *Game {
	t.Helper()
	g := New()
	g.Reset(testConfig)

	e, err := core.NewWithDealer(core.Settings{Size: size}, &setDealer{sets: sets})
	if err != nil {
		t.Fatalf("NewWithDealer() failed: %v", err)
	}
	g.engine = e
	g.cursor = core.P(0, 0)
	g.Resize(testConfig.ScreenW, testConfig.ScreenH)
	g.gameOver = !e.HasAvailableMoves()
	return g
}

func press(g *Game, actions ...platformcore.Action) {
	in := platformcore.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	g.Step(in)
}

func click(g *Game, x, y int) {
	in := platformcore.NewInputFrame()
	in.Point(x, y, true)
	g.Step(in)
}

func TestRegistered(t *testing.T) {
	if !registry.Exists(ID) {
		t.Fatalf("game %q is not registered", ID)
	}
	g, err := registry.Create(ID)
	if err != nil {
		t.Fatalf("Create(%q) failed: %v", ID, err)
	}
	if g.ID() != "blocks" {
		t.Errorf("expected ID blocks, got %s", g.ID())
	}
	if g.Title() != "Block Puzzle" {
		t.Errorf("expected title Block Puzzle, got %s", g.Title())
	}
}

func TestResetDefaults(t *testing.T) {
	g := New()
	g.Reset(testConfig)
	snap := g.Snapshot()

	if snap.Size != 10 {
		t.Errorf("expected size 10, got %d", snap.Size)
	}
	if snap.Score != 0 || snap.Tick != 0 {
		t.Errorf("expected fresh game, got score %d tick %d", snap.Score, snap.Tick)
	}
	if len(snap.Pieces) != core.PiecesPerSet {
		t.Errorf("expected %d pieces, got %d", core.PiecesPerSet, len(snap.Pieces))
	}
	if snap.State != StatePlaying {
		t.Errorf("expected playing, got %s", snap.State)
	}
	if snap.Cursor != core.P(5, 5) {
		t.Errorf("expected cursor at board center, got %+v", snap.Cursor)
	}
	if g.GridSize() != 10 {
		t.Errorf("GridSize() = %d, expected 10", g.GridSize())
	}
}

func TestResetKeepsBest(t *testing.T) {
	cfg := testConfig
	cfg.Best = 500

	g := New()
	g.Reset(cfg)
	if g.Snapshot().Best != 500 {
		t.Errorf("expected best 500, got %d", g.Snapshot().Best)
	}
}

func TestSettingsApplyOnReset(t *testing.T) {
	prev := CurrentSettings()
	t.Cleanup(func() { selectedSettings = prev })

	if err := SetSettings(Settings{Engine: core.Settings{Size: 0}}); err == nil {
		t.Error("SetSettings with size 0 should fail")
	}
	if CurrentSettings() != prev {
		t.Error("rejected settings should not be stored")
	}

	s := DefaultSettings()
	s.Engine.Size = 6
	s.Theme = "light"
	if err := SetSettings(s); err != nil {
		t.Fatalf("SetSettings() failed: %v", err)
	}

	g := New()
	g.Reset(testConfig)
	if g.GridSize() != 6 {
		t.Errorf("expected size 6, got %d", g.GridSize())
	}
	if g.palette != PaletteFor("light") {
		t.Error("expected light palette")
	}
}

func TestCursorMovesAndClamps(t *testing.T) {
	g := scriptedGame(t, 5)

	press(g, platformcore.ActionUp, platformcore.ActionLeft)
	if g.cursor != core.P(0, 0) {
		t.Errorf("cursor should stay at origin, got %+v", g.cursor)
	}

	for i := 0; i < 10; i++ {
		press(g, platformcore.ActionRight)
	}
	press(g, platformcore.ActionDown)
	if g.cursor != core.P(1, 4) {
		t.Errorf("expected cursor (1,4), got %+v", g.cursor)
	}
}

func TestSelectAndCycle(t *testing.T) {
	g := scriptedGame(t, 5)

	press(g, platformcore.ActionSelect3)
	if g.selected != 2 {
		t.Fatalf("expected slot 2 selected, got %d", g.selected)
	}
	press(g, platformcore.ActionNextPiece)
	if g.selected != 0 {
		t.Errorf("NextPiece should wrap to 0, got %d", g.selected)
	}

	press(g, platformcore.ActionConfirm)
	if n := len(g.engine.ActivePieces()); n != 2 {
		t.Fatalf("expected 2 pieces left, got %d", n)
	}

	press(g, platformcore.ActionSelect3)
	if g.selected != 0 {
		t.Errorf("selecting an empty slot changed selection to %d", g.selected)
	}
	if g.notice != "Slot 3 is empty" {
		t.Errorf("unexpected notice %q", g.notice)
	}
}

func TestConfirmPlacesAndClears(t *testing.T) {
	g := scriptedGame(t, 4, []core.Piece{testPiece("#"), testPiece("####"), testPiece("#")})

	press(g, platformcore.ActionSelect2)
	press(g, platformcore.ActionConfirm)

	snap := g.Snapshot()
	if snap.Score != 60 {
		t.Errorf("expected score 60, got %d", snap.Score)
	}
	if snap.Selected != 0 {
		t.Errorf("selection should return to slot 0, got %d", snap.Selected)
	}
	if !strings.HasPrefix(g.notice, "1 line cleared! +60") {
		t.Errorf("unexpected notice %q", g.notice)
	}
	if !g.flash.active() || !g.pulse.active() {
		t.Error("clear should start flash and pulse effects")
	}
	if diff := cmp.Diff([]int{0}, g.flashRows); diff != "" {
		t.Errorf("flash rows mismatch (-want +got):\n%s", diff)
	}
	if len(g.glowCells) != 0 {
		t.Errorf("cleared cells should not glow, got %v", g.glowCells)
	}
}

func TestRejectedPlacement(t *testing.T) {
	g := scriptedGame(t, 4, []core.Piece{testPiece("##", "##"), testPiece("#"), testPiece("#")})
	for i := 0; i < 3; i++ {
		press(g, platformcore.ActionDown, platformcore.ActionRight)
	}
	before := g.Snapshot()

	press(g, platformcore.ActionConfirm)

	after := g.Snapshot()
	if g.notice != "Can't place there" {
		t.Errorf("unexpected notice %q", g.notice)
	}
	if diff := cmp.Diff(before.Board, after.Board); diff != "" {
		t.Errorf("board changed (-before +after):\n%s", diff)
	}
	if after.Score != 0 || len(after.Pieces) != 3 {
		t.Errorf("state changed: score %d, pieces %d", after.Score, len(after.Pieces))
	}
}

func TestClickBoardPlaces(t *testing.T) {
	g := scriptedGame(t, 5)
	x, y := g.layout.cellOrigin(core.P(2, 3))

	click(g, x+1, y)

	snap := g.Snapshot()
	if snap.Board[2][3] != '#' {
		t.Errorf("expected piece at (2,3), board:\n%s", strings.Join(snap.Board, "\n"))
	}
	if snap.Cursor != core.P(2, 3) {
		t.Errorf("click should move the cursor, got %+v", snap.Cursor)
	}
	if snap.Score != 10 {
		t.Errorf("expected score 10, got %d", snap.Score)
	}
}

func TestClickAndConfirmPlaceOnce(t *testing.T) {
	g := scriptedGame(t, 5)
	x, y := g.layout.cellOrigin(core.P(1, 1))

	in := platformcore.NewInputFrame()
	in.Point(x, y, true)
	in.Set(platformcore.ActionConfirm)
	g.Step(in)

	if g.engine.Score() != 10 {
		t.Errorf("expected a single placement, score %d", g.engine.Score())
	}
}

func TestPointerMoveTracksCursor(t *testing.T) {
	g := scriptedGame(t, 5)
	x, y := g.layout.cellOrigin(core.P(4, 2))

	in := platformcore.NewInputFrame()
	in.Point(x, y, false)
	g.Step(in)

	if g.cursor != core.P(4, 2) {
		t.Errorf("expected cursor (4,2), got %+v", g.cursor)
	}
	if g.engine.Score() != 0 {
		t.Error("moving the pointer should not place")
	}
}

func TestClickTraySelects(t *testing.T) {
	g := scriptedGame(t, 5)
	slot := g.layout.slots[2]

	click(g, slot.X+slot.W/2, slot.Y+slot.H/2)

	if g.selected != 2 {
		t.Errorf("expected slot 2 selected, got %d", g.selected)
	}
	if g.engine.Score() != 0 {
		t.Error("tray click should not place")
	}
}

func TestPauseAndHelpBlockInput(t *testing.T) {
	g := scriptedGame(t, 5)

	press(g, platformcore.ActionPause)
	if !g.State().Paused || g.Snapshot().State != StatePaused {
		t.Fatal("expected paused")
	}
	press(g, platformcore.ActionRight, platformcore.ActionConfirm)
	if g.cursor != core.P(0, 0) || g.engine.Score() != 0 {
		t.Error("input should be ignored while paused")
	}
	press(g, platformcore.ActionPause)
	if g.State().Paused {
		t.Fatal("expected resumed")
	}

	press(g, platformcore.ActionHelp)
	if g.Snapshot().State != StateHelp {
		t.Fatalf("expected help, got %s", g.Snapshot().State)
	}
	press(g, platformcore.ActionPause)
	if g.paused {
		t.Error("pause should be ignored while help is open")
	}
	press(g, platformcore.ActionHelp)
	press(g, platformcore.ActionConfirm)
	if g.engine.Score() != 10 {
		t.Errorf("expected placement after closing help, score %d", g.engine.Score())
	}
}

func TestGameOver(t *testing.T) {
	g := scriptedGame(t, 3, []core.Piece{
		testPiece("###", "###"),
		testPiece("######"),
		testPiece("######"),
	})

	press(g, platformcore.ActionConfirm)

	st := g.State()
	if !st.GameOver {
		t.Fatal("expected game over")
	}
	if st.Score != 90 {
		t.Errorf("expected score 90, got %d", st.Score)
	}
	if g.Snapshot().State != StateGameOver {
		t.Errorf("expected snapshot state game_over, got %s", g.Snapshot().State)
	}

	press(g, platformcore.ActionConfirm, platformcore.ActionDown)
	if g.State().Score != 90 || g.cursor != core.P(0, 0) {
		t.Error("input should be ignored after game over")
	}

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("expected GAME OVER overlay")
	}
}

func TestWindowTooSmall(t *testing.T) {
	g := scriptedGame(t, 5)
	press(g, platformcore.ActionConfirm)

	g.Resize(30, 10)
	if g.Snapshot().State != StatePausedSmall || !g.State().Paused {
		t.Fatalf("expected paused_small_window, got %s", g.Snapshot().State)
	}
	press(g, platformcore.ActionRight)
	if g.cursor != core.P(0, 0) {
		t.Error("input should be ignored while the window is too small")
	}

	screen := platformcore.NewScreen(30, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected too small message")
	}

	g.Resize(80, 24)
	if g.Snapshot().State != StatePlaying {
		t.Errorf("expected playing after resize, got %s", g.Snapshot().State)
	}
	if g.engine.Score() != 10 {
		t.Errorf("resize should not reset the game, score %d", g.engine.Score())
	}
}

func TestDeterminism(t *testing.T) {
	g1 := New()
	g1.Reset(testConfig)
	g2 := New()
	g2.Reset(testConfig)

	script := [][]platformcore.Action{
		{platformcore.ActionUp},
		{platformcore.ActionLeft},
		{platformcore.ActionUp, platformcore.ActionLeft},
		{platformcore.ActionSelect2},
		{platformcore.ActionConfirm},
		{platformcore.ActionRight},
		{platformcore.ActionConfirm},
		{platformcore.ActionNextPiece},
		{platformcore.ActionDown},
		{platformcore.ActionConfirm},
	}
	for i := 0; i < 30; i++ {
		for _, actions := range script {
			press(g1, actions...)
			press(g2, actions...)
		}
	}

	if diff := cmp.Diff(g1.Snapshot(), g2.Snapshot()); diff != "" {
		t.Errorf("snapshots differ for the same seed (-g1 +g2):\n%s", diff)
	}
}

func TestRender(t *testing.T) {
	g := New()
	g.Reset(testConfig)

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"Score: 0", "Best: 0", "Board: 10x10", "Enter/Click Place", " 1 ", " 3 "} {
		if !strings.Contains(out, want) {
			t.Errorf("render output missing %q", want)
		}
	}
	if !strings.ContainsRune(out, blockRune) {
		t.Error("expected tray pieces to be drawn")
	}
}
