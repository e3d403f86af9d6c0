package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/storage"
)

var testConfig = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 7}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestModelForwardsInput(t *testing.T) {
	g := &fakeGame{size: 10}
	m := NewModel(g, nil, nil, testConfig)
	m.Init()
	if g.resets != 1 {
		t.Fatalf("Init should reset once, got %d", g.resets)
	}

	m = send(t, m, keyMsg("1"))
	m = send(t, m, keyMsg("right"))
	m = send(t, m, tea.MouseMsg{X: 5, Y: 6, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = send(t, m, TickMsg{})

	in := g.lastInput()
	if !in.Has(core.ActionSelect1) || !in.Has(core.ActionRight) {
		t.Errorf("expected Select1 and Right, got %v", in.Actions)
	}
	if in.Pointer != (core.Pointer{X: 5, Y: 6, Clicked: true}) {
		t.Errorf("unexpected pointer %+v", in.Pointer)
	}

	send(t, m, TickMsg{})
	if len(g.lastInput().Actions) != 0 {
		t.Error("input should be cleared after each tick")
	}
}

func TestModelResizeDoesNotReset(t *testing.T) {
	g := &fakeGame{size: 10}
	m := NewModel(g, nil, nil, testConfig)
	m.Init()

	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if g.resets != 1 {
		t.Errorf("resize should not reset a resizable game, resets = %d", g.resets)
	}
	if g.resized != [2]int{100, 40} {
		t.Errorf("expected Resize(100, 40), got %v", g.resized)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 40 {
		t.Errorf("screen not resized: %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelSavesScoreOnce(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{size: 7}
	m := NewModel(g, store, nil, testConfig)
	m.Init()

	g.state = core.GameState{Score: 120, GameOver: true}
	m = send(t, m, TickMsg{})
	m = send(t, m, TickMsg{})

	scores, err := store.TopScores("fake", storage.AllSizes, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("expected 1 saved score, got %d", len(scores))
	}
	if scores[0].Score != 120 || scores[0].GridSize != 7 {
		t.Errorf("unexpected entry %+v", scores[0])
	}

	// Restart picks up the stored best
	m = send(t, m, keyMsg("r"))
	send(t, m, TickMsg{})
	if g.resets != 2 {
		t.Fatalf("expected restart, resets = %d", g.resets)
	}
	if g.lastCfg.Best != 120 {
		t.Errorf("expected best 120 passed to Reset, got %d", g.lastCfg.Best)
	}
}

func TestModelSkipsZeroScore(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{size: 7}
	m := NewModel(g, store, nil, testConfig)
	m.Init()

	g.state = core.GameState{GameOver: true}
	send(t, m, TickMsg{})

	if best, _ := store.HighScore("fake", 7); best != 0 {
		t.Errorf("zero score should not be saved, best = %d", best)
	}
}

func TestModelQuitAndBack(t *testing.T) {
	g := &fakeGame{size: 10}

	m := NewModel(g, nil, nil, testConfig)
	m = send(t, m, keyMsg("q"))
	if !m.quitting || m.View() != "" {
		t.Error("q should quit")
	}

	m = NewModel(g, nil, nil, testConfig)
	m = send(t, m, keyMsg("esc"))
	if !m.back || m.quitting {
		t.Error("esc should return to the menu")
	}
}

func TestModelView(t *testing.T) {
	g := &fakeGame{size: 10}
	m := NewModel(g, nil, nil, testConfig)
	m.Init()

	if !strings.Contains(m.View(), "fake game") {
		t.Error("view should contain the game's render output")
	}
}
