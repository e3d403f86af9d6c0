package tui

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/tui-blocks/internal/storage"
)

func seedScores(t *testing.T, store *storage.Store) {
	t.Helper()
	for _, s := range []struct{ size, score int }{{10, 300}, {10, 150}, {5, 80}} {
		if _, err := store.SaveScore("blocks", s.size, s.score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
}

func TestScoreboardTabsBySize(t *testing.T) {
	store := openStore(t)
	seedScores(t, store)

	m := NewScoreboardModel(store, "blocks", 10, ThemeFor("dark"), 100, 30)

	if diff := cmp.Diff([]int{storage.AllSizes, 5, 10}, m.sizes); diff != "" {
		t.Fatalf("tabs mismatch (-want +got):\n%s", diff)
	}
	if m.currentSize() != 10 {
		t.Errorf("expected to open on size 10, got %d", m.currentSize())
	}
	if len(m.scores) != 2 {
		t.Errorf("expected 2 scores for 10x10, got %d", len(m.scores))
	}

	next, _ := m.Update(keyMsg("tab"))
	m = next.(ScoreboardModel)
	if m.currentSize() != storage.AllSizes {
		t.Errorf("tab should wrap to All, got %d", m.currentSize())
	}
	if len(m.scores) != 3 {
		t.Errorf("expected 3 scores for all sizes, got %d", len(m.scores))
	}
	if !strings.Contains(m.View(), "HIGH SCORES - All") {
		t.Error("view should show the selected tab")
	}

	next, _ = m.Update(keyMsg("shift+tab"))
	m = next.(ScoreboardModel)
	if m.currentSize() != 10 {
		t.Errorf("shift+tab should go back to 10, got %d", m.currentSize())
	}

	next, _ = m.Update(keyMsg("esc"))
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back")
	}
}

func TestScoreboardStats(t *testing.T) {
	store := openStore(t)
	seedScores(t, store)

	m := NewScoreboardModel(store, "blocks", 10, ThemeFor("dark"), 100, 30)
	stats := m.renderStats()

	for _, want := range []string{"Games", "2", "300", "225"} {
		if !strings.Contains(stats, want) {
			t.Errorf("stats missing %q:\n%s", want, stats)
		}
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, "blocks", 10, ThemeFor("light"), 60, 20)

	if len(m.sizes) != 1 {
		t.Errorf("expected only the All tab, got %v", m.sizes)
	}
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("expected empty message")
	}
}
