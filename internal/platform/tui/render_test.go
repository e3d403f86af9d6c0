package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(0, 0, "plain")
	s.DrawTextColor(0, 1, "red", core.RGB(255, 0, 0))
	s.SetCell(4, 1, core.Cell{Rune: '█', Fg: core.RGB(0, 255, 0), Bg: core.RGB(0, 0, 80)})
	s.DrawBox(core.NewRect(6, 0, 6, 3), core.RGB(90, 90, 90))

	got := ansi.Strip(RenderScreen(s))
	if got != s.String() {
		t.Errorf("rendered text mismatch:\nexpected:\n%s\ngot:\n%s", s.String(), got)
	}
	if n := strings.Count(got, "\n"); n != 2 {
		t.Errorf("expected 3 lines, got %d", n+1)
	}
}

func TestStyleCacheReuse(t *testing.T) {
	cache := styleCache{}
	s := core.NewScreen(10, 2)
	s.DrawTextColor(0, 0, "aaaa", core.RGB(1, 2, 3))
	s.DrawTextColor(0, 1, "bbbb", core.RGB(1, 2, 3))

	renderScreen(s, cache)
	renderScreen(s, cache)

	if len(cache) != 1 {
		t.Errorf("expected 1 cached style, got %d", len(cache))
	}
}
