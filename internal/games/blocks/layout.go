package blocks

import (
	platformcore "github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks/core"
)

const (
	cellWidth   = 2 // Screen columns per board cell
	cellHeight  = 1 // Screen rows per board cell
	maxPieceDim = 6 // Largest side of any catalog shape
	hudHeight   = 2
	footHeight  = 2
	trayGap     = 2 // Columns between board and tray
	slotGap     = 1 // Columns between tray slots
)

// layout places the board and the tray on the screen.
type layout struct {
	frame  platformcore.Rect   // Board border
	cells  platformcore.Rect   // Board interior, one cellWidth x cellHeight block per cell
	slots  []platformcore.Rect // Tray slot borders, in slot order
	top    int                 // First row of the HUD
	left   int
	width  int
	height int
}

// slotSize is the outer size of a tray slot.
func slotSize() (w, h int) {
	return maxPieceDim*cellWidth + 2, maxPieceDim*cellHeight + 2
}

// minScreen returns the smallest screen that fits a size x size board.
func minScreen(size int) (w, h int) {
	sw, sh := slotSize()
	frameW, frameH := size*cellWidth+2, size*cellHeight+2
	w = frameW + trayGap + core.PiecesPerSet*sw + (core.PiecesPerSet-1)*slotGap
	h = hudHeight + max(frameH, sh) + footHeight
	return w, h
}

// computeLayout centers the board and tray on a screenW x screenH screen.
// ok is false when the screen is too small.
func computeLayout(size, screenW, screenH int) (l layout, ok bool) {
	w, h := minScreen(size)
	if screenW < w || screenH < h {
		return layout{}, false
	}

	l.width, l.height = w, h
	l.left = (screenW - w) / 2
	l.top = (screenH - h) / 2

	y := l.top + hudHeight
	l.frame = platformcore.NewRect(l.left, y, size*cellWidth+2, size*cellHeight+2)
	l.cells = l.frame.Inset(1)

	sw, sh := slotSize()
	x := l.frame.Right() + trayGap
	for i := 0; i < core.PiecesPerSet; i++ {
		l.slots = append(l.slots, platformcore.NewRect(x, y, sw, sh))
		x += sw + slotGap
	}
	return l, true
}

// cellAt maps a screen point to a board position.
func (l layout) cellAt(x, y int) (core.Position, bool) {
	col, row, ok := l.cells.CellAt(x, y, cellWidth, cellHeight)
	return core.P(row, col), ok
}

// slotAt maps a screen point to a tray slot index.
func (l layout) slotAt(x, y int) (int, bool) {
	for i, r := range l.slots {
		if r.Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

// cellOrigin returns the screen position of board cell p.
func (l layout) cellOrigin(p core.Position) (x, y int) {
	return l.cells.X + p.Col*cellWidth, l.cells.Y + p.Row*cellHeight
}
