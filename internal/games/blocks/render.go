package blocks

import (
	"fmt"
	"strings"

	platformcore "github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks/core"
)

const (
	blockRune = '█'
	ghostRune = '▓'
	badRune   = '░'
)

var rules = []string{
	"HOW TO PLAY",
	"",
	"Pick a piece with 1-3, Tab or a click.",
	"Move with the arrows and press Enter,",
	"or click a board cell to drop it there.",
	"Full rows and columns are cleared.",
	"10 points per block, and size x 5",
	"per cleared line.",
	"The game ends when nothing fits.",
	"",
	"Press ? to close",
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	if g.engine == nil {
		dst.Clear()
		return
	}
	dst.Fill(platformcore.Cell{Rune: ' ', Bg: g.palette.Background})

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	view := g.engine.Grid()
	pieces := g.engine.ActivePieces()

	g.renderHUD(dst)
	g.renderBoard(dst, view)
	if !g.gameOver && g.selected < len(pieces) {
		g.renderGhost(dst, pieces[g.selected])
	}
	g.renderTray(dst, pieces)
	g.renderFooter(dst)
	g.renderOverlays(dst)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	w, h := minScreen(g.engine.Size())
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "Window too small", g.palette.Text)
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d, have %dx%d", w, h, g.screenW, g.screenH), g.palette.Muted)
	dst.DrawTextCentered(y+1, "Please resize terminal", g.palette.Muted)
}

// renderHUD draws score, best score, board size and the current notice.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	l := g.layout
	p := g.palette

	scoreColor := p.Text
	if g.pulse.active() {
		scoreColor = p.Text.Blend(p.Highlight, g.pulse.remaining())
	}

	score := fmt.Sprintf("Score: %d", g.engine.Score())
	dst.DrawTextColor(l.left, l.top, score, scoreColor)
	x := l.left + len(score)
	if g.pulse.active() && g.lastDelta > 0 {
		delta := fmt.Sprintf(" +%d", g.lastDelta)
		dst.DrawTextColor(x, l.top, delta, p.Highlight)
	}

	info := fmt.Sprintf("Best: %d   Board: %dx%d", max(g.best, g.engine.Score()), g.engine.Size(), g.engine.Size())
	dst.DrawTextColor(l.left+l.width-len(info), l.top, info, p.Muted)

	if g.notice != "" {
		dst.DrawTextColor(l.left, l.top+1, g.notice, p.Highlight)
	}
}

// boardCell returns the cell to draw for board position (r, c).
func (g *Game) boardCell(view core.GridView, r, c int) platformcore.Cell {
	p := g.palette
	bg := p.Empty
	if (r+c)%2 == 1 {
		bg = p.Empty.Blend(p.Frame, 0.35)
	}

	if g.flash.active() && (contains(g.flashRows, r) || contains(g.flashCols, c)) {
		return platformcore.Cell{Rune: blockRune, Fg: p.Flash.Blend(bg, 1-g.flash.remaining()), Bg: bg}
	}

	color, filled := view.Color(r, c)
	if !filled {
		return platformcore.Cell{Rune: ' ', Bg: bg}
	}

	fg := toColor(color)
	if g.glow.active() && containsPos(g.glowCells, core.P(r, c)) {
		fg = fg.Blend(p.Glow, 0.6*g.glow.remaining())
	}
	return platformcore.Cell{Rune: blockRune, Fg: fg, Bg: bg}
}

// renderBoard draws the frame and every board cell.
func (g *Game) renderBoard(dst *platformcore.Screen, view core.GridView) {
	frameColor := g.palette.Frame
	if g.gameOver {
		frameColor = g.palette.Invalid
	}
	dst.DrawBox(g.layout.frame, frameColor)

	for r := 0; r < view.Size(); r++ {
		for c := 0; c < view.Size(); c++ {
			g.drawBlock(dst, core.P(r, c), g.boardCell(view, r, c))
		}
	}
}

// drawBlock fills the screen area of one board cell.
func (g *Game) drawBlock(dst *platformcore.Screen, p core.Position, cell platformcore.Cell) {
	x, y := g.layout.cellOrigin(p)
	for dy := 0; dy < cellHeight; dy++ {
		for dx := 0; dx < cellWidth; dx++ {
			dst.SetCell(x+dx, y+dy, cell)
		}
	}
}

// renderGhost previews the selected piece anchored at the cursor.
func (g *Game) renderGhost(dst *platformcore.Screen, piece core.Piece) {
	fits := g.engine.CanPlace(g.selected, g.cursor.Row, g.cursor.Col)
	size := g.engine.Size()

	for _, off := range piece.Shape.Offsets() {
		pos := core.P(g.cursor.Row+off.Row, g.cursor.Col+off.Col)
		if pos.Row >= size || pos.Col >= size {
			continue
		}
		x, y := g.layout.cellOrigin(pos)
		bg := dst.GetCell(x, y).Bg

		cell := platformcore.Cell{Rune: badRune, Fg: g.palette.Invalid, Bg: bg}
		if fits {
			cell = platformcore.Cell{Rune: ghostRune, Fg: toColor(piece.Color).Blend(bg, 0.4), Bg: bg}
		}
		g.drawBlock(dst, pos, cell)
	}
}

// renderTray draws the three slots and the pieces in them.
func (g *Game) renderTray(dst *platformcore.Screen, pieces []core.Piece) {
	p := g.palette
	for i, slot := range g.layout.slots {
		frame := p.Frame
		if i == g.selected && i < len(pieces) && !g.gameOver {
			frame = p.Highlight
		}
		dst.DrawBox(slot, frame)
		dst.DrawTextColor(slot.X+1, slot.Y, fmt.Sprintf(" %d ", i+1), frame)

		if i >= len(pieces) {
			continue
		}
		piece := pieces[i]
		fg := toColor(piece.Color)
		if !g.engine.CanPlaceAnywhere(i) {
			fg = p.Muted
		}

		inner := slot.Inset(1)
		x0 := inner.X + (inner.W-piece.Shape.Width()*cellWidth)/2
		y0 := inner.Y + (inner.H-piece.Shape.Height()*cellHeight)/2
		for _, off := range piece.Shape.Offsets() {
			for dx := 0; dx < cellWidth; dx++ {
				dst.SetCell(x0+off.Col*cellWidth+dx, y0+off.Row*cellHeight, platformcore.Cell{Rune: blockRune, Fg: fg})
			}
		}
	}
}

// renderFooter draws the control hints.
func (g *Game) renderFooter(dst *platformcore.Screen) {
	y := g.layout.top + g.layout.height - 1
	dst.DrawTextCentered(y, g.Controls(), g.palette.Muted)
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *platformcore.Screen) {
	switch {
	case g.help:
		g.drawOverlay(dst, rules...)
	case g.paused:
		g.drawOverlay(dst, "PAUSED", "Press P to resume")
	case g.gameOver:
		g.drawOverlay(dst, "GAME OVER", fmt.Sprintf("Final score: %d", g.engine.Score()), "No piece fits anywhere", "Press R to restart")
	}
}

// drawOverlay draws a centered text box over the board.
func (g *Game) drawOverlay(dst *platformcore.Screen, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	centerX := g.layout.left + g.layout.width/2
	centerY := g.layout.frame.Y + g.layout.frame.H/2
	box := platformcore.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.DrawRect(box, platformcore.Cell{Rune: ' ', Bg: g.palette.Background})
	dst.DrawBox(box, g.palette.Highlight)
	for i, line := range lines {
		x := centerX - len([]rune(line))/2
		fg := g.palette.Text
		if i == 0 {
			fg = g.palette.Highlight
		}
		dst.DrawTextColor(x, box.Y+1+i, line, fg)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return strings.Join([]string{
		"Arrows Move",
		"1-3/Tab Piece",
		"Enter/Click Place",
		"P Pause",
		"R Restart",
		"? Help",
	}, "  ")
}

func toColor(c core.RGB) platformcore.Color {
	return platformcore.RGB(c.R, c.G, c.B)
}

func contains(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

func containsPos(ps []core.Position, p core.Position) bool {
	for _, q := range ps {
		if q == p {
			return true
		}
	}
	return false
}
