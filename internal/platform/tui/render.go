package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// cellStyle is the color pair of a run of cells.
type cellStyle struct {
	fg, bg core.Color
}

// styleCache keeps one lipgloss style per color pair seen on screen.
type styleCache map[cellStyle]lipgloss.Style

func (c styleCache) get(key cellStyle) lipgloss.Style {
	if style, ok := c[key]; ok {
		return style
	}
	style := lipgloss.NewStyle()
	if key.fg.Valid {
		style = style.Foreground(lipgloss.Color(key.fg.String()))
	}
	if key.bg.Valid {
		style = style.Background(lipgloss.Color(key.bg.String()))
	}
	c[key] = style
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	return renderScreen(s, styleCache{})
}

func renderScreen(s *core.Screen, styles styleCache) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			key := cellStyle{fg: cell.Fg, bg: cell.Bg}

			run.Reset()
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Fg != key.fg || cell.Bg != key.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if !key.fg.Valid && !key.bg.Valid {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styles.get(key).Render(run.String()))
		}
	}
	return sb.String()
}
