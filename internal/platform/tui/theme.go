package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
)

// Theme contains the styles shared by the menu, settings and scoreboard screens.
type Theme struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Item        lipgloss.Style
	ItemActive  lipgloss.Style
	Description lipgloss.Style
	Value       lipgloss.Style
	Error       lipgloss.Style
	Border      lipgloss.Style
	Help        lipgloss.Style

	// Scoreboard
	TableHeader   lipgloss.Style
	TableSelected lipgloss.Style
	TabActive     lipgloss.Style
	Tab           lipgloss.Style
}

func hex(c core.Color) lipgloss.Color {
	return lipgloss.Color(c.String())
}

// ThemeFor builds the screen styles from the game palette of the named theme.
func ThemeFor(name string) Theme {
	p := blocks.PaletteFor(name)

	return Theme{
		Title:       lipgloss.NewStyle().Foreground(hex(p.Highlight)).Bold(true),
		Subtitle:    lipgloss.NewStyle().Foreground(hex(p.Muted)),
		Item:        lipgloss.NewStyle().Foreground(hex(p.Text)),
		ItemActive:  lipgloss.NewStyle().Foreground(hex(p.Highlight)).Bold(true),
		Description: lipgloss.NewStyle().Foreground(hex(p.Muted)).Italic(true),
		Value:       lipgloss.NewStyle().Foreground(hex(p.Glow)),
		Error:       lipgloss.NewStyle().Foreground(hex(p.Invalid)),
		Border:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(hex(p.Frame)).Padding(0, 1),
		Help:        lipgloss.NewStyle().Foreground(hex(p.Muted)),

		TableHeader: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(hex(p.Frame)).
			BorderBottom(true).
			Bold(true),
		TableSelected: lipgloss.NewStyle().Foreground(hex(p.Background)).Background(hex(p.Highlight)),
		TabActive:     lipgloss.NewStyle().Bold(true).Foreground(hex(p.Background)).Background(hex(p.Highlight)).Padding(0, 1),
		Tab:           lipgloss.NewStyle().Foreground(hex(p.Muted)).Padding(0, 1),
	}
}
