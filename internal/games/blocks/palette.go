package blocks

import (
	"sort"

	platformcore "github.com/vovakirdan/tui-blocks/internal/core"
)

// Palette holds the colors the board is drawn with.
type Palette struct {
	Background platformcore.Color // Behind the board
	Empty      platformcore.Color // Empty board cell
	Frame      platformcore.Color // Board and tray borders
	Text       platformcore.Color
	Muted      platformcore.Color // Hints and pieces that fit nowhere
	Highlight  platformcore.Color // Selected slot and score pulse
	Glow       platformcore.Color // Freshly placed cells
	Invalid    platformcore.Color // Ghost of a piece that does not fit
	Flash      platformcore.Color // Cleared lines
}

var palettes = map[string]Palette{
	"dark": {
		Background: platformcore.RGB(53, 53, 53),
		Empty:      platformcore.RGB(60, 60, 60),
		Frame:      platformcore.RGB(80, 80, 80),
		Text:       platformcore.RGB(255, 255, 255),
		Muted:      platformcore.RGB(140, 140, 140),
		Highlight:  platformcore.RGB(142, 45, 197),
		Glow:       platformcore.RGB(255, 100, 100),
		Invalid:    platformcore.RGB(255, 50, 50),
		Flash:      platformcore.RGB(255, 255, 255),
	},
	"light": {
		Background: platformcore.RGB(240, 240, 240),
		Empty:      platformcore.RGB(200, 200, 200),
		Frame:      platformcore.RGB(160, 160, 160),
		Text:       platformcore.RGB(0, 0, 0),
		Muted:      platformcore.RGB(96, 96, 96),
		Highlight:  platformcore.RGB(100, 149, 237),
		Glow:       platformcore.RGB(255, 100, 100),
		Invalid:    platformcore.RGB(255, 50, 50),
		Flash:      platformcore.RGB(255, 215, 0),
	},
}

// PaletteFor returns the named palette, falling back to "dark".
func PaletteFor(theme string) Palette {
	if p, ok := palettes[theme]; ok {
		return p
	}
	return palettes["dark"]
}

// Themes lists the palette names.
func Themes() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
