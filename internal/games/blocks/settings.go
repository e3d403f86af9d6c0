package blocks

import (
	"fmt"

	"github.com/vovakirdan/tui-blocks/internal/games/blocks/core"
)

// Settings are the options a new game is built with.
type Settings struct {
	Engine core.Settings
	Theme  string // Palette name, see Themes
}

// DefaultSettings returns the standard board with the dark theme.
func DefaultSettings() Settings {
	return Settings{
		Engine: core.DefaultSettings(),
		Theme:  "dark",
	}
}

// Package-level settings picked up by the next Reset.
var selectedSettings = DefaultSettings()

// SetSettings sets the options used by games reset after this call.
func SetSettings(s Settings) error {
	if s.Engine.Size <= 0 {
		return fmt.Errorf("%w: got %d", core.ErrInvalidSize, s.Engine.Size)
	}
	selectedSettings = s
	return nil
}

// CurrentSettings returns the options the next game will use.
func CurrentSettings() Settings {
	return selectedSettings
}
