// Package config loads, validates and saves the YAML settings of the
// block puzzle.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-blocks/internal/games/blocks/core"
)

// Board size limits offered by the settings screen.
const (
	MinBoardSize = 5
	MaxBoardSize = 15
)

// Theme names.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// BlocksConfig is the on-disk settings file.
type BlocksConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Colors ColorsConfig `yaml:"colors"`
	Theme  string       `yaml:"theme"`
}

// BoardConfig defines the board geometry.
type BoardConfig struct {
	Size int `yaml:"size"`
}

// ColorsConfig defines how pieces are colored.
type ColorsConfig struct {
	Uniform bool  `yaml:"uniform"`
	Block   []int `yaml:"block,flow"` // R, G, B in 0..255
}

// ValidationError reports a settings field with an unusable value.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Validate checks every field and returns the first problem found.
func (c BlocksConfig) Validate() error {
	if c.Board.Size < MinBoardSize || c.Board.Size > MaxBoardSize {
		return &ValidationError{
			Field:   "board.size",
			Message: fmt.Sprintf("must be between %d and %d, got %d", MinBoardSize, MaxBoardSize, c.Board.Size),
		}
	}
	if len(c.Colors.Block) != 3 {
		return &ValidationError{
			Field:   "colors.block",
			Message: fmt.Sprintf("needs 3 channels, got %d", len(c.Colors.Block)),
		}
	}
	for i, ch := range c.Colors.Block {
		if ch < 0 || ch > 255 {
			return &ValidationError{
				Field:   fmt.Sprintf("colors.block[%d]", i),
				Message: fmt.Sprintf("must be between 0 and 255, got %d", ch),
			}
		}
	}
	switch c.Theme {
	case ThemeDark, ThemeLight:
	default:
		return &ValidationError{
			Field:   "theme",
			Message: fmt.Sprintf("must be %q or %q, got %q", ThemeDark, ThemeLight, c.Theme),
		}
	}
	return nil
}

// BlockColor returns the configured uniform color.
// Call Validate first; a malformed value yields black.
func (c BlocksConfig) BlockColor() core.RGB {
	if len(c.Colors.Block) != 3 {
		return core.RGB{}
	}
	return core.RGB{
		R: uint8(c.Colors.Block[0]),
		G: uint8(c.Colors.Block[1]),
		B: uint8(c.Colors.Block[2]),
	}
}

// SetBlockColor stores rgb as the uniform color.
func (c *BlocksConfig) SetBlockColor(rgb core.RGB) {
	c.Colors.Block = []int{int(rgb.R), int(rgb.G), int(rgb.B)}
}

// EngineSettings converts the file settings into engine settings.
func (c BlocksConfig) EngineSettings() core.Settings {
	return core.Settings{
		Size:         c.Board.Size,
		UniformColor: c.Colors.Uniform,
		BlockColor:   c.BlockColor(),
	}
}
