package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-blocks/internal/games/blocks/core"
)

//go:embed defaults/blocks.yaml
var defaultBlocksYAML []byte

// DefaultBlocksConfig returns the built-in settings.
func DefaultBlocksConfig() BlocksConfig {
	d := core.DefaultSettings()
	cfg := BlocksConfig{
		Board:  BoardConfig{Size: d.Size},
		Colors: ColorsConfig{Uniform: d.UniformColor},
		Theme:  ThemeDark,
	}
	cfg.SetBlockColor(d.BlockColor)
	return cfg
}

// DefaultYAML returns the embedded default settings file.
func DefaultYAML() []byte {
	return defaultBlocksYAML
}
