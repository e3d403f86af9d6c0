package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
	blockscore "github.com/vovakirdan/tui-blocks/internal/games/blocks/core"
	"github.com/vovakirdan/tui-blocks/internal/platform/tui"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

var (
	flagSize    int
	flagUniform bool
	flagColor   string
	flagTheme   string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game with the settings file, overridden by any flags given.

Controls:
  Arrows/WASD/HJKL - Move the cursor
  1-3, Tab         - Select a piece
  Enter/Space      - Place the selected piece at the cursor
  Mouse            - Hover to preview, click a cell to place, click a slot to select
  P                - Pause
  R                - Restart
  ?                - Rules
  Esc              - Back
  Q/Ctrl+C         - Quit

Examples:
  blocks play
  blocks play --size 8
  blocks play --uniform --color 100,200,150
  blocks play --uniform --color "#ff8800" --theme light`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagSize, "size", 0, fmt.Sprintf("Board size (%d-%d)", config.MinBoardSize, config.MaxBoardSize))
	playCmd.Flags().BoolVar(&flagUniform, "uniform", false, "Use one color for every piece")
	playCmd.Flags().StringVar(&flagColor, "color", "", "Uniform block color as R,G,B or #rrggbb")
	playCmd.Flags().StringVar(&flagTheme, "theme", "", "Color theme: dark or light")
}

// overrideConfig applies the play flags that were set on the command line.
func overrideConfig(cmd *cobra.Command, cfg config.BlocksConfig) (config.BlocksConfig, error) {
	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.Board.Size = flagSize
	}
	if flags.Changed("uniform") {
		cfg.Colors.Uniform = flagUniform
	}
	if flags.Changed("color") {
		rgb, err := parseColor(flagColor)
		if err != nil {
			return cfg, err
		}
		cfg.SetBlockColor(rgb)
	}
	if flags.Changed("theme") {
		cfg.Theme = flagTheme
	}
	return cfg, cfg.Validate()
}

// parseColor reads "R,G,B" with channels in 0..255, or "#rrggbb".
func parseColor(s string) (blockscore.RGB, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		c, err := core.Hex(s)
		if err != nil {
			return blockscore.RGB{}, err
		}
		return blockscore.RGB{R: c.R, G: c.G, B: c.B}, nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return blockscore.RGB{}, fmt.Errorf("invalid color %q: expected R,G,B", s)
	}
	var ch [3]uint8
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 || v > 255 {
			return blockscore.RGB{}, fmt.Errorf("invalid color %q: channel %q must be 0-255", s, p)
		}
		ch[i] = uint8(v)
	}
	return blockscore.RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

func runPlay(cmd *cobra.Command, _ []string) error {
	loaded, err := loadConfig()
	if err != nil {
		return err
	}
	cfg, err := overrideConfig(cmd, loaded.Config)
	if err != nil {
		return err
	}
	if err := applyConfig(cfg); err != nil {
		return err
	}

	game, err := registry.Create(blocks.ID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	width, height := terminalSize()
	rc := runtimeConfig(width, height, bestScore(store, cfg.Board.Size))
	logger.Info("starting game", "size", cfg.Board.Size, "uniform", cfg.Colors.Uniform, "seed", rc.Seed)

	result, err := tui.Run(game, store, logger, rc)
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	logger.Info("game finished", "score", result.Score)
	return nil
}
