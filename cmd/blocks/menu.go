package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
	"github.com/vovakirdan/tui-blocks/internal/platform/tui"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the main menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a game ends, you return to the menu to play again.
Settings changed in the menu are saved to ~/.blocks/configs/blocks.yaml.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  P            - Play
  Tab          - High scores
  Q            - Quit

Examples:
  blocks menu
  blocks menu --fps 60
  blocks menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

// saveUserConfig writes cfg to the user settings file.
func saveUserConfig(cfg config.BlocksConfig) error {
	path := config.UserConfigPath()
	if path == "" {
		return errors.New("config: home directory is unavailable")
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	logger.Info("settings saved", "path", path)
	return nil
}

func runMenu(_ *cobra.Command, _ []string) error {
	loaded, err := loadConfig()
	if err != nil {
		return err
	}
	current := loaded.Config
	if err := applyConfig(current); err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	width, height := terminalSize()
	rc := runtimeConfig(width, height, 0)

	for {
		theme := tui.ThemeFor(current.Theme)
		best := bestScore(store, current.Board.Size)
		info := fmt.Sprintf("Board %dx%d  |  Best %d", current.Board.Size, current.Board.Size, best)

		menuResult, err := tui.RunMenu(rc, theme, info)
		if err != nil {
			return err
		}
		rc = menuResult.Config

		switch menuResult.Choice {
		case tui.MenuPlay:
			game, err := registry.Create(blocks.ID)
			if err != nil {
				return fmt.Errorf("creating game: %w", err)
			}
			rc = runtimeConfig(rc.ScreenW, rc.ScreenH, best)

			result, err := tui.Run(game, store, logger, rc)
			if err != nil {
				logger.Error("game failed", "error", err)
				continue
			}
			rc = result.Config
			if result.Quit {
				return nil
			}

		case tui.MenuSettings:
			result, err := tui.RunSettings(current, saveUserConfig, theme, rc.ScreenW, rc.ScreenH)
			if err != nil {
				return err
			}
			if result.Quit {
				return nil
			}
			if result.Saved {
				current = result.Config
				if err := applyConfig(current); err != nil {
					return err
				}
			}

		case tui.MenuScores:
			goBack, err := tui.RunScoreboard(store, blocks.ID, current.Board.Size, theme, rc.ScreenW, rc.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		default:
			return nil
		}
	}
}
