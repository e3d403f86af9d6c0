package main

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
	"github.com/vovakirdan/tui-blocks/internal/storage"
)

// loadConfig reads the settings file following the search order.
func loadConfig() (config.Loaded, error) {
	loaded, err := config.LoadBlocks(flagConfig)
	if err != nil {
		return loaded, err
	}
	logger.Debug("settings loaded", "source", loaded.Source)
	return loaded, nil
}

// applyConfig makes cfg the settings of the next game.
func applyConfig(cfg config.BlocksConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	return blocks.SetSettings(blocks.Settings{
		Engine: cfg.EngineSettings(),
		Theme:  cfg.Theme,
	})
}

// openStore opens the score database. Storage failures are not fatal:
// the game runs without saving scores.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// bestScore returns the stored high score for the board size, or 0.
func bestScore(store *storage.Store, size int) int {
	if store == nil {
		return 0
	}
	best, err := store.HighScore(blocks.ID, size)
	if err != nil {
		logger.Warn("could not read high score", "error", err)
		return 0
	}
	return best
}

// terminalSize returns the terminal size, 80x24 if unknown.
func terminalSize() (width, height int) {
	width, height = 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}

// runtimeConfig builds the platform config for a new game.
func runtimeConfig(width, height, best int) core.RuntimeConfig {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
		Best:     best,
	}
}
