// blocks is a block placement puzzle for the terminal.
//
// Usage:
//
//	blocks play       - Start a game right away
//	blocks menu       - Main menu: play, settings, high scores
//	blocks scores     - Print high scores
//	blocks config     - Print the effective settings file
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 30)
//	--seed <value>      - Set RNG seed for reproducible piece sets
//	--db <path>         - Set database path (default: ~/.blocks/scores.db)
//	--config <path>     - Use a custom settings file
//	--log-file <path>   - Write logs to a file
//	--log-level <level> - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

var (
	logger  = log.NewWithOptions(os.Stderr, log.Options{Prefix: "blocks"})
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blocks",
	Short: "Blocks - a block placement puzzle in your terminal",
	Long: `Blocks is a puzzle played on a square board. Place the three offered
pieces, fill whole rows or columns to clear them, and keep going until no
piece fits.

Available commands:
  play     - Start a game right away
  menu     - Main menu with settings and high scores
  scores   - Print high scores
  config   - Print the effective settings file

Examples:
  blocks play
  blocks play --size 8 --uniform --color 100,200,150
  blocks menu
  blocks scores --size 10`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogger,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blocks/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a custom settings YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogger configures the shared logger from the global flags.
// The TUI owns the terminal, so logs go to --log-file when it is set.
func setupLogger(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          "blocks",
		})
	}
	logger.SetLevel(level)
	return nil
}
