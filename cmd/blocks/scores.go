package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
	"github.com/vovakirdan/tui-blocks/internal/storage"
)

var (
	flagScoresSize  int
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top scores, for every board size or for one.

Examples:
  blocks scores
  blocks scores --size 10
  blocks scores --limit 25`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresSize, "size", storage.AllSizes, "Board size (0 = all sizes)")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	scores, err := store.TopScores(blocks.ID, flagScoresSize, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	out := cmd.OutOrStdout()
	title := "all boards"
	if flagScoresSize != storage.AllSizes {
		title = fmt.Sprintf("%dx%d", flagScoresSize, flagScoresSize)
	}
	fmt.Fprintf(out, "High Scores - %s\n\n", title)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'blocks play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %-6s  %s\n", "Rank", "Score", "Board", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %-6s  %s\n", "----", "-----", "-----", "----")
	for i, entry := range scores {
		board := fmt.Sprintf("%dx%d", entry.GridSize, entry.GridSize)
		fmt.Fprintf(out, "  %-4d  %-10d  %-6s  %s\n", i+1, entry.Score, board, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(blocks.ID)
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	fmt.Fprintln(out)
	for _, st := range stats {
		if flagScoresSize != storage.AllSizes && st.GridSize != flagScoresSize {
			continue
		}
		fmt.Fprintf(out, "%dx%d: %d games, best %d, average %.0f\n",
			st.GridSize, st.GridSize, st.GamesCount, st.HighScore, st.AvgScore)
	}
	return nil
}
