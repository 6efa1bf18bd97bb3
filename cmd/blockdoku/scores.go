package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blockdoku/internal/registry"
	"github.com/vovakirdan/tui-blockdoku/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top 10 scores for a game mode, or a summary of every mode
when no game is given.

Examples:
  blockdoku scores
  blockdoku scores blockdoku_hard
  blockdoku scores blockdoku --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores for the game")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 0 {
		if flagClear {
			return fmt.Errorf("--clear needs a game ID")
		}
		return printSummary(store)
	}

	gameID := args[0]
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w, run 'blockdoku list' to see available games", err)
	}

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		logger, err := newLogger(os.Stderr)
		if err != nil {
			return err
		}
		logger.Info("scores cleared", "game", gameID)
		return nil
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'blockdoku play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-7s  %s\n", "Rank", "Score", "Lines", "Bombs", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-7s  %s\n", "----", "-----", "-----", "-----", "----")
	for i, r := range scores {
		bombs := fmt.Sprintf("%d/%d", r.BombsDefused, r.BombsExploded)
		fmt.Printf("  %-4d  %-8d  %-6d  %-7s  %s\n", i+1, r.Score, r.LinesCleared, bombs, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	best, err := store.HighScore(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d\n", best)
	}
	return nil
}

// printSummary prints per-mode totals for every mode with recorded runs.
func printSummary(store *storage.Store) error {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	fmt.Printf("  %-16s  %-6s  %-8s  %-8s  %-6s  %s\n", "Game", "Games", "Best", "Average", "Lines", "Last played")
	for _, info := range registry.List() {
		st, ok := stats[info.ID]
		if !ok {
			continue
		}
		fmt.Printf("  %-16s  %-6d  %-8d  %-8.1f  %-6d  %s\n",
			info.ID, st.GamesCount, st.HighScore, st.AvgScore, st.TotalLines, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
