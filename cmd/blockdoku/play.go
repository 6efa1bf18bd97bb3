package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blockdoku/internal/games/blockdoku"
	"github.com/vovakirdan/tui-blockdoku/internal/games/blockdoku/layouts"
	"github.com/vovakirdan/tui-blockdoku/internal/platform/tui"
	"github.com/vovakirdan/tui-blockdoku/internal/registry"
)

var (
	flagDifficulty string
	flagLayout     string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing Blockdoku. Without a game ID the difficulty comes from
--difficulty or the config file.

Controls:
  Arrows/WASD  - Move the cursor
  1, 2, 3      - Select a slot
  Tab          - Next slot
  Enter/Space  - Place the selected shape
  P/Esc        - Pause
  R            - Restart (after game over)
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Examples:
  blockdoku play
  blockdoku play blockdoku_easy
  blockdoku play --difficulty hard --layout tutorial
  blockdoku play --config ./my-blockdoku.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, medium, hard")
	playCmd.Flags().StringVar(&flagLayout, "layout", "", "Starting layout ID (see 'blockdoku list')")
}

func runPlay(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig(flagDifficulty)
	if err != nil {
		return err
	}

	gameID := defaultGameID(cfg)
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'blockdoku list' to see available games", gameID)
	}

	if flagLayout != "" {
		if _, err := layouts.Find(cfg.LayoutsDir, flagLayout); err != nil {
			return err
		}
	}

	logger, closeLog, err := tuiLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	blockdoku.SetConfigPath(flagConfig)
	blockdoku.SetLayout(flagLayout)
	blockdoku.SetLogger(logger)

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
