package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blockdoku/internal/games/blockdoku"
	"github.com/vovakirdan/tui-blockdoku/internal/games/blockdoku/layouts"
	"github.com/vovakirdan/tui-blockdoku/internal/platform/tui"
	"github.com/vovakirdan/tui-blockdoku/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick difficulty and starting board from a menu",
	Long: `Start in interactive menu mode.

Pick a difficulty, then a starting board. After a game ends you return to
the menu to play again. Tab on the first screen opens the high scores.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Esc/B        - Back
  Q            - Quit`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig("")
	if err != nil {
		return err
	}

	logger, closeLog, err := tuiLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	blockdoku.SetConfigPath(flagConfig)
	blockdoku.SetLogger(logger)

	store := openStore(logger)
	var scores tui.BestScorer
	if store != nil {
		defer store.Close()
		scores = store
	}

	available, err := layouts.Available(cfg.LayoutsDir)
	if err != nil {
		logger.Warn("loading layouts", "dir", cfg.LayoutsDir, "err", err)
	}
	options := tui.LayoutOptions(available)

	rcfg := runtimeConfig()
	for {
		menuResult, err := tui.RunMenu(scores, rcfg, defaultGameID(cfg))
		if err != nil {
			return err
		}
		rcfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, rcfg.ScreenW, rcfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		sel, quit, err := tui.RunLayoutSelector(options, rcfg)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
		if sel == nil {
			continue // back to difficulty
		}
		blockdoku.SetLayout(sel.ID)

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("creating game", "game", menuResult.GameID, "err", err)
			continue
		}

		// Fresh seed per game unless --seed is fixed
		if flagSeed == 0 {
			rcfg.Seed = time.Now().UnixNano()
		}
		if err := tui.Run(game, store, rcfg, logger); err != nil {
			logger.Error("running game", "err", err)
		}
	}
}
