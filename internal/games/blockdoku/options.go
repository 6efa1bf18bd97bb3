package blockdoku

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-blockdoku/internal/config"
	bcore "github.com/vovakirdan/tui-blockdoku/internal/games/blockdoku/core"
	"github.com/vovakirdan/tui-blockdoku/internal/games/blockdoku/layouts"
)

// DifficultyFor maps a config preset to a core difficulty.
func DifficultyFor(p config.DifficultyPreset) bcore.Difficulty {
	d, err := bcore.ParseDifficulty(string(p))
	if err != nil {
		return bcore.DifficultyMedium
	}
	return d
}

// IDFor returns the registry ID for a difficulty.
func IDFor(d bcore.Difficulty) string {
	switch d {
	case bcore.DifficultyEasy:
		return IDEasy
	case bcore.DifficultyHard:
		return IDHard
	default:
		return IDMedium
	}
}

// SessionOptions turns a validated config into session options. The
// difficulty comes from the config; callers that fix the difficulty append
// their own WithDifficulty after these.
func SessionOptions(cfg config.BlockdokuConfig, layoutID string, logger *log.Logger) ([]bcore.Option, error) {
	rule, err := bcore.ParseScoringRule(cfg.Scoring.Rule)
	if err != nil {
		return nil, err
	}
	opts := []bcore.Option{
		bcore.WithDifficulty(DifficultyFor(cfg.Difficulty)),
		bcore.WithSlots(cfg.Slots),
		bcore.WithBombs(bcore.BombConfig{
			Enabled:  cfg.Bombs.Enabled,
			Every:    cfg.Bombs.SpawnEvery,
			TimerMin: cfg.Bombs.TimerMin,
			TimerMax: cfg.Bombs.TimerMax,
		}),
		bcore.WithScoring(bcore.Scoring{
			Rule:       rule,
			BombPoints: cfg.Scoring.BombPoints,
			LinePoints: cfg.Scoring.LinePoints,
		}),
		bcore.WithLogger(logger),
	}

	if layoutID != "" {
		layout, err := layouts.Find(cfg.LayoutsDir, layoutID)
		if err != nil {
			return nil, err
		}
		board, err := layout.Board()
		if err != nil {
			return nil, fmt.Errorf("layout %s: %w", layoutID, err)
		}
		opts = append(opts, bcore.WithStartBoard(board))
	}
	return opts, nil
}
