// Package config provides YAML-based configuration loading for Blockdoku.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// BlockdokuConfig contains all configuration for a Blockdoku session.
type BlockdokuConfig struct {
	Difficulty DifficultyPreset `yaml:"difficulty"`
	Slots      int              `yaml:"slots"`
	Bombs      BombsConfig      `yaml:"bombs"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	// LayoutsDir is searched for YAML layouts before the built-in set.
	LayoutsDir string `yaml:"layouts_dir"`
}

// BombsConfig defines bomb spawning.
type BombsConfig struct {
	Enabled    bool `yaml:"enabled"`
	SpawnEvery int  `yaml:"spawn_every"` // placements between bombs
	TimerMin   int  `yaml:"timer_min"`
	TimerMax   int  `yaml:"timer_max"`
}

// ScoringConfig selects the scoring rule.
type ScoringConfig struct {
	Rule       string `yaml:"rule"` // "cells" or "lines"
	BombPoints int    `yaml:"bomb_points"`
	LinePoints int    `yaml:"line_points"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "medium"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset accepts easy, medium (or normal) and hard.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, nil
	case "medium", "normal":
		return DifficultyNormal, nil
	case "hard":
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q: %w", s, ErrInvalidConfig)
	}
}

// Validate checks ranges and enumerations.
func (c BlockdokuConfig) Validate() error {
	if _, err := ParsePreset(string(c.Difficulty)); err != nil {
		return err
	}
	if c.Slots < 1 {
		return fmt.Errorf("slots %d: must be at least 1: %w", c.Slots, ErrInvalidConfig)
	}
	if c.Bombs.Enabled {
		if c.Bombs.SpawnEvery < 1 {
			return fmt.Errorf("bombs.spawn_every %d: must be at least 1: %w", c.Bombs.SpawnEvery, ErrInvalidConfig)
		}
		if c.Bombs.TimerMin < 1 {
			return fmt.Errorf("bombs.timer_min %d: must be at least 1: %w", c.Bombs.TimerMin, ErrInvalidConfig)
		}
		if c.Bombs.TimerMax < c.Bombs.TimerMin {
			return fmt.Errorf("bombs.timer_max %d below timer_min %d: %w", c.Bombs.TimerMax, c.Bombs.TimerMin, ErrInvalidConfig)
		}
	}
	switch c.Scoring.Rule {
	case "cells", "lines":
	default:
		return fmt.Errorf("scoring.rule %q: want cells or lines: %w", c.Scoring.Rule, ErrInvalidConfig)
	}
	if c.Scoring.BombPoints < 0 || c.Scoring.LinePoints < 0 {
		return fmt.Errorf("scoring points must not be negative: %w", ErrInvalidConfig)
	}
	return nil
}

// ApplyPreset overrides the difficulty from a CLI flag.
func ApplyPreset(cfg *BlockdokuConfig, preset DifficultyPreset) {
	if preset != "" {
		cfg.Difficulty = preset
	}
}
