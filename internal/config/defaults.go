package config

import (
	_ "embed"
)

//go:embed defaults/blockdoku.yaml
var defaultBlockdokuYAML []byte

// DefaultBlockdokuConfig returns the hardcoded defaults, used when the
// embedded YAML cannot be parsed.
func DefaultBlockdokuConfig() BlockdokuConfig {
	return BlockdokuConfig{
		Difficulty: DifficultyNormal,
		Slots:      3,
		Bombs: BombsConfig{
			Enabled:    true,
			SpawnEvery: 5,
			TimerMin:   6,
			TimerMax:   10,
		},
		Scoring: ScoringConfig{
			Rule:       "cells",
			BombPoints: 10,
			LinePoints: 100,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBlockdokuYAML
}
