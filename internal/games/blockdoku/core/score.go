package core

import "errors"

// ErrNegativeDelta is returned when a score delta below zero is added.
var ErrNegativeDelta = errors.New("negative score delta")

// ScoreTracker accumulates a non-negative score.
type ScoreTracker struct {
	value int
}

// Add increases the score. Negative deltas are rejected.
func (s *ScoreTracker) Add(delta int) error {
	if delta < 0 {
		return ErrNegativeDelta
	}
	s.value += delta
	return nil
}

func (s *ScoreTracker) Reset()     { s.value = 0 }
func (s *ScoreTracker) Value() int { return s.value }
