package core

import (
	"errors"
	"fmt"
)

// ErrInvalidBombConfig is returned for impossible bomb settings.
var ErrInvalidBombConfig = errors.New("invalid bomb config")

// BombConfig controls bomb spawning.
type BombConfig struct {
	Enabled  bool
	Every    int // spawn after every Nth successful placement
	TimerMin int
	TimerMax int
}

// DefaultBombConfig spawns a bomb every 5 placements with a 6..10 timer.
func DefaultBombConfig() BombConfig {
	return BombConfig{Enabled: true, Every: 5, TimerMin: 6, TimerMax: 10}
}

// Validate checks the timer range and spawn interval.
func (c BombConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Every < 1 {
		return fmt.Errorf("spawn interval %d: %w", c.Every, ErrInvalidBombConfig)
	}
	if c.TimerMin < 1 || c.TimerMax < c.TimerMin {
		return fmt.Errorf("timer range %d..%d: %w", c.TimerMin, c.TimerMax, ErrInvalidBombConfig)
	}
	return nil
}

// ShouldSpawn reports whether a bomb is due after the given placement count.
func ShouldSpawn(placements, every int) bool {
	return every > 0 && placements > 0 && placements%every == 0
}

// SpawnBomb places a bomb on a uniformly chosen empty cell with a timer drawn
// uniformly from [timerMin, timerMax]. The cell is drawn before the timer.
// It returns the chosen index and timer, or ok=false when the board has no
// empty cell.
func SpawnBomb(b *Board, rng Rand, timerMin, timerMax int) (idx, timer int, ok bool) {
	empty := b.EmptyIndices()
	if len(empty) == 0 {
		return -1, 0, false
	}
	idx = empty[rng.Intn(len(empty))]
	timer = timerMin + rng.Intn(timerMax-timerMin+1)
	b.cells[idx] = BombCell(timer)
	return idx, timer, true
}

// DecrementTimers ticks every bomb down by one. Bombs that reach zero become
// Exploded; their indices are returned in ascending order.
func DecrementTimers(b *Board) []int {
	var exploded []int
	for i := range b.cells {
		c := &b.cells[i]
		if c.Kind != CellBomb {
			continue
		}
		if c.Timer-1 <= 0 {
			*c = ExplodedCell()
			exploded = append(exploded, i)
			continue
		}
		c.Timer--
	}
	return exploded
}

// TimerBand is the display classification of a bomb timer.
type TimerBand int

const (
	BandSafe TimerBand = iota
	BandWarning
	BandDanger
)

func (t TimerBand) String() string {
	switch t {
	case BandSafe:
		return "safe"
	case BandWarning:
		return "warning"
	default:
		return "danger"
	}
}

// BandFor classifies a timer: >=7 safe, 4-6 warning, below 4 danger.
func BandFor(timer int) TimerBand {
	switch {
	case timer >= 7:
		return BandSafe
	case timer >= 4:
		return BandWarning
	default:
		return BandDanger
	}
}
