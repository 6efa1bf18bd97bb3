package blockdoku

import bcore "github.com/vovakirdan/tui-blockdoku/internal/games/blockdoku/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick       uint64
	Cursor     [2]int // row, col
	Selected   int
	Board      [bcore.CellCount]int
	Slots      []string
	Score      int
	Placements int
	State      GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.session.State() == bcore.StateGameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	codes, _ := g.session.Board().Codes()
	slots := g.session.Slots()
	names := make([]string, len(slots))
	for i, s := range slots {
		names[i] = s.Name()
	}

	return Snapshot{
		Tick:       g.tick,
		Cursor:     [2]int{g.cursorRow, g.cursorCol},
		Selected:   g.selected,
		Board:      codes,
		Slots:      names,
		Score:      g.session.Score(),
		Placements: g.session.Placements(),
		State:      state,
	}
}
