package core_test

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-blockdoku/internal/games/blockdoku/core"
)

// Easy pool indices used by scripted draws.
const (
	easySingle = 0
	easyH2     = 1
	easyH3     = 3
)

func newScripted(t *testing.T, rng *core.ScriptedRand, opts ...core.Option) *core.Session {
	t.Helper()
	opts = append([]core.Option{core.WithDifficulty(core.DifficultyEasy), core.WithRand(rng)}, opts...)
	s, err := core.NewSession(opts...)
	require.NoError(t, err)
	return s
}

func TestNewSessionInitialState(t *testing.T) {
	s := newScripted(t, core.NewScriptedRand(easyH2, easyH3, easySingle))

	assert.Equal(t, core.StatePlaying, s.State())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 0, s.Placements())
	assert.Empty(t, s.BombTimers())

	slots := s.Slots()
	require.Len(t, slots, 3)
	assert.Equal(t, "HORIZONTAL_2", slots[0].Name())
	assert.Equal(t, "HORIZONTAL_3", slots[1].Name())
	assert.Equal(t, "SINGLE", slots[2].Name())
}

func TestNewSessionRejectsBadConfig(t *testing.T) {
	_, err := core.NewSession(core.WithSlots(0))
	assert.Error(t, err)

	_, err = core.NewSession(core.WithBombs(core.BombConfig{Enabled: true, Every: 5, TimerMin: 3, TimerMax: 2}))
	assert.ErrorIs(t, err, core.ErrInvalidBombConfig)

	_, err = core.NewSession(core.WithScoring(core.Scoring{Rule: core.ScoreCells, BombPoints: -10}))
	assert.ErrorIs(t, err, core.ErrInvalidScoring)
}

func TestRowClearScenario(t *testing.T) {
	// slots H2, H3, H2, then refill H2, Single, Single
	rng := core.NewScriptedRand(easyH2, easyH3, easyH2, easyH2, easySingle, easySingle)
	s := newScripted(t, rng)

	res := s.AttemptPlacement(0, 0, 0)
	require.True(t, res.Accepted, res.Reason)
	assert.Equal(t, []int{0, 1}, res.Placed)
	assert.Empty(t, res.Cleared())
	assert.Equal(t, 0, res.ScoreDelta)
	assert.Equal(t, 0, s.Score())
	cells := s.Cells()
	assert.Equal(t, core.CellFilled, cells[0].Kind)
	assert.Equal(t, core.CellFilled, cells[1].Kind)
	assert.Equal(t, core.CellEmpty, cells[2].Kind)

	require.True(t, s.AttemptPlacement(1, 0, 2).Accepted)
	res = s.AttemptPlacement(2, 0, 5)
	require.True(t, res.Accepted)
	assert.True(t, res.Refilled)
	assert.Equal(t, 0, s.Score())

	res = s.AttemptPlacement(0, 0, 7)
	require.True(t, res.Accepted, res.Reason)
	assert.Equal(t, rowIndices(0), res.Cleared())
	assert.Equal(t, []int{0}, res.Clear.Rows)
	assert.Equal(t, 9, res.ScoreDelta)
	assert.Equal(t, 9, s.Score())
	for i, c := range s.Cells() {
		assert.Equal(t, core.CellEmpty, c.Kind, "cell %d", i)
	}
	assert.Equal(t, 1, s.Stats().LinesCleared)
}

func TestBombExplodesScenario(t *testing.T) {
	b := core.NewBoard()
	require.NoError(t, b.Set(4, 4, core.BombCell(1)))
	s := newScripted(t, core.NewScriptedRand(), core.WithStartBoard(b))
	assert.Equal(t, map[int]int{40: 1}, s.BombTimers())

	res := s.AttemptPlacement(0, 0, 0)
	require.True(t, res.Accepted)
	assert.Equal(t, []int{40}, res.Exploded)
	assert.Empty(t, s.BombTimers())

	c, err := s.Cell(4, 4)
	require.NoError(t, err)
	assert.Equal(t, core.CellExploded, c.Kind)

	res = s.AttemptPlacement(1, 4, 4)
	assert.False(t, res.Accepted)
	assert.ErrorIs(t, res.Reason, core.ErrInvalidPlacement)
	assert.False(t, s.CanPlaceSlot(1, 4, 4))
}

func TestSpawnedBombExplodes(t *testing.T) {
	// three Singles; placement 1 spawns on the 40th empty cell with timer 1
	rng := core.NewScriptedRand(easySingle, easySingle, easySingle, 39, 0)
	bombs := core.BombConfig{Enabled: true, Every: 1, TimerMin: 1, TimerMax: 1}
	s := newScripted(t, rng, core.WithBombs(bombs))

	res := s.AttemptPlacement(0, 0, 0)
	require.True(t, res.Accepted)
	assert.Equal(t, 40, res.SpawnedBomb)
	assert.Equal(t, 1, res.BombTimer)

	res = s.AttemptPlacement(1, 8, 8)
	require.True(t, res.Accepted)
	assert.Equal(t, []int{40}, res.Exploded)
	assert.False(t, s.CanPlaceSlot(2, 4, 4))
	assert.Equal(t, 1, s.Stats().BombsExploded)
}

func TestBombSpawnsOnFifthPlacement(t *testing.T) {
	s := newScripted(t, core.NewScriptedRand())
	diagonal := [][2]int{{0, 0}, {1, 4}, {2, 8}, {4, 1}, {5, 5}}
	for i, rc := range diagonal {
		res := s.AttemptPlacement(i%3, rc[0], rc[1])
		require.True(t, res.Accepted, "placement %d: %v", i+1, res.Reason)
		if i < 4 {
			assert.Equal(t, -1, res.SpawnedBomb)
			assert.Empty(t, s.BombTimers())
		}
	}
	assert.Equal(t, map[int]int{1: 6}, s.BombTimers())

	require.True(t, s.AttemptPlacement(2, 8, 8).Accepted)
	assert.Equal(t, map[int]int{1: 5}, s.BombTimers())
}

func TestBombsDisabled(t *testing.T) {
	s := newScripted(t, core.NewScriptedRand(), core.WithBombs(core.BombConfig{}))
	for i := 0; i < 6; i++ {
		require.True(t, s.AttemptPlacement(i%3, i, i).Accepted)
	}
	assert.Empty(t, s.BombTimers())
	assert.Equal(t, 0, s.Stats().BombsSpawned)
}

func TestRejectedTurnsLeaveStateUnchanged(t *testing.T) {
	b := core.NewBoard()
	require.NoError(t, b.Set(0, 0, core.BombCell(4)))
	rng := core.NewScriptedRand(easyH3, easySingle, easySingle)
	s := newScripted(t, rng, core.WithStartBoard(b))
	require.True(t, s.AttemptPlacement(1, 5, 5).Accepted)

	before := s.Snapshot()
	tests := []struct {
		name     string
		slot     int
		row, col int
		want     error
	}{
		{"negative slot", -1, 0, 0, core.ErrSlotRange},
		{"slot too large", 3, 0, 0, core.ErrSlotRange},
		{"consumed slot", 1, 2, 2, core.ErrEmptySlot},
		{"onto bomb", 0, 0, 0, core.ErrInvalidPlacement},
		{"onto filled", 2, 5, 5, core.ErrInvalidPlacement},
		{"off board", 0, 0, 7, core.ErrInvalidPlacement},
		{"negative origin", 0, -1, 0, core.ErrInvalidPlacement},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := s.AttemptPlacement(tt.slot, tt.row, tt.col)
			assert.False(t, res.Accepted)
			assert.ErrorIs(t, res.Reason, tt.want)
			assert.Equal(t, before, s.Snapshot())
		})
	}
}

func TestGameOverAndRestart(t *testing.T) {
	b := core.NewBoard()
	for i := 2; i < core.CellCount; i++ {
		r, c := core.RowCol(i)
		require.NoError(t, b.Set(r, c, core.ExplodedCell()))
	}
	rng := core.NewScriptedRand(easyH2, easySingle, easySingle, easyH2, easyH2, easyH2)
	s := newScripted(t, rng, core.WithStartBoard(b))
	assert.Equal(t, core.StatePlaying, s.State())

	res := s.AttemptPlacement(0, 0, 0)
	require.True(t, res.Accepted)
	assert.True(t, res.GameOver)
	assert.Equal(t, core.StateGameOver, s.State())

	res = s.AttemptPlacement(1, 0, 0)
	assert.False(t, res.Accepted)
	assert.ErrorIs(t, res.Reason, core.ErrGameOver)

	_, ok := core.BestMove(s)
	assert.False(t, ok)

	s.Restart()
	assert.Equal(t, core.StatePlaying, s.State())
	assert.Equal(t, 0, s.Placements())
	assert.Equal(t, b.Cells(), s.Cells())
	assert.Equal(t, core.Stats{}, s.Stats())
	for _, sh := range s.Slots() {
		assert.Equal(t, "HORIZONTAL_2", sh.Name())
	}
}

func TestRestartClearsProgress(t *testing.T) {
	s, err := core.NewSession(core.WithSeed(11))
	require.NoError(t, err)
	core.Autoplay(s, 12)
	require.Greater(t, s.Placements(), 0)

	s.Restart()
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 0, s.Placements())
	for _, c := range s.Cells() {
		assert.Equal(t, core.CellEmpty, c.Kind)
	}
	for _, sh := range s.Slots() {
		assert.False(t, sh.IsZero())
	}
}

func TestSeededSessionsAreDeterministic(t *testing.T) {
	play := func() core.Snapshot {
		s, err := core.NewSession(core.WithSeed(42), core.WithDifficulty(core.DifficultyHard))
		require.NoError(t, err)
		core.Autoplay(s, 200)
		return s.Snapshot()
	}
	assert.Equal(t, play(), play())
}

func TestScoreNeverDecreases(t *testing.T) {
	s, err := core.NewSession(core.WithSeed(5), core.WithDifficulty(core.DifficultyEasy))
	require.NoError(t, err)
	last := 0
	for i := 0; i < 300 && s.State() == core.StatePlaying; i++ {
		m, ok := core.BestMove(s)
		require.True(t, ok)
		res := s.AttemptPlacement(m.Slot, m.Row, m.Col)
		require.True(t, res.Accepted)
		assert.Equal(t, m.Delta, res.ScoreDelta)
		assert.GreaterOrEqual(t, s.Score(), last)
		last = s.Score()
	}
}

func TestBestMovePrefersClear(t *testing.T) {
	b := core.NewBoard()
	for c := 0; c < 8; c++ {
		require.NoError(t, b.Set(0, c, core.FilledCell()))
	}
	s := newScripted(t, core.NewScriptedRand(), core.WithStartBoard(b))

	m, ok := core.BestMove(s)
	require.True(t, ok)
	assert.Equal(t, core.Move{Slot: 0, Row: 0, Col: 8, Delta: 9}, m)
}

func TestLinesScoring(t *testing.T) {
	b := core.NewBoard()
	for c := 0; c < 8; c++ {
		require.NoError(t, b.Set(0, c, core.FilledCell()))
	}
	s := newScripted(t, core.NewScriptedRand(), core.WithStartBoard(b),
		core.WithScoring(core.Scoring{Rule: core.ScoreLines, LinePoints: 100}))

	res := s.AttemptPlacement(0, 0, 8)
	require.True(t, res.Accepted)
	assert.Equal(t, 100, res.ScoreDelta)
}

func TestPreview(t *testing.T) {
	rng := core.NewScriptedRand(easyH3, easySingle, easySingle)
	s := newScripted(t, rng)

	cells, ok := s.Preview(0, 2, 7)
	assert.False(t, ok)
	assert.Equal(t, []int{25, 26}, cells)

	cells, ok = s.Preview(0, 2, 0)
	assert.True(t, ok)
	assert.Equal(t, []int{18, 19, 20}, cells)
}

func TestSessionLogsTurns(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	s := newScripted(t, core.NewScriptedRand(), core.WithLogger(logger))

	require.True(t, s.AttemptPlacement(0, 3, 3).Accepted)
	assert.Contains(t, buf.String(), "placed")
	assert.Contains(t, buf.String(), "SINGLE")
}
