package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-blockdoku/internal/games/blockdoku/core"
)

func TestSpawnBombScripted(t *testing.T) {
	b := core.NewBoard()
	idx, timer, ok := core.SpawnBomb(b, core.NewScriptedRand(40, 2), 6, 10)
	require.True(t, ok)
	assert.Equal(t, 40, idx)
	assert.Equal(t, 8, timer)
	assert.Equal(t, map[int]int{40: 8}, b.BombTimers())
}

func TestSpawnBombSkipsOccupied(t *testing.T) {
	b := core.NewBoard()
	fill(t, b, 0, 1, 2)
	idx, _, ok := core.SpawnBomb(b, core.NewScriptedRand(0, 0), 6, 10)
	require.True(t, ok)
	assert.Equal(t, 3, idx)
}

func TestSpawnBombFullBoard(t *testing.T) {
	b := core.NewBoard()
	for i := 0; i < core.CellCount; i++ {
		fill(t, b, i)
	}
	rng := core.NewScriptedRand(5)
	_, _, ok := core.SpawnBomb(b, rng, 6, 10)
	assert.False(t, ok)
	assert.Equal(t, 1, rng.Remaining())
}

func TestSpawnBombTimerRange(t *testing.T) {
	rng := core.NewRand(99)
	for i := 0; i < 200; i++ {
		b := core.NewBoard()
		_, timer, ok := core.SpawnBomb(b, rng, 6, 10)
		require.True(t, ok)
		assert.GreaterOrEqual(t, timer, 6)
		assert.LessOrEqual(t, timer, 10)
	}
}

func TestDecrementTimers(t *testing.T) {
	b := core.NewBoard()
	require.NoError(t, b.Set(4, 4, core.BombCell(1)))
	require.NoError(t, b.Set(0, 0, core.BombCell(3)))
	require.NoError(t, b.Set(8, 8, core.BombCell(1)))

	exploded := core.DecrementTimers(b)
	assert.Equal(t, []int{40, 80}, exploded)
	assert.Equal(t, map[int]int{0: 2}, b.BombTimers())
	assert.Equal(t, 2, b.Count(core.CellExploded))
	assert.False(t, core.CanPlace(b, 4, 4, core.Single))

	assert.Empty(t, core.DecrementTimers(b))
	assert.Equal(t, map[int]int{0: 1}, b.BombTimers())
	assert.Equal(t, []int{0}, core.DecrementTimers(b))
	assert.Equal(t, 3, b.Count(core.CellExploded))
}

func TestShouldSpawn(t *testing.T) {
	tests := []struct {
		placements, every int
		want              bool
	}{
		{0, 5, false},
		{4, 5, false},
		{5, 5, true},
		{10, 5, true},
		{11, 5, false},
		{3, 0, false},
		{1, 1, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, core.ShouldSpawn(tt.placements, tt.every), "%d/%d", tt.placements, tt.every)
	}
}

func TestBandFor(t *testing.T) {
	tests := []struct {
		timer int
		want  core.TimerBand
	}{
		{10, core.BandSafe},
		{7, core.BandSafe},
		{6, core.BandWarning},
		{4, core.BandWarning},
		{3, core.BandDanger},
		{1, core.BandDanger},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, core.BandFor(tt.timer), "timer %d", tt.timer)
	}
}

func TestBombConfigValidate(t *testing.T) {
	assert.NoError(t, core.DefaultBombConfig().Validate())
	assert.NoError(t, core.BombConfig{Enabled: false}.Validate())

	bad := []core.BombConfig{
		{Enabled: true, Every: 0, TimerMin: 6, TimerMax: 10},
		{Enabled: true, Every: 5, TimerMin: 0, TimerMax: 10},
		{Enabled: true, Every: 5, TimerMin: 8, TimerMax: 6},
	}
	for _, c := range bad {
		assert.ErrorIs(t, c.Validate(), core.ErrInvalidBombConfig, "%+v", c)
	}
}

func TestScoreTracker(t *testing.T) {
	var s core.ScoreTracker
	require.NoError(t, s.Add(9))
	require.NoError(t, s.Add(0))
	assert.ErrorIs(t, s.Add(-1), core.ErrNegativeDelta)
	assert.Equal(t, 9, s.Value())
	s.Reset()
	assert.Equal(t, 0, s.Value())
}

func TestIsGameOver(t *testing.T) {
	full := core.NewBoard()
	for i := 0; i < core.CellCount; i++ {
		fill(t, full, i)
	}
	oneHole := full.Clone()
	require.NoError(t, oneHole.Set(4, 4, core.EmptyCell()))

	tests := []struct {
		name   string
		board  *core.Board
		shapes []core.Shape
		want   bool
	}{
		{"empty board", core.NewBoard(), []core.Shape{core.Square3}, false},
		{"full board", full, []core.Shape{core.Single}, true},
		{"one hole single fits", oneHole, []core.Shape{core.Square2, core.Single}, false},
		{"one hole nothing fits", oneHole, []core.Shape{core.Square2, core.Horizontal2}, true},
		{"zero slots ignored", oneHole, []core.Shape{{}, core.Horizontal2, {}}, true},
		{"no shapes", full, nil, false},
		{"only empty slots", full, []core.Shape{{}, {}, {}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, core.IsGameOver(tt.board, tt.shapes))
		})
	}
}
