package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-blockdoku/internal/games/blockdoku/core"
)

func TestBoardBounds(t *testing.T) {
	b := core.NewBoard()
	coords := [][2]int{{-1, 0}, {0, -1}, {9, 0}, {0, 9}, {9, 9}}
	for _, rc := range coords {
		_, err := b.Get(rc[0], rc[1])
		assert.ErrorIs(t, err, core.ErrOutOfRange, "get %v", rc)
		err = b.Set(rc[0], rc[1], core.FilledCell())
		assert.ErrorIs(t, err, core.ErrOutOfRange, "set %v", rc)
	}
	assert.Equal(t, 0, b.Count(core.CellFilled))
}

func TestBoardSetGet(t *testing.T) {
	b := core.NewBoard()
	require.NoError(t, b.Set(4, 4, core.BombCell(7)))
	c, err := b.Get(4, 4)
	require.NoError(t, err)
	assert.Equal(t, core.BombCell(7), c)
	assert.Equal(t, map[int]int{40: 7}, b.BombTimers())

	err = b.Set(0, 0, core.BombCell(0))
	assert.ErrorIs(t, err, core.ErrInvalidCell)

	b.Reset()
	assert.Equal(t, core.CellCount, b.Count(core.CellEmpty))
	assert.Empty(t, b.BombTimers())
}

func TestIndexRowCol(t *testing.T) {
	for idx := 0; idx < core.CellCount; idx++ {
		r, c := core.RowCol(idx)
		assert.Equal(t, idx, core.Index(r, c))
	}
	assert.Equal(t, 40, core.Index(4, 4))
}

func TestCodesRoundTrip(t *testing.T) {
	b := core.NewBoard()
	require.NoError(t, b.Set(0, 0, core.FilledCell()))
	require.NoError(t, b.Set(6, 4, core.BombCell(7)))
	require.NoError(t, b.Set(8, 8, core.ExplodedCell()))

	codes, timers := b.Codes()
	assert.Equal(t, core.CodeFilled, codes[0])
	assert.Equal(t, core.CodeBomb, codes[58])
	assert.Equal(t, core.CodeExploded, codes[80])
	assert.Equal(t, map[int]int{58: 7}, timers)

	back, err := core.BoardFromCodes(codes, timers)
	require.NoError(t, err)
	assert.Equal(t, b.Cells(), back.Cells())
}

func TestBoardFromCodesErrors(t *testing.T) {
	var codes [core.CellCount]int
	codes[3] = core.CodeBomb

	_, err := core.BoardFromCodes(codes, nil)
	assert.ErrorIs(t, err, core.ErrInvalidCell)

	_, err = core.BoardFromCodes(codes, map[int]int{3: 0})
	assert.ErrorIs(t, err, core.ErrInvalidCell)

	_, err = core.BoardFromCodes(codes, map[int]int{3: 4, 5: 2})
	assert.ErrorIs(t, err, core.ErrInvalidCell)

	codes[3] = 7
	_, err = core.BoardFromCodes(codes, nil)
	assert.ErrorIs(t, err, core.ErrInvalidCell)
}

func TestCloneIsIndependent(t *testing.T) {
	b := core.NewBoard()
	c := b.Clone()
	require.NoError(t, c.Set(1, 1, core.FilledCell()))
	assert.Equal(t, 0, b.Count(core.CellFilled))
}
