package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bcore "github.com/vovakirdan/tui-blockdoku/internal/games/blockdoku/core"
)

func TestFormatBoard(t *testing.T) {
	b := bcore.NewBoard()
	require.NoError(t, b.Set(0, 0, bcore.FilledCell()))
	require.NoError(t, b.Set(0, 4, bcore.BombCell(7)))
	require.NoError(t, b.Set(0, 8, bcore.BombCell(10)))
	require.NoError(t, b.Set(4, 4, bcore.ExplodedCell()))

	lines := strings.Split(strings.TrimSuffix(formatBoard(b.Cells()), "\n"), "\n")
	require.Len(t, lines, 11)
	assert.Equal(t, "# . . | . 7 . | . . +", lines[0])
	assert.Equal(t, "------+-------+------", lines[3])
	assert.Equal(t, ". . . | . x . | . . .", lines[5])
}
