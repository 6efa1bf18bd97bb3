package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-blockdoku/internal/games/blockdoku/core"
)

func TestNewShapeNormalizes(t *testing.T) {
	s, err := core.NewShape("x", core.ColorBlue,
		core.Offset{Row: 3, Col: 5}, core.Offset{Row: 3, Col: 4}, core.Offset{Row: 3, Col: 4})
	require.NoError(t, err)

	assert.Equal(t, []core.Offset{{Row: 0, Col: 0}, {Row: 0, Col: 1}}, s.Cells())
	assert.Equal(t, 2, s.Size())
	assert.True(t, s.Equal(core.Horizontal2))
}

func TestNewShapeEmpty(t *testing.T) {
	_, err := core.NewShape("none", core.ColorBlue)
	assert.ErrorIs(t, err, core.ErrEmptyShape)
}

func TestRotations(t *testing.T) {
	tests := []struct {
		name string
		got  core.Shape
		want core.Shape
	}{
		{"H2 rotate90", core.Horizontal2.Rotate90(), core.Vertical2},
		{"H5 rotate90", core.Horizontal5.Rotate90(), core.Vertical5},
		{"L rotate90", core.LShape.Rotate90(), core.LShape90},
		{"L rotate180", core.LShape.Rotate180(), core.LShape180},
		{"L rotate270", core.LShape.Rotate270(), core.LShape270},
		{"Z rotate90", core.ZShape.Rotate90(), core.ZShape90},
		{"square3 rotate90", core.Square3.Rotate90(), core.Square3},
		{"cross large rotate90", core.CrossLarge.Rotate90(), core.CrossLarge},
		{"L flip horizontal", core.LShape.FlipHorizontal(), core.LReverse},
		{"T flip vertical", core.TShape.FlipVertical(), core.TShape180},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Equal(tt.want) {
				t.Errorf("got\n%s\nwant\n%s", tt.got, tt.want)
			}
		})
	}
}

func TestTransformsKeepNormalization(t *testing.T) {
	for _, s := range core.All() {
		transforms := map[string]core.Shape{
			"rotate90":  s.Rotate90(),
			"rotate180": s.Rotate180(),
			"rotate270": s.Rotate270(),
			"flipH":     s.FlipHorizontal(),
			"flipV":     s.FlipVertical(),
		}
		for name, got := range transforms {
			minRow, minCol := 100, 100
			for _, c := range got.Cells() {
				minRow = min(minRow, c.Row)
				minCol = min(minCol, c.Col)
			}
			if minRow != 0 || minCol != 0 {
				t.Errorf("%s %s: min offsets (%d,%d)", s.Name(), name, minRow, minCol)
			}
			if got.Size() != s.Size() {
				t.Errorf("%s %s: size %d, want %d", s.Name(), name, got.Size(), s.Size())
			}
		}
		assert.True(t, s.Rotate90().Rotate270().Equal(s), s.Name())
		assert.True(t, s.FlipHorizontal().FlipHorizontal().Equal(s), s.Name())
		assert.True(t, s.FlipVertical().FlipVertical().Equal(s), s.Name())
	}
}

func TestBoundingBox(t *testing.T) {
	rows, cols := core.CrossLarge.BoundingBox()
	assert.Equal(t, 5, rows)
	assert.Equal(t, 5, cols)

	rows, cols = core.LShape90.BoundingBox()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)
}

func TestShapeString(t *testing.T) {
	assert.Equal(t, "■■■\n ■", core.TShape.String())
	assert.Equal(t, "■", core.Single.String())
}

func TestCellsReturnsCopy(t *testing.T) {
	cells := core.Single.Cells()
	cells[0].Row = 4
	assert.Equal(t, core.Offset{}, core.Single.Cells()[0])
}
