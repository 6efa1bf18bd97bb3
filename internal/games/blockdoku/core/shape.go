// Package core provides the board state machine for Blockdoku: shapes,
// placement, line and box clearing, bombs, scoring and game-over detection.
// This package is UI-agnostic and deterministic given its random source.
package core

import (
	"errors"
	"sort"
	"strings"
)

// ErrEmptyShape is returned when a shape is built from no cells.
var ErrEmptyShape = errors.New("shape has no cells")

// Offset is a cell position relative to a shape's origin.
type Offset struct {
	Row int
	Col int
}

// Color is the display color of a shape. Logic never reads it.
type Color uint8

const (
	ColorPurple Color = iota
	ColorBlue
	ColorCyan
	ColorGreen
	ColorYellow
	ColorOrange
	ColorRed
	ColorMagenta
)

// Shape is an immutable, normalized set of offsets. The minimum row and
// minimum column offsets are always 0. The zero Shape has no cells and is
// used to represent an empty slot.
type Shape struct {
	name  string
	color Color
	cells []Offset
}

// NewShape builds a normalized shape. Duplicate offsets are collapsed.
func NewShape(name string, color Color, cells ...Offset) (Shape, error) {
	if len(cells) == 0 {
		return Shape{}, ErrEmptyShape
	}
	out := make([]Offset, len(cells))
	copy(out, cells)
	minRow, minCol := bounds(out)
	return Shape{name: name, color: color, cells: canonical(shift(out, -minRow, -minCol))}, nil
}

// MustShape is like NewShape but panics on error. Used for the static catalog.
func MustShape(name string, color Color, cells ...Offset) Shape {
	s, err := NewShape(name, color, cells...)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the catalog name the shape was built or derived from.
func (s Shape) Name() string {
	return s.name
}

// Color returns the display color.
func (s Shape) Color() Color {
	return s.color
}

// Cells returns a copy of the shape's offsets in row-major order.
func (s Shape) Cells() []Offset {
	out := make([]Offset, len(s.cells))
	copy(out, s.cells)
	return out
}

// IsZero reports whether this is the empty-slot value.
func (s Shape) IsZero() bool {
	return len(s.cells) == 0
}

// Size returns the number of cells.
func (s Shape) Size() int {
	return len(s.cells)
}

// BoundingBox returns (max row offset + 1, max col offset + 1).
func (s Shape) BoundingBox() (rows, cols int) {
	for _, c := range s.cells {
		if c.Row+1 > rows {
			rows = c.Row + 1
		}
		if c.Col+1 > cols {
			cols = c.Col + 1
		}
	}
	return rows, cols
}

// Equal compares cell sets. Name and color are ignored.
func (s Shape) Equal(other Shape) bool {
	if len(s.cells) != len(other.cells) {
		return false
	}
	for i := range s.cells {
		if s.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Rotate90 rotates a quarter turn with (row, col) -> (col, -row).
func (s Shape) Rotate90() Shape {
	if s.IsZero() {
		return s
	}
	rotated := make([]Offset, len(s.cells))
	for i, c := range s.cells {
		rotated[i] = Offset{Row: c.Col, Col: -c.Row}
	}
	minRow, minCol := bounds(rotated)
	return s.derive(shift(rotated, -minRow, -minCol))
}

// Rotate180 applies Rotate90 twice.
func (s Shape) Rotate180() Shape {
	return s.Rotate90().Rotate90()
}

// Rotate270 applies Rotate90 three times.
func (s Shape) Rotate270() Shape {
	return s.Rotate90().Rotate90().Rotate90()
}

// FlipHorizontal mirrors columns and renormalizes the column axis.
func (s Shape) FlipHorizontal() Shape {
	if s.IsZero() {
		return s
	}
	flipped := make([]Offset, len(s.cells))
	for i, c := range s.cells {
		flipped[i] = Offset{Row: c.Row, Col: -c.Col}
	}
	_, minCol := bounds(flipped)
	return s.derive(shift(flipped, 0, -minCol))
}

// FlipVertical mirrors rows and renormalizes the row axis.
func (s Shape) FlipVertical() Shape {
	if s.IsZero() {
		return s
	}
	flipped := make([]Offset, len(s.cells))
	for i, c := range s.cells {
		flipped[i] = Offset{Row: -c.Row, Col: c.Col}
	}
	minRow, _ := bounds(flipped)
	return s.derive(shift(flipped, -minRow, 0))
}

// String renders the shape as rows of '■' and spaces.
func (s Shape) String() string {
	rows, cols := s.BoundingBox()
	grid := make([][]rune, rows)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", cols))
	}
	for _, c := range s.cells {
		grid[c.Row][c.Col] = '■'
	}
	lines := make([]string, rows)
	for r := range grid {
		lines[r] = strings.TrimRight(string(grid[r]), " ")
	}
	return strings.Join(lines, "\n")
}

func (s Shape) derive(cells []Offset) Shape {
	return Shape{name: s.name, color: s.color, cells: canonical(cells)}
}

// bounds returns the minimum row and column offsets.
func bounds(cells []Offset) (minRow, minCol int) {
	minRow, minCol = cells[0].Row, cells[0].Col
	for _, c := range cells[1:] {
		if c.Row < minRow {
			minRow = c.Row
		}
		if c.Col < minCol {
			minCol = c.Col
		}
	}
	return minRow, minCol
}

func shift(cells []Offset, dRow, dCol int) []Offset {
	for i := range cells {
		cells[i].Row += dRow
		cells[i].Col += dCol
	}
	return cells
}

// canonical sorts row-major and drops duplicates so Equal can compare slices.
func canonical(cells []Offset) []Offset {
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})
	out := cells[:0]
	for _, c := range cells {
		if len(out) > 0 && out[len(out)-1] == c {
			continue
		}
		out = append(out, c)
	}
	return out
}
