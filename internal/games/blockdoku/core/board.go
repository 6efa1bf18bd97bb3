package core

import (
	"errors"
	"fmt"
	"sort"
)

// Board dimensions.
const (
	Size      = 9
	CellCount = Size * Size
	BoxSize   = 3
)

// Board and cell errors.
var (
	ErrOutOfRange  = errors.New("coordinates out of range")
	ErrInvalidCell = errors.New("invalid cell")
)

// CellKind is the state of one board cell.
type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellFilled
	CellBomb
	CellExploded
)

func (k CellKind) String() string {
	switch k {
	case CellEmpty:
		return "empty"
	case CellFilled:
		return "filled"
	case CellBomb:
		return "bomb"
	case CellExploded:
		return "exploded"
	default:
		return "unknown"
	}
}

// Cell is a single board cell. Timer is meaningful only for CellBomb.
type Cell struct {
	Kind  CellKind
	Timer int
}

func EmptyCell() Cell    { return Cell{Kind: CellEmpty} }
func FilledCell() Cell   { return Cell{Kind: CellFilled} }
func ExplodedCell() Cell { return Cell{Kind: CellExploded} }

// BombCell returns a bomb with the given countdown.
func BombCell(timer int) Cell { return Cell{Kind: CellBomb, Timer: timer} }

// IsEmpty reports whether a shape may be placed on this cell.
func (c Cell) IsEmpty() bool { return c.Kind == CellEmpty }

func (c Cell) valid() bool {
	switch c.Kind {
	case CellEmpty, CellFilled, CellExploded:
		return c.Timer == 0
	case CellBomb:
		return c.Timer >= 1
	default:
		return false
	}
}

// Cell codes used for import/export.
const (
	CodeExploded = -1
	CodeEmpty    = 0
	CodeFilled   = 1
	CodeBomb     = 2
)

// Code returns the integer encoding of the cell kind.
func (c Cell) Code() int {
	switch c.Kind {
	case CellFilled:
		return CodeFilled
	case CellBomb:
		return CodeBomb
	case CellExploded:
		return CodeExploded
	default:
		return CodeEmpty
	}
}

// Board is the 9x9 grid addressed by linear index row*9+col.
type Board struct {
	cells [CellCount]Cell
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// Index converts (row, col) to a linear index. It does not check bounds.
func Index(row, col int) int {
	return row*Size + col
}

// RowCol converts a linear index back to (row, col).
func RowCol(idx int) (row, col int) {
	return idx / Size, idx % Size
}

// InBounds reports whether (row, col) lies on the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// Get returns the cell at (row, col).
func (b *Board) Get(row, col int) (Cell, error) {
	if !InBounds(row, col) {
		return Cell{}, fmt.Errorf("get (%d,%d): %w", row, col, ErrOutOfRange)
	}
	return b.cells[Index(row, col)], nil
}

// Set writes a cell at (row, col). Bombs must carry a positive timer.
func (b *Board) Set(row, col int, c Cell) error {
	if !InBounds(row, col) {
		return fmt.Errorf("set (%d,%d): %w", row, col, ErrOutOfRange)
	}
	if !c.valid() {
		return fmt.Errorf("set (%d,%d) %s timer %d: %w", row, col, c.Kind, c.Timer, ErrInvalidCell)
	}
	b.cells[Index(row, col)] = c
	return nil
}

// At returns the cell at a linear index. The index must be in [0,81).
func (b *Board) At(idx int) Cell {
	return b.cells[idx]
}

// Reset empties every cell.
func (b *Board) Reset() {
	b.cells = [CellCount]Cell{}
}

// Cells returns a snapshot of all 81 cells.
func (b *Board) Cells() [CellCount]Cell {
	return b.cells
}

// Clone returns an independent copy.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// Count returns how many cells are of the given kind.
func (b *Board) Count(kind CellKind) int {
	n := 0
	for _, c := range b.cells {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// EmptyIndices lists the indices of empty cells in ascending order.
func (b *Board) EmptyIndices() []int {
	var out []int
	for i, c := range b.cells {
		if c.Kind == CellEmpty {
			out = append(out, i)
		}
	}
	return out
}

// BombTimers maps each bomb index to its remaining timer.
func (b *Board) BombTimers() map[int]int {
	out := make(map[int]int)
	for i, c := range b.cells {
		if c.Kind == CellBomb {
			out[i] = c.Timer
		}
	}
	return out
}

// Codes exports the board as integer codes plus a bomb timer map.
func (b *Board) Codes() ([CellCount]int, map[int]int) {
	var codes [CellCount]int
	for i, c := range b.cells {
		codes[i] = c.Code()
	}
	return codes, b.BombTimers()
}

// BoardFromCodes rebuilds a board from Codes output. Every bomb code needs a
// positive timer; timers for non-bomb cells are rejected.
func BoardFromCodes(codes [CellCount]int, timers map[int]int) (*Board, error) {
	b := NewBoard()
	for i, code := range codes {
		switch code {
		case CodeEmpty:
		case CodeFilled:
			b.cells[i] = FilledCell()
		case CodeExploded:
			b.cells[i] = ExplodedCell()
		case CodeBomb:
			t, ok := timers[i]
			if !ok || t < 1 {
				return nil, fmt.Errorf("cell %d: bomb needs a positive timer: %w", i, ErrInvalidCell)
			}
			b.cells[i] = BombCell(t)
		default:
			return nil, fmt.Errorf("cell %d: unknown code %d: %w", i, code, ErrInvalidCell)
		}
	}
	keys := make([]int, 0, len(timers))
	for i := range timers {
		keys = append(keys, i)
	}
	sort.Ints(keys)
	for _, i := range keys {
		if i < 0 || i >= CellCount || codes[i] != CodeBomb {
			return nil, fmt.Errorf("timer for cell %d without a bomb: %w", i, ErrInvalidCell)
		}
	}
	return b, nil
}
