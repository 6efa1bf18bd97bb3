package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPlacement      = errors.New("shape does not fit at origin")
	ErrPreconditionViolation = errors.New("precondition violated")
)

// CanPlace reports whether every cell of s lands on an empty in-bounds cell
// when s is anchored at (row, col). Bombs and exploded cells block placement.
func CanPlace(b *Board, row, col int, s Shape) bool {
	if s.IsZero() {
		return false
	}
	for _, c := range s.cells {
		r, cc := row+c.Row, col+c.Col
		if !InBounds(r, cc) {
			return false
		}
		if !b.cells[Index(r, cc)].IsEmpty() {
			return false
		}
	}
	return true
}

// Place fills the cells covered by s at (row, col) and returns their indices
// in row-major order. The caller must have checked CanPlace; an invalid
// placement panics with an error wrapping ErrPreconditionViolation.
func Place(b *Board, row, col int, s Shape) []int {
	if !CanPlace(b, row, col, s) {
		panic(fmt.Errorf("place %s at (%d,%d): %w", s.name, row, col, ErrPreconditionViolation))
	}
	placed := make([]int, len(s.cells))
	for i, c := range s.cells {
		idx := Index(row+c.Row, col+c.Col)
		b.cells[idx] = FilledCell()
		placed[i] = idx
	}
	return placed
}

// Origin is an anchor position on the board.
type Origin struct {
	Row int
	Col int
}

// ValidOrigins lists every origin where s fits, row-major.
func ValidOrigins(b *Board, s Shape) []Origin {
	var out []Origin
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if CanPlace(b, r, c, s) {
				out = append(out, Origin{Row: r, Col: c})
			}
		}
	}
	return out
}

// Fits reports whether s fits anywhere on b.
func Fits(b *Board, s Shape) bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if CanPlace(b, r, c, s) {
				return true
			}
		}
	}
	return false
}
