package core

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Unit indices: rows 0-8, columns 9-17, boxes 18-26.
var units [3 * Size][Size]int

func init() {
	for i := 0; i < Size; i++ {
		boxRow, boxCol := (i/BoxSize)*BoxSize, (i%BoxSize)*BoxSize
		for j := 0; j < Size; j++ {
			units[i][j] = Index(i, j)
			units[Size+i][j] = Index(j, i)
			units[2*Size+i][j] = Index(boxRow+j/BoxSize, boxCol+j%BoxSize)
		}
	}
}

// ClearResult describes one clear pass.
type ClearResult struct {
	Cleared       []int // ascending, each index once
	Rows          []int
	Cols          []int
	Boxes         []int // box b covers rows 3*(b/3).. and cols 3*(b%3)..
	BlocksCleared int
	BombsCleared  int
	BombBonus     int // sum of the timers of cleared bombs
}

// Lines returns the number of completed rows, columns and boxes.
func (r ClearResult) Lines() int {
	return len(r.Rows) + len(r.Cols) + len(r.Boxes)
}

// Empty reports whether nothing was cleared.
func (r ClearResult) Empty() bool {
	return len(r.Cleared) == 0
}

// ScoreDelta applies the default scoring rule.
func (r ClearResult) ScoreDelta() int {
	return DefaultScoring().Delta(r)
}

func complete(b *Board, unit [Size]int) bool {
	for _, idx := range unit {
		if b.cells[idx].Kind != CellFilled {
			return false
		}
	}
	return true
}

// CompletedUnits reports which rows, columns and boxes are complete without
// changing the board.
func CompletedUnits(b *Board) (rows, cols, boxes []int) {
	for u := range units {
		if !complete(b, units[u]) {
			continue
		}
		switch {
		case u < Size:
			rows = append(rows, u)
		case u < 2*Size:
			cols = append(cols, u-Size)
		default:
			boxes = append(boxes, u-2*Size)
		}
	}
	return rows, cols, boxes
}

// CheckAndClear finds every complete row, column and box in one scan of the
// current board, then empties their union.
func CheckAndClear(b *Board) ClearResult {
	rows, cols, boxes := CompletedUnits(b)
	if len(rows)+len(cols)+len(boxes) == 0 {
		return ClearResult{}
	}

	var marked [CellCount]bool
	mark := func(u int) {
		for _, idx := range units[u] {
			marked[idx] = true
		}
	}
	for _, r := range rows {
		mark(r)
	}
	for _, c := range cols {
		mark(Size + c)
	}
	for _, x := range boxes {
		mark(2*Size + x)
	}

	indices := make([]int, 0, CellCount)
	for idx, m := range marked {
		if m {
			indices = append(indices, idx)
		}
	}
	res := ClearCells(b, indices)
	res.Rows, res.Cols, res.Boxes = rows, cols, boxes
	return res
}

// ClearCells empties the given cells and tallies what was removed. Filled
// cells count as blocks; bombs count toward BombsCleared and add their timer
// to BombBonus. Empty and exploded cells are left alone.
func ClearCells(b *Board, indices []int) ClearResult {
	var res ClearResult
	seen := make(map[int]bool, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= CellCount || seen[idx] {
			continue
		}
		seen[idx] = true
		switch c := b.cells[idx]; c.Kind {
		case CellFilled:
			res.BlocksCleared++
		case CellBomb:
			res.BombsCleared++
			res.BombBonus += c.Timer
		default:
			continue
		}
		b.cells[idx] = EmptyCell()
		res.Cleared = append(res.Cleared, idx)
	}
	sort.Ints(res.Cleared)
	return res
}

// ScoringRule selects how a clear is converted into points.
type ScoringRule int

const (
	// ScoreCells awards one point per block plus BombPoints+timer per bomb.
	ScoreCells ScoringRule = iota
	// ScoreLines awards LinePoints per completed row, column or box.
	ScoreLines
)

func (r ScoringRule) String() string {
	if r == ScoreLines {
		return "lines"
	}
	return "cells"
}

// ParseScoringRule accepts "cells" and "lines".
func ParseScoringRule(s string) (ScoringRule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cells", "":
		return ScoreCells, nil
	case "lines":
		return ScoreLines, nil
	default:
		return ScoreCells, fmt.Errorf("unknown scoring rule %q", s)
	}
}

// ErrInvalidScoring is wrapped by Scoring.Validate.
var ErrInvalidScoring = errors.New("invalid scoring")

// Scoring holds the scoring rule and its constants.
type Scoring struct {
	Rule       ScoringRule
	BombPoints int
	LinePoints int
}

// DefaultScoring is the cell-level rule with 10 points per bomb.
func DefaultScoring() Scoring {
	return Scoring{Rule: ScoreCells, BombPoints: 10, LinePoints: 100}
}

// Validate rejects unknown rules and negative point values.
func (s Scoring) Validate() error {
	if s.Rule != ScoreCells && s.Rule != ScoreLines {
		return fmt.Errorf("rule %d: %w", int(s.Rule), ErrInvalidScoring)
	}
	if s.BombPoints < 0 || s.LinePoints < 0 {
		return fmt.Errorf("bomb points %d, line points %d: %w", s.BombPoints, s.LinePoints, ErrInvalidScoring)
	}
	return nil
}

// Delta converts a clear result into a non-negative score delta.
func (s Scoring) Delta(r ClearResult) int {
	if s.Rule == ScoreLines {
		return r.Lines() * s.LinePoints
	}
	return r.BlocksCleared + r.BombsCleared*s.BombPoints + r.BombBonus
}
