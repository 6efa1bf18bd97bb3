package core

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Turn rejection reasons.
var (
	ErrGameOver  = errors.New("game is over")
	ErrEmptySlot = errors.New("slot is empty")
	ErrSlotRange = errors.New("slot index out of range")
)

// DefaultSlots is the number of available-shape slots.
const DefaultSlots = 3

// State is the session lifecycle state.
type State int

const (
	StatePlaying State = iota
	StateGameOver
)

func (s State) String() string {
	if s == StateGameOver {
		return "game_over"
	}
	return "playing"
}

// Stats are running counters for one game.
type Stats struct {
	Placements    int
	LinesCleared  int
	CellsCleared  int
	BombsSpawned  int
	BombsDefused  int
	BombsExploded int
}

// TurnResult reports the outcome of AttemptPlacement. A rejected turn has
// Accepted=false, Reason set, and leaves the session untouched.
type TurnResult struct {
	Accepted    bool
	Reason      error
	Placed      []int
	Clear       ClearResult
	ScoreDelta  int
	Exploded    []int
	SpawnedBomb int // -1 when no bomb spawned
	BombTimer   int
	Refilled    bool
	GameOver    bool
}

// Cleared returns the indices emptied this turn.
func (t TurnResult) Cleared() []int {
	return t.Clear.Cleared
}

// Snapshot is a read-only copy of session state.
type Snapshot struct {
	Cells      [CellCount]Cell
	Score      int
	BombTimers map[int]int
	Slots      []Shape
	State      State
	Difficulty Difficulty
	Stats      Stats
}

// Session runs turns against one board. It is not safe for concurrent use.
type Session struct {
	board      *Board
	start      *Board
	slots      []Shape
	score      ScoreTracker
	placements int
	state      State
	stats      Stats

	rng        Rand
	difficulty Difficulty
	nslots     int
	bombs      BombConfig
	scoring    Scoring
	logger     *log.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithDifficulty selects the shape pool.
func WithDifficulty(d Difficulty) Option {
	return func(s *Session) { s.difficulty = d }
}

// WithRand injects the random source.
func WithRand(r Rand) Option {
	return func(s *Session) { s.rng = r }
}

// WithSeed seeds a math/rand source.
func WithSeed(seed int64) Option {
	return func(s *Session) { s.rng = NewRand(seed) }
}

// WithBombs replaces the bomb settings.
func WithBombs(c BombConfig) Option {
	return func(s *Session) { s.bombs = c }
}

// WithScoring replaces the scoring rule.
func WithScoring(sc Scoring) Option {
	return func(s *Session) { s.scoring = sc }
}

// WithSlots sets the number of shape slots.
func WithSlots(n int) Option {
	return func(s *Session) { s.nslots = n }
}

// WithLogger sets the logger used for per-turn debug records.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStartBoard starts (and restarts) from a copy of b instead of an empty board.
func WithStartBoard(b *Board) Option {
	return func(s *Session) {
		if b != nil {
			s.start = b.Clone()
		}
	}
}

// NewSession creates a session and deals the first shapes.
func NewSession(opts ...Option) (*Session, error) {
	s := &Session{
		difficulty: DifficultyMedium,
		nslots:     DefaultSlots,
		bombs:      DefaultBombConfig(),
		scoring:    DefaultScoring(),
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = NewRand(1)
	}
	if s.nslots < 1 {
		return nil, fmt.Errorf("slots %d: must be at least 1", s.nslots)
	}
	if err := s.bombs.Validate(); err != nil {
		return nil, err
	}
	if err := s.scoring.Validate(); err != nil {
		return nil, err
	}
	s.Restart()
	return s, nil
}

// Restart resets the board, score and counters and deals fresh shapes.
func (s *Session) Restart() {
	if s.start != nil {
		s.board = s.start.Clone()
	} else {
		s.board = NewBoard()
	}
	s.score.Reset()
	s.placements = 0
	s.stats = Stats{}
	s.state = StatePlaying
	s.slots = RandomN(s.rng, s.difficulty, s.nslots)
	s.logger.Debug("restart", "difficulty", s.difficulty, "slots", slotNames(s.slots))
}

// AttemptPlacement places the shape in slot at (row, col) and runs the rest
// of the turn: timers, clearing, scoring, bomb spawn, refill, game over.
func (s *Session) AttemptPlacement(slot, row, col int) TurnResult {
	res := TurnResult{SpawnedBomb: -1}
	switch {
	case s.state == StateGameOver:
		res.Reason = ErrGameOver
		return res
	case slot < 0 || slot >= len(s.slots):
		res.Reason = fmt.Errorf("slot %d: %w", slot, ErrSlotRange)
		return res
	case s.slots[slot].IsZero():
		res.Reason = fmt.Errorf("slot %d: %w", slot, ErrEmptySlot)
		return res
	case !CanPlace(s.board, row, col, s.slots[slot]):
		res.Reason = fmt.Errorf("%s at (%d,%d): %w", s.slots[slot].Name(), row, col, ErrInvalidPlacement)
		return res
	}

	shape := s.slots[slot]
	res.Accepted = true
	res.Placed = Place(s.board, row, col, shape)
	s.slots[slot] = Shape{}
	s.placements++
	s.stats.Placements = s.placements
	s.logger.Debug("placed", "shape", shape.Name(), "row", row, "col", col, "n", s.placements)

	res.Exploded = DecrementTimers(s.board)
	if len(res.Exploded) > 0 {
		s.stats.BombsExploded += len(res.Exploded)
		s.logger.Debug("bombs exploded", "cells", res.Exploded)
	}

	res.Clear = CheckAndClear(s.board)
	res.ScoreDelta = s.scoring.Delta(res.Clear)
	if err := s.score.Add(res.ScoreDelta); err != nil {
		s.logger.Error("score not updated", "delta", res.ScoreDelta, "err", err)
	}
	if !res.Clear.Empty() {
		s.stats.LinesCleared += res.Clear.Lines()
		s.stats.CellsCleared += len(res.Clear.Cleared)
		s.stats.BombsDefused += res.Clear.BombsCleared
		s.logger.Debug("cleared",
			"rows", res.Clear.Rows, "cols", res.Clear.Cols, "boxes", res.Clear.Boxes,
			"delta", res.ScoreDelta, "score", s.score.Value())
	}

	if s.bombs.Enabled && ShouldSpawn(s.placements, s.bombs.Every) {
		if idx, timer, ok := SpawnBomb(s.board, s.rng, s.bombs.TimerMin, s.bombs.TimerMax); ok {
			res.SpawnedBomb, res.BombTimer = idx, timer
			s.stats.BombsSpawned++
			s.logger.Debug("bomb spawned", "cell", idx, "timer", timer)
		}
	}

	if s.allSlotsEmpty() {
		s.slots = RandomN(s.rng, s.difficulty, s.nslots)
		res.Refilled = true
		s.logger.Debug("refill", "slots", slotNames(s.slots))
	}

	if IsGameOver(s.board, s.slots) {
		s.state = StateGameOver
		res.GameOver = true
		s.logger.Debug("game over", "score", s.score.Value(), "placements", s.placements)
	}
	return res
}

// CanPlaceSlot reports whether the shape in slot fits at (row, col).
func (s *Session) CanPlaceSlot(slot, row, col int) bool {
	if slot < 0 || slot >= len(s.slots) {
		return false
	}
	return CanPlace(s.board, row, col, s.slots[slot])
}

// Preview returns the cells the shape in slot would cover at (row, col),
// whether or not the placement is valid, and whether it is valid.
// Off-board cells are omitted.
func (s *Session) Preview(slot, row, col int) (cells []int, ok bool) {
	if slot < 0 || slot >= len(s.slots) || s.slots[slot].IsZero() {
		return nil, false
	}
	for _, c := range s.slots[slot].cells {
		r, cc := row+c.Row, col+c.Col
		if InBounds(r, cc) {
			cells = append(cells, Index(r, cc))
		}
	}
	return cells, CanPlace(s.board, row, col, s.slots[slot])
}

// Cell returns the cell at (row, col).
func (s *Session) Cell(row, col int) (Cell, error) {
	return s.board.Get(row, col)
}

func (s *Session) Cells() [CellCount]Cell  { return s.board.Cells() }
func (s *Session) Score() int              { return s.score.Value() }
func (s *Session) BombTimers() map[int]int { return s.board.BombTimers() }
func (s *Session) State() State            { return s.state }
func (s *Session) Placements() int         { return s.placements }
func (s *Session) Stats() Stats            { return s.stats }
func (s *Session) Difficulty() Difficulty  { return s.difficulty }

// Board returns a copy of the current board.
func (s *Session) Board() *Board {
	return s.board.Clone()
}

// Slots returns the available shapes; empty slots are zero Shapes.
func (s *Session) Slots() []Shape {
	return clone(s.slots)
}

// Snapshot copies the observable state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Cells:      s.board.Cells(),
		Score:      s.score.Value(),
		BombTimers: s.board.BombTimers(),
		Slots:      s.Slots(),
		State:      s.state,
		Difficulty: s.difficulty,
		Stats:      s.stats,
	}
}

func (s *Session) allSlotsEmpty() bool {
	for _, sh := range s.slots {
		if !sh.IsZero() {
			return false
		}
	}
	return true
}

func slotNames(slots []Shape) []string {
	names := make([]string, len(slots))
	for i, sh := range slots {
		if sh.IsZero() {
			names[i] = "-"
			continue
		}
		names[i] = sh.Name()
	}
	return names
}
