package core

// Move is a candidate placement with its immediate score delta.
type Move struct {
	Slot  int
	Row   int
	Col   int
	Delta int
}

// BestMove picks the placement with the highest immediate score delta.
// Ties go to the lowest slot, then the first origin in row-major order.
func BestMove(s *Session) (Move, bool) {
	if s.state == StateGameOver {
		return Move{}, false
	}
	best, found := Move{}, false
	for slot, shape := range s.slots {
		if shape.IsZero() {
			continue
		}
		for _, o := range ValidOrigins(s.board, shape) {
			trial := s.board.Clone()
			Place(trial, o.Row, o.Col, shape)
			DecrementTimers(trial)
			delta := s.scoring.Delta(CheckAndClear(trial))
			if !found || delta > best.Delta {
				best = Move{Slot: slot, Row: o.Row, Col: o.Col, Delta: delta}
				found = true
			}
		}
	}
	return best, found
}

// Autoplay plays BestMove until game over or maxTurns accepted turns
// (maxTurns <= 0 means no limit). It returns the number of turns played.
func Autoplay(s *Session, maxTurns int) int {
	turns := 0
	for maxTurns <= 0 || turns < maxTurns {
		m, ok := BestMove(s)
		if !ok {
			break
		}
		if res := s.AttemptPlacement(m.Slot, m.Row, m.Col); !res.Accepted {
			break
		}
		turns++
	}
	return turns
}
