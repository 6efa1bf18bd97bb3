package core

// IsGameOver reports whether none of the non-empty shapes fits anywhere on
// the board. With no shapes at all it returns false: the session refills the
// slots before this check runs, so an empty list means there is nothing to
// judge yet.
func IsGameOver(b *Board, shapes []Shape) bool {
	seen := false
	for _, s := range shapes {
		if s.IsZero() {
			continue
		}
		seen = true
		if Fits(b, s) {
			return false
		}
	}
	return seen
}

// HasValidMove is the negation of IsGameOver for a non-empty shape list.
func HasValidMove(b *Board, shapes []Shape) bool {
	for _, s := range shapes {
		if !s.IsZero() && Fits(b, s) {
			return true
		}
	}
	return false
}
