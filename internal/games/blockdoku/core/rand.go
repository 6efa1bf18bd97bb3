package core

import "math/rand"

// NewRand returns a seeded generator.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// ScriptedRand replays a fixed sequence of values; each draw returns
// value % n. Once the sequence is exhausted it returns 0.
type ScriptedRand struct {
	values []int
	pos    int
}

// NewScriptedRand builds a ScriptedRand over values.
func NewScriptedRand(values ...int) *ScriptedRand {
	return &ScriptedRand{values: values}
}

// Intn implements Rand.
func (s *ScriptedRand) Intn(n int) int {
	if n <= 0 {
		panic("core: invalid argument to Intn")
	}
	if s.pos >= len(s.values) {
		return 0
	}
	v := s.values[s.pos]
	s.pos++
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Push appends more values to the script.
func (s *ScriptedRand) Push(values ...int) {
	s.values = append(s.values, values...)
}

// Remaining returns how many scripted values are left.
func (s *ScriptedRand) Remaining() int {
	return len(s.values) - s.pos
}
