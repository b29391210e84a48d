package core

import "math/rand"

// Rand is the randomness the simulation draws from.
// *rand.Rand satisfies it; tests inject scripted sequences.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// NewRand returns a seeded math/rand source.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// ScriptedRand replays fixed sequences. When a sequence runs out it
// repeats its last value; an empty sequence yields zero.
type ScriptedRand struct {
	Ints   []int
	Floats []float64
	ii, fi int
}

// Intn returns the next scripted integer reduced modulo n.
func (s *ScriptedRand) Intn(n int) int {
	if len(s.Ints) == 0 || n <= 0 {
		return 0
	}
	v := s.Ints[min(s.ii, len(s.Ints)-1)]
	s.ii++
	return Abs(v) % n
}

// Float64 returns the next scripted float.
func (s *ScriptedRand) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[min(s.fi, len(s.Floats)-1)]
	s.fi++
	return v
}
