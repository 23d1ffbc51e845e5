package dice

import (
	"math/rand"

	"github.com/npillmayer/coinage/core"
)

// Source is the randomness provider for dice rolls.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

// NewSource returns a pseudo-random source seeded with seed.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// Roll rolls a die with the given number of sides, returning a value in
// [1, sides].
func Roll(src Source, sides int) (int, error) {
	if sides < 1 {
		return 0, core.Error(core.EINVALID, "a die needs at least one side, has %d", sides)
	}
	return src.Intn(sides) + 1, nil
}

// FixedSource replays a sequence of values. Values are taken modulo n, with
// negative values wrapping into [0, n), and the sequence repeats.
type FixedSource struct {
	Values []int
	next   int
}

// Intn is part of interface Source.
func (s *FixedSource) Intn(n int) int {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return ((v % n) + n) % n
}
