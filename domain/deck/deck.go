// Package deck provides the randomness behind shuffled card sources.
//
// A Shuffler produces a permutation of a fixed number of positions. The
// blackjack Deck applies one permutation at construction time and never
// re-shuffles, so game logic stays deterministic once a deck exists.
package deck

import (
	"math/rand/v2"
	"sync"
)

// Shuffler returns a permutation of [0, n).
type Shuffler interface {
	Perm(n int) []int
}

// SeededShuffler produces reproducible permutations from a seed.
// It is safe for concurrent use.
type SeededShuffler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededShuffler creates a SeededShuffler. Two shufflers built from the
// same seed return the same sequence of permutations.
func NewSeededShuffler(seed uint64) *SeededShuffler {
	return &SeededShuffler{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (s *SeededShuffler) Perm(n int) []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Perm(n)
}
