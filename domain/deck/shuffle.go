package deck

import (
	"encoding/binary"
	"math/big"

	"go.dedis.ch/kyber/v4/suites"
	"go.dedis.ch/kyber/v4/util/random"
)

var suite suites.Suite = suites.MustFind("Ed25519")

// StreamShuffler draws permutations from the suite's cryptographic random
// stream. Each call opens a fresh stream, so one value can be shared between
// goroutines.
type StreamShuffler struct{}

// NewStreamShuffler returns the default shuffler for production decks.
func NewStreamShuffler() StreamShuffler {
	return StreamShuffler{}
}

// Perm returns a uniformly random permutation of [0, n) using Fisher-Yates.
func (StreamShuffler) Perm(n int) []int {
	return permutation(n)
}

// Helper function to generate a random permutation of size permSize
func permutation(permSize int) []int {
	stream := suite.RandomStream()
	perm := make([]int, permSize)
	for i := range perm {
		perm[i] = i
	}
	for i := permSize - 1; i > 0; i-- {
		j := int(random.Int(big.NewInt(int64(i+1)), stream).Int64())
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}

// NewSeed draws a 64-bit seed from the cryptographic random stream, for
// callers that want a SeededShuffler without choosing the seed themselves.
func NewSeed() uint64 {
	b := random.Bits(64, false, suite.RandomStream())
	return binary.LittleEndian.Uint64(b)
}
