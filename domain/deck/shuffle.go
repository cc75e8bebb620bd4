package deck

import (
	"math/big"
	"math/rand/v2"

	"go.dedis.ch/kyber/v4/suites"
	"go.dedis.ch/kyber/v4/util/random"
)

// Shuffler produces uniform random permutations of [0, n).
type Shuffler interface {
	Perm(n int) ([]int, error)
}

var suite suites.Suite = suites.MustFind("Ed25519")

// CryptoShuffler draws its permutations from the Ed25519 suite's random
// stream, which is seeded from the operating system.
type CryptoShuffler struct{}

// NewCryptoShuffler returns the shuffler used for real games.
func NewCryptoShuffler() CryptoShuffler {
	return CryptoShuffler{}
}

// Perm runs a Fisher-Yates shuffle over the identity permutation.
func (CryptoShuffler) Perm(n int) ([]int, error) {
	stream := suite.RandomStream()
	perm := identity(n)
	for i := n - 1; i > 0; i-- {
		j := int(random.Int(big.NewInt(int64(i+1)), stream).Int64())
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm, nil
}

// SeededShuffler is a deterministic shuffler for replays and tests. Two
// shufflers built with the same seed yield the same sequence of permutations.
type SeededShuffler struct {
	rng *rand.Rand
}

func NewSeededShuffler(seed uint64) *SeededShuffler {
	return &SeededShuffler{rng: rand.New(rand.NewPCG(seed, seed))}
}

func (s *SeededShuffler) Perm(n int) ([]int, error) {
	return s.rng.Perm(n), nil
}

func identity(n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	return perm
}
