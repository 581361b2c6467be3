package quiz

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand"
	"sync"
)

// Source yields uniform integers in [0, n). It picks which wrong option
// gets eliminated.
type Source interface {
	Intn(n int) int
}

// seededSource is a deterministic Source for reproducible games and tests.
type seededSource struct {
	mu  sync.Mutex
	rng *mrand.Rand
}

// NewSeededSource returns a deterministic Source. The same seed always
// eliminates the same options for the same sequence of picks.
func NewSeededSource(seed int64) Source {
	return &seededSource{rng: mrand.New(mrand.NewSource(seed))}
}

func (s *seededSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

type cryptoSource struct{}

// NewCryptoSource returns a Source backed by crypto/rand.
func NewCryptoSource() Source {
	return cryptoSource{}
}

// Intn panics if n <= 0 or crypto/rand fails.
func (cryptoSource) Intn(n int) int {
	if n <= 0 {
		panic("quiz: Intn called with n <= 0")
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("quiz: crypto/rand failure: " + err.Error())
	}
	return int(v.Int64())
}
