package random

import (
	"math/rand/v2"

	"lukechampine.com/frand"
)

// Random provides random number generation that can be mocked for testing
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int

	// Float64 returns a random float in [0.0, 1.0)
	Float64() float64

	// NormFloat64 returns a standard normally distributed float (mean 0, stddev 1)
	NormFloat64() float64

	// String generates a random string of the given length from the given alphabet
	String(length int, alphabet string) string
}

// SourceRandom implements Random on top of a math/rand/v2 generator
type SourceRandom struct {
	rng *rand.Rand
}

// New creates a SourceRandom seeded from system entropy
func New() *SourceRandom {
	return &SourceRandom{rng: rand.New(rand.NewChaCha8(frand.Entropy256()))}
}

// NewSeeded creates a SourceRandom whose sequence is fully determined by seed
func NewSeeded(seed uint64) *SourceRandom {
	return &SourceRandom{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Intn returns a random int in [0, n)
func (r *SourceRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.IntN(n)
}

// Float64 returns a random float in [0.0, 1.0)
func (r *SourceRandom) Float64() float64 {
	return r.rng.Float64()
}

// NormFloat64 returns a standard normally distributed float
func (r *SourceRandom) NormFloat64() float64 {
	return r.rng.NormFloat64()
}

// String generates a random string of the given length from the given alphabet
func (r *SourceRandom) String(length int, alphabet string) string {
	if length <= 0 || len(alphabet) == 0 {
		return ""
	}
	result := make([]byte, length)
	for i := 0; i < length; i++ {
		result[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(result)
}
