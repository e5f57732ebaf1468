package augment

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"
)

// seededRNG wraps a PCG generator with a mutex, mirroring the
// mutex-guarded std::mt19937 each augmentor owns in the original
// implementation. Every augmentor embeds one instead of sharing a
// package-level generator, so concurrent batch workers never
// contend on an augmentor they don't use.
type seededRNG struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newSeededRNG(seed *uint64) *seededRNG {
	s := drawSeed()
	if seed != nil {
		s = *seed
	}
	return &seededRNG{rng: rand.New(rand.NewPCG(s, s^0xdeadbeefcafebabe))}
}

// Float64 draws a uniform value in [0, 1).
func (r *seededRNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64()
}

// Uniform draws a uniform value in [lo, hi).
func (r *seededRNG) Uniform(lo, hi float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return lo + r.rng.Float64()*(hi-lo)
}

// UniformInt draws a uniform integer in [lo, hi].
func (r *seededRNG) UniformInt(lo, hi int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return lo + r.rng.IntN(hi-lo+1)
}

func drawSeed() uint64 {
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		return 0x9e3779b97f4a7c15
	}
	return binary.LittleEndian.Uint64(buf[:])
}
