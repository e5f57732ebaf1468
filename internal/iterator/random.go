package iterator

import (
	"math/rand/v2"
	"sync"

	"github.com/TobyPDE/chianti/internal/types"
)

// Random hands out filename pairs in shuffled order ("epoch shuffle"):
// it draws a permutation of [0, N) once, yields elements in that key
// order, and re-shuffles with its own RNG whenever the key vector is
// exhausted.
type Random struct {
	mu     sync.Mutex
	pairs  []types.FilenamePair
	keys   []int
	cursor int
	seed   uint64
	rng    *rand.Rand
}

// NewRandom constructs a Random iterator. If seed is nil, a seed is
// drawn once from the platform's nondeterministic source.
func NewRandom(pairs []types.FilenamePair, seed *uint64) (*Random, error) {
	if len(pairs) == 0 {
		return nil, ErrEmptyContainer
	}
	s := drawSeed()
	if seed != nil {
		s = *seed
	}
	r := &Random{pairs: pairs, seed: s}
	r.reseed()
	r.shuffle()
	return r, nil
}

func (r *Random) reseed() {
	r.rng = rand.New(rand.NewPCG(r.seed, r.seed^0xdeadbeefcafebabe))
}

// shuffle draws a fresh permutation of [0, len(pairs)) and resets the
// cursor. Must be called with mu held, except during construction.
func (r *Random) shuffle() {
	keys := make([]int, len(r.pairs))
	for i := range keys {
		keys[i] = i
	}
	r.rng.Shuffle(len(keys), func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})
	r.keys = keys
	r.cursor = 0
}

// Next returns the next element in key order, re-shuffling on
// exhaustion.
func (r *Random) Next() types.FilenamePair {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cursor >= len(r.keys) {
		r.shuffle()
	}
	idx := r.keys[r.cursor]
	r.cursor++
	return r.pairs[idx]
}

// Reset re-seeds the RNG from the originally supplied seed and
// reshuffles, so the emission sequence starting from this point is
// identical to the sequence that followed construction.
func (r *Random) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reseed()
	r.shuffle()
}

// Count returns the number of pairs in the container.
func (r *Random) Count() int {
	return len(r.pairs)
}
