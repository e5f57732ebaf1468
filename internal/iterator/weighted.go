package iterator

import (
	"math"
	"math/rand/v2"
	"sort"
	"sync"

	"github.com/TobyPDE/chianti/internal/types"
)

// WeightedRandom draws an independent sample per call from a
// normalized-weight distribution via inverse-CDF lookup. Negative
// weights are folded to their absolute value before normalization.
type WeightedRandom struct {
	mu    sync.Mutex
	pairs []types.FilenamePair
	cum   []float64 // cumulative normalized weights, cum[len-1] == 1 (modulo float error)
	seed  uint64
	rng   *rand.Rand
}

// NewWeightedRandom constructs a WeightedRandom iterator. weights must
// have the same length as pairs and must not all fold to zero.
func NewWeightedRandom(pairs []types.FilenamePair, weights []float64, seed *uint64) (*WeightedRandom, error) {
	if len(pairs) == 0 {
		return nil, ErrEmptyContainer
	}
	if len(weights) != len(pairs) {
		return nil, ErrWeightCountMismatch
	}

	sum := 0.0
	abs := make([]float64, len(weights))
	for i, w := range weights {
		abs[i] = math.Abs(w)
		sum += abs[i]
	}
	if sum == 0 {
		return nil, ErrAllZeroWeights
	}

	cum := make([]float64, len(abs))
	running := 0.0
	for i, w := range abs {
		running += w / sum
		cum[i] = running
	}

	s := drawSeed()
	if seed != nil {
		s = *seed
	}
	wr := &WeightedRandom{pairs: pairs, cum: cum, seed: s}
	wr.reseed()
	return wr, nil
}

func (w *WeightedRandom) reseed() {
	w.rng = rand.New(rand.NewPCG(w.seed, w.seed^0xdeadbeefcafebabe))
}

// Next draws u ~ U(0,1) and returns the element whose cumulative
// interval [c_{k-1}, c_k) contains u. If rounding pushes u past the
// last boundary, the last element is returned.
func (w *WeightedRandom) Next() types.FilenamePair {
	w.mu.Lock()
	defer w.mu.Unlock()

	u := w.rng.Float64()
	idx := sort.Search(len(w.cum), func(i int) bool { return w.cum[i] > u })
	if idx == len(w.cum) {
		idx = len(w.cum) - 1
	}
	return w.pairs[idx]
}

// Reset re-seeds the RNG from the originally supplied seed. The weight
// distribution itself never changes.
func (w *WeightedRandom) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.reseed()
}

// Count returns the number of pairs in the container.
func (w *WeightedRandom) Count() int {
	return len(w.pairs)
}
