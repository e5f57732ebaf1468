package chianti

import (
	"github.com/TobyPDE/chianti/internal/iterator"
	"github.com/TobyPDE/chianti/internal/types"
)

// Iterator produces filename pairs under some selection policy. See
// internal/types.Iterator for the full contract.
type Iterator = types.Iterator

// NewSequentialIterator produces pairs in container order, wrapping
// to the start when exhausted.
func NewSequentialIterator(pairs []FilenamePair) (*iterator.Sequential, error) {
	return iterator.NewSequential(pairs)
}

// NewRandomIterator produces pairs via an epoch shuffle: a fresh
// permutation of the container each time it is exhausted. If seed is
// nil, a seed is drawn once from the platform's nondeterministic
// source.
func NewRandomIterator(pairs []FilenamePair, seed *uint64) (*iterator.Random, error) {
	return iterator.NewRandom(pairs, seed)
}

// NewWeightedRandomIterator draws an independent sample per call from
// a normalized-weight distribution over the container. weights must
// have the same length as pairs and must not all fold to zero.
func NewWeightedRandomIterator(pairs []FilenamePair, weights []float64, seed *uint64) (*iterator.WeightedRandom, error) {
	return iterator.NewWeightedRandom(pairs, weights, seed)
}
