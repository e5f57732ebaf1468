package iterator

import (
	"sync"

	"github.com/TobyPDE/chianti/internal/types"
)

// Sequential visits filename pairs in declared order, wrapping to the
// beginning once the end is reached. The provider derives epoch
// boundaries from Count()/batchSize, not from any end-of-iterator
// signal; wrapping happens transparently mid-batch.
type Sequential struct {
	mu     sync.Mutex
	pairs  []types.FilenamePair
	cursor int
}

// NewSequential constructs a Sequential iterator over pairs. Returns
// ErrEmptyContainer if pairs is empty.
func NewSequential(pairs []types.FilenamePair) (*Sequential, error) {
	if len(pairs) == 0 {
		return nil, ErrEmptyContainer
	}
	return &Sequential{pairs: pairs}, nil
}

// Next returns the next filename pair, wrapping to index 0 past the end.
func (s *Sequential) Next() types.FilenamePair {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cursor >= len(s.pairs) {
		s.cursor = 0
	}
	p := s.pairs[s.cursor]
	s.cursor++
	return p
}

// Reset rewinds the cursor to the beginning.
func (s *Sequential) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor = 0
}

// Count returns the number of pairs in the container.
func (s *Sequential) Count() int {
	return len(s.pairs)
}
