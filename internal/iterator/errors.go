package iterator

import "errors"

// ErrEmptyContainer is returned when an iterator is constructed over,
// or asked to draw from, an empty file list.
var ErrEmptyContainer = errors.New("chianti/iterator: container is empty")

// ErrWeightCountMismatch is returned when WeightedRandom is constructed
// with a different number of weights than files.
var ErrWeightCountMismatch = errors.New("chianti/iterator: number of weights differs from number of elements")

// ErrAllZeroWeights is returned when every weight normalizes to zero.
var ErrAllZeroWeights = errors.New("chianti/iterator: weights are all zero")
