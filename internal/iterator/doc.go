// Package iterator implements the three filename-selection policies the
// provider's prefetch workers pull from: Sequential, Random (epoch
// shuffle) and WeightedRandom (independent inverse-CDF sampling).
//
// # Concurrency
//
// Next is called from every prefetch worker concurrently. Each
// implementation serializes its mutable state (cursor, RNG, shuffle
// vector) behind a single mutex; the returned FilenamePair is an
// independent copy so callers never race on it.
//
// # Determinism
//
// Random and WeightedRandom accept an optional seed. When omitted, a
// seed is drawn once from the platform's nondeterministic source
// (crypto/rand) at construction time. Reset re-seeds from the
// originally supplied (or originally drawn) seed, so two iterators
// constructed with the same seed and driven through the same number of
// Next calls between Reset boundaries produce byte-identical sequences.
package iterator
