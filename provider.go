package chianti

import (
	"github.com/TobyPDE/chianti/internal/loader"
	"github.com/TobyPDE/chianti/internal/provider"
)

// TargetMode selects how a Provider encodes its target tensor.
type TargetMode = provider.TargetMode

const (
	// TargetDense packs targets as (B, Ht, Wt) int32, -1 for void.
	TargetDense = provider.TargetDense
	// TargetOneHot packs targets as (B, C, Ht, Wt) float32, an
	// all-zero class column for void.
	TargetOneHot = provider.TargetOneHot
)

// Batch is one fully assembled, packed training batch.
type Batch = provider.Batch

// Provider is the prefetching batch assembler: a dedicated worker
// goroutine loads, augments, and packs whole batches behind a
// single-slot, blocking handoff while the consumer works on the
// previous one.
type Provider = provider.Provider

// NewProvider wires an iterator, a pair loader, and an augmentor
// chain into a batching pipeline. batchSize must be positive;
// numClasses is only checked when mode is TargetOneHot. Call Init
// before the first Next.
func NewProvider(it Iterator, pairs *loader.Pair, augmentor Augmentor, batchSize, numClasses int, mode TargetMode) (*Provider, error) {
	return provider.New(it, pairs, augmentor, batchSize, numClasses, mode)
}
