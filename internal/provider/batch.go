package provider

import (
	"github.com/google/uuid"

	"github.com/TobyPDE/chianti/internal/tensor"
)

// TargetMode selects how the target tensor encodes the void
// sentinel and per-pixel class. Both forms existed as separate
// provider variants; here they are a single construction-time choice
// instead of two divergent implementations.
type TargetMode int

const (
	// TargetDense packs targets as (B, Ht, Wt) int32, -1 for void.
	TargetDense TargetMode = iota
	// TargetOneHot packs targets as (B, C, Ht, Wt) float32, an
	// all-zero class column for void.
	TargetOneHot
)

// Batch is one fully assembled, packed training batch.
type Batch struct {
	// ID identifies this batch in logs, independent of its position
	// in the epoch; useful for correlating a slow or failed batch
	// across a training run's logs.
	ID uuid.UUID
	// Images has shape (B, 3, H, W), channel order R,G,B.
	Images *tensor.Tensor[float32]
	// DenseTargets has shape (B, Ht, Wt); populated when Mode is
	// TargetDense.
	DenseTargets *tensor.Tensor[int32]
	// OneHotTargets has shape (B, C, Ht, Wt); populated when Mode is
	// TargetOneHot.
	OneHotTargets *tensor.Tensor[float32]
	Mode          TargetMode
}
