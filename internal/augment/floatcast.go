package augment

import "github.com/TobyPDE/chianti/internal/types"

// FloatCast is a no-op on an already-decoded pair: loaders produce
// [0,1]-range float32 image planes directly, so this step exists to
// match the standard chain's declared first step and to give callers
// a type-compatible placeholder when composing a chain from
// configuration.
type FloatCast struct{}

// NewFloatCast constructs a FloatCast augmentor.
func NewFloatCast() *FloatCast {
	return &FloatCast{}
}

// Augment leaves the pair untouched.
func (a *FloatCast) Augment(pair *types.Pair) error {
	return nil
}
