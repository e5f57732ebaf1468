package augment

import (
	"github.com/TobyPDE/chianti/internal/imaging"
	"github.com/TobyPDE/chianti/internal/types"
)

// Rotate rotates both planes about the image center by a random
// angle, bilinear-sampling the image and nearest-sampling the label
// with constant void fill outside the source bounds.
type Rotate struct {
	maxAngle float64
	rng      *seededRNG
}

// NewRotate constructs a Rotate augmentor. The angle is drawn from
// U(-maxAngle, maxAngle); negative draws are folded into [0, 360) the
// way the reference implementation does before building its rotation
// matrix.
func NewRotate(maxAngle float64, seed *uint64) *Rotate {
	return &Rotate{maxAngle: maxAngle, rng: newSeededRNG(seed)}
}

// Augment applies the rotation to both planes.
func (a *Rotate) Augment(pair *types.Pair) error {
	angle := a.rng.Uniform(-a.maxAngle, a.maxAngle)
	if angle < 0 {
		angle += 360
	}

	pair.Image = imaging.RotateImageBilinear(pair.Image, angle)
	pair.Target = imaging.RotateLabelNearest(pair.Target, angle)
	return nil
}
