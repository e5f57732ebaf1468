package augment

import (
	"math"

	"github.com/TobyPDE/chianti/internal/imaging"
	"github.com/TobyPDE/chianti/internal/types"
)

// Blur applies a random-strength Gaussian blur to the image plane.
// The label plane is untouched.
type Blur struct {
	sigmaMax float64
	rng      *seededRNG
}

// NewBlur constructs a Blur augmentor. If sigmaMax <= 0, Augment is a
// no-op.
func NewBlur(sigmaMax float64, seed *uint64) *Blur {
	return &Blur{sigmaMax: sigmaMax, rng: newSeededRNG(seed)}
}

// Augment draws sigma ~ U(0, sigmaMax) and blurs the image plane with
// a separable Gaussian kernel of width 3*ceil(sigma), forced odd.
func (a *Blur) Augment(pair *types.Pair) error {
	if a.sigmaMax <= 0 {
		return nil
	}
	sigma := a.rng.Uniform(0, a.sigmaMax)
	if sigma <= 0 {
		return nil
	}
	kernel := imaging.GaussianKernel(math.Max(sigma, 1e-6))
	pair.Image = imaging.Blur(pair.Image, kernel, kernel)
	return nil
}
