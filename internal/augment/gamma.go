package augment

import (
	"math"

	"github.com/TobyPDE/chianti/internal/types"
)

// Gamma applies a random gamma-correction curve to the image plane.
// The label plane is untouched.
type Gamma struct {
	lo, hi float64
	rng    *seededRNG
}

// NewGamma constructs a Gamma augmentor. strength is clamped to
// [0, 0.5] and the draw range is [-strength, strength]; seed may be
// nil to draw from the platform's nondeterministic source.
func NewGamma(strength float64, seed *uint64) *Gamma {
	s := math.Min(0.5, math.Max(0, strength))
	return &Gamma{lo: math.Max(-0.5, -s), hi: s, rng: newSeededRNG(seed)}
}

// Augment draws gamma ~ U(lo, hi), transforms it through the
// perceptual-gamma formula, and raises every image channel to the
// resulting power.
func (a *Gamma) Augment(pair *types.Pair) error {
	gamma := a.rng.Uniform(a.lo, a.hi)

	const invSqrt2 = 1.0 / math.Sqrt2
	gammaPrime := math.Log(0.5+invSqrt2*gamma) / math.Log(0.5-invSqrt2*gamma)
	exp := float32(gammaPrime)

	img := pair.Image
	for i := range img.Data {
		img.Data[i] = powf32(img.Data[i], exp)
	}
	return nil
}

func powf32(base, exp float32) float32 {
	return float32(math.Pow(float64(base), float64(exp)))
}
