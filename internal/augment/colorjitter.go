package augment

import (
	"github.com/TobyPDE/chianti/internal/imaging"
	"github.com/TobyPDE/chianti/internal/types"
)

// Saturation multiplies the HSV saturation channel by a random
// factor in [a, b], clamped back to [0, 1].
type Saturation struct {
	lo, hi float64
	rng    *seededRNG
}

// NewSaturation constructs a Saturation augmentor.
func NewSaturation(a, b float64, seed *uint64) *Saturation {
	return &Saturation{lo: a, hi: b, rng: newSeededRNG(seed)}
}

// Augment rescales the saturation channel of every pixel.
func (s *Saturation) Augment(pair *types.Pair) error {
	factor := float32(s.rng.Uniform(s.lo, s.hi))
	applyHSV(pair.Image, func(h, sat, v float32) (float32, float32, float32) {
		sat = clamp01(sat * factor)
		return h, sat, v
	})
	return nil
}

// Hue adds a random offset in [a, b] degrees to the HSV hue channel,
// wrapping modulo 360.
type Hue struct {
	lo, hi float64
	rng    *seededRNG
}

// NewHue constructs a Hue augmentor.
func NewHue(a, b float64, seed *uint64) *Hue {
	return &Hue{lo: a, hi: b, rng: newSeededRNG(seed)}
}

// Augment shifts the hue channel of every pixel.
func (hu *Hue) Augment(pair *types.Pair) error {
	offset := float32(hu.rng.Uniform(hu.lo, hu.hi))
	applyHSV(pair.Image, func(h, s, v float32) (float32, float32, float32) {
		h += offset
		if h >= 360 {
			h -= 360
		} else if h < 0 {
			h += 360
		}
		return h, s, v
	})
	return nil
}

// Brightness adds a random offset in [a, b] to every RGB channel,
// clamped back to [0, 1].
type Brightness struct {
	lo, hi float64
	rng    *seededRNG
}

// NewBrightness constructs a Brightness augmentor.
func NewBrightness(a, b float64, seed *uint64) *Brightness {
	return &Brightness{lo: a, hi: b, rng: newSeededRNG(seed)}
}

// Augment shifts every RGB channel of every pixel.
func (br *Brightness) Augment(pair *types.Pair) error {
	offset := float32(br.rng.Uniform(br.lo, br.hi))
	img := pair.Image
	for i := 0; i < img.H; i++ {
		for j := 0; j < img.W; j++ {
			r, g, b := img.At(i, j)
			img.Set(i, j, clamp01(r+offset), clamp01(g+offset), clamp01(b+offset))
		}
	}
	return nil
}

func applyHSV(img *types.Image, f func(h, s, v float32) (float32, float32, float32)) {
	for i := 0; i < img.H; i++ {
		for j := 0; j < img.W; j++ {
			r, g, b := img.At(i, j)
			h, s, v := imaging.RGBToHSV(r, g, b)
			h, s, v = f(h, s, v)
			nr, ng, nb := imaging.HSVToRGB(h, s, v)
			img.Set(i, j, nr, ng, nb)
		}
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
