package chianti

import "github.com/TobyPDE/chianti/internal/augment"

// Augmentor mutates an image/label pair in place under some
// stochastic or deterministic policy.
type Augmentor = augment.Augmentor

// NewCombinedAugmentor applies a fixed sequence of augmentors in
// declared order.
func NewCombinedAugmentor(steps ...Augmentor) *augment.Combined {
	return augment.NewCombined(steps...)
}

// NewFloatCastAugmentor is a type-compatible placeholder matching the
// standard chain's declared first step; loaders already emit
// [0,1]-range float32 image planes.
func NewFloatCastAugmentor() *augment.FloatCast {
	return augment.NewFloatCast()
}

// NewSubsampleAugmentor shrinks an image/label pair by an integer
// factor: Lanczos resize for the image plane, per-tile majority vote
// for the label plane.
func NewSubsampleAugmentor(factor int) (*augment.Subsample, error) {
	return augment.NewSubsample(factor)
}

// NewGammaAugmentor applies a random gamma-correction curve to the
// image plane. strength is clamped to [0, 0.5].
func NewGammaAugmentor(strength float64, seed *uint64) *augment.Gamma {
	return augment.NewGamma(strength, seed)
}

// NewTranslationAugmentor shifts both planes by a random integer
// offset in [-offset, offset] per axis, reflecting the image plane
// and voiding out-of-bounds label reads.
func NewTranslationAugmentor(offset int, seed *uint64) *augment.Translation {
	return augment.NewTranslation(offset, seed)
}

// NewZoomingAugmentor resizes both planes by a random factor in
// (1-r, 1+r) and recenters them onto a canvas of the original size.
func NewZoomingAugmentor(r float64, seed *uint64) *augment.Zoom {
	return augment.NewZoom(r, seed)
}

// NewRotationAugmentor rotates both planes about the image center by
// a random angle in [-maxAngle, maxAngle] degrees.
func NewRotationAugmentor(maxAngle float64, seed *uint64) *augment.Rotate {
	return augment.NewRotate(maxAngle, seed)
}

// NewSaturationAugmentor multiplies the HSV saturation channel by a
// random factor in [a, b], clamped to [0, 1].
func NewSaturationAugmentor(a, b float64, seed *uint64) *augment.Saturation {
	return augment.NewSaturation(a, b, seed)
}

// NewHueAugmentor adds a random offset in [a, b] degrees to the HSV
// hue channel, wrapping modulo 360.
func NewHueAugmentor(a, b float64, seed *uint64) *augment.Hue {
	return augment.NewHue(a, b, seed)
}

// NewBrightnessAugmentor adds a random offset in [a, b] to every RGB
// channel, clamped to [0, 1].
func NewBrightnessAugmentor(a, b float64, seed *uint64) *augment.Brightness {
	return augment.NewBrightness(a, b, seed)
}

// NewBlurAugmentor applies a random-strength Gaussian blur to the
// image plane. If sigmaMax <= 0, it is a no-op.
func NewBlurAugmentor(sigmaMax float64, seed *uint64) *augment.Blur {
	return augment.NewBlur(sigmaMax, seed)
}

// NewCropAugmentor extracts a size x size window, sampled with
// probability proportional to the class-entropy of its label
// histogram.
func NewCropAugmentor(size, numClasses int, seed *uint64) *augment.Crop {
	return augment.NewCrop(size, numClasses, seed)
}

// NewCityscapesLabelRemapAugmentor applies the fixed 34-entry
// Cityscapes raw-id to training-id table.
func NewCityscapesLabelRemapAugmentor() *augment.CityscapesLabelRemap {
	return augment.NewCityscapesLabelRemap()
}
