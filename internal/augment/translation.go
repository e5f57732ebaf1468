package augment

import (
	"fmt"

	"github.com/TobyPDE/chianti/internal/types"
)

// Translation shifts the image and label planes by a random integer
// offset, using reflect-without-repeat on the image plane and the
// void sentinel on the label plane for reads that land outside the
// original bounds.
type Translation struct {
	offset int
	rng    *seededRNG
}

// NewTranslation constructs a Translation augmentor. The offset in
// each axis is drawn uniformly from [-|offset|, |offset|].
func NewTranslation(offset int, seed *uint64) *Translation {
	if offset < 0 {
		offset = -offset
	}
	return &Translation{offset: offset, rng: newSeededRNG(seed)}
}

// Augment requires the image and target planes to share dimensions;
// mismatched planes are a fatal configuration error, not something
// to silently paper over.
func (a *Translation) Augment(pair *types.Pair) error {
	if !pair.SameSize() {
		return fmt.Errorf("chianti: translation requires image and target to share dimensions, got (%d,%d) and (%d,%d)",
			pair.Image.H, pair.Image.W, pair.Target.H, pair.Target.W)
	}

	tx := a.rng.UniformInt(-a.offset, a.offset)
	ty := a.rng.UniformInt(-a.offset, a.offset)

	h, w := pair.Image.H, pair.Image.W
	newImage := types.NewImage(h, w)
	newTarget := types.NewLabel(h, w)

	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			si := i + tx
			sj := j + ty
			outOfBounds := false

			for si < 0 || si >= h {
				if si < 0 {
					si = -si
				} else {
					si = 2*h - si - 1
				}
				outOfBounds = true
			}
			for sj < 0 || sj >= w {
				if sj < 0 {
					sj = -sj
				} else {
					sj = 2*w - sj - 1
				}
				outOfBounds = true
			}

			r, g, b := pair.Image.At(si, sj)
			newImage.Set(i, j, r, g, b)
			if !outOfBounds {
				newTarget.Set(i, j, pair.Target.At(si, sj))
			}
		}
	}

	pair.Image = newImage
	pair.Target = newTarget
	return nil
}
