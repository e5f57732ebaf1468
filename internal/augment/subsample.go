package augment

import (
	"fmt"

	"github.com/TobyPDE/chianti/internal/imaging"
	"github.com/TobyPDE/chianti/internal/types"
)

// Subsample shrinks an image/label pair by an integer factor. The
// image plane is resized with Lanczos resampling; the label plane is
// resized by per-tile majority vote, the only resampling rule that
// does not invent label values or blend classes at boundaries.
type Subsample struct {
	factor int
}

// NewSubsample constructs a Subsample augmentor. factor must be a
// positive integer.
func NewSubsample(factor int) (*Subsample, error) {
	if factor <= 0 {
		return nil, fmt.Errorf("chianti: subsample factor must be positive, got %d", factor)
	}
	return &Subsample{factor: factor}, nil
}

// Augment resizes both planes to (H/f, W/f).
func (a *Subsample) Augment(pair *types.Pair) error {
	f := a.factor
	newH := pair.Image.H / f
	newW := pair.Image.W / f

	resized, err := imaging.ResizeLanczosImage(pair.Image, newH, newW)
	if err != nil {
		return fmt.Errorf("chianti: subsample resize: %w", err)
	}
	pair.Image = resized
	pair.Target = voteResizeLabel(pair.Target, f, newH, newW)
	return nil
}

// voteResizeLabel implements the per-tile majority-vote downsample:
// for each output pixel, build a histogram of the f*f input block
// and take the argmax bin. If the winning bin's count does not
// strictly exceed half the tile area, the pixel is void — the tile
// did not have a clear majority class.
func voteResizeLabel(src *types.Label, f, newH, newW int) *types.Label {
	dst := types.NewLabel(newH, newW)
	halfRegion := f * f / 2

	var histogram [256]int
	for i := 0; i < newH; i++ {
		for j := 0; j < newW; j++ {
			for k := range histogram {
				histogram[k] = 0
			}
			for si := i * f; si < (i+1)*f; si++ {
				for sj := j * f; sj < (j+1)*f; sj++ {
					histogram[src.At(si, sj)]++
				}
			}

			mode := 0
			for k := 1; k < 256; k++ {
				if histogram[k] > histogram[mode] {
					mode = k
				}
			}

			if histogram[mode] > halfRegion {
				dst.Set(i, j, uint8(mode))
			} else {
				dst.Set(i, j, types.VoidLabel8)
			}
		}
	}
	return dst
}
