package augment

import (
	"github.com/TobyPDE/chianti/internal/imaging"
	"github.com/TobyPDE/chianti/internal/types"
)

// Zoom resizes both planes by a random factor and then either
// center-crops (zooming in) or center-embeds (zooming out) back to
// the original size.
type Zoom struct {
	factor float64
	rng    *seededRNG
}

// NewZoom constructs a Zoom augmentor. The resize factor is drawn
// from U(1-r, 1+r).
func NewZoom(r float64, seed *uint64) *Zoom {
	return &Zoom{factor: r, rng: newSeededRNG(seed)}
}

// Augment resizes both planes to floor(H*f), floor(W*f) and recenters
// them onto a canvas of the original size, filling uncovered area
// with zero (image) or void (target).
func (a *Zoom) Augment(pair *types.Pair) error {
	f := a.rng.Uniform(1-a.factor, 1+a.factor)

	h, w := pair.Image.H, pair.Image.W
	newH := int(float64(h) * f)
	newW := int(float64(w) * f)
	if newH < 1 {
		newH = 1
	}
	if newW < 1 {
		newW = 1
	}

	resizedImage, err := imaging.ResizeLanczosImage(pair.Image, newH, newW)
	if err != nil {
		return err
	}
	resizedTarget := imaging.ResizeNearestLabel(pair.Target, newH, newW)

	outImage := types.NewImage(h, w)
	outTarget := types.NewLabel(h, w)

	if f > 1 {
		// Zoomed in: the resized plane is bigger than the canvas, crop
		// its center.
		rowOffset := (newH - h) / 2
		colOffset := (newW - w) / 2
		for i := 0; i < h; i++ {
			for j := 0; j < w; j++ {
				r, g, b := resizedImage.At(i+rowOffset, j+colOffset)
				outImage.Set(i, j, r, g, b)
				outTarget.Set(i, j, resizedTarget.At(i+rowOffset, j+colOffset))
			}
		}
	} else {
		// Zoomed out: the resized plane is smaller than the canvas,
		// embed it at the center; the rest stays at the zero/void fill
		// NewImage/NewLabel already provide.
		rowOffset := (h - newH) / 2
		colOffset := (w - newW) / 2
		for i := 0; i < newH; i++ {
			for j := 0; j < newW; j++ {
				r, g, b := resizedImage.At(i, j)
				outImage.Set(i+rowOffset, j+colOffset, r, g, b)
				outTarget.Set(i+rowOffset, j+colOffset, resizedTarget.At(i, j))
			}
		}
	}

	pair.Image = outImage
	pair.Target = outTarget
	return nil
}
