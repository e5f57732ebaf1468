package loader

import (
	"image"
	"image/color"

	"github.com/TobyPDE/chianti/internal/types"
)

// Label loads a single-channel 8-bit label plane from disk. Pixel
// values are taken verbatim, no remapping is applied.
type Label struct{}

// NewLabel constructs a Label loader.
func NewLabel() *Label {
	return &Label{}
}

// Load decodes filename and returns its gray channel as a label
// plane.
func (l *Label) Load(filename string) (*types.Label, error) {
	src, err := decode(filename)
	if err != nil {
		return nil, err
	}
	return toLabelPlane(src), nil
}

// toLabelPlane converts any decoded image to an 8-bit gray label
// plane using the standard library's luminance-weighted gray model,
// the way a single-channel label PNG decodes regardless of the
// underlying codec's internal color model.
func toLabelPlane(src image.Image) *types.Label {
	bounds := src.Bounds()
	h, w := bounds.Dy(), bounds.Dx()
	out := types.NewLabel(h, w)
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			g := color.GrayModel.Convert(src.At(bounds.Min.X+j, bounds.Min.Y+i)).(color.Gray)
			out.Set(i, j, g.Y)
		}
	}
	return out
}
