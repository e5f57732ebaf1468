package loader

import (
	"github.com/TobyPDE/chianti/internal/types"
)

// RGB loads a color source image and converts it to a [0,1]-range,
// pixel-interleaved RGB types.Image plane.
type RGB struct{}

// NewRGB constructs an RGB loader.
func NewRGB() *RGB {
	return &RGB{}
}

// Load decodes filename and returns it as a floating-point RGB image.
func (l *RGB) Load(filename string) (*types.Image, error) {
	src, err := decode(filename)
	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	h, w := bounds.Dy(), bounds.Dx()
	out := types.NewImage(h, w)

	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			r, g, b, _ := src.At(bounds.Min.X+j, bounds.Min.Y+i).RGBA()
			out.Set(i, j, to01(r), to01(g), to01(b))
		}
	}
	return out, nil
}

// to01 converts a color.Color's 16-bit-per-channel component to the
// [0, 1] floating point range.
func to01(v uint32) float32 {
	return float32(v) / 0xffff
}
