package loader

import (
	"fmt"

	"github.com/TobyPDE/chianti/internal/types"
)

// rgbKey is an 8-bit-per-channel RGB triple, used as a map key the
// way the original implementation keys a color table by pixel value.
type rgbKey struct {
	r, g, b uint8
}

// ColorMapper loads a color-encoded label image and maps each
// distinct RGB color to an 8-bit class id. Any color that is not a
// key in the map is a fatal, file-identifying error: a silently
// unmapped color would corrupt supervision for every pixel of that
// color.
type ColorMapper struct {
	colors map[rgbKey]uint8
}

// NewColorMapper constructs a ColorMapper loader from an RGB-to-class
// table.
func NewColorMapper(colors map[[3]uint8]uint8) *ColorMapper {
	m := &ColorMapper{colors: make(map[rgbKey]uint8, len(colors))}
	for k, v := range colors {
		m.colors[rgbKey{k[0], k[1], k[2]}] = v
	}
	return m
}

// Load decodes filename and maps every pixel's color to its class id.
func (l *ColorMapper) Load(filename string) (*types.Label, error) {
	src, err := decode(filename)
	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	h, w := bounds.Dy(), bounds.Dx()
	out := types.NewLabel(h, w)

	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			r, g, b, _ := src.At(bounds.Min.X+j, bounds.Min.Y+i).RGBA()
			key := rgbKey{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
			v, ok := l.colors[key]
			if !ok {
				return nil, fmt.Errorf("chianti: unknown color (%d, %d, %d) in image %q",
					key.r, key.g, key.b, filename)
			}
			out.Set(i, j, v)
		}
	}
	return out, nil
}
