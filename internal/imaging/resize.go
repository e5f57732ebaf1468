package imaging

import (
	"image"
	"image/color"

	"github.com/bamiaux/rez"

	"github.com/TobyPDE/chianti/internal/types"
)

// ResizeLanczosImage resizes an image plane to (newH, newW) using a
// Lanczos resampling kernel. Each of the three channels is resized
// independently through github.com/bamiaux/rez, which operates on
// standard library image.Image values; channel data is round-tripped
// through an 8-bit intermediate the way the rest of the rez ecosystem
// (and the original OpenCV-backed implementation) does.
func ResizeLanczosImage(src *types.Image, newH, newW int) (*types.Image, error) {
	dst := types.NewImage(newH, newW)

	for c := 0; c < 3; c++ {
		srcPlane := image.NewGray(image.Rect(0, 0, src.W, src.H))
		for i := 0; i < src.H; i++ {
			for j := 0; j < src.W; j++ {
				srcPlane.SetGray(j, i, color.Gray{Y: toByte(planeAt(src, i, j, c))})
			}
		}

		dstPlane := image.NewGray(image.Rect(0, 0, newW, newH))
		if err := rez.Convert(dstPlane, srcPlane, rez.NewLanczosFilter(3)); err != nil {
			return nil, err
		}

		for i := 0; i < newH; i++ {
			for j := 0; j < newW; j++ {
				setPlaneAt(dst, i, j, c, fromByte(dstPlane.GrayAt(j, i).Y))
			}
		}
	}

	return dst, nil
}

// ResizeNearestLabel resizes a label plane to (newH, newW) by nearest
// neighbor sampling. Label values must never be interpolated, so this
// is implemented directly rather than through a continuous-signal
// resizer.
func ResizeNearestLabel(src *types.Label, newH, newW int) *types.Label {
	dst := types.NewLabel(newH, newW)
	for i := 0; i < newH; i++ {
		si := nearestIndex(i, newH, src.H)
		for j := 0; j < newW; j++ {
			sj := nearestIndex(j, newW, src.W)
			dst.Set(i, j, src.At(si, sj))
		}
	}
	return dst
}

func nearestIndex(dstIdx, dstLen, srcLen int) int {
	idx := int(float64(dstIdx) * float64(srcLen) / float64(dstLen))
	if idx >= srcLen {
		idx = srcLen - 1
	}
	return idx
}

func planeAt(img *types.Image, i, j, c int) float32 {
	r, g, b := img.At(i, j)
	switch c {
	case 0:
		return r
	case 1:
		return g
	default:
		return b
	}
}

func setPlaneAt(img *types.Image, i, j, c int, v float32) {
	r, g, b := img.At(i, j)
	switch c {
	case 0:
		r = v
	case 1:
		g = v
	default:
		b = v
	}
	img.Set(i, j, r, g, b)
}

func toByte(v float32) uint8 {
	scaled := v * 255
	if scaled <= 0 {
		return 0
	}
	if scaled >= 255 {
		return 255
	}
	return uint8(scaled + 0.5)
}

func fromByte(v uint8) float32 {
	return float32(v) / 255
}
