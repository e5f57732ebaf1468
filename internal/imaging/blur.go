package imaging

import (
	"math"

	"github.com/TobyPDE/chianti/internal/types"
)

// GaussianKernel builds a normalized 1D Gaussian kernel for standard
// deviation sigma. Its width is 3*ceil(sigma), forced to the next odd
// number, matching the kernel-sizing rule the rest of the pipeline's
// blur augmentor relies on.
func GaussianKernel(sigma float64) []float64 {
	width := 3 * int(math.Ceil(sigma))
	if width%2 == 0 {
		width++
	}
	if width < 1 {
		width = 1
	}
	radius := width / 2

	kernel := make([]float64, width)
	sum := 0.0
	for i := -radius; i <= radius; i++ {
		v := math.Exp(-float64(i*i) / (2 * sigma * sigma))
		kernel[i+radius] = v
		sum += v
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}

// Blur applies a separable Gaussian blur to an image plane using the
// given per-axis kernels, with replicated (clamp-to-edge) borders.
func Blur(src *types.Image, kernelX, kernelY []float64) *types.Image {
	tmp := convolveHorizontal(src, kernelX)
	return convolveVertical(tmp, kernelY)
}

func convolveHorizontal(src *types.Image, kernel []float64) *types.Image {
	dst := types.NewImage(src.H, src.W)
	radius := len(kernel) / 2
	for i := 0; i < src.H; i++ {
		for j := 0; j < src.W; j++ {
			var r, g, b float64
			for k, w := range kernel {
				jj := clampIndex(j+k-radius, src.W)
				rr, gg, bb := src.At(i, jj)
				r += float64(rr) * w
				g += float64(gg) * w
				b += float64(bb) * w
			}
			dst.Set(i, j, float32(r), float32(g), float32(b))
		}
	}
	return dst
}

func convolveVertical(src *types.Image, kernel []float64) *types.Image {
	dst := types.NewImage(src.H, src.W)
	radius := len(kernel) / 2
	for i := 0; i < src.H; i++ {
		for j := 0; j < src.W; j++ {
			var r, g, b float64
			for k, w := range kernel {
				ii := clampIndex(i+k-radius, src.H)
				rr, gg, bb := src.At(ii, j)
				r += float64(rr) * w
				g += float64(gg) * w
				b += float64(bb) * w
			}
			dst.Set(i, j, float32(r), float32(g), float32(b))
		}
	}
	return dst
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
