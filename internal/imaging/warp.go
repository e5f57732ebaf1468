package imaging

import (
	"math"

	"github.com/TobyPDE/chianti/internal/types"
)

// RotateImageBilinear rotates an image plane by angleDeg degrees about
// its center, sampling the source with bilinear interpolation. Pixels
// that map outside the source bounds are filled with zero.
func RotateImageBilinear(src *types.Image, angleDeg float64) *types.Image {
	dst := types.NewImage(src.H, src.W)
	sin, cos := sincos(angleDeg)
	cx, cy := float64(src.W/2), float64(src.H/2)

	for y := 0; y < src.H; y++ {
		for x := 0; x < src.W; x++ {
			sx, sy := inverseRotate(x, y, cx, cy, sin, cos)
			r, g, b := bilinearSampleImage(src, sx, sy)
			dst.Set(y, x, r, g, b)
		}
	}
	return dst
}

// RotateLabelNearest rotates a label plane by angleDeg degrees about
// its center, sampling the source with nearest-neighbor interpolation.
// Pixels that map outside the source bounds are filled with the void
// label.
func RotateLabelNearest(src *types.Label, angleDeg float64) *types.Label {
	dst := types.NewLabel(src.H, src.W)
	sin, cos := sincos(angleDeg)
	cx, cy := float64(src.W/2), float64(src.H/2)

	for y := 0; y < src.H; y++ {
		for x := 0; x < src.W; x++ {
			sx, sy := inverseRotate(x, y, cx, cy, sin, cos)
			ix := int(math.Round(sx))
			iy := int(math.Round(sy))
			if ix < 0 || ix >= src.W || iy < 0 || iy >= src.H {
				continue // dst already initialized to the void label
			}
			dst.Set(y, x, src.At(iy, ix))
		}
	}
	return dst
}

func sincos(angleDeg float64) (sin, cos float64) {
	rad := angleDeg * math.Pi / 180
	return math.Sin(rad), math.Cos(rad)
}

// inverseRotate maps a destination pixel (x, y) back to the source
// plane under a forward rotation of the source by angle (encoded as
// sin/cos) about (cx, cy).
func inverseRotate(x, y int, cx, cy, sin, cos float64) (sx, sy float64) {
	dx := float64(x) - cx
	dy := float64(y) - cy
	sx = cx + dx*cos + dy*sin
	sy = cy - dx*sin + dy*cos
	return
}

func bilinearSampleImage(img *types.Image, x, y float64) (r, g, b float32) {
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	x1 := x0 + 1
	y1 := y0 + 1
	fx := float32(x - float64(x0))
	fy := float32(y - float64(y0))

	r00, g00, b00 := sampleOrZero(img, y0, x0)
	r10, g10, b10 := sampleOrZero(img, y0, x1)
	r01, g01, b01 := sampleOrZero(img, y1, x0)
	r11, g11, b11 := sampleOrZero(img, y1, x1)

	r = lerp2(r00, r10, r01, r11, fx, fy)
	g = lerp2(g00, g10, g01, g11, fx, fy)
	b = lerp2(b00, b10, b01, b11, fx, fy)
	return
}

func sampleOrZero(img *types.Image, i, j int) (r, g, b float32) {
	if i < 0 || i >= img.H || j < 0 || j >= img.W {
		return 0, 0, 0
	}
	return img.At(i, j)
}

func lerp2(v00, v10, v01, v11, fx, fy float32) float32 {
	top := v00 + (v10-v00)*fx
	bot := v01 + (v11-v01)*fx
	return top + (bot-top)*fy
}
