package imaging

import (
	"math"
	"testing"

	"github.com/TobyPDE/chianti/internal/types"
)

func TestResizeNearestLabelPreservesValues(t *testing.T) {
	src := types.NewLabel(2, 2)
	src.Set(0, 0, 1)
	src.Set(0, 1, 2)
	src.Set(1, 0, 3)
	src.Set(1, 1, 4)

	dst := ResizeNearestLabel(src, 4, 4)
	if dst.H != 4 || dst.W != 4 {
		t.Fatalf("got size %dx%d, want 4x4", dst.H, dst.W)
	}
	// Every value in the upsampled plane must be one that existed in
	// the source; nearest-neighbor never invents new labels.
	seen := map[uint8]bool{1: true, 2: true, 3: true, 4: true}
	for _, v := range dst.Data {
		if !seen[v] {
			t.Fatalf("unexpected label value %d introduced by nearest resize", v)
		}
	}
}

func TestGaussianKernelOddWidthAndNormalized(t *testing.T) {
	k := GaussianKernel(1.6)
	if len(k)%2 != 1 {
		t.Fatalf("kernel width %d is not odd", len(k))
	}
	sum := 0.0
	for _, w := range k {
		sum += w
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Fatalf("kernel does not sum to 1: %v", sum)
	}
}

func TestRotateLabelZeroAngleIsIdentity(t *testing.T) {
	src := types.NewLabel(5, 5)
	for i := range src.Data {
		src.Data[i] = uint8(i % 7)
	}
	dst := RotateLabelNearest(src, 0)
	for i, v := range src.Data {
		if dst.Data[i] != v {
			t.Fatalf("zero-angle rotation changed pixel %d: %d -> %d", i, v, dst.Data[i])
		}
	}
}

func TestHSVRoundTrip(t *testing.T) {
	cases := [][3]float32{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
		{0.2, 0.6, 0.9},
		{0, 0, 0},
		{1, 1, 1},
	}
	for _, c := range cases {
		h, s, v := RGBToHSV(c[0], c[1], c[2])
		r, g, b := HSVToRGB(h, s, v)
		if absf(r-c[0]) > 1e-4 || absf(g-c[1]) > 1e-4 || absf(b-c[2]) > 1e-4 {
			t.Fatalf("round trip for %v: got (%v,%v,%v)", c, r, g, b)
		}
	}
}

func TestHueWraparound(t *testing.T) {
	r, g, b := HSVToRGB(370, 0.5, 0.5)
	r2, g2, b2 := HSVToRGB(10, 0.5, 0.5)
	if absf(r-r2) > 1e-6 || absf(g-g2) > 1e-6 || absf(b-b2) > 1e-6 {
		t.Fatalf("hue 370 should wrap to hue 10: got (%v,%v,%v) vs (%v,%v,%v)", r, g, b, r2, g2, b2)
	}
}
