package augment

import (
	"math"
	"testing"

	"github.com/TobyPDE/chianti/internal/types"
)

func solidPair(h, w int, label uint8) *types.Pair {
	img := types.NewImage(h, w)
	for i := range img.Data {
		img.Data[i] = 0.5
	}
	target := types.NewLabel(h, w)
	for i := range target.Data {
		target.Data[i] = label
	}
	return &types.Pair{Image: img, Target: target}
}

func TestSubsampleMajorityVote(t *testing.T) {
	// S3: a 4x4 label tile where 10 of 16 pixels are class 3, rest
	// class 7; factor 4 collapses to a single output pixel. 10 > 8
	// (half of 16) so the winner survives.
	pair := solidPair(4, 4, 7)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if i*4+j < 10 {
				pair.Target.Set(i, j, 3)
			}
		}
	}

	sub, err := NewSubsample(4)
	if err != nil {
		t.Fatalf("NewSubsample: %v", err)
	}
	if err := sub.Augment(pair); err != nil {
		t.Fatalf("Augment: %v", err)
	}
	if pair.Target.H != 1 || pair.Target.W != 1 {
		t.Fatalf("got size %dx%d, want 1x1", pair.Target.H, pair.Target.W)
	}
	if got := pair.Target.At(0, 0); got != 3 {
		t.Fatalf("got label %d, want 3", got)
	}
}

func TestSubsampleVoidOnNoMajority(t *testing.T) {
	// A 16-way tie among distinct classes in a 4x4 tile: no class
	// clears the f^2/2 = 8 threshold, so the output must be void.
	pair := solidPair(4, 4, 0)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			pair.Target.Set(i, j, uint8(i*4+j))
		}
	}
	sub, _ := NewSubsample(4)
	if err := sub.Augment(pair); err != nil {
		t.Fatalf("Augment: %v", err)
	}
	if got := pair.Target.At(0, 0); got != types.VoidLabel8 {
		t.Fatalf("got %d, want void", got)
	}
}

func TestTranslationOutOfBoundsUsesVoidAndReflect(t *testing.T) {
	// S4: a large offset forces every pixel out of the original
	// bounds on at least one axis for a small image, producing a
	// target plane that is entirely void while the image plane
	// remains fully populated via reflection (no panics, no zero
	// holes).
	pair := solidPair(3, 3, 9)
	tr := NewTranslation(100, uint64Ptr(1))
	if err := tr.Augment(pair); err != nil {
		t.Fatalf("Augment: %v", err)
	}
	for _, v := range pair.Target.Data {
		if v != types.VoidLabel8 {
			t.Fatalf("expected every target pixel void after a huge offset, got %d", v)
		}
	}
	for _, v := range pair.Image.Data {
		if v != 0.5 {
			t.Fatalf("expected every image pixel to still be 0.5 via reflection, got %v", v)
		}
	}
}

func TestTranslationRejectsMismatchedSizes(t *testing.T) {
	pair := &types.Pair{Image: types.NewImage(4, 4), Target: types.NewLabel(3, 3)}
	tr := NewTranslation(1, uint64Ptr(1))
	if err := tr.Augment(pair); err == nil {
		t.Fatal("expected an error for mismatched plane sizes")
	}
}

func TestGammaIdentityAtZero(t *testing.T) {
	pair := solidPair(2, 2, 0)
	for i := range pair.Image.Data {
		pair.Image.Data[i] = 0.25
	}
	g := NewGamma(0, uint64Ptr(1))
	if err := g.Augment(pair); err != nil {
		t.Fatalf("Augment: %v", err)
	}
	for _, v := range pair.Image.Data {
		if math.Abs(float64(v)-0.25) > 1e-4 {
			t.Fatalf("strength 0 should be a near no-op, got %v", v)
		}
	}
}

func TestBrightnessClampsToUnitRange(t *testing.T) {
	pair := solidPair(1, 1, 0)
	pair.Image.Data[0], pair.Image.Data[1], pair.Image.Data[2] = 0.9, 0.9, 0.9
	b := NewBrightness(1, 1, uint64Ptr(1))
	if err := b.Augment(pair); err != nil {
		t.Fatalf("Augment: %v", err)
	}
	for _, v := range pair.Image.Data {
		if v > 1 {
			t.Fatalf("brightness must clamp to 1, got %v", v)
		}
	}
}

func TestHueWraparoundStaysInRange(t *testing.T) {
	pair := solidPair(1, 1, 0)
	pair.Image.Data[0], pair.Image.Data[1], pair.Image.Data[2] = 1, 0, 0
	h := NewHue(350, 350, uint64Ptr(1))
	if err := h.Augment(pair); err != nil {
		t.Fatalf("Augment: %v", err)
	}
	for _, v := range pair.Image.Data {
		if v < 0 || v > 1 {
			t.Fatalf("hue-shifted channel out of [0,1]: %v", v)
		}
	}
}

func TestBlurNoopWhenSigmaMaxNonPositive(t *testing.T) {
	pair := solidPair(3, 3, 0)
	before := append([]float32(nil), pair.Image.Data...)
	b := NewBlur(0, uint64Ptr(1))
	if err := b.Augment(pair); err != nil {
		t.Fatalf("Augment: %v", err)
	}
	for i, v := range pair.Image.Data {
		if v != before[i] {
			t.Fatalf("sigmaMax<=0 must be a no-op")
		}
	}
}

func TestCityscapesLabelRemapUnknownToVoid(t *testing.T) {
	pair := solidPair(1, 1, 0)
	pair.Target.Set(0, 0, 9) // raw id 9 maps to void
	remap := NewCityscapesLabelRemap()
	if err := remap.Augment(pair); err != nil {
		t.Fatalf("Augment: %v", err)
	}
	if got := pair.Target.At(0, 0); got != types.VoidLabel8 {
		t.Fatalf("got %d, want void", got)
	}
}

func TestCityscapesLabelRemapKnownId(t *testing.T) {
	pair := solidPair(1, 1, 0)
	pair.Target.Set(0, 0, 7) // raw id 7 -> training id 0
	remap := NewCityscapesLabelRemap()
	if err := remap.Augment(pair); err != nil {
		t.Fatalf("Augment: %v", err)
	}
	if got := pair.Target.At(0, 0); got != 0 {
		t.Fatalf("got %d, want 0", got)
	}
}

func TestCropExtractsRequestedSize(t *testing.T) {
	pair := solidPair(10, 10, 0)
	for i := 0; i < 10; i++ {
		for j := 0; j < 10; j++ {
			pair.Target.Set(i, j, uint8((i+j)%3))
		}
	}
	c := NewCrop(4, 3, uint64Ptr(1))
	if err := c.Augment(pair); err != nil {
		t.Fatalf("Augment: %v", err)
	}
	if pair.Image.H != 4 || pair.Image.W != 4 || pair.Target.H != 4 || pair.Target.W != 4 {
		t.Fatalf("got image %dx%d target %dx%d, want 4x4 both",
			pair.Image.H, pair.Image.W, pair.Target.H, pair.Target.W)
	}
}

func TestCombinedAppliesInOrder(t *testing.T) {
	pair := solidPair(2, 2, 0)
	var order []string
	step := func(name string) Augmentor {
		return augmentorFunc(func(p *types.Pair) error {
			order = append(order, name)
			return nil
		})
	}
	c := NewCombined(step("a"), step("b"), step("c"))
	if err := c.Augment(pair); err != nil {
		t.Fatalf("Augment: %v", err)
	}
	want := []string{"a", "b", "c"}
	for i, w := range want {
		if order[i] != w {
			t.Fatalf("got order %v, want %v", order, want)
		}
	}
}

type augmentorFunc func(*types.Pair) error

func (f augmentorFunc) Augment(p *types.Pair) error { return f(p) }

func uint64Ptr(v uint64) *uint64 { return &v }
