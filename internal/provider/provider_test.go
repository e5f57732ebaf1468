package provider

import (
	"testing"

	"github.com/TobyPDE/chianti/internal/augment"
	"github.com/TobyPDE/chianti/internal/loader"
	"github.com/TobyPDE/chianti/internal/types"
)

// fixedImageLoader returns a solid-color image regardless of the
// requested filename, so tests never touch disk.
type fixedImageLoader struct{ h, w int }

func (l fixedImageLoader) Load(filename string) (*types.Image, error) {
	img := types.NewImage(l.h, l.w)
	for i := range img.Data {
		img.Data[i] = 0.5
	}
	return img, nil
}

type fixedTargetLoader struct{ h, w int }

func (l fixedTargetLoader) Load(filename string) (*types.Label, error) {
	lbl := types.NewLabel(l.h, l.w)
	for i := range lbl.Data {
		lbl.Data[i] = uint8(i % 3)
	}
	return lbl, nil
}

func namesN(n int) []types.FilenamePair {
	out := make([]types.FilenamePair, n)
	for i := range out {
		out[i] = types.FilenamePair{Image: string(rune('a' + i)), Target: string(rune('a'+i)) + "_t"}
	}
	return out
}

// sequentialIterator is a minimal deterministic iterator usable
// without pulling in the iterator package, to keep this test focused
// on provider behavior.
type sequentialIterator struct {
	pairs  []types.FilenamePair
	cursor int
}

func (it *sequentialIterator) Next() types.FilenamePair {
	p := it.pairs[it.cursor%len(it.pairs)]
	it.cursor++
	return p
}
func (it *sequentialIterator) Reset()    { it.cursor = 0 }
func (it *sequentialIterator) Count() int { return len(it.pairs) }

func newTestProvider(t *testing.T, batchSize int, mode TargetMode) *Provider {
	t.Helper()
	it := &sequentialIterator{pairs: namesN(4)}
	pl := loader.NewPair(fixedImageLoader{h: 4, w: 4}, fixedTargetLoader{h: 4, w: 4})
	p, err := New(it, pl, augment.NewFloatCast(), batchSize, 3, mode)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := p.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(p.Close)
	return p
}

func TestNextProducesCorrectlyShapedBatch(t *testing.T) {
	p := newTestProvider(t, 2, TargetDense)
	batch, err := p.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if batch.Images.Shape[0] != 2 || batch.Images.Shape[1] != 3 {
		t.Fatalf("got image shape %v, want batch=2 channels=3", batch.Images.Shape)
	}
	if batch.DenseTargets.Shape[0] != 2 {
		t.Fatalf("got target batch dim %d, want 2", batch.DenseTargets.Shape[0])
	}
}

func TestNextAssignsDistinctBatchIDs(t *testing.T) {
	p := newTestProvider(t, 2, TargetDense)
	first, err := p.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	second, err := p.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if first.ID == second.ID {
		t.Fatalf("consecutive batches share an ID: %v", first.ID)
	}
}

func TestOneHotVoidColumnIsAllZero(t *testing.T) {
	// S6: a void label pixel must leave every class channel at 0.
	it := &sequentialIterator{pairs: namesN(2)}
	pl := loader.NewPair(fixedImageLoader{h: 2, w: 2}, voidTargetLoader{})
	p, err := New(it, pl, augment.NewFloatCast(), 1, 3, TargetOneHot)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := p.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer p.Close()

	batch, err := p.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	for c := 0; c < 3; c++ {
		if v := batch.OneHotTargets.At(0, c, 0, 0); v != 0 {
			t.Fatalf("void pixel leaked into channel %d: %v", c, v)
		}
	}
}

type voidTargetLoader struct{}

func (voidTargetLoader) Load(filename string) (*types.Label, error) {
	return types.NewLabel(2, 2), nil // NewLabel fills with the void sentinel
}

func TestCountBatches(t *testing.T) {
	p := newTestProvider(t, 3, TargetDense)
	// 4 pairs, batch size 3 -> floor(4/3) = 1
	if got := p.CountBatches(); got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
}

func TestCloseUnblocksNext(t *testing.T) {
	p := newTestProvider(t, 2, TargetDense)
	// Drain whatever is already in flight, then close and expect the
	// next call to report closure rather than hang.
	if _, err := p.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	p.Close()
	if _, err := p.Next(); err != ErrClosed {
		t.Fatalf("got %v, want ErrClosed", err)
	}
}
