package provider

import (
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/TobyPDE/chianti/internal/augment"
	"github.com/TobyPDE/chianti/internal/loader"
	"github.com/TobyPDE/chianti/internal/tensor"
	"github.com/TobyPDE/chianti/internal/types"
)

// Provider is the prefetching batch assembler: one dedicated worker
// goroutine loads, augments, and packs whole batches behind a
// single-slot handoff while the consumer works on the previous one.
type Provider struct {
	iterator  types.Iterator
	pairs     *loader.Pair
	augmentor augment.Augmentor

	batchSize  int
	numClasses int
	mode       TargetMode

	h, w   int // image plane dims, learned at Init
	ht, wt int // target plane dims, learned at Init

	slot *slot

	stopOnce sync.Once
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

// New constructs a Provider. It does not start prefetching; call
// Init for that.
func New(it types.Iterator, pairs *loader.Pair, augmentor augment.Augmentor, batchSize, numClasses int, mode TargetMode) (*Provider, error) {
	if batchSize <= 0 {
		return nil, ErrBatchSizeNonPositive
	}
	if mode == TargetOneHot && numClasses <= 0 {
		return nil, ErrNumClassesNonPositive
	}
	return &Provider{
		iterator:   it,
		pairs:      pairs,
		augmentor:  augmentor,
		batchSize:  batchSize,
		numClasses: numClasses,
		mode:       mode,
		slot:       newSlot(),
		stopCh:     make(chan struct{}),
	}, nil
}

// Init pulls one pair from the iterator to learn the post-augmentation
// image and target dimensions, rewinds the iterator so batch
// assembly starts from a clean epoch, and spawns the prefetch worker.
func (p *Provider) Init() error {
	names := p.iterator.Next()
	pair, err := p.pairs.Load(names)
	if err != nil {
		return fmt.Errorf("chianti: provider init: %w", err)
	}
	if err := p.augmentor.Augment(pair); err != nil {
		return fmt.Errorf("chianti: provider init: %w", err)
	}
	p.h, p.w = pair.Image.H, pair.Image.W
	p.ht, p.wt = pair.Target.H, pair.Target.W

	p.iterator.Reset()

	slog.Info("chianti/provider: starting prefetch worker",
		"batch_size", p.batchSize, "image_dims", [2]int{p.h, p.w}, "target_dims", [2]int{p.ht, p.wt})

	p.wg.Add(1)
	go p.run()
	return nil
}

// CountBatches returns the number of full batches one epoch yields.
func (p *Provider) CountBatches() int {
	return p.iterator.Count() / p.batchSize
}

// Reset forwards to the iterator. It does not drain a batch already
// sitting in the slot; the consumer may observe one more
// pre-reset batch before the reset takes effect. That is a benign
// race, not a bug: the worker and the consumer never touch the
// iterator at the same instant this call does.
func (p *Provider) Reset() {
	p.iterator.Reset()
}

// Next blocks until a batch is available and returns it. An error
// captured while assembling that batch is returned instead of a
// batch.
func (p *Provider) Next() (*Batch, error) {
	batch, err, ok := p.slot.take()
	if !ok {
		return nil, ErrClosed
	}
	return batch, err
}

// Close signals the prefetch worker to stop, wakes it if it is
// blocked on the slot, and waits for it to exit.
func (p *Provider) Close() {
	p.stopOnce.Do(func() {
		close(p.stopCh)
		p.slot.close()
	})
	p.wg.Wait()
	slog.Info("chianti/provider: prefetch worker stopped")
}

func (p *Provider) run() {
	defer p.wg.Done()
	for {
		select {
		case <-p.stopCh:
			return
		default:
		}

		start := time.Now()
		batch, err := p.assembleBatch()
		if err != nil {
			slog.Error("chianti/provider: batch assembly failed", "error", err)
		} else {
			slog.Debug("chianti/provider: batch assembled", "batch_id", batch.ID, "elapsed", time.Since(start))
		}
		if !p.slot.put(batch, err) {
			return
		}
	}
}

// assembleBatch loads, augments, and packs one full batch. Per-pair
// work runs in parallel, bounded by min(batchSize, GOMAXPROCS); the
// iterator draws happen first, in order, on this goroutine, so the
// filename assigned to each batch slot is well defined even though
// completion order is not.
func (p *Provider) assembleBatch() (*Batch, error) {
	images := tensor.New[float32](p.batchSize, 3, p.h, p.w)

	var dense *tensor.Tensor[int32]
	var oneHot *tensor.Tensor[float32]
	if p.mode == TargetDense {
		dense = tensor.New[int32](p.batchSize, p.ht, p.wt)
	} else {
		oneHot = tensor.New[float32](p.batchSize, p.numClasses, p.ht, p.wt)
	}

	// Filenames are drawn from the iterator sequentially, on this
	// goroutine, before any parallel work starts. The iterator is
	// already safe to call from multiple goroutines, but doing so
	// would let OS scheduling decide which batch slot gets which
	// filename, breaking the seeded-iterator determinism the
	// provider promises. The expensive part — I/O and augmentation —
	// still fans out.
	names := make([]types.FilenamePair, p.batchSize)
	for i := range names {
		names[i] = p.iterator.Next()
	}

	workers := p.batchSize
	if gomax := runtime.GOMAXPROCS(0); gomax < workers {
		workers = gomax
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	errs := make([]error, p.batchSize)

	for i := 0; i < p.batchSize; i++ {
		sem <- struct{}{}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			errs[i] = p.assemblePair(names[i], i, images, dense, oneHot)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return &Batch{ID: uuid.New(), Images: images, DenseTargets: dense, OneHotTargets: oneHot, Mode: p.mode}, nil
}

// assemblePair loads and augments a single pair and packs it into
// slot i of the batch tensors.
func (p *Provider) assemblePair(names types.FilenamePair, i int, images *tensor.Tensor[float32], dense *tensor.Tensor[int32], oneHot *tensor.Tensor[float32]) error {
	pair, err := p.pairs.Load(names)
	if err != nil {
		return err
	}
	if err := p.augmentor.Augment(pair); err != nil {
		return err
	}

	scrubNaNs(pair.Image)

	if pair.Image.H != p.h || pair.Image.W != p.w {
		return fmt.Errorf("chianti: image dims (%d,%d) after augmentation do not match the reference (%d,%d)",
			pair.Image.H, pair.Image.W, p.h, p.w)
	}
	if pair.Target.H != p.ht || pair.Target.W != p.wt {
		return fmt.Errorf("chianti: target dims (%d,%d) after augmentation do not match the reference (%d,%d)",
			pair.Target.H, pair.Target.W, p.ht, p.wt)
	}

	packImage(images, i, pair.Image)
	if dense != nil {
		packDenseTarget(dense, i, pair.Target)
	} else {
		packOneHotTarget(oneHot, i, pair.Target)
	}
	return nil
}

func scrubNaNs(img *types.Image) {
	for i, v := range img.Data {
		if math.IsNaN(float64(v)) {
			img.Data[i] = 0
		}
	}
}

func packImage(dst *tensor.Tensor[float32], batchIdx int, img *types.Image) {
	h, w := img.H, img.W
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			r, g, b := img.At(i, j)
			dst.Set(r, batchIdx, 0, i, j)
			dst.Set(g, batchIdx, 1, i, j)
			dst.Set(b, batchIdx, 2, i, j)
		}
	}
}

func packDenseTarget(dst *tensor.Tensor[int32], batchIdx int, lbl *types.Label) {
	for i := 0; i < lbl.H; i++ {
		for j := 0; j < lbl.W; j++ {
			v := lbl.At(i, j)
			if v == types.VoidLabel8 {
				dst.Set(types.VoidLabelSigned, batchIdx, i, j)
			} else {
				dst.Set(int32(v), batchIdx, i, j)
			}
		}
	}
}

func packOneHotTarget(dst *tensor.Tensor[float32], batchIdx int, lbl *types.Label) {
	for i := 0; i < lbl.H; i++ {
		for j := 0; j < lbl.W; j++ {
			v := lbl.At(i, j)
			if v == types.VoidLabel8 {
				continue
			}
			if int(v) < dst.Shape[1] {
				dst.Set(1, batchIdx, int(v), i, j)
			}
		}
	}
}
