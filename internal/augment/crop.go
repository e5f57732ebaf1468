package augment

import (
	"fmt"
	"math"
	"sort"

	"github.com/TobyPDE/chianti/internal/types"
)

// Crop extracts a size x size window from the pair, sampling the
// window's top-left position with probability proportional to the
// class-entropy of its label histogram. High-entropy windows (many
// classes, none dominant) are sampled more often than windows filled
// with a single class or with void.
type Crop struct {
	size       int
	numClasses int
	rng        *seededRNG
}

// NewCrop constructs a Crop augmentor. size is the edge length of the
// extracted window; numClasses bounds the label ids considered (ids
// >= numClasses, and the void sentinel, are excluded from every
// histogram).
func NewCrop(size, numClasses int, seed *uint64) *Crop {
	return &Crop{size: size, numClasses: numClasses, rng: newSeededRNG(seed)}
}

// Augment samples a crop position from the label entropy distribution
// and replaces the pair with the extracted window.
func (a *Crop) Augment(pair *types.Pair) error {
	target := pair.Target
	size := a.size
	if target.H < size || target.W < size {
		return fmt.Errorf("chianti: crop size %d exceeds target dimensions (%d,%d)", size, target.H, target.W)
	}

	rows := target.H - size + 1
	cols := target.W - size + 1

	histograms := a.computeClassHistograms(target, rows, cols)
	cumulative := a.computeCumulativeDistribution(histograms, rows, cols)

	row, col := a.samplePosition(cumulative, cols)

	newImage := types.NewImage(size, size)
	newTarget := types.NewLabel(size, size)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			r, g, b := pair.Image.At(row+i, col+j)
			newImage.Set(i, j, r, g, b)
			newTarget.Set(i, j, target.At(row+i, col+j))
		}
	}

	pair.Image = newImage
	pair.Target = newTarget
	return nil
}

// computeClassHistograms computes, for every valid top-left window
// position, the per-class pixel count via 2D prefix-sum dynamic
// programming. histograms is addressed as
// histograms[(i*cols+j)*numClasses+c].
func (a *Crop) computeClassHistograms(target *types.Label, rows, cols int) []int32 {
	nc := a.numClasses
	size := a.size
	histograms := make([]int32, rows*cols*nc)

	at := func(i, j int) []int32 {
		o := (i*cols + j) * nc
		return histograms[o : o+nc]
	}

	bump := func(h []int32, c uint8, delta int32) {
		if int(c) < nc {
			h[c] += delta
		}
	}

	// Origin: brute-force histogram of the size x size window.
	h00 := at(0, 0)
	for si := 0; si < size; si++ {
		for sj := 0; sj < size; sj++ {
			bump(h00, target.At(si, sj), 1)
		}
	}

	// First row: slide right, one column at a time.
	for j := 1; j < cols; j++ {
		dst := at(0, j)
		copy(dst, at(0, j-1))
		for row := 0; row < size; row++ {
			bump(dst, target.At(row, j-1), -1)
			bump(dst, target.At(row, j+size-1), 1)
		}
	}

	// Remaining rows.
	for i := 1; i < rows; i++ {
		// First column of this row: slide down from the row above.
		dst0 := at(i, 0)
		copy(dst0, at(i-1, 0))
		for col := 0; col < size; col++ {
			bump(dst0, target.At(i-1, col), -1)
			bump(dst0, target.At(i+size-1, col), 1)
		}

		for j := 1; j < cols; j++ {
			dst := at(i, j)
			up := at(i-1, j)
			left := at(i, j-1)
			upLeft := at(i-1, j-1)
			for c := 0; c < nc; c++ {
				dst[c] = up[c] + left[c] - upLeft[c]
			}
			bump(dst, target.At(i-1, j-1), 1)
			bump(dst, target.At(i-1, j+size-1), -1)
			bump(dst, target.At(i+size-1, j-1), -1)
			bump(dst, target.At(i+size-1, j+size-1), 1)
		}
	}

	return histograms
}

// computeCumulativeDistribution turns per-position class histograms
// into a cumulative probability distribution over flat position
// indices, ranked by class entropy.
func (a *Crop) computeCumulativeDistribution(histograms []int32, rows, cols int) []float64 {
	nc := a.numClasses
	n := float64(a.size * a.size)
	scores := make([]float64, rows*cols)

	sum := 0.0
	for p := 0; p < rows*cols; p++ {
		h := histograms[p*nc : p*nc+nc]
		entropy := 0.0
		var total float64
		for _, v := range h {
			if v > 0 {
				fv := float64(v)
				total += fv
				entropy -= fv * math.Log2(fv)
			}
		}
		if total > 0 {
			entropy += total * math.Log2(total)
			entropy /= n
		}
		scores[p] = entropy
		sum += entropy
	}

	cumulative := make([]float64, len(scores))
	running := 0.0
	for i, s := range scores {
		if sum > 0 {
			running += s / sum
		} else {
			running = float64(i+1) / float64(len(scores))
		}
		cumulative[i] = running
	}
	return cumulative
}

func (a *Crop) samplePosition(cumulative []float64, cols int) (row, col int) {
	u := a.rng.Float64()
	idx := sort.Search(len(cumulative), func(i int) bool { return cumulative[i] > u })
	if idx == len(cumulative) {
		idx = len(cumulative) - 1
	}
	return idx / cols, idx % cols
}
