package iterator

import (
	"testing"

	"github.com/TobyPDE/chianti/internal/types"
)

func pairs(n int) []types.FilenamePair {
	out := make([]types.FilenamePair, n)
	for i := range out {
		out[i] = types.FilenamePair{Image: string(rune('a' + i)), Target: string(rune('a'+i)) + "_t"}
	}
	return out
}

func TestSequentialOrder(t *testing.T) {
	// S1: files = [(a,a_t), (b,b_t), (c,c_t)], batch_size = 2.
	// First batch uses a,b; second uses c,a; third uses b,c.
	it, err := NewSequential(pairs(3))
	if err != nil {
		t.Fatalf("NewSequential: %v", err)
	}

	want := []string{"a", "b", "c", "a", "b", "c"}
	for i, w := range want {
		got := it.Next().Image
		if got != w {
			t.Fatalf("draw %d: got %q, want %q", i, got, w)
		}
	}
}

func TestSequentialEmptyFails(t *testing.T) {
	if _, err := NewSequential(nil); err != ErrEmptyContainer {
		t.Fatalf("got %v, want ErrEmptyContainer", err)
	}
}

func TestSequentialReset(t *testing.T) {
	it, _ := NewSequential(pairs(3))
	it.Next()
	it.Next()
	it.Reset()
	if got := it.Next().Image; got != "a" {
		t.Fatalf("after reset, got %q, want %q", got, "a")
	}
}

func TestRandomIsPermutation(t *testing.T) {
	seed := uint64(1)
	it, err := NewRandom(pairs(10), &seed)
	if err != nil {
		t.Fatalf("NewRandom: %v", err)
	}
	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		seen[it.Next().Image] = true
	}
	if len(seen) != 10 {
		t.Fatalf("epoch did not visit all 10 elements exactly once: %v", seen)
	}
}

func TestRandomResetReproducesSequence(t *testing.T) {
	// S2: Random iterator over 4 files with seed 42, draw 4 -> sequence S;
	// reset(); draw 4 -> same sequence S.
	seed := uint64(42)
	it, err := NewRandom(pairs(4), &seed)
	if err != nil {
		t.Fatalf("NewRandom: %v", err)
	}

	var first []string
	for i := 0; i < 4; i++ {
		first = append(first, it.Next().Image)
	}

	it.Reset()

	var second []string
	for i := 0; i < 4; i++ {
		second = append(second, it.Next().Image)
	}

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("sequence diverged after reset at %d: %v vs %v", i, first, second)
		}
	}
}

func TestWeightedRandomRejectsMismatch(t *testing.T) {
	_, err := NewWeightedRandom(pairs(3), []float64{1, 2}, nil)
	if err != ErrWeightCountMismatch {
		t.Fatalf("got %v, want ErrWeightCountMismatch", err)
	}
}

func TestWeightedRandomRejectsAllZero(t *testing.T) {
	_, err := NewWeightedRandom(pairs(3), []float64{0, 0, 0}, nil)
	if err != ErrAllZeroWeights {
		t.Fatalf("got %v, want ErrAllZeroWeights", err)
	}
}

func TestWeightedRandomNegativeWeightsFoldToAbs(t *testing.T) {
	// A single non-zero-magnitude element dominates regardless of sign.
	seed := uint64(7)
	it, err := NewWeightedRandom(pairs(2), []float64{-1, 0}, &seed)
	if err != nil {
		t.Fatalf("NewWeightedRandom: %v", err)
	}
	for i := 0; i < 20; i++ {
		if got := it.Next().Image; got != "a" {
			t.Fatalf("draw %d: got %q, want %q (weight folded to |−1|=1)", i, got, "a")
		}
	}
}

func TestWeightedRandomConvergesToWeights(t *testing.T) {
	// Property 8: empirical frequency converges to normalized weight.
	seed := uint64(99)
	weights := []float64{1, 3}
	it, err := NewWeightedRandom(pairs(2), weights, &seed)
	if err != nil {
		t.Fatalf("NewWeightedRandom: %v", err)
	}

	const draws = 200000
	counts := map[string]int{}
	for i := 0; i < draws; i++ {
		counts[it.Next().Image]++
	}

	wantA := 0.25
	gotA := float64(counts["a"]) / float64(draws)
	if diff := gotA - wantA; diff < -0.02 || diff > 0.02 {
		t.Fatalf("empirical frequency of a = %.4f, want close to %.4f", gotA, wantA)
	}
}

func TestWeightedRandomReset(t *testing.T) {
	seed := uint64(5)
	it, _ := NewWeightedRandom(pairs(5), []float64{1, 1, 1, 1, 1}, &seed)

	var first []string
	for i := 0; i < 8; i++ {
		first = append(first, it.Next().Image)
	}
	it.Reset()
	var second []string
	for i := 0; i < 8; i++ {
		second = append(second, it.Next().Image)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("reset changed the draw sequence: %v vs %v", first, second)
		}
	}
}
