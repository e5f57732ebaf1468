package loader

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.png")
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestRGBLoaderNormalizesToUnitRange(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})
	img.Set(1, 1, color.RGBA{R: 0, G: 255, B: 255, A: 255})
	path := writePNG(t, img)

	out, err := NewRGB().Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	r, g, b := out.At(0, 0)
	if r < 0.99 || g > 0.01 || b > 0.01 {
		t.Fatalf("unexpected pixel (0,0): %v %v %v", r, g, b)
	}
}

func TestValueMapperRejectsShortTable(t *testing.T) {
	_, err := NewValueMapper(make([]uint8, 10))
	if err != ErrBadValueMapLength {
		t.Fatalf("got %v, want ErrBadValueMapLength", err)
	}
}

func TestValueMapperRemapsPixels(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 1, 1))
	img.SetGray(0, 0, color.Gray{Y: 5})
	path := writePNG(t, img)

	table := make([]uint8, 256)
	table[5] = 42
	vm, err := NewValueMapper(table)
	if err != nil {
		t.Fatalf("NewValueMapper: %v", err)
	}
	out, err := vm.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := out.At(0, 0); got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestColorMapperErrorsOnUnknownColor(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{R: 9, G: 9, B: 9, A: 255})
	path := writePNG(t, img)

	cm := NewColorMapper(map[[3]uint8]uint8{{1, 2, 3}: 0})
	if _, err := cm.Load(path); err == nil {
		t.Fatal("expected an error for an unmapped color")
	}
}

func TestColorMapperMapsKnownColors(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{R: 1, G: 2, B: 3, A: 255})
	path := writePNG(t, img)

	cm := NewColorMapper(map[[3]uint8]uint8{{1, 2, 3}: 7})
	out, err := cm.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := out.At(0, 0); got != 7 {
		t.Fatalf("got %d, want 7", got)
	}
}
