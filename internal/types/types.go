// Package types holds the data model shared by every layer of the
// pipeline: filename pairs, the in-memory image/label matrices, and the
// sentinel values that encode "do not supervise here".
//
// It has no dependencies on the rest of the module so that iterator,
// loader, augment and provider can all import it without risking a
// cycle.
package types

import "fmt"

// VoidLabel8 is the sentinel pixel value in 8-bit label space.
const VoidLabel8 uint8 = 255

// VoidLabelSigned is the sentinel value in signed training-id space.
const VoidLabelSigned int32 = -1

// FilenamePair is a pair of non-empty UTF-8 paths naming a source image
// and its dense per-pixel label image. It is immutable after
// construction.
type FilenamePair struct {
	Image  string
	Target string
}

// Validate checks that neither path is empty.
func (p FilenamePair) Validate() error {
	if p.Image == "" || p.Target == "" {
		return fmt.Errorf("chianti: filename pair has an empty path (image=%q, target=%q)", p.Image, p.Target)
	}
	return nil
}

// Image is a 3-channel, 32-bit-per-channel pixel matrix in row-major,
// pixel-interleaved (H, W, C) layout with channel order R, G, B.
// Values are nominally in [0, 1] after loading, though augmentors may
// push them outside that range transiently.
type Image struct {
	H, W int
	Data []float32
}

// NewImage allocates a zeroed image of the given size.
func NewImage(h, w int) *Image {
	return &Image{H: h, W: w, Data: make([]float32, h*w*3)}
}

// At returns the 3 channel values at pixel (i, j).
func (m *Image) At(i, j int) (r, g, b float32) {
	o := (i*m.W + j) * 3
	return m.Data[o], m.Data[o+1], m.Data[o+2]
}

// Set writes the 3 channel values at pixel (i, j).
func (m *Image) Set(i, j int, r, g, b float32) {
	o := (i*m.W + j) * 3
	m.Data[o], m.Data[o+1], m.Data[o+2] = r, g, b
}

// Label is a 1-channel, 8-bit-per-pixel label matrix in row-major
// layout. VoidLabel8 marks pixels that must not be supervised.
type Label struct {
	H, W int
	Data []uint8
}

// NewLabel allocates a label plane filled with the void sentinel.
func NewLabel(h, w int) *Label {
	l := &Label{H: h, W: w, Data: make([]uint8, h*w)}
	for i := range l.Data {
		l.Data[i] = VoidLabel8
	}
	return l
}

// At returns the label at pixel (i, j).
func (l *Label) At(i, j int) uint8 {
	return l.Data[i*l.W+j]
}

// Set writes the label at pixel (i, j).
func (l *Label) Set(i, j int, v uint8) {
	l.Data[i*l.W+j] = v
}

// Pair carries one image/label pair through the augmentor chain. Both
// planes are mutated in place by augmentors; only Subsample, Zoom,
// Rotate, Translation and Crop are permitted to change their
// dimensions, and they must change both planes together.
type Pair struct {
	Image  *Image
	Target *Label
}

// SameSize reports whether the image and target planes share pixel
// dimensions, which several augmentors require to operate.
func (p *Pair) SameSize() bool {
	return p.Image.H == p.Target.H && p.Image.W == p.Target.W
}

// Iterator produces filename pairs under some selection policy.
// Implementations must serialize access to their mutable state: Next
// is called concurrently by every prefetch worker.
type Iterator interface {
	// Next returns the next filename pair to load.
	Next() FilenamePair
	// Reset returns the iterator to its initial state. Randomized
	// policies re-seed from the seed supplied at construction.
	Reset()
	// Count returns the number of elements in the underlying
	// container.
	Count() int
}
