package loader

import (
	"fmt"

	"github.com/TobyPDE/chianti/internal/types"
)

// ImageLoader loads a filename into an image plane.
type ImageLoader interface {
	Load(filename string) (*types.Image, error)
}

// TargetLoader loads a filename into a label plane.
type TargetLoader interface {
	Load(filename string) (*types.Label, error)
}

// Pair composes an image loader and a target loader into a single
// unit that turns a FilenamePair into a types.Pair.
type Pair struct {
	Image  ImageLoader
	Target TargetLoader
}

// NewPair constructs a Pair loader.
func NewPair(image ImageLoader, target TargetLoader) *Pair {
	return &Pair{Image: image, Target: target}
}

// Load loads both planes named by names. It returns an error
// identifying which side failed if either load fails.
func (l *Pair) Load(names types.FilenamePair) (*types.Pair, error) {
	img, err := l.Image.Load(names.Image)
	if err != nil {
		return nil, fmt.Errorf("chianti: loading image side of pair: %w", err)
	}
	target, err := l.Target.Load(names.Target)
	if err != nil {
		return nil, fmt.Errorf("chianti: loading target side of pair: %w", err)
	}
	return &types.Pair{Image: img, Target: target}, nil
}
