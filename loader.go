package chianti

import "github.com/TobyPDE/chianti/internal/loader"

// NewRGBLoader decodes a color source image and converts it to a
// [0,1]-range, pixel-interleaved RGB plane.
func NewRGBLoader() *loader.RGB {
	return loader.NewRGB()
}

// NewLabelLoader decodes a single-channel 8-bit label plane verbatim.
func NewLabelLoader() *loader.Label {
	return loader.NewLabel()
}

// NewValueMapperLoader decodes a single-channel 8-bit label plane and
// remaps every pixel through a fixed 256-entry table. table must have
// exactly 256 entries.
func NewValueMapperLoader(table []uint8) (*loader.ValueMapper, error) {
	return loader.NewValueMapper(table)
}

// NewColorMapperLoader decodes a color-encoded label image and maps
// each distinct RGB color to an 8-bit class id. An unmapped color is
// a fatal error naming the offending file.
func NewColorMapperLoader(colors map[[3]uint8]uint8) *loader.ColorMapper {
	return loader.NewColorMapper(colors)
}

// NewPairLoader composes an image loader and a target loader into a
// single unit that turns a FilenamePair into a Pair.
func NewPairLoader(image loader.ImageLoader, target loader.TargetLoader) *loader.Pair {
	return loader.NewPair(image, target)
}
