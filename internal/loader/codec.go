package loader

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
)

// decode opens and decodes an image file using whichever standard
// library codec registers itself for its contents. The underscore
// imports above register PNG and JPEG; callers needing other formats
// should add the codec's registering import at the module's entry
// point.
func decode(filename string) (image.Image, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("chianti: could not open %q: %w", filename, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("chianti: could not decode %q: %w", filename, err)
	}
	return img, nil
}
