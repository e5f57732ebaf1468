package loader

import "errors"

// ErrBadValueMapLength is returned when a ValueMapper is constructed
// with a lookup table that does not have exactly 256 entries, one per
// possible 8-bit pixel value.
var ErrBadValueMapLength = errors.New("chianti: value map must have exactly 256 entries")
