package chianti

import "github.com/TobyPDE/chianti/internal/types"

// These are re-exported from the internal package to avoid import
// cycles between the internal layers and this public facade. See
// internal/types/types.go for full documentation.
type (
	FilenamePair = types.FilenamePair
	Image        = types.Image
	Label        = types.Label
	Pair         = types.Pair
)

// VoidLabel8 is the sentinel pixel value in 8-bit label space.
const VoidLabel8 = types.VoidLabel8

// VoidLabelSigned is the sentinel value in signed training-id space.
const VoidLabelSigned = types.VoidLabelSigned
