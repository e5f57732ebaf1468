package augment

import "github.com/TobyPDE/chianti/internal/types"

// cityscapesTable maps the 34 raw Cityscapes label ids to contiguous
// training ids; ids that are not part of the training set map to the
// void sentinel. The table is fixed: it belongs to this augmentor,
// not to any global configuration.
var cityscapesTable = [34]uint8{
	255, 255, 255, 255, 255, 255, 255, 0, 1, 255,
	255, 2, 3, 4, 255, 255, 255, 5, 255, 6,
	7, 8, 9, 10, 11, 12, 13, 14, 15, 255,
	255, 16, 17, 18,
}

// CityscapesLabelRemap applies the fixed Cityscapes raw-id to
// training-id table to the label plane.
type CityscapesLabelRemap struct{}

// NewCityscapesLabelRemap constructs a CityscapesLabelRemap
// augmentor.
func NewCityscapesLabelRemap() *CityscapesLabelRemap {
	return &CityscapesLabelRemap{}
}

// Augment remaps every label pixel through the fixed table. Raw ids
// outside [0, 34) pass through as void, since they cannot be valid
// Cityscapes ids.
func (a *CityscapesLabelRemap) Augment(pair *types.Pair) error {
	t := pair.Target
	for i, v := range t.Data {
		if int(v) < len(cityscapesTable) {
			t.Data[i] = cityscapesTable[v]
		} else {
			t.Data[i] = types.VoidLabel8
		}
	}
	return nil
}
