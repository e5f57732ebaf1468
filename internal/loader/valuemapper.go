package loader

import "github.com/TobyPDE/chianti/internal/types"

// ValueMapper loads a single-channel 8-bit label plane and passes
// every pixel through a fixed 256-entry lookup table. It is used to
// collapse or remap an on-disk label encoding without touching the
// files themselves.
type ValueMapper struct {
	table [256]uint8
}

// NewValueMapper constructs a ValueMapper loader. table must have
// exactly 256 entries, one per possible input pixel value.
func NewValueMapper(table []uint8) (*ValueMapper, error) {
	if len(table) != 256 {
		return nil, ErrBadValueMapLength
	}
	m := &ValueMapper{}
	copy(m.table[:], table)
	return m, nil
}

// Load decodes filename and remaps every pixel through the lookup
// table.
func (l *ValueMapper) Load(filename string) (*types.Label, error) {
	src, err := decode(filename)
	if err != nil {
		return nil, err
	}
	plane := toLabelPlane(src)
	for i, v := range plane.Data {
		plane.Data[i] = l.table[v]
	}
	return plane, nil
}
