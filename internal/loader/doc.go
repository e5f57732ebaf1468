// Package loader turns filenames on disk into the in-memory planes the
// rest of the pipeline operates on. Four loaders cover the source
// material: RGB (continuous image), Label (raw 8-bit label plane),
// ValueMapper (8-bit label plane passed through a 256-entry lookup
// table) and ColorMapper (RGB label encoding collapsed to a single
// 8-bit class id). A PairLoader composes one image loader and one
// target loader into the types.Pair the augmentor chain consumes.
//
// Decoding itself is delegated to the standard library's image
// package: the wire format of a training image (PNG/JPEG) is not part
// of this system's contract, only the decoded pixel matrix is.
package loader
