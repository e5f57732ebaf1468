// Package imaging provides the geometric and photometric primitives
// the augmentor set is built on: resampling (Lanczos for continuous
// planes, nearest-neighbor for label planes), affine rotation, Gaussian
// blur and RGB/HSV conversion.
//
// These are the "assumed available" primitives the pipeline's design
// treats as external collaborators. Continuous-plane resizing is
// delegated to github.com/bamiaux/rez; label-plane resampling and
// affine warping are implemented directly because they must preserve
// exact label values and the specific out-of-bounds policy the
// augmentor set depends on (reflect-without-repeat, void fill).
package imaging
