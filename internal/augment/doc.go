// Package augment implements the stochastic augmentor set that turns
// one loaded image/label pair into a training sample: geometric
// transforms that must keep the image and label plane aligned pixel
// for pixel, and photometric transforms that touch the image plane
// only.
//
// Every augmentor owns a seeded RNG and serializes draws from it
// under a mutex; the pixel-processing loop inside a single call runs
// single-threaded. Parallelism across pairs is the provider's job,
// not this package's.
package augment
