// Package chianti is a background data-pipeline engine for semantic
// segmentation training: it streams batches of (source image, dense
// label image) pairs to a training loop, overlapping disk I/O,
// decoding, stochastic augmentation, and tensor packing with GPU
// computation so the training loop never stalls on a batch.
//
// A pipeline is assembled from four pieces, wired together by a
// Provider:
//
//   - an Iterator, which picks the next (image, target) filename pair
//     under a selection policy (Sequential, Random, WeightedRandom);
//   - a pair of Loaders, which turn a filename into a typed pixel
//     matrix;
//   - an Augmentor (often a Combined chain), which stochastically
//     mutates an image/label pair in place while keeping the two
//     planes pixel-aligned;
//   - the Provider itself, which runs one prefetch worker per
//     instance, assembles whole batches in parallel across pairs, and
//     hands them to the consumer through a single-slot, blocking
//     handoff.
//
// Typical use:
//
//	it, _ := chianti.NewSequentialIterator(files)
//	pair := chianti.NewPairLoader(chianti.NewRGBLoader(), chianti.NewLabelLoader())
//	aug := chianti.NewCombinedAugmentor(
//		chianti.NewGammaAugmentor(0.05, nil),
//		chianti.NewTranslationAugmentor(20, nil),
//	)
//	p, _ := chianti.NewProvider(it, pair, aug, 32, 19, chianti.TargetDense)
//	p.Init()
//	defer p.Close()
//	batch, err := p.Next()
package chianti
