// Package provider implements the prefetching batch assembler: one
// dedicated worker goroutine that continuously loads, augments, and
// packs whole batches while the training loop consumes the previous
// one.
//
// The producer and consumer meet at a single-entry slot, a
// sync.Cond-guarded mailbox for a single-producer/single-consumer
// handoff with blocking backpressure: the worker blocks until the
// consumer has taken the previous batch instead of overwriting it. A training
// loop cannot be allowed to silently skip batches the way a live
// video frame can be dropped.
//
// Each batch carries a uuid.UUID identity so a slow or failed batch
// can be traced through logs independent of its position in the
// epoch. Worker lifecycle and per-batch timing are reported through
// log/slog.
package provider
