package provider

import "sync"

// slot is the single-entry handoff between the prefetch worker and
// the consumer. Unlike a mailbox with overwrite-on-publish semantics,
// Put blocks while the slot is already Filled: the worker may not
// get more than one batch ahead of the consumer. Each state
// transition wakes exactly one waiter via Signal, since there is
// always exactly one producer and one consumer; only close uses
// Broadcast, to wake both sides on shutdown.
type slot struct {
	mu     sync.Mutex
	cond   *sync.Cond
	filled bool
	batch  *Batch
	err    error
	closed bool
}

func newSlot() *slot {
	s := &slot{}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// put blocks until the slot is empty (or closed), then fills it with
// either a completed batch or a captured error. Returns false if the
// slot was closed before the put could complete.
func (s *slot) put(batch *Batch, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for s.filled && !s.closed {
		s.cond.Wait()
	}
	if s.closed {
		return false
	}

	s.batch = batch
	s.err = err
	s.filled = true
	s.cond.Signal()
	return true
}

// take blocks until the slot is filled (or closed), then empties it
// and returns its contents. ok is false only on shutdown.
func (s *slot) take() (batch *Batch, err error, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for !s.filled && !s.closed {
		s.cond.Wait()
	}
	if !s.filled && s.closed {
		return nil, nil, false
	}

	batch, err = s.batch, s.err
	s.batch, s.err = nil, nil
	s.filled = false
	s.cond.Signal()
	return batch, err, true
}

// close wakes every blocked waiter so the worker and any in-flight
// consumer call can observe shutdown. Any batch sitting in the slot
// is discarded: once shutdown has been requested, there is no
// consumer left to hand it to.
func (s *slot) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.filled = false
	s.batch = nil
	s.err = nil
	s.cond.Broadcast()
}
