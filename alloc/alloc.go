package alloc

import (
	"errors"
	"sync/atomic"
)

// ErrExhausted indicates that a Limiting allocator refused a reservation
// because it would exceed the configured byte ceiling. Callers should
// surface this as the AllocatorExhausted error kind.
var ErrExhausted = errors.New("alloc: allocator exhausted")

// Allocator is the capability every engine entry point accepts. Reserve must
// be called before a scratch buffer of n bytes is created with make(), and
// Release must be called once that buffer is no longer needed. Implementations
// must be safe for concurrent use: algorithms may reserve/release from
// multiple goroutines working the same frontier or bucket.
type Allocator interface {
	// Reserve accounts for n additional bytes of scratch memory. It returns
	// ErrExhausted (or a wrapped form of it) if the allocator refuses.
	Reserve(n int) error
	// Release gives back n bytes previously reserved. Callers must release
	// exactly what they reserved; mismatched pairs break balance invariants.
	Release(n int)
}

// heapAllocator is the default Allocator: it never refuses and never tracks
// usage. Scratch memory is backed entirely by Go's runtime allocator.
type heapAllocator struct{}

// Heap returns the default, unbounded Allocator.
func Heap() Allocator { return heapAllocator{} }

func (heapAllocator) Reserve(int) error { return nil }
func (heapAllocator) Release(int)       {}

// CountingAllocator wraps a parent Allocator and tracks the net number of
// bytes currently reserved through it. BytesInUse returning 0 after an
// algorithm call completes is the property asserted by the allocator-balance
// test (spec scenario S6: Louvain on K20 under a counting allocator).
type CountingAllocator struct {
	parent Allocator
	inUse  int64
}

// NewCounting wraps parent (or Heap() if parent is nil) with usage tracking.
func NewCounting(parent Allocator) *CountingAllocator {
	if parent == nil {
		parent = Heap()
	}

	return &CountingAllocator{parent: parent}
}

// Reserve accounts n bytes against both this tracker and its parent.
func (c *CountingAllocator) Reserve(n int) error {
	if err := c.parent.Reserve(n); err != nil {
		return err
	}
	atomic.AddInt64(&c.inUse, int64(n))

	return nil
}

// Release gives back n bytes to both this tracker and its parent.
func (c *CountingAllocator) Release(n int) {
	atomic.AddInt64(&c.inUse, -int64(n))
	c.parent.Release(n)
}

// BytesInUse reports the current net reservation. It is safe to call
// concurrently with Reserve/Release.
func (c *CountingAllocator) BytesInUse() int64 {
	return atomic.LoadInt64(&c.inUse)
}

// Limiting wraps a parent Allocator and refuses reservations once the
// running total would exceed limitBytes, returning ErrExhausted.
type Limiting struct {
	parent Allocator
	limit  int64
	used   int64
}

// NewLimiting wraps parent (or Heap() if parent is nil) with a hard ceiling.
func NewLimiting(parent Allocator, limitBytes int64) *Limiting {
	if parent == nil {
		parent = Heap()
	}

	return &Limiting{parent: parent, limit: limitBytes}
}

// Reserve accounts n bytes, failing with ErrExhausted if the ceiling would
// be crossed. On failure no bytes are left reserved.
func (l *Limiting) Reserve(n int) error {
	next := atomic.AddInt64(&l.used, int64(n))
	if next > l.limit {
		atomic.AddInt64(&l.used, -int64(n))

		return ErrExhausted
	}
	if err := l.parent.Reserve(n); err != nil {
		atomic.AddInt64(&l.used, -int64(n))

		return err
	}

	return nil
}

// Release gives back n bytes.
func (l *Limiting) Release(n int) {
	atomic.AddInt64(&l.used, -int64(n))
	l.parent.Release(n)
}

// Used reports the current reservation against the ceiling.
func (l *Limiting) Used() int64 { return atomic.LoadInt64(&l.used) }

// Track reserves n bytes against a and returns a release func to defer. It is
// the standard call shape used by every scratch buffer in this module:
//
//	release, err := alloc.Track(a, len(buf)*8)
//	if err != nil {
//	    return nil, err
//	}
//	defer release()
func Track(a Allocator, n int) (release func(), err error) {
	if a == nil {
		a = Heap()
	}
	if err := a.Reserve(n); err != nil {
		return nil, err
	}

	return func() { a.Release(n) }, nil
}
