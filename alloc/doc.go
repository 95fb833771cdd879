// Package alloc defines the allocator capability threaded through every
// engine entry point (topology build, CSV ingestion, Louvain, Delta-Stepping,
// connected components).
//
// Go's garbage collector owns the actual memory; an Allocator here is an
// accounting capability, not a placement-new style arena. Every scratch
// buffer an algorithm acquires is first "reserved" against the allocator and
// "released" before the call returns, so a property test can assert that
// BytesInUse() is net zero across a call (see CountingAllocator). This is the
// idiomatic Go shape of the custom-allocator requirement: no unsafe pointer
// arithmetic, no manually managed free lists, just a capability object that
// observes and can refuse allocations.
//
// Errors:
//
//	ErrExhausted - a Limiting allocator refused a reservation.
package alloc
