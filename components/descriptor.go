package components

import "github.com/vexedge/graphcore/alloc"

// Descriptor carries every parameter of a components.Run call (spec §4.6).
type Descriptor struct {
	// SampleFanout caps how many of each vertex's leading (sorted) neighbors
	// the sample phase unions against, before the exhaustive phase runs.
	// Must be >= 0; 0 degenerates the sample phase to a no-op, relying on
	// the exhaustive phase alone for correctness.
	SampleFanout int
	// Allocator is the scratch-memory capability threaded through Run.
	Allocator alloc.Allocator
}

// Default returns the fanout the host pack's retrieved fixtures exercise in
// practice: a small constant, since the sample phase only needs to find the
// giant component cheaply, not exactly.
func Default() Descriptor {
	return Descriptor{SampleFanout: 2, Allocator: alloc.Heap()}
}

func (d Descriptor) allocator() alloc.Allocator {
	if d.Allocator == nil {
		return alloc.Heap()
	}

	return d.Allocator
}
