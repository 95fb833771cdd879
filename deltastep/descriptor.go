package deltastep

import "github.com/vexedge/graphcore/alloc"

// Descriptor carries every parameter of a deltastep.Run call (spec §4.5).
type Descriptor struct {
	// Source is the single source vertex s. Must be in [0, V).
	Source int32
	// Delta is Δ, the bucket width. Must be > 0.
	Delta float64
	// Outputs selects which result fields Run populates; must be nonzero.
	Outputs Outputs
	// Allocator is the scratch-memory capability threaded through Run.
	Allocator alloc.Allocator
}

func (d Descriptor) validate(vertexCount int64) error {
	if vertexCount == 0 {
		return ErrInvalidInput
	}
	if d.Source < 0 || int64(d.Source) >= vertexCount {
		return ErrInvalidInput
	}
	if d.Delta <= 0 {
		return ErrInvalidInput
	}
	if d.Outputs == 0 {
		return ErrInvalidInput
	}

	return nil
}

func (d Descriptor) allocator() alloc.Allocator {
	if d.Allocator == nil {
		return alloc.Heap()
	}

	return d.Allocator
}
