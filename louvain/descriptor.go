package louvain

import "github.com/vexedge/graphcore/alloc"

// Descriptor carries every parameter of a louvain.Run call (spec §4.4).
type Descriptor struct {
	// Resolution is γ: the community-size bias in the modularity formula.
	// Larger values favor more, smaller communities. Must be >= 0.
	Resolution float64
	// Epsilon is ε: a local-move pass whose total gain falls below this
	// stops the level. Must be >= 0.
	Epsilon float64
	// MaxIterations caps local-move passes per level; 0 means uncapped.
	MaxIterations int
	// InitialPartition, if non-nil, seeds the first level's community
	// assignment; it must have length equal to the Graph's vertex count,
	// with every entry in [0, V).
	InitialPartition []int32
	// Allocator is the scratch-memory capability threaded through Run.
	Allocator alloc.Allocator
}

// Default returns the Descriptor used when a caller wants the classical
// Louvain behavior: unit resolution, a small epsilon, no iteration cap, no
// seeded partition, heap-backed allocation.
func Default() Descriptor {
	return Descriptor{
		Resolution:    1.0,
		Epsilon:       1e-7,
		MaxIterations: 0,
		Allocator:     alloc.Heap(),
	}
}

func (d Descriptor) validate(vertexCount int64) error {
	if d.Resolution < 0 {
		return ErrInvalidInput
	}
	if d.Epsilon < 0 {
		return ErrInvalidInput
	}
	if d.MaxIterations < 0 {
		return ErrInvalidInput
	}
	if d.InitialPartition != nil {
		if int64(len(d.InitialPartition)) != vertexCount {
			return ErrInvalidInput
		}
		for _, c := range d.InitialPartition {
			if c < 0 || int64(c) >= vertexCount {
				return ErrInvalidInput
			}
		}
	}

	return nil
}

func (d Descriptor) allocator() alloc.Allocator {
	if d.Allocator == nil {
		return alloc.Heap()
	}

	return d.Allocator
}
