package deltastep

import (
	"github.com/vexedge/graphcore/result"
)

// Result holds whichever of distances/predecessors Descriptor.Outputs asked
// for. Reading a field that was not requested returns
// result.ErrUninitializedOptionalResult rather than a zero-valued slice, so
// callers cannot mistake "not requested" for "computed and empty".
type Result struct {
	result.Base

	outputs      Outputs
	distances    []float64
	predecessors []int32
}

// Distances returns the per-vertex shortest distance from the source,
// math.MaxFloat64 for unreachable vertices. Fails if Distances was not in
// the Outputs mask passed to Run.
func (r *Result) Distances() ([]float64, error) {
	if !r.outputs.has(Distances) {
		return nil, result.ErrUninitializedOptionalResult
	}

	return r.distances, nil
}

// Predecessors returns the per-vertex predecessor on the shortest-path
// tree, -1 for the source and for unreachable vertices. Fails if
// Predecessors was not in the Outputs mask passed to Run.
func (r *Result) Predecessors() ([]int32, error) {
	if !r.outputs.has(Predecessors) {
		return nil, result.ErrUninitializedOptionalResult
	}

	return r.predecessors, nil
}
