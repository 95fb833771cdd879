package components

import "github.com/vexedge/graphcore/result"

// Result is the per-vertex component label table plus the component count.
// Labels is length V, every entry in [0, ComponentCount), and two vertices
// share a label iff they are in the same undirected connected component.
type Result struct {
	result.Base

	Labels         []int32
	ComponentCount int
}
