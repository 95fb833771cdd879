package components

import (
	"github.com/vexedge/graphcore/alloc"
	"github.com/vexedge/graphcore/graph"
	"github.com/vexedge/graphcore/internal/parallel"
	"github.com/vexedge/graphcore/result"
)

// Run labels the undirected connected components of g per Descriptor d
// (spec §4.6). It never fails except on allocator exhaustion; an empty
// graph yields an empty label table and a component count of zero.
func Run(g *graph.Graph, d Descriptor) (*Result, error) {
	v := g.VertexCount()
	if v == 0 {
		return &Result{Base: result.NewBase(0), Labels: nil, ComponentCount: 0}, nil
	}

	a := d.allocator()
	release, err := alloc.Track(a, int(v)*4)
	if err != nil {
		return nil, err
	}
	defer release()

	parent := make([]int32, v)
	for i := range parent {
		parent[i] = int32(i)
	}

	// Phase 2: sample a fixed-size prefix of each vertex's sorted neighbor
	// list to cheaply find the giant component.
	parallel.For(int(v), 0, func(i int) {
		u := int32(i)
		nbrs, _ := g.Neighbors(u)
		fanout := d.SampleFanout
		if fanout < 0 {
			fanout = 0
		}
		if fanout > len(nbrs) {
			fanout = len(nbrs)
		}
		for _, nb := range nbrs[:fanout] {
			link(parent, u, nb)
		}
	})

	// Phase 3: the mode root after sampling is the presumed giant component.
	rootCounts := make(map[int32]int)
	for i := int32(0); int64(i) < v; i++ {
		rootCounts[find(parent, i)]++
	}
	var modeRoot int32
	var modeCount int
	for r, c := range rootCounts {
		if c > modeCount {
			modeRoot, modeCount = r, c
		}
	}

	// Phase 4: exhaustive completion for every vertex not already attached
	// to the presumed giant component.
	parallel.For(int(v), 0, func(i int) {
		u := int32(i)
		if find(parent, u) == modeRoot {
			return
		}
		nbrs, _ := g.Neighbors(u)
		for _, nb := range nbrs {
			link(parent, u, nb)
		}
	})

	// Phase 5: compress so parent directly stores root ids.
	parallel.For(int(v), 0, func(i int) {
		parent[i] = find(parent, int32(i))
	})

	// Phase 6/7: deterministic dense reindex, roots labeled in order of
	// first appearance scanning v = 0..V-1.
	dense := make(map[int32]int32)
	labels := make([]int32, v)
	next := int32(0)
	for i := int32(0); int64(i) < v; i++ {
		root := parent[i]
		id, ok := dense[root]
		if !ok {
			id = next
			dense[root] = id
			next++
		}
		labels[i] = id
	}

	return &Result{
		Base:           result.NewBase(int(v)),
		Labels:         labels,
		ComponentCount: int(next),
	}, nil
}
