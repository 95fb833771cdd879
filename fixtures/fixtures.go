package fixtures

import (
	"github.com/vexedge/graphcore/alloc"
	"github.com/vexedge/graphcore/graph"
)

// Clique returns the complete unweighted graph K_n.
func Clique(n int, a alloc.Allocator) (*graph.Graph, error) {
	edges, v, err := cliqueShape(n)
	if err != nil {
		return nil, err
	}

	return graph.Build(edges, v, false, false, nil, a)
}

// CliqueWeighted returns K_n with every edge set to weight.
func CliqueWeighted(n int, weight float64, a alloc.Allocator) (*graph.Graph, error) {
	edges, v, err := cliqueWeightedShape(n, weight)
	if err != nil {
		return nil, err
	}

	return graph.Build(edges, v, false, true, nil, a)
}

// Path returns the n-vertex path graph 0-1-...-(n-1).
func Path(n int, a alloc.Allocator) (*graph.Graph, error) {
	edges, v, err := pathShape(n)
	if err != nil {
		return nil, err
	}

	return graph.Build(edges, v, false, false, nil, a)
}

// Cycle returns the n-vertex cycle graph.
func Cycle(n int, a alloc.Allocator) (*graph.Graph, error) {
	edges, v, err := cycleShape(n)
	if err != nil {
		return nil, err
	}

	return graph.Build(edges, v, false, false, nil, a)
}

// Grid returns a rows x cols 4-connected lattice.
func Grid(rows, cols int, a alloc.Allocator) (*graph.Graph, error) {
	edges, v, err := gridShape(rows, cols)
	if err != nil {
		return nil, err
	}

	return graph.Build(edges, v, false, false, nil, a)
}

// TwoCliquesBridge returns two K_k cliques joined by a single bridge edge
// (spec §8 scenario S4's shape, with k=5).
func TwoCliquesBridge(k int, a alloc.Allocator) (*graph.Graph, error) {
	edges, v, err := twoCliquesBridgeShape(k)
	if err != nil {
		return nil, err
	}

	return graph.Build(edges, v, false, false, nil, a)
}

// DisjointCliques returns len(sizes) vertex-disjoint cliques (spec §8
// scenario S3's shape, with sizes {8, 6, 5}).
func DisjointCliques(sizes []int, a alloc.Allocator) (*graph.Graph, error) {
	edges, v, err := disjointCliquesShape(sizes)
	if err != nil {
		return nil, err
	}

	return graph.Build(edges, v, false, false, nil, a)
}

// HandGraph returns the spec §8 scenario S1 fixture.
func HandGraph(a alloc.Allocator) (*graph.Graph, error) {
	edges, v := handGraphShape()

	return graph.Build(edges, v, false, false, nil, a)
}
