package graph

import (
	"github.com/vexedge/graphcore/alloc"
	"github.com/vexedge/graphcore/topology"
)

// Graph is (Topology, directedness, EdgeValues?, VertexValues?) per the
// engine's data model. Once constructed it is safe to share across
// goroutines: every field is read-only.
type Graph struct {
	topo         *topology.Topology
	weights      []float64 // aligned 1:1 with topo.Cols(); nil if unweighted
	vertexLabels []int32   // length V; nil if absent
}

// New wraps an already-built Topology with optional edge weights and vertex
// labels. weights, if non-nil, must have length topo's Cols() length;
// vertexLabels, if non-nil, must have length topo.VertexCount().
func New(topo *topology.Topology, weights []float64, vertexLabels []int32) (*Graph, error) {
	if topo == nil {
		return nil, ErrInvalidInput
	}
	if weights != nil && int64(len(weights)) != int64(len(topo.Cols())) {
		return nil, ErrInvalidInput
	}
	if vertexLabels != nil && int64(len(vertexLabels)) != topo.VertexCount() {
		return nil, ErrInvalidInput
	}

	return &Graph{topo: topo, weights: weights, vertexLabels: vertexLabels}, nil
}

// Build runs topology.Build and wraps the result, optionally attaching
// vertexLabels (pass nil for none). Complexity: see topology.Build.
func Build(edges []topology.RawEdge, vertexCount int64, directed, weighted bool, vertexLabels []int32, a alloc.Allocator) (*Graph, error) {
	topo, weights, err := topology.Build(edges, vertexCount, directed, weighted, a)
	if err != nil {
		return nil, err
	}

	return New(topo, weights, vertexLabels)
}

// Topology exposes the underlying CSR structure for algorithms that want
// direct row/col access instead of going through the per-call query API.
func (g *Graph) Topology() *topology.Topology { return g.topo }

// VertexCount returns V. Complexity: O(1).
func (g *Graph) VertexCount() int64 { return g.topo.VertexCount() }

// EdgeCount returns E. Complexity: O(1).
func (g *Graph) EdgeCount() int64 { return g.topo.EdgeCount() }

// Directed reports whether this Graph is directed. Complexity: O(1).
func (g *Graph) Directed() bool { return g.topo.Directed() }

// Weighted reports whether this Graph carries per-edge values.
// Complexity: O(1).
func (g *Graph) Weighted() bool { return g.weights != nil }

// HasVertexLabels reports whether this Graph carries per-vertex values.
// Complexity: O(1).
func (g *Graph) HasVertexLabels() bool { return g.vertexLabels != nil }

// Degree returns the number of entries in u's row: its full degree on an
// undirected Graph, its out-degree on a directed one (in-degree is not
// tracked). Complexity: O(1).
func (g *Graph) Degree(u int32) (int, error) {
	d, err := g.topo.Degree(u)
	if err != nil {
		return 0, ErrOutOfRange
	}

	return d, nil
}

// OutwardDegree returns u's out-degree on a directed Graph. On an undirected
// Graph this is identical to Degree, since both directions are materialized
// in the same row. Complexity: O(1).
func (g *Graph) OutwardDegree(u int32) (int, error) { return g.Degree(u) }

// Neighbors returns the zero-copy, sorted neighbor slice for u.
// Complexity: O(1).
func (g *Graph) Neighbors(u int32) ([]int32, error) {
	n, err := g.topo.Neighbors(u)
	if err != nil {
		return nil, ErrOutOfRange
	}

	return n, nil
}

// OutwardNeighbors is an alias for Neighbors: the CSR row for u already
// holds exactly its outward adjacency, directed or not. Complexity: O(1).
func (g *Graph) OutwardNeighbors(u int32) ([]int32, error) { return g.Neighbors(u) }

// EdgeValue binary-searches u's row for v and returns the aligned weight.
// Returns ErrOutOfRange if u or v is invalid, if the Graph carries no
// weights, or if the edge is absent. Complexity: O(log deg(u)).
func (g *Graph) EdgeValue(u, v int32) (float64, error) {
	if g.weights == nil {
		return 0, ErrOutOfRange
	}
	idx, err := g.topo.IndexOfEdge(u, v)
	if err != nil {
		return 0, ErrOutOfRange
	}
	if idx < 0 {
		return 0, ErrOutOfRange
	}

	return g.weights[idx], nil
}

// EdgeWeightOrUnit returns EdgeValue(u, v) if the Graph is weighted, else 1.
// It is a convenience used by algorithms (Louvain, Delta-Stepping) that must
// treat every edge of an unweighted graph as weight 1 per spec §4.4/§4.5.
func (g *Graph) EdgeWeightOrUnit(u, v int32) (float64, error) {
	if g.weights == nil {
		if ok, err := g.topo.HasEdge(u, v); err != nil {
			return 0, ErrOutOfRange
		} else if !ok {
			return 0, ErrOutOfRange
		}

		return 1, nil
	}

	return g.EdgeValue(u, v)
}

// VertexLabel returns the vertex label of u. Returns ErrOutOfRange if u is
// invalid or no vertex labels were attached. Complexity: O(1).
func (g *Graph) VertexLabel(u int32) (int32, error) {
	if g.vertexLabels == nil {
		return 0, ErrOutOfRange
	}
	if u < 0 || int64(u) >= g.topo.VertexCount() {
		return 0, ErrOutOfRange
	}

	return g.vertexLabels[u], nil
}
