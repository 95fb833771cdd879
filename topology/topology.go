package topology

import "sort"

// Topology is the immutable CSR adjacency structure shared by every Graph.
// A zero Topology (returned for V==0 builds) has VertexCount()==0 and is
// safe to query.
type Topology struct {
	vertexCount int64
	edgeCount   int64 // logical edge count E (undirected edges counted once)
	directed    bool
	rows        []int64
	cols        []int32
}

// VertexCount returns V. Complexity: O(1).
func (t *Topology) VertexCount() int64 { return t.vertexCount }

// EdgeCount returns E: the number of logical edges. For undirected
// topologies this is len(cols)/2; for directed topologies it is len(cols).
// Complexity: O(1).
func (t *Topology) EdgeCount() int64 { return t.edgeCount }

// Directed reports whether this Topology stores one direction per logical
// edge (true) or both (false). Complexity: O(1).
func (t *Topology) Directed() bool { return t.directed }

// RowOffset exposes rows[i] for i in [0, V]. Used by the Graph wrapper and
// by algorithms that want the raw half-open slice bounds directly.
// Complexity: O(1).
func (t *Topology) RowOffset(i int64) (int64, error) {
	if i < 0 || i > t.vertexCount {
		return 0, ErrOutOfRange
	}
	if t.rows == nil {
		return 0, nil
	}

	return t.rows[i], nil
}

// Cols exposes the raw, shared column-index backing array. Callers must
// treat the returned slice as read-only: Topology is immutable after build
// and this slice may be shared across concurrently running algorithms.
// Complexity: O(1).
func (t *Topology) Cols() []int32 { return t.cols }

// Degree returns the number of entries in u's row (its out-degree for
// directed topologies, its full degree for undirected ones).
// Complexity: O(1).
func (t *Topology) Degree(u int32) (int, error) {
	if u < 0 || int64(u) >= t.vertexCount {
		return 0, ErrOutOfRange
	}

	return int(t.rows[u+1] - t.rows[u]), nil
}

// Neighbors returns the zero-copy half-open slice cols[rows[u]:rows[u+1]),
// sorted ascending. Complexity: O(1) to obtain the slice header.
func (t *Topology) Neighbors(u int32) ([]int32, error) {
	if u < 0 || int64(u) >= t.vertexCount {
		return nil, ErrOutOfRange
	}

	return t.cols[t.rows[u]:t.rows[u+1]], nil
}

// HasEdge binary-searches u's sorted neighbor row for v. Complexity:
// O(log deg(u)).
func (t *Topology) HasEdge(u, v int32) (bool, error) {
	nbrs, err := t.Neighbors(u)
	if err != nil {
		return false, err
	}
	if v < 0 || int64(v) >= t.vertexCount {
		return false, ErrOutOfRange
	}
	idx := sort.Search(len(nbrs), func(i int) bool { return nbrs[i] >= v })

	return idx < len(nbrs) && nbrs[idx] == v, nil
}

// IndexOfEdge returns the position within Cols() of the (u,v) entry in u's
// row, or -1 if absent. Used by the Graph wrapper to align edge values.
// Complexity: O(log deg(u)).
func (t *Topology) IndexOfEdge(u, v int32) (int64, error) {
	nbrs, err := t.Neighbors(u)
	if err != nil {
		return -1, err
	}
	if v < 0 || int64(v) >= t.vertexCount {
		return -1, ErrOutOfRange
	}
	idx := sort.Search(len(nbrs), func(i int) bool { return nbrs[i] >= v })
	if idx < len(nbrs) && nbrs[idx] == v {
		return t.rows[u] + int64(idx), nil
	}

	return -1, nil
}
