package fixtures

import "github.com/vexedge/graphcore/topology"

// cliqueEdges returns every (i,j) pair among ids, i < j.
func cliqueEdges(ids []int32) []topology.RawEdge {
	edges := make([]topology.RawEdge, 0, len(ids)*(len(ids)-1)/2)
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			edges = append(edges, topology.RawEdge{From: ids[i], To: ids[j]})
		}
	}

	return edges
}

func idRange(n int) []int32 {
	ids := make([]int32, n)
	for i := range ids {
		ids[i] = int32(i)
	}

	return ids
}

// cliqueShape returns the K_n edge list and its vertex count.
func cliqueShape(n int) ([]topology.RawEdge, int64, error) {
	if n < 1 {
		return nil, 0, ErrTooFewVertices
	}

	return cliqueEdges(idRange(n)), int64(n), nil
}

// cliqueWeightedShape returns K_n with every edge set to the given weight.
func cliqueWeightedShape(n int, weight float64) ([]topology.RawEdge, int64, error) {
	edges, v, err := cliqueShape(n)
	if err != nil {
		return nil, 0, err
	}
	for i := range edges {
		edges[i].Weight = weight
	}

	return edges, v, nil
}

// pathShape returns the n-vertex path 0-1-2-...-(n-1).
func pathShape(n int) ([]topology.RawEdge, int64, error) {
	if n < 1 {
		return nil, 0, ErrTooFewVertices
	}
	edges := make([]topology.RawEdge, 0, n-1)
	for i := 0; i < n-1; i++ {
		edges = append(edges, topology.RawEdge{From: int32(i), To: int32(i + 1)})
	}

	return edges, int64(n), nil
}

// cycleShape returns the n-vertex cycle 0-1-2-...-(n-1)-0.
func cycleShape(n int) ([]topology.RawEdge, int64, error) {
	if n < 3 {
		return nil, 0, ErrTooFewVertices
	}
	edges, v, err := pathShape(n)
	if err != nil {
		return nil, 0, err
	}
	edges = append(edges, topology.RawEdge{From: int32(n - 1), To: 0})

	return edges, v, nil
}

// gridShape returns a rows x cols lattice, 4-connected, vertex id
// r*cols+c for row r, column c.
func gridShape(rows, cols int) ([]topology.RawEdge, int64, error) {
	if rows < 1 || cols < 1 {
		return nil, 0, ErrTooFewVertices
	}
	var edges []topology.RawEdge
	id := func(r, c int) int32 { return int32(r*cols + c) }
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				edges = append(edges, topology.RawEdge{From: id(r, c), To: id(r, c+1)})
			}
			if r+1 < rows {
				edges = append(edges, topology.RawEdge{From: id(r, c), To: id(r+1, c)})
			}
		}
	}

	return edges, int64(rows * cols), nil
}

// twoCliquesBridgeShape returns two K_k cliques on {0..k-1} and {k..2k-1}
// joined by a single bridge edge (k-1, k): the S4 seed scenario's shape.
func twoCliquesBridgeShape(k int) ([]topology.RawEdge, int64, error) {
	if k < 1 {
		return nil, 0, ErrTooFewVertices
	}
	left := idRange(k)
	right := make([]int32, k)
	for i := range right {
		right[i] = int32(k + i)
	}

	edges := cliqueEdges(left)
	edges = append(edges, cliqueEdges(right)...)
	edges = append(edges, topology.RawEdge{From: left[k-1], To: right[0]})

	return edges, int64(2 * k), nil
}

// disjointCliquesShape returns len(sizes) vertex-disjoint cliques laid out
// consecutively: the S3 seed scenario's shape for sizes {8, 6, 5}.
func disjointCliquesShape(sizes []int) ([]topology.RawEdge, int64, error) {
	if len(sizes) == 0 {
		return nil, 0, ErrTooFewVertices
	}
	var edges []topology.RawEdge
	var next int32
	for _, size := range sizes {
		if size < 1 {
			return nil, 0, ErrTooFewVertices
		}
		ids := make([]int32, size)
		for i := range ids {
			ids[i] = next
			next++
		}
		edges = append(edges, cliqueEdges(ids)...)
	}

	return edges, int64(next), nil
}

// handGraphShape is the S1 seed scenario's fixed shape: undirected, V=7,
// edges {(0,1),(1,2),(2,3),(2,4),(3,6),(4,5),(1,4),(2,6)}.
func handGraphShape() ([]topology.RawEdge, int64) {
	edges := []topology.RawEdge{
		{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}, {From: 2, To: 4},
		{From: 3, To: 6}, {From: 4, To: 5}, {From: 1, To: 4}, {From: 2, To: 6},
	}

	return edges, 7
}
