package topology_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vexedge/graphcore/alloc"
	"github.com/vexedge/graphcore/topology"
)

// handEdges is the S1 seed scenario: undirected, V=7.
func handEdges() []topology.RawEdge {
	return []topology.RawEdge{
		{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}, {From: 2, To: 4},
		{From: 3, To: 6}, {From: 4, To: 5}, {From: 1, To: 4}, {From: 2, To: 6},
	}
}

func TestBuildHandGraphServiceQueries(t *testing.T) {
	topo, _, err := topology.Build(handEdges(), 7, false, false, alloc.Heap())
	require.NoError(t, err)

	require.EqualValues(t, 7, topo.VertexCount())
	require.EqualValues(t, 8, topo.EdgeCount())

	deg, err := topo.Degree(2)
	require.NoError(t, err)
	require.Equal(t, 4, deg)

	nbrs, err := topo.Neighbors(2)
	require.NoError(t, err)
	require.Equal(t, []int32{1, 3, 4, 6}, nbrs)
}

func TestBuildRejectsOutOfRangeEndpoint(t *testing.T) {
	_, _, err := topology.Build([]topology.RawEdge{{From: 0, To: 9}}, 5, false, false, alloc.Heap())
	require.ErrorIs(t, err, topology.ErrInvalidInput)
}

func TestBuildDropsSelfLoops(t *testing.T) {
	topo, _, err := topology.Build([]topology.RawEdge{{From: 0, To: 0}, {From: 0, To: 1}}, 2, false, false, alloc.Heap())
	require.NoError(t, err)
	require.EqualValues(t, 1, topo.EdgeCount())
}

func TestBuildCollapsesDuplicates(t *testing.T) {
	topo, _, err := topology.Build([]topology.RawEdge{{From: 0, To: 1}, {From: 1, To: 0}, {From: 0, To: 1}}, 2, false, false, alloc.Heap())
	require.NoError(t, err)
	require.EqualValues(t, 1, topo.EdgeCount())
	deg, _ := topo.Degree(0)
	require.Equal(t, 1, deg)
}

func TestBuildWeightedRejectsConflictingDuplicate(t *testing.T) {
	edges := []topology.RawEdge{{From: 0, To: 1, Weight: 1}, {From: 0, To: 1, Weight: 2}}
	_, _, err := topology.Build(edges, 2, true, true, alloc.Heap())
	require.ErrorIs(t, err, topology.ErrWeightMismatch)
}

func TestBuildWeightedRejectsNonPositiveWeight(t *testing.T) {
	edges := []topology.RawEdge{{From: 0, To: 1, Weight: 0}}
	_, _, err := topology.Build(edges, 2, true, true, alloc.Heap())
	require.ErrorIs(t, err, topology.ErrInvalidInput)
}

func TestUndirectedSymmetry(t *testing.T) {
	topo, _, err := topology.Build(handEdges(), 7, false, false, alloc.Heap())
	require.NoError(t, err)

	for u := int32(0); u < 7; u++ {
		nbrs, err := topo.Neighbors(u)
		require.NoError(t, err)
		for _, v := range nbrs {
			ok, err := topo.HasEdge(v, u)
			require.NoError(t, err)
			require.True(t, ok, "expected (%d,%d) given (%d,%d)", v, u, u, v)
		}
	}
}

func TestEmptyGraph(t *testing.T) {
	topo, _, err := topology.Build(nil, 0, false, false, alloc.Heap())
	require.NoError(t, err)
	require.EqualValues(t, 0, topo.VertexCount())
	require.EqualValues(t, 0, topo.EdgeCount())
}

func TestOutOfRangeQueries(t *testing.T) {
	topo, _, err := topology.Build(handEdges(), 7, false, false, alloc.Heap())
	require.NoError(t, err)

	_, err = topo.Degree(7)
	require.ErrorIs(t, err, topology.ErrOutOfRange)
	_, err = topo.Neighbors(-1)
	require.ErrorIs(t, err, topology.ErrOutOfRange)
}
