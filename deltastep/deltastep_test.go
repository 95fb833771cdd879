package deltastep_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vexedge/graphcore/alloc"
	"github.com/vexedge/graphcore/deltastep"
	"github.com/vexedge/graphcore/graph"
	"github.com/vexedge/graphcore/topology"
)

// S2: directed shortest-paths correctness.
func s2Graph(t *testing.T) *graph.Graph {
	t.Helper()
	edges := []topology.RawEdge{
		{From: 0, To: 1, Weight: 10}, {From: 0, To: 2, Weight: 20}, {From: 0, To: 3, Weight: 50},
		{From: 1, To: 3, Weight: 20}, {From: 1, To: 4, Weight: 33}, {From: 2, To: 4, Weight: 20},
		{From: 3, To: 4, Weight: 2}, {From: 3, To: 5, Weight: 1}, {From: 4, To: 5, Weight: 20},
	}
	g, err := graph.Build(edges, 6, true, true, nil, alloc.Heap())
	require.NoError(t, err)

	return g
}

func TestRunS2Distances(t *testing.T) {
	g := s2Graph(t)
	d := deltastep.Descriptor{Source: 0, Delta: 10, Outputs: deltastep.Distances | deltastep.Predecessors, Allocator: alloc.Heap()}
	res, err := deltastep.Run(g, d)
	require.NoError(t, err)

	dist, err := res.Distances()
	require.NoError(t, err)
	require.Equal(t, []float64{0, 10, 20, 30, 32, 31}, dist)

	pred, err := res.Predecessors()
	require.NoError(t, err)
	require.Equal(t, int32(-1), pred[0])

	for v := int32(1); v < 6; v++ {
		if dist[v] == deltastep.Unreachable {
			require.Equal(t, int32(-1), pred[v])
			continue
		}
		p := pred[v]
		w, err := g.EdgeValue(p, v)
		require.NoError(t, err)
		require.InDelta(t, dist[v], dist[p]+w, 1e-9)
	}
}

func TestRunRejectsEmptyOutputMask(t *testing.T) {
	g := s2Graph(t)
	_, err := deltastep.Run(g, deltastep.Descriptor{Source: 0, Delta: 10, Allocator: alloc.Heap()})
	require.ErrorIs(t, err, deltastep.ErrInvalidInput)
}

func TestRunRejectsNonPositiveDelta(t *testing.T) {
	g := s2Graph(t)
	_, err := deltastep.Run(g, deltastep.Descriptor{Source: 0, Delta: 0, Outputs: deltastep.Distances, Allocator: alloc.Heap()})
	require.ErrorIs(t, err, deltastep.ErrInvalidInput)
}

func TestRunRejectsSourceOutOfRange(t *testing.T) {
	g := s2Graph(t)
	_, err := deltastep.Run(g, deltastep.Descriptor{Source: 99, Delta: 10, Outputs: deltastep.Distances, Allocator: alloc.Heap()})
	require.ErrorIs(t, err, deltastep.ErrInvalidInput)
}

func TestResultUnrequestedFieldErrors(t *testing.T) {
	g := s2Graph(t)
	res, err := deltastep.Run(g, deltastep.Descriptor{Source: 0, Delta: 10, Outputs: deltastep.Distances, Allocator: alloc.Heap()})
	require.NoError(t, err)

	_, err = res.Predecessors()
	require.Error(t, err)
}

func TestRunUnreachableVertex(t *testing.T) {
	edges := []topology.RawEdge{{From: 0, To: 1, Weight: 1}}
	g, err := graph.Build(edges, 3, true, true, nil, alloc.Heap())
	require.NoError(t, err)

	res, err := deltastep.Run(g, deltastep.Descriptor{Source: 0, Delta: 1, Outputs: deltastep.Distances | deltastep.Predecessors, Allocator: alloc.Heap()})
	require.NoError(t, err)

	dist, _ := res.Distances()
	pred, _ := res.Predecessors()
	require.Equal(t, deltastep.Unreachable, dist[2])
	require.EqualValues(t, -1, pred[2])
}
