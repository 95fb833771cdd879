package louvain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vexedge/graphcore/alloc"
	"github.com/vexedge/graphcore/graph"
	"github.com/vexedge/graphcore/louvain"
	"github.com/vexedge/graphcore/topology"
)

func clique(ids []int32) []topology.RawEdge {
	var edges []topology.RawEdge
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			edges = append(edges, topology.RawEdge{From: ids[i], To: ids[j]})
		}
	}

	return edges
}

// S4: two K5 cliques joined by one bridge edge.
func TestRunTwoCliquesBridge(t *testing.T) {
	var edges []topology.RawEdge
	edges = append(edges, clique([]int32{0, 1, 2, 3, 4})...)
	edges = append(edges, clique([]int32{5, 6, 7, 8, 9})...)
	edges = append(edges, topology.RawEdge{From: 4, To: 5})

	g, err := graph.Build(edges, 10, false, false, nil, alloc.Heap())
	require.NoError(t, err)

	res, err := louvain.Run(g, louvain.Default())
	require.NoError(t, err)

	require.Equal(t, 2, res.CommunityCount)
	require.Greater(t, res.Modularity, 0.0)
	for v := int32(0); v < 5; v++ {
		require.Equal(t, res.Labels[0], res.Labels[v])
	}
	for v := int32(5); v < 10; v++ {
		require.Equal(t, res.Labels[5], res.Labels[v])
	}
	require.NotEqual(t, res.Labels[0], res.Labels[5])
}

// S6: allocator balance under Louvain on K20, unit-weighted.
func TestRunAllocatorBalanceK20(t *testing.T) {
	ids := make([]int32, 20)
	for i := range ids {
		ids[i] = int32(i)
	}
	edges := clique(ids)

	g, err := graph.Build(edges, 20, false, false, nil, alloc.Heap())
	require.NoError(t, err)

	counting := alloc.NewCounting(alloc.Heap())
	require.EqualValues(t, 0, counting.BytesInUse())

	d := louvain.Default()
	d.Allocator = counting
	res, err := louvain.Run(g, d)
	require.NoError(t, err)

	require.Equal(t, 1, res.CommunityCount)
	require.EqualValues(t, 0, counting.BytesInUse())
}

func TestRunEmptyGraph(t *testing.T) {
	g, err := graph.Build(nil, 0, false, false, nil, alloc.Heap())
	require.NoError(t, err)

	res, err := louvain.Run(g, louvain.Default())
	require.NoError(t, err)
	require.Equal(t, 0, res.CommunityCount)
	require.Equal(t, 0.0, res.Modularity)
	require.Empty(t, res.Labels)
}

func TestRunEdgelessGraphHasSingletonCommunities(t *testing.T) {
	g, err := graph.Build(nil, 5, false, false, nil, alloc.Heap())
	require.NoError(t, err)

	res, err := louvain.Run(g, louvain.Default())
	require.NoError(t, err)
	require.Equal(t, 5, res.CommunityCount)
	require.Equal(t, 0.0, res.Modularity)
}

func TestRunRejectsMalformedInitialPartition(t *testing.T) {
	g, err := graph.Build([]topology.RawEdge{{From: 0, To: 1}}, 2, false, false, nil, alloc.Heap())
	require.NoError(t, err)

	d := louvain.Default()
	d.InitialPartition = []int32{0}
	_, err = louvain.Run(g, d)
	require.ErrorIs(t, err, louvain.ErrInvalidInput)
}

func TestRunRejectsNegativeResolution(t *testing.T) {
	g, err := graph.Build([]topology.RawEdge{{From: 0, To: 1}}, 2, false, false, nil, alloc.Heap())
	require.NoError(t, err)

	d := louvain.Default()
	d.Resolution = -1
	_, err = louvain.Run(g, d)
	require.ErrorIs(t, err, louvain.ErrInvalidInput)
}
