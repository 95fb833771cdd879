package components_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vexedge/graphcore/alloc"
	"github.com/vexedge/graphcore/components"
	"github.com/vexedge/graphcore/graph"
	"github.com/vexedge/graphcore/topology"
)

func cliqueEdges(ids []int32) []topology.RawEdge {
	var edges []topology.RawEdge
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			edges = append(edges, topology.RawEdge{From: ids[i], To: ids[j]})
		}
	}

	return edges
}

// S3: three disjoint cliques of sizes 8, 6, 5 (V=19).
func TestRunThreeDisjointCliques(t *testing.T) {
	var edges []topology.RawEdge
	a := make([]int32, 8)
	for i := range a {
		a[i] = int32(i)
	}
	b := make([]int32, 6)
	for i := range b {
		b[i] = int32(8 + i)
	}
	c := make([]int32, 5)
	for i := range c {
		c[i] = int32(14 + i)
	}
	edges = append(edges, cliqueEdges(a)...)
	edges = append(edges, cliqueEdges(b)...)
	edges = append(edges, cliqueEdges(c)...)

	g, err := graph.Build(edges, 19, false, false, nil, alloc.Heap())
	require.NoError(t, err)

	res, err := components.Run(g, components.Default())
	require.NoError(t, err)

	require.Equal(t, 3, res.ComponentCount)

	counts := map[int32]int{}
	for _, l := range res.Labels {
		counts[l]++
	}
	var sizes []int
	for _, c := range counts {
		sizes = append(sizes, c)
	}
	sort.Ints(sizes)
	require.Equal(t, []int{5, 6, 8}, sizes)

	for _, v := range a {
		require.Equal(t, res.Labels[a[0]], res.Labels[v])
	}
	require.NotEqual(t, res.Labels[a[0]], res.Labels[b[0]])
	require.NotEqual(t, res.Labels[b[0]], res.Labels[c[0]])
}

func TestRunEmptyGraph(t *testing.T) {
	g, err := graph.Build(nil, 0, false, false, nil, alloc.Heap())
	require.NoError(t, err)

	res, err := components.Run(g, components.Default())
	require.NoError(t, err)
	require.Equal(t, 0, res.ComponentCount)
	require.Empty(t, res.Labels)
}

func TestRunSingletonVertices(t *testing.T) {
	g, err := graph.Build(nil, 4, false, false, nil, alloc.Heap())
	require.NoError(t, err)

	res, err := components.Run(g, components.Default())
	require.NoError(t, err)
	require.Equal(t, 4, res.ComponentCount)
}

func TestRunAllocatorBalance(t *testing.T) {
	edges := cliqueEdges([]int32{0, 1, 2, 3, 4})
	g, err := graph.Build(edges, 5, false, false, nil, alloc.Heap())
	require.NoError(t, err)

	counting := alloc.NewCounting(alloc.Heap())
	d := components.Default()
	d.Allocator = counting
	_, err = components.Run(g, d)
	require.NoError(t, err)
	require.EqualValues(t, 0, counting.BytesInUse())
}
