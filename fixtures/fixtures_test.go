package fixtures_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vexedge/graphcore/alloc"
	"github.com/vexedge/graphcore/fixtures"
)

func TestCliqueDegree(t *testing.T) {
	g, err := fixtures.Clique(6, alloc.Heap())
	require.NoError(t, err)
	deg, err := g.Degree(0)
	require.NoError(t, err)
	require.Equal(t, 5, deg)
}

func TestCliqueRejectsTooFew(t *testing.T) {
	_, err := fixtures.Clique(0, alloc.Heap())
	require.ErrorIs(t, err, fixtures.ErrTooFewVertices)
}

func TestCycleRejectsTooFew(t *testing.T) {
	_, err := fixtures.Cycle(2, alloc.Heap())
	require.ErrorIs(t, err, fixtures.ErrTooFewVertices)
}

func TestCycleDegreeIsTwo(t *testing.T) {
	g, err := fixtures.Cycle(5, alloc.Heap())
	require.NoError(t, err)
	for v := int32(0); v < 5; v++ {
		deg, err := g.Degree(v)
		require.NoError(t, err)
		require.Equal(t, 2, deg)
	}
}

func TestGridCornerDegree(t *testing.T) {
	g, err := fixtures.Grid(3, 3, alloc.Heap())
	require.NoError(t, err)
	deg, err := g.Degree(0)
	require.NoError(t, err)
	require.Equal(t, 2, deg)

	center, err := g.Degree(4)
	require.NoError(t, err)
	require.Equal(t, 4, center)
}

func TestHandGraphMatchesS1(t *testing.T) {
	g, err := fixtures.HandGraph(alloc.Heap())
	require.NoError(t, err)

	require.EqualValues(t, 7, g.VertexCount())
	require.EqualValues(t, 8, g.EdgeCount())

	deg, err := g.Degree(2)
	require.NoError(t, err)
	require.Equal(t, 4, deg)

	nbrs, err := g.Neighbors(2)
	require.NoError(t, err)
	require.Equal(t, []int32{1, 3, 4, 6}, nbrs)
}

func TestTwoCliquesBridgeVertexCount(t *testing.T) {
	g, err := fixtures.TwoCliquesBridge(5, alloc.Heap())
	require.NoError(t, err)
	require.EqualValues(t, 10, g.VertexCount())
}

func TestDisjointCliquesS3Shape(t *testing.T) {
	g, err := fixtures.DisjointCliques([]int{8, 6, 5}, alloc.Heap())
	require.NoError(t, err)
	require.EqualValues(t, 19, g.VertexCount())
}
