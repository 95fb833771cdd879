package ingest_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vexedge/graphcore/alloc"
	"github.com/vexedge/graphcore/ingest"
)

// S5: header tolerance.
func TestReadToleratesHeaderLine(t *testing.T) {
	src := "# dataset X\n0 1\n0 2\n1 2\n"
	g, err := ingest.Read(strings.NewReader(src), ingest.EdgeList, false, alloc.Heap())
	require.NoError(t, err)
	require.GreaterOrEqual(t, g.VertexCount(), int64(3))

	deg, err := g.Degree(0)
	require.NoError(t, err)
	require.Equal(t, 2, deg)
}

func TestReadAcceptsCommaAndTabSeparators(t *testing.T) {
	src := "0,1\n1\t2\n"
	g, err := ingest.Read(strings.NewReader(src), ingest.EdgeList, false, alloc.Heap())
	require.NoError(t, err)
	require.EqualValues(t, 2, g.EdgeCount())
}

func TestReadStrictParseErrorAfterHeader(t *testing.T) {
	src := "0 1\nnot a record\n"
	_, err := ingest.Read(strings.NewReader(src), ingest.EdgeList, false, alloc.Heap())
	require.ErrorIs(t, err, ingest.ErrParseError)
}

func TestReadWeightedRejectsNonPositiveWeight(t *testing.T) {
	src := "0 1 -2\n"
	_, err := ingest.Read(strings.NewReader(src), ingest.WeightedEdgeList, false, alloc.Heap())
	require.ErrorIs(t, err, ingest.ErrInvalidInput)
}

func TestReadWeightedMissingWeightIsInvalidInput(t *testing.T) {
	src := "0 1\n"
	_, err := ingest.Read(strings.NewReader(src), ingest.WeightedEdgeList, false, alloc.Heap())
	require.ErrorIs(t, err, ingest.ErrInvalidInput)
}

func TestReadFileNotFound(t *testing.T) {
	_, err := ingest.ReadFile("/nonexistent/path/does-not-exist.csv", ingest.EdgeList, false, alloc.Heap())
	require.ErrorIs(t, err, ingest.ErrFileNotFound)
}

// Invariant 8: CSV round-trip.
func TestWriteEdgeListRoundTrip(t *testing.T) {
	src := "0 1\n0 2\n1 2\n2 3\n"
	g, err := ingest.Read(strings.NewReader(src), ingest.EdgeList, false, alloc.Heap())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ingest.WriteEdgeList(&buf, g, ingest.EdgeList))

	g2, err := ingest.Read(&buf, ingest.EdgeList, false, alloc.Heap())
	require.NoError(t, err)

	require.Equal(t, g.VertexCount(), g2.VertexCount())
	require.Equal(t, g.EdgeCount(), g2.EdgeCount())
	for u := int32(0); int64(u) < g.VertexCount(); u++ {
		n1, err := g.Neighbors(u)
		require.NoError(t, err)
		n2, err := g2.Neighbors(u)
		require.NoError(t, err)
		require.Equal(t, n1, n2)
	}
}

func TestWriteEdgeListRoundTripWeighted(t *testing.T) {
	src := "0 1 2.5\n1 2 3.5\n"
	g, err := ingest.Read(strings.NewReader(src), ingest.WeightedEdgeList, false, alloc.Heap())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ingest.WriteEdgeList(&buf, g, ingest.WeightedEdgeList))

	g2, err := ingest.Read(&buf, ingest.WeightedEdgeList, false, alloc.Heap())
	require.NoError(t, err)

	w1, err := g.EdgeValue(0, 1)
	require.NoError(t, err)
	w2, err := g2.EdgeValue(0, 1)
	require.NoError(t, err)
	require.Equal(t, w1, w2)
}
