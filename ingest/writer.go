package ingest

import (
	"bufio"
	"fmt"
	"io"

	"github.com/vexedge/graphcore/graph"
)

// WriteEdgeList serializes g back into the line format Read accepts: one
// record per undirected edge (emitted once, at its lower endpoint) or per
// directed edge (emitted once per stored direction). It is the inverse side
// of the CSV round-trip property: WriteEdgeList(g) fed back through Read
// under the same Mode and directedness reproduces g's edges up to the dedup
// and symmetrization build already performs. Vertices above the largest
// edge endpoint are not reproduced, since Read infers the vertex count from
// the endpoints it sees.
func WriteEdgeList(w io.Writer, g *graph.Graph, mode Mode) error {
	bw := bufio.NewWriter(w)

	V := g.VertexCount()
	for u := int32(0); int64(u) < V; u++ {
		nbrs, err := g.Neighbors(u)
		if err != nil {
			return err
		}
		for _, v := range nbrs {
			if !g.Directed() && v < u {
				continue
			}
			if mode.weighted() {
				wt, err := g.EdgeValue(u, v)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(bw, "%d %d %g\n", u, v, wt); err != nil {
					return err
				}
			} else if _, err := fmt.Fprintf(bw, "%d %d\n", u, v); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}
