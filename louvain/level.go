package louvain

import (
	"sort"

	"github.com/vexedge/graphcore/alloc"
	"github.com/vexedge/graphcore/graph"
)

// edgeW is one weighted adjacency entry within a level's internal graph.
type edgeW struct {
	to int32
	w  float64
}

// level is the aggregated graph a single pass of local-move operates over.
// level 0 is built directly from the input Graph; every subsequent level is
// built by aggregate, collapsing the previous level's communities into
// super-vertices. m2 (twice the total edge weight) is invariant across every
// level by construction: aggregate only redistributes existing weight among
// fewer, larger adjacency entries.
type level struct {
	adj [][]edgeW
	deg []float64 // weighted degree k_i, including self-loop weight
	m2  float64
}

func (l *level) n() int { return len(l.adj) }

// buildLevel0 turns g into the level-0 internal representation: one
// adjacency entry per stored (u,v), weight 1 for unweighted graphs.
func buildLevel0(g *graph.Graph, a alloc.Allocator) (*level, error) {
	n := int(g.VertexCount())
	release, err := alloc.Track(a, n*16)
	if err != nil {
		return nil, err
	}
	defer release()

	lvl := &level{adj: make([][]edgeW, n), deg: make([]float64, n)}
	for u := int32(0); int(u) < n; u++ {
		nbrs, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		row := make([]edgeW, 0, len(nbrs))
		var du float64
		for _, v := range nbrs {
			w, err := g.EdgeWeightOrUnit(u, v)
			if err != nil {
				return nil, err
			}
			row = append(row, edgeW{to: v, w: w})
			du += w
		}
		lvl.adj[u] = row
		lvl.deg[u] = du
		lvl.m2 += du
	}

	return lvl, nil
}

// aggregate collapses lvl's vertices into k super-vertices per comm (which
// must already be dense-relabeled into [0, k)). Weight between or within
// communities sums over every original adjacency entry; a self-loop at
// community c accumulates exactly twice the true intra-community edge
// weight, matching the doubling convention degrees already use, so m2 is
// preserved unchanged across the aggregation.
func aggregate(lvl *level, comm []int32, k int, a alloc.Allocator) (*level, error) {
	release, err := alloc.Track(a, k*32)
	if err != nil {
		return nil, err
	}
	defer release()

	accum := make([]map[int32]float64, k)
	for i := range accum {
		accum[i] = make(map[int32]float64)
	}
	for v := 0; v < lvl.n(); v++ {
		cv := comm[v]
		for _, e := range lvl.adj[v] {
			cu := comm[e.to]
			accum[cv][cu] += e.w
		}
	}

	newLvl := &level{adj: make([][]edgeW, k), deg: make([]float64, k), m2: lvl.m2}
	for c := 0; c < k; c++ {
		row := make([]edgeW, 0, len(accum[c]))
		var dc float64
		for to, w := range accum[c] {
			row = append(row, edgeW{to: to, w: w})
			dc += w
		}
		sort.Slice(row, func(i, j int) bool { return row[i].to < row[j].to })
		newLvl.adj[c] = row
		newLvl.deg[c] = dc
	}

	return newLvl, nil
}
