package deltastep

import (
	"math"
	"sync"

	"github.com/vexedge/graphcore/alloc"
	"github.com/vexedge/graphcore/graph"
	"github.com/vexedge/graphcore/internal/parallel"
	"github.com/vexedge/graphcore/result"
)

// Unreachable is the sentinel distance for a vertex with no path from the
// source, per spec §4.5/§6.
const Unreachable = math.MaxFloat64

// edgeW is one weighted outgoing edge within the precomputed light/heavy
// split.
type edgeW struct {
	to int32
	w  float64
}

// vertexState bundles the three fields every relaxation touches together
// under one mutex: dist and pred must never observe a torn update relative
// to each other (spec §4.5 concurrency contract: pred[v] must correspond to
// the u that produced the currently stored dist[v]), and bucket is the
// index a removal must target.
type vertexState struct {
	mu     sync.Mutex
	dist   float64
	pred   int32
	bucket int64
}

// Run executes Delta-Stepping SSSP against g per Descriptor d (spec §4.5).
func Run(g *graph.Graph, d Descriptor) (*Result, error) {
	v := g.VertexCount()
	if err := d.validate(v); err != nil {
		return nil, err
	}

	a := d.allocator()
	release, err := alloc.Track(a, int(v)*32)
	if err != nil {
		return nil, err
	}
	defer release()

	lightAdj := make([][]edgeW, v)
	heavyAdj := make([][]edgeW, v)
	for u := int32(0); int64(u) < v; u++ {
		nbrs, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for _, nb := range nbrs {
			w, err := g.EdgeWeightOrUnit(u, nb)
			if err != nil {
				return nil, err
			}
			if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 || w == math.MaxFloat64 {
				return nil, ErrInvalidInput
			}
			if w <= d.Delta {
				lightAdj[u] = append(lightAdj[u], edgeW{to: nb, w: w})
			} else {
				heavyAdj[u] = append(heavyAdj[u], edgeW{to: nb, w: w})
			}
		}
	}

	states := make([]vertexState, v)
	for i := range states {
		states[i].dist = Unreachable
		states[i].pred = -1
		states[i].bucket = -1
	}

	bkt := newBuckets()
	states[d.Source].dist = 0
	states[d.Source].bucket = 0
	bkt.add(0, d.Source)

	relax := func(adj [][]edgeW, u int32) {
		states[u].mu.Lock()
		du := states[u].dist
		states[u].mu.Unlock()
		if du == Unreachable {
			return
		}

		for _, e := range adj[u] {
			nd := du + e.w
			st := &states[e.to]
			st.mu.Lock()
			if nd < st.dist {
				oldBucket := st.bucket
				st.dist = nd
				st.pred = u
				newBucket := int64(nd / d.Delta)
				st.bucket = newBucket

				if oldBucket >= 0 {
					bkt.remove(oldBucket, e.to)
				}
				bkt.add(newBucket, e.to)
				st.mu.Unlock()
			} else {
				st.mu.Unlock()
			}
		}
	}

	i := int64(0)
	for {
		i = bkt.firstNonEmptyFrom(i)
		if i < 0 {
			break
		}

		everSeen := make(map[int32]struct{})
		for {
			members := bkt.drainSnapshot(i)
			if len(members) == 0 {
				break
			}
			for _, m := range members {
				everSeen[m] = struct{}{}
			}
			parallel.For(len(members), 0, func(idx int) { relax(lightAdj, members[idx]) })
		}

		everList := make([]int32, 0, len(everSeen))
		for v := range everSeen {
			everList = append(everList, v)
		}
		parallel.For(len(everList), 0, func(idx int) { relax(heavyAdj, everList[idx]) })
	}

	res := &Result{Base: result.NewBase(int(v)), outputs: d.Outputs}
	if d.Outputs.has(Distances) {
		res.distances = make([]float64, v)
		for i := range res.distances {
			res.distances[i] = states[i].dist
		}
	}
	if d.Outputs.has(Predecessors) {
		res.predecessors = make([]int32, v)
		for i := range res.predecessors {
			res.predecessors[i] = states[i].pred
		}
	}

	return res, nil
}
