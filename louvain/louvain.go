package louvain

import (
	"github.com/vexedge/graphcore/graph"
	"github.com/vexedge/graphcore/result"
)

// localMovePass runs one deterministic sweep (v = 0..n-1) of the classical
// local-move step (spec §4.4 step 2): each vertex greedily joins the
// neighbor community (or stays put) that maximizes its modularity gain.
// It returns the summed gain improvement over the whole pass, in the same
// units Epsilon is compared against by Run.
func localMovePass(lvl *level, comm []int32, communityTot []float64, gamma float64) float64 {
	if lvl.m2 == 0 {
		// No edge weight anywhere in this level: every vertex is isolated,
		// so no move can ever improve modularity. Report no improvement
		// rather than dividing by zero.
		return 0
	}

	var passGain float64
	neighborWeight := make(map[int32]float64, 8)

	for v := 0; v < lvl.n(); v++ {
		cOld := comm[v]
		communityTot[cOld] -= lvl.deg[v]

		for k := range neighborWeight {
			delete(neighborWeight, k)
		}
		for _, e := range lvl.adj[v] {
			if int(e.to) == v {
				continue // self-loop: constant across every candidate, skip
			}
			neighborWeight[comm[e.to]] += e.w
		}

		gain := func(c int32) float64 {
			return neighborWeight[c] - gamma*communityTot[c]*lvl.deg[v]/lvl.m2
		}

		bestC := cOld
		bestGain := gain(cOld)
		for c := range neighborWeight {
			// Equal gains: staying put wins, then the lowest community id,
			// so the outcome does not depend on map iteration order.
			if g := gain(c); g > bestGain || (g == bestGain && bestC != cOld && c < bestC) {
				bestGain = g
				bestC = c
			}
		}

		passGain += bestGain - gain(cOld)
		comm[v] = bestC
		communityTot[bestC] += lvl.deg[v]
	}

	return passGain
}

// relabelDense rewrites comm in place to use dense ids [0, k), assigned in
// order of first appearance scanning comm[0..n). Returns k.
func relabelDense(comm []int32) int {
	next := int32(0)
	seen := make(map[int32]int32, len(comm))
	for i, c := range comm {
		id, ok := seen[c]
		if !ok {
			id = next
			seen[c] = id
			next++
		}
		comm[i] = id
	}

	return int(next)
}

func communityTotals(lvl *level, comm []int32, k int) []float64 {
	tot := make([]float64, k)
	for v := 0; v < lvl.n(); v++ {
		tot[comm[v]] += lvl.deg[v]
	}

	return tot
}

// unfold composes the per-level community assignments back onto the
// original V vertices: levels[0] maps original vertices to level-0
// communities, levels[1] maps those communities to level-1 communities, and
// so on.
func unfold(levels [][]int32, v int64) []int32 {
	labels := make([]int32, v)
	for i := range labels {
		labels[i] = int32(i)
	}
	for _, lvlComm := range levels {
		for i := range labels {
			labels[i] = lvlComm[labels[i]]
		}
	}

	return labels
}

// modularity computes Q on the original Graph for a fully unfolded label
// assignment, using the closed-form Q = Σ_c [L_c/m2 - γ(tot_c/m2)^2], where
// L_c sums w(u,v) over every stored adjacency entry with both endpoints in
// c (so internal edges are counted from both directions, matching m2's own
// doubling convention) and tot_c is the summed weighted degree of c.
func modularity(g *graph.Graph, labels []int32, gamma float64) float64 {
	v := g.VertexCount()
	if v == 0 {
		return 0
	}

	internal := make(map[int32]float64)
	total := make(map[int32]float64)
	var m2 float64

	for u := int32(0); int64(u) < v; u++ {
		nbrs, err := g.Neighbors(u)
		if err != nil {
			continue
		}
		cu := labels[u]
		var du float64
		for _, nb := range nbrs {
			w, err := g.EdgeWeightOrUnit(u, nb)
			if err != nil {
				continue
			}
			du += w
			if labels[nb] == cu {
				internal[cu] += w
			}
		}
		total[cu] += du
		m2 += du
	}
	if m2 == 0 {
		return 0
	}

	var q float64
	for c, tot := range total {
		q += internal[c]/m2 - gamma*(tot*tot)/(m2*m2)
	}

	return q
}

// Run executes Louvain community detection against g per Descriptor d
// (spec §4.4). It returns ErrInvalidInput for an out-of-domain parameter or
// a malformed InitialPartition, and otherwise always succeeds (an empty
// graph yields the documented degenerate Result).
func Run(g *graph.Graph, d Descriptor) (*Result, error) {
	v := g.VertexCount()
	if err := d.validate(v); err != nil {
		return nil, err
	}
	if v == 0 {
		return &Result{Base: result.NewBase(0), Labels: nil, CommunityCount: 0, Modularity: 0}, nil
	}

	a := d.allocator()

	lvl, err := buildLevel0(g, a)
	if err != nil {
		return nil, err
	}

	comm := make([]int32, lvl.n())
	if d.InitialPartition != nil {
		copy(comm, d.InitialPartition)
	} else {
		for i := range comm {
			comm[i] = int32(i)
		}
	}

	var levels [][]int32
	for {
		k0 := relabelDense(comm)
		communityTot := communityTotals(lvl, comm, k0)

		iter := 0
		for {
			gain := localMovePass(lvl, comm, communityTot, d.Resolution)
			iter++
			if gain <= d.Epsilon {
				break
			}
			if d.MaxIterations > 0 && iter >= d.MaxIterations {
				break
			}
		}

		k := relabelDense(comm)
		levelComm := make([]int32, len(comm))
		copy(levelComm, comm)
		levels = append(levels, levelComm)

		if k == lvl.n() {
			// No aggregation possible: this level's local-move pass moved
			// nothing into a shared community, so recursing would not
			// shrink the graph further.
			break
		}

		newLvl, err := aggregate(lvl, comm, k, a)
		if err != nil {
			return nil, err
		}
		lvl = newLvl
		comm = make([]int32, k)
		for i := range comm {
			comm[i] = int32(i)
		}
	}

	labels := unfold(levels, v)
	communityCount := relabelDense(labels)
	q := modularity(g, labels, d.Resolution)

	return &Result{
		Base:           result.NewBase(int(v)),
		Labels:         labels,
		CommunityCount: communityCount,
		Modularity:     q,
	}, nil
}
