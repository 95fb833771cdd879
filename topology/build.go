package topology

import (
	"sort"

	"github.com/vexedge/graphcore/alloc"
)

// RawEdge is one input record for Build: an endpoint pair plus an optional
// weight (ignored unless Build is called with weighted=true).
type RawEdge struct {
	From, To int32
	Weight   float64
}

// Build implements §4.1 of the engine spec: it consumes an edge list and a
// declared vertex count and produces a fully populated, immutable Topology
// in one shot. When weighted is true it also returns a []float64 aligned
// 1:1 with the returned Topology's Cols(); otherwise the second return value
// is nil.
//
// Build fails with ErrInvalidInput when vertexCount is zero while edges is
// non-empty, when any endpoint falls outside [0, vertexCount), or (weighted
// variant) when any weight is non-positive. Self-loops are silently dropped.
// Duplicate edges collapse to a single entry; in the weighted variant a
// duplicate with a conflicting weight is ErrWeightMismatch.
//
// Complexity: O(V + E log E) (the per-row sort dominates); space: O(V + E).
func Build(edges []RawEdge, vertexCount int64, directed, weighted bool, a alloc.Allocator) (*Topology, []float64, error) {
	if vertexCount < 0 {
		return nil, nil, ErrInvalidInput
	}
	if vertexCount == 0 {
		if len(edges) > 0 {
			return nil, nil, ErrInvalidInput
		}

		return &Topology{directed: directed}, nil, nil
	}

	for _, e := range edges {
		if e.From < 0 || int64(e.From) >= vertexCount || e.To < 0 || int64(e.To) >= vertexCount {
			return nil, nil, ErrInvalidInput
		}
		if weighted && e.Weight <= 0 {
			return nil, nil, ErrInvalidInput
		}
	}

	// Pass 1: degree counting, skipping self-loops.
	degRelease, err := alloc.Track(a, int(vertexCount)*8)
	if err != nil {
		return nil, nil, err
	}
	defer degRelease()
	degrees := make([]int64, vertexCount)
	for _, e := range edges {
		if e.From == e.To {
			continue
		}
		degrees[e.From]++
		if !directed {
			degrees[e.To]++
		}
	}

	rows := make([]int64, vertexCount+1)
	for i := int64(0); i < vertexCount; i++ {
		rows[i+1] = rows[i] + degrees[i]
	}
	total := rows[vertexCount]

	cursorRelease, err := alloc.Track(a, int(vertexCount)*8)
	if err != nil {
		return nil, nil, err
	}
	defer cursorRelease()
	cursor := make([]int64, vertexCount)
	copy(cursor, rows[:vertexCount])

	scratchBytes := int(total) * 4
	if weighted {
		scratchBytes += int(total) * 8
	}
	scratchRelease, err := alloc.Track(a, scratchBytes)
	if err != nil {
		return nil, nil, err
	}
	defer scratchRelease()

	cols := make([]int32, total)
	var weights []float64
	if weighted {
		weights = make([]float64, total)
	}

	place := func(u, v int32, w float64) {
		i := cursor[u]
		cursor[u]++
		cols[i] = v
		if weighted {
			weights[i] = w
		}
	}
	for _, e := range edges {
		if e.From == e.To {
			continue
		}
		place(e.From, e.To, e.Weight)
		if !directed {
			place(e.To, e.From, e.Weight)
		}
	}

	// Pass 2: per-row sort + dedup, compacting into final dense arrays.
	finalCols := make([]int32, 0, total)
	var finalWeights []float64
	if weighted {
		finalWeights = make([]float64, 0, total)
	}
	finalRows := make([]int64, vertexCount+1)

	type rowEntry struct {
		v int32
		w float64
	}
	for u := int64(0); u < vertexCount; u++ {
		start, end := rows[u], rows[u+1]
		rowLen := int(end - start)
		entries := make([]rowEntry, rowLen)
		for i := 0; i < rowLen; i++ {
			entries[i].v = cols[start+int64(i)]
			if weighted {
				entries[i].w = weights[start+int64(i)]
			}
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].v < entries[j].v })

		finalRows[u] = int64(len(finalCols))
		for i := 0; i < len(entries); {
			j := i + 1
			for j < len(entries) && entries[j].v == entries[i].v {
				if weighted && entries[j].w != entries[i].w {
					return nil, nil, ErrWeightMismatch
				}
				j++
			}
			finalCols = append(finalCols, entries[i].v)
			if weighted {
				finalWeights = append(finalWeights, entries[i].w)
			}
			i = j
		}
	}
	finalRows[vertexCount] = int64(len(finalCols))

	edgeCount := finalRows[vertexCount]
	if !directed {
		edgeCount /= 2
	}

	t := &Topology{
		vertexCount: vertexCount,
		edgeCount:   edgeCount,
		directed:    directed,
		rows:        finalRows,
		cols:        finalCols,
	}

	return t, finalWeights, nil
}
