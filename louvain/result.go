package louvain

import "github.com/vexedge/graphcore/result"

// Result is the per-vertex community table plus scalar summaries that Run
// returns. Labels is length V, with every entry in [0, CommunityCount).
type Result struct {
	result.Base

	Labels         []int32
	CommunityCount int
	Modularity     float64
}
