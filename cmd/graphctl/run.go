package main

import (
	"fmt"
	"io"

	"github.com/vexedge/graphcore/alloc"
	"github.com/vexedge/graphcore/components"
	"github.com/vexedge/graphcore/deltastep"
	"github.com/vexedge/graphcore/graph"
	"github.com/vexedge/graphcore/ingest"
	"github.com/vexedge/graphcore/louvain"
)

// loadGraph builds a Graph from a CSV edge list, inferring Mode from
// weighted.
func loadGraph(path string, weighted, directed bool, a alloc.Allocator) (*graph.Graph, error) {
	mode := ingest.EdgeList
	if weighted {
		mode = ingest.WeightedEdgeList
	}

	return ingest.ReadFile(path, mode, directed, a)
}

// runLouvain runs community detection and writes "vertex,label" rows.
func runLouvain(w io.Writer, g *graph.Graph, cfg *AlgorithmConfig) error {
	res, err := louvain.Run(g, cfg.louvainDescriptor())
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "# community_count=%d modularity=%g\n", res.CommunityCount, res.Modularity)
	for v, label := range res.Labels {
		fmt.Fprintf(w, "%d,%d\n", v, label)
	}

	return nil
}

// runShortestPaths runs Delta-Stepping and writes "vertex,distance,pred" rows.
func runShortestPaths(w io.Writer, g *graph.Graph, cfg *AlgorithmConfig) error {
	d := cfg.ssspDescriptor()
	res, err := deltastep.Run(g, d)
	if err != nil {
		return err
	}

	dist, distErr := res.Distances()
	pred, predErr := res.Predecessors()

	for v := int32(0); int64(v) < g.VertexCount(); v++ {
		line := fmt.Sprintf("%d", v)
		if distErr == nil {
			line += fmt.Sprintf(",%g", dist[v])
		}
		if predErr == nil {
			line += fmt.Sprintf(",%d", pred[v])
		}
		fmt.Fprintln(w, line)
	}

	return nil
}

// runConnectedComponents runs Afforest and writes "vertex,label" rows.
func runConnectedComponents(w io.Writer, g *graph.Graph, cfg *AlgorithmConfig) error {
	res, err := components.Run(g, cfg.ccDescriptor())
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "# component_count=%d\n", res.ComponentCount)
	for v, label := range res.Labels {
		fmt.Fprintf(w, "%d,%d\n", v, label)
	}

	return nil
}
