// Package louvain implements modularity-optimizing community detection: the
// classical two-phase local-move-then-aggregate scheme, iterated across
// levels until a pass produces no improvement or the aggregated graph stops
// shrinking.
//
// The Descriptor/Run shape and its validation order follow the host
// dijkstra.Options/runner convention: Run validates every parameter up
// front, in the order Descriptor's fields are declared, before touching the
// Graph. Internally each level's adjacency is rebuilt as a small
// self-contained structure (not the public graph.Graph) because aggregation
// produces a graph over communities, not over the original vertex set; the
// Graph type's immutability (no AddEdge) makes it the wrong vehicle for a
// structure that is rebuilt wholesale at every level anyway.
package louvain
