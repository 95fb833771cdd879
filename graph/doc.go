// Package graph ties a topology.Topology together with optional per-edge
// weights and per-vertex labels into the Graph value every algorithm in this
// module consumes. A Graph is built once (via Build, or by the ingest
// package's CSV reader) and is immutable afterward: there is no AddVertex or
// AddEdge here, by design (the core's one Non-goal that most directly shapes
// this package's API relative to the host library's core.Graph, which is
// mutable and string-keyed).
//
// Service queries (§4.3 of the engine spec) are all either O(1) or, for
// Neighbors, a zero-copy slice into the underlying Topology. EdgeValue binary
// searches the requested row, matching Topology.HasEdge's complexity.
package graph
