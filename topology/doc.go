// Package topology owns the compressed-sparse-row (CSR) representation at
// the bottom of the engine: degrees, row offsets, and column indices. A
// Topology is built once from an edge list and is immutable for the rest of
// its lifetime; there is no incremental mutation API by design (core
// Non-goal).
//
// Layout:
//
//	rows[0..V]   prefix sum of degrees; rows[0]==0, rows[V]==len(cols)
//	cols[0..rows[V]) neighbor indices, sorted ascending within each row
//
// For an undirected Topology, (u,v) being present implies (v,u) is present:
// both directions are materialized in cols during the build, so Neighbors(u)
// already reflects the full undirected adjacency without a parallel-read
// symmetrization step.
//
// This file layout, and the two-pass degree-count/offset-fill construction,
// is the standard CSR build recipe; the sentinel-error and
// complexity-documented-method style is carried over from the host
// library's core.Graph (see DESIGN.md for the adaptation notes).
package topology
