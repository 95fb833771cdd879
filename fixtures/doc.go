// Package fixtures generates small, deterministic graphs for tests and CLI
// demos: cliques, paths, cycles, grids, and a few named shapes the engine's
// seed test scenarios reference directly (HandGraph, TwoCliquesBridge,
// DisjointCliques). It is adapted from the host library's builder package
// (impl_complete.go, impl_grid.go, and friends), which produced the same
// shapes by mutating a core.Graph; here every generator instead returns a
// RawEdge list that feeds graph.Build, since a Graph in this module has no
// mutation API to build one incrementally against.
package fixtures
