// Package components implements Afforest connected-components labeling: a
// cheap neighbor-sampling phase first identifies the presumed giant
// component by finding the union-find forest's mode root, then an
// exhaustive phase unions every remaining vertex's full neighbor list
// against it, guaranteeing full correctness regardless of how the sample
// phase misjudged the giant component.
//
// The union-find itself is grounded on the host library's
// prim_kruskal.unionFind (sequential path compression + union by rank),
// generalized to the lock-free discipline spec §4.6 names explicitly:
// find walks to the root with best-effort path halving via atomic loads
// and opportunistic CAS, and link always attaches the higher-valued root
// under the lower-valued one, retrying the CAS on contention. This ordering
// rule is what the host's union-by-rank policy becomes once concurrent
// callers can race on the same union: a total order on root ids replaces
// the sequential rank comparison, so two callers racing to link the same
// pair of trees always agree on which wins.
package components
