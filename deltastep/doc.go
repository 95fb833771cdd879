// Package deltastep implements Delta-Stepping single-source shortest paths:
// edges are classified once as light (weight <= Δ) or heavy, and a growable
// sequence of buckets is drained in strictly increasing index order, light
// edges relaxed within a bucket's repeated drain and heavy edges relaxed
// once per bucket against every vertex that ever appeared in it.
//
// Concurrency follows the spec's "serialize per vertex via locks"
// alternative to atomic-min: each vertex owns a small mutex-guarded
// dist/pred/bucket triple, mirroring the host library's explicit
// sync.RWMutex-per-graph discipline (core.Graph) scaled down to
// per-vertex granularity, which is what relaxations actually contend on.
// Bucket membership is a second, coarser lock (one per buckets value) since
// a single drain round touches a whole bucket's membership at once.
package deltastep
