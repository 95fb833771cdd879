// Package result defines the small shared contract every algorithm result
// object satisfies: a tabular view with a known row count and exactly one
// value column. This replaces the deep "model / result / input" base-class
// hierarchies of the host library's original table types with a single
// narrow interface (see louvain.Result, deltastep.Result, components.Result)
// plus the ErrUninitializedOptionalResult sentinel that deltastep.Result
// returns for an unrequested field.
package result
