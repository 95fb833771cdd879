// Package ingest reads and writes the CSV edge-list formats described by
// the engine's external interface: one record per line, fields separated
// by any mix of spaces, tabs, and commas, with the first line tolerated as
// a textual header if (and only if) it fails to parse as a record.
//
// Read hands its parsed edge buffer to graph.Build, so every invariant
// topology.Build enforces (self-loop dropping, duplicate collapse, weight
// positivity) applies here too; ingest itself only owns the text-to-record
// parsing rules and the FileNotFound/ParseError/InvalidInput distinctions
// that belong to that layer, matching the dijkstra.Options validation-order
// style from the host library (reject cheaply, in order, before doing any
// real work).
package ingest
