package result

import "errors"

// ErrUninitializedOptionalResult is returned when a caller reads a result
// field that was never requested (e.g. predecessors when Delta-Stepping was
// asked only for distances).
var ErrUninitializedOptionalResult = errors.New("result: field was not requested")

// Tabular is satisfied by every algorithm result object in this module. Rows
// equals the vertex count the algorithm ran against; Columns is always 1
// since every result here is a single per-vertex value (a label, a distance,
// a predecessor).
type Tabular interface {
	Rows() int
	Columns() int
}

// Base implements the Columns()==1 half of Tabular; algorithm results embed
// it and only need to report their row count.
type Base struct {
	rows int
}

// NewBase returns a Base reporting rows rows.
func NewBase(rows int) Base { return Base{rows: rows} }

// Rows returns the row count fixed at construction.
func (b Base) Rows() int { return b.rows }

// Columns always returns 1: every result here carries one value per vertex.
func (b Base) Columns() int { return 1 }
