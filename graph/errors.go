package graph

import "errors"

// ErrInvalidInput indicates a malformed Graph construction request (a
// weight/vertex-value slice of the wrong length for the given Topology).
var ErrInvalidInput = errors.New("graph: invalid input")

// ErrOutOfRange indicates a query used a vertex index outside [0, V), or
// EdgeValue was asked about a pair with no edge between them.
var ErrOutOfRange = errors.New("graph: index out of range")
