package topology

import "errors"

// ErrInvalidInput indicates a structurally invalid build request: a negative
// vertex count, a zero vertex count with a non-empty edge list, an
// out-of-range endpoint, or a non-positive weight in the weighted variant.
var ErrInvalidInput = errors.New("topology: invalid input")

// ErrOutOfRange indicates a query used a vertex index outside [0, V).
var ErrOutOfRange = errors.New("topology: index out of range")

// ErrWeightMismatch indicates two parsed edges between the same ordered
// pair of endpoints carried different weights; the weighted build variant
// treats this as a hard error rather than silently keeping the first value.
var ErrWeightMismatch = errors.New("topology: duplicate edge has conflicting weights")
