package deltastep

import "errors"

// ErrInvalidInput indicates an out-of-domain Descriptor (zero or negative
// Delta, source out of range, an empty Outputs mask, an empty graph) or a
// Graph carrying a negative, non-finite, or representable-range-extreme
// edge weight that Delta-Stepping refuses to run against.
var ErrInvalidInput = errors.New("deltastep: invalid input")
