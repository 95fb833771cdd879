package louvain

import "errors"

// ErrInvalidInput indicates a Descriptor parameter outside its allowed
// domain, or an InitialPartition of the wrong length or range.
var ErrInvalidInput = errors.New("louvain: invalid input")
