package fixtures

import "errors"

// ErrTooFewVertices indicates a generator was asked for fewer vertices than
// its shape requires (e.g. a cycle with n < 3, a clique with n < 1).
var ErrTooFewVertices = errors.New("fixtures: too few vertices")
