package ingest

import "errors"

// ErrFileNotFound indicates ReadFile could not open its source path.
var ErrFileNotFound = errors.New("ingest: file not found")

// ErrParseError indicates a line after the tolerated header failed to
// split into the field count its Mode requires, or one of those fields
// failed to parse as a number at all.
var ErrParseError = errors.New("ingest: parse error")

// ErrInvalidInput indicates a syntactically valid record violated a
// domain constraint: a negative or out-of-range vertex index, or (weighted
// mode) a non-positive weight.
var ErrInvalidInput = errors.New("ingest: invalid input")
