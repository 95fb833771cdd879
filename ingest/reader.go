package ingest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/vexedge/graphcore/alloc"
	"github.com/vexedge/graphcore/graph"
	"github.com/vexedge/graphcore/topology"
)

const maxVertexIndex = int64(1)<<31 - 1

// record is one syntactically parsed, not-yet-validated CSV line.
type record struct {
	u, v   int64
	w      float64
	hasW   bool
	blank  bool
}

// splitFields breaks a line on any run of spaces, tabs, or commas, matching
// §6's "any mix of spaces, tabs, and commas" field-separator rule.
func splitFields(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
}

// parseRecord performs only syntactic parsing: wrong field count or a
// non-numeric token is a parse failure. Domain validation (range, sign,
// weight positivity) happens afterward in validateRecord, so that the
// first-line header-tolerance rule in Read only ever swallows a syntax
// failure, never a semantically invalid but well-formed record.
func parseRecord(line string, weighted bool) (record, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return record{blank: true}, nil
	}

	fields := splitFields(trimmed)
	// A weighted-mode record with exactly two fields is syntactically a
	// valid (u,v) pair missing its weight — that is a domain failure
	// (§6's "missing weight"), not a syntax one, so it is accepted here and
	// left for validateRecord to reject as ErrInvalidInput.
	minFields, maxFields := 2, 2
	if weighted {
		maxFields = 3
	}
	if len(fields) < minFields || len(fields) > maxFields {
		return record{}, fmt.Errorf("ingest: expected %d-%d fields, got %d", minFields, maxFields, len(fields))
	}

	// A number too large for its type is well-formed: ParseInt/ParseFloat
	// return it clamped with ErrRange, and validateRecord rejects it.
	u, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return record{}, err
	}
	v, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return record{}, err
	}

	rec := record{u: u, v: v}
	if weighted && len(fields) == 3 {
		w, err := strconv.ParseFloat(fields[2], 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return record{}, err
		}
		rec.w = w
		rec.hasW = true
	}

	return rec, nil
}

func validateRecord(rec record, weighted bool) error {
	if rec.u < 0 || rec.u > maxVertexIndex || rec.v < 0 || rec.v > maxVertexIndex {
		return ErrInvalidInput
	}
	if weighted && !rec.hasW {
		return ErrInvalidInput
	}
	if rec.hasW {
		if math.IsNaN(rec.w) || math.IsInf(rec.w, 0) || rec.w <= 0 || rec.w == math.MaxFloat64 {
			return ErrInvalidInput
		}
	}

	return nil
}

// Read parses r per the CSV edge-list rules in §6 and builds the resulting
// Graph. The vertex count is inferred as one plus the largest index seen;
// callers that need a larger, sparsely-referenced vertex count should build
// directly through graph.Build instead.
func Read(r io.Reader, mode Mode, directed bool, a alloc.Allocator) (*graph.Graph, error) {
	weighted := mode.weighted()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var edges []topology.RawEdge
	var maxIndex int64 = -1
	firstLine := true

	for scanner.Scan() {
		line := scanner.Text()

		rec, err := parseRecord(line, weighted)
		if err != nil {
			if firstLine {
				firstLine = false
				continue
			}

			return nil, ErrParseError
		}
		firstLine = false

		if rec.blank {
			continue
		}
		if err := validateRecord(rec, weighted); err != nil {
			return nil, err
		}

		if rec.u > maxIndex {
			maxIndex = rec.u
		}
		if rec.v > maxIndex {
			maxIndex = rec.v
		}
		edges = append(edges, topology.RawEdge{From: int32(rec.u), To: int32(rec.v), Weight: rec.w})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}

	vertexCount := maxIndex + 1
	if vertexCount < 0 {
		vertexCount = 0
	}

	return graph.Build(edges, vertexCount, directed, weighted, nil, a)
}

// ReadFile opens path and delegates to Read.
func ReadFile(path string, mode Mode, directed bool, a alloc.Allocator) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrFileNotFound
		}

		return nil, ErrFileNotFound
	}
	defer f.Close()

	return Read(f, mode, directed, a)
}
