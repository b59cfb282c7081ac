package ewgraph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads a graph description from r in the line-oriented format
//
//	V
//	E
//	v w weight     (E times)
//
// where V and E are non-negative integers, v and w are vertices in [0, V)
// and weight is a decimal number (negative and zero weights are legal).
// Blank lines are skipped; tokens on one line are whitespace-separated.
//
// Returns the parsed graph, or an ErrBadFormat-wrapped error naming the
// offending line. Parse does not attempt recovery: the first malformed
// line aborts the read and the partial graph is discarded.
// Complexity: O(V + E).
func Parse(r io.Reader) (*Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	v, err := parseCount(sc, "vertex count")
	if err != nil {
		return nil, err
	}
	e, err := parseCount(sc, "edge count")
	if err != nil {
		return nil, err
	}

	g, err := New(v)
	if err != nil {
		return nil, err
	}

	for i := 0; i < e; i++ {
		fields, err := nextFields(sc, "edge line")
		if err != nil {
			return nil, err
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: edge line %q needs 3 fields", ErrBadFormat, strings.Join(fields, " "))
		}
		from, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w: bad vertex %q", ErrBadFormat, fields[0])
		}
		to, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: bad vertex %q", ErrBadFormat, fields[1])
		}
		weight, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad weight %q", ErrBadFormat, fields[2])
		}
		if _, err = g.AddEdge(from, to, weight); err != nil {
			return nil, err
		}
	}

	return g, sc.Err()
}

// parseCount reads the next non-blank line as a single non-negative integer.
func parseCount(sc *bufio.Scanner, what string) (int, error) {
	fields, err := nextFields(sc, what)
	if err != nil {
		return 0, err
	}
	if len(fields) != 1 {
		return 0, fmt.Errorf("%w: %s line %q needs 1 field", ErrBadFormat, what, strings.Join(fields, " "))
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: bad %s %q", ErrBadFormat, what, fields[0])
	}

	return n, nil
}

// nextFields advances to the next non-blank line and splits it on whitespace.
func nextFields(sc *bufio.Scanner, what string) ([]string, error) {
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) > 0 {
			return fields, nil
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrBadFormat, what, err)
	}

	return nil, fmt.Errorf("%w: unexpected end of input before %s", ErrBadFormat, what)
}
