// SPDX-License-Identifier: MIT
//
// File: parse.go
// Role: ParsePaths / ParsePairs line scanners.

package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	pathFields = 3
	pairFields = 2
	commentTag = "#"
)

// PathRecord is one road of a paths file.
type PathRecord struct {
	Line     int
	From, To string
	Distance int64
}

// PairRecord is one route query of a pairs file.
type PairRecord struct {
	Line       int
	Start, End string
}

// ParsePaths reads "city city distance" records from r.
//
// The distance is parsed as a signed integer; its sign is not checked here,
// so a non-positive distance surfaces as core.ErrInvalidWeight from Apply.
//
// Errors:
//   - *ParseError wrapping ErrFieldCount or ErrBadDistance.
//   - read errors from r, wrapped.
func ParsePaths(r io.Reader) ([]PathRecord, error) {
	var out []PathRecord
	err := scan(r, pathFields, func(line int, f []string) error {
		d, err := strconv.ParseInt(f[2], 10, 64)
		if err != nil {
			return ErrBadDistance
		}
		out = append(out, PathRecord{Line: line, From: f[0], To: f[1], Distance: d})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// ParsePairs reads "start end" records from r.
//
// Errors:
//   - *ParseError wrapping ErrFieldCount.
//   - read errors from r, wrapped.
func ParsePairs(r io.Reader) ([]PairRecord, error) {
	var out []PairRecord
	err := scan(r, pairFields, func(line int, f []string) error {
		out = append(out, PairRecord{Line: line, Start: f[0], End: f[1]})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// scan feeds every significant line with exactly want fields to fn.
func scan(r io.Reader, want int, fn func(line int, fields []string) error) error {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, commentTag) {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != want {
			return &ParseError{Line: line, Text: text, Err: fmt.Errorf("%w: got %d, want %d", ErrFieldCount, len(fields), want)}
		}
		if err := fn(line, fields); err != nil {
			return &ParseError{Line: line, Text: text, Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("loader: read: %w", err)
	}

	return nil
}
