// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: sentinel errors and the positional ParseError.

package loader

import (
	"errors"
	"fmt"
)

var (
	// ErrFieldCount indicates a record with the wrong number of fields.
	ErrFieldCount = errors.New("loader: wrong number of fields")

	// ErrBadDistance indicates a distance field that is not a base-10 integer.
	ErrBadDistance = errors.New("loader: distance is not an integer")
)

// ParseError reports the line at which a data file could not be parsed.
type ParseError struct {
	Line int    // 1-based line number
	Text string // the offending line, trimmed
	Err  error  // ErrFieldCount or ErrBadDistance
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
}

// Unwrap exposes the underlying sentinel to errors.Is.
func (e *ParseError) Unwrap() error { return e.Err }

// RecordError is a non-fatal failure to apply one record.
type RecordError struct {
	Line int
	Err  error
}

// Error implements error.
func (e RecordError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap exposes the graph error to errors.Is.
func (e RecordError) Unwrap() error { return e.Err }
