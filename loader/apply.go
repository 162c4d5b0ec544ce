// SPDX-License-Identifier: MIT
//
// File: apply.go
// Role: Apply parsed paths to a graph.

package loader

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/citynet/core"
)

// ErrNilGraph indicates Apply was given a nil graph.
var ErrNilGraph = errors.New("loader: graph is nil")

// ApplyReport summarizes one Apply call.
type ApplyReport struct {
	Records         int // records seen
	CitiesAdded     int // new vertices
	DuplicateCities int // AddVertex calls that found the city already present
	EdgesAdded      int
	Failures        []RecordError
}

// Failed reports whether any record could not be applied.
func (r ApplyReport) Failed() bool { return len(r.Failures) > 0 }

// Apply adds both cities of every record, then the road between them.
//
// Implementation:
//   - Stage 1: AddVertex for From and To; core.ErrDuplicateVertex is counted.
//   - Stage 2: AddEdge(From, To, Distance) when both cities are present.
//   - Any other error is recorded with the record's line and the loop goes on.
//
// Errors:
//   - ErrNilGraph; per-record failures never abort the call.
//
// Complexity: O(R) amortized graph operations for R records.
func Apply(g *core.Graph, records []PathRecord) (ApplyReport, error) {
	var rep ApplyReport
	if g == nil {
		return rep, ErrNilGraph
	}

	for _, rec := range records {
		rep.Records++
		if !rep.addCity(g, rec.Line, rec.From) || !rep.addCity(g, rec.Line, rec.To) {
			continue
		}
		if err := g.AddEdge(rec.From, rec.To, rec.Distance); err != nil {
			rep.Failures = append(rep.Failures, RecordError{Line: rec.Line, Err: fmt.Errorf("road %s-%s: %w", rec.From, rec.To, err)})
			continue
		}
		rep.EdgesAdded++
	}

	return rep, nil
}

// addCity reports whether name is present in g after the call.
func (r *ApplyReport) addCity(g *core.Graph, line int, name string) bool {
	err := g.AddVertex(name)
	switch {
	case err == nil:
		r.CitiesAdded++
	case errors.Is(err, core.ErrDuplicateVertex):
		r.DuplicateCities++
	default:
		r.Failures = append(r.Failures, RecordError{Line: line, Err: err})
		return false
	}

	return true
}
