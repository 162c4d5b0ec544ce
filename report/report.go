// SPDX-License-Identifier: MIT
//
// File: report.go
// Role: Renderer and its listings.
// Errors:
//   - The first write error sticks; later writes become no-ops and each
//     method returns it.

package report

import (
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/citynet/core"
	"github.com/katalvlaran/citynet/dijkstra"
)

// Renderer writes reports to one destination. It is not safe for concurrent use.
type Renderer struct {
	w   io.Writer
	p   palette
	err error
}

// Option configures a Renderer.
type Option func(r *Renderer)

// WithStyle enables lipgloss coloring of names, distances and headings.
func WithStyle() Option {
	return func(r *Renderer) { r.p = styledPalette(r.w) }
}

// New returns a plain-text Renderer writing to w. Panics if w is nil.
func New(w io.Writer, opts ...Option) *Renderer {
	if w == nil {
		panic("report: New(nil writer)")
	}
	r := &Renderer{w: w, p: plainPalette()}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Err returns the first write error, if any.
func (r *Renderer) Err() error { return r.err }

func (r *Renderer) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	if _, err := fmt.Fprintf(r.w, format, args...); err != nil {
		r.err = fmt.Errorf("report: %w", err)
	}
}

// Banner writes a section heading: "\n*** TEXT ***\n".
func (r *Renderer) Banner(text string) error {
	r.printf("\n%s\n", r.p.heading("*** "+text+" ***"))

	return r.err
}

// Line writes text followed by a newline.
func (r *Renderer) Line(text string) error {
	r.printf("%s\n", text)

	return r.err
}

// Route writes the block for one completed query.
//
// Found results list every hop with its edge distance, the total and the
// elapsed time. Unreachable results end with "ALGORITHM COMPLETED".
func (r *Renderer) Route(res *dijkstra.Result) error {
	if res == nil {
		return r.err
	}
	r.printf("\n%s\n", r.p.heading("- DIJKSTRA'S ALGORITHM -"))
	r.printf("Shortest path between '%s' and '%s'.\n", r.p.city(res.Start), r.p.city(res.End))
	r.printf("PATH RESULTS:\n")
	if !res.Found {
		r.printf("\t%s\nALGORITHM COMPLETED\n", r.p.failure("Path not found! - Cities are unreachable."))
		return r.err
	}

	r.printf("\tPath: [ ")
	for i, s := range res.Path {
		if i > 0 {
			r.printf(" -(%s)-> ", r.p.distance(km(s.EdgeDistance)))
		}
		r.printf("%s", r.p.city(s.Name))
	}
	r.printf(" ]\n\tThe distance of this path is %s.\n", r.p.distance(km(res.TotalDistance)))
	r.printf("ALGORITHM COMPLETE - (%s)\n", r.p.muted(seconds(res.Elapsed)))

	return r.err
}

// Summary writes the batch footer: "(N Iterations - Time Duration Xs)".
func (r *Renderer) Summary(iterations int, total time.Duration) error {
	r.printf("\n(%d Iterations - Time Duration %s)\n", iterations, r.p.muted(seconds(total)))

	return r.err
}

// Network lists every city in insertion order: "\tNetwork: [ A, B ]".
func (r *Renderer) Network(g *core.Graph) error {
	var names []string
	if g != nil {
		names = g.Vertices()
	}
	if len(names) == 0 {
		r.printf("\n\tNetwork empty!\n")
		return r.err
	}
	r.printf("\n\tNetwork: [")
	for i, n := range names {
		if i > 0 {
			r.printf(",")
		}
		r.printf(" %s", r.p.city(n))
	}
	r.printf(" ]\n")

	return r.err
}

// Connections lists the roads leaving name: "\t[ Leeds (26km), Hull (38km) ]".
//
// Errors:
//   - core.ErrVertexNotFound (wrapped); nothing is written.
func (r *Renderer) Connections(g *core.Graph, name string) error {
	if g == nil {
		return fmt.Errorf("report: %w: %q", core.ErrVertexNotFound, name)
	}
	conns, err := g.Connections(name)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	r.printf("'%s' Connections: \n", r.p.city(name))
	if len(conns) == 0 {
		r.printf("\tConnection List empty!\n")
		return r.err
	}
	r.printf("\t[")
	for i, c := range conns {
		if i > 0 {
			r.printf(",")
		}
		r.printf(" %s (%s)", r.p.city(c.Name()), r.p.distance(km(c.Weight)))
	}
	r.printf(" ]\n")

	return r.err
}

// Failure writes "Failure: <err>".
func (r *Renderer) Failure(err error) error {
	if err == nil {
		return r.err
	}
	r.printf("%s\n", r.p.failure("Failure: "+err.Error()))

	return r.err
}

func km(d int64) string { return fmt.Sprintf("%dkm", d) }

func seconds(d time.Duration) string { return fmt.Sprintf("%fs", d.Seconds()) }
