package app

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/citynet/core"
	"github.com/katalvlaran/citynet/dijkstra"
	"github.com/katalvlaran/citynet/report"
)

// ErrSelfCheck indicates that an error path did not behave as expected.
var ErrSelfCheck = errors.New("app: self-check failed")

// pairScanLimit bounds the search for two unconnected cities.
const pairScanLimit = 64

// check is one expected outcome. A nil want expects success.
type check struct {
	name string
	want error
	run  func() error
}

// selfCheck exercises every rejection path of the graph and the engine on a
// clone of g, then an unreachable query through a temporary isolated city.
// g itself is never modified.
func (a *App) selfCheck(g *core.Graph, file *report.Renderer) error {
	if g.VertexCount() < 2 {
		a.logger.Warn("Self-check skipped.", "reason", "fewer than 2 cities", "cities", g.VertexCount())
		return nil
	}
	scratch := g.Clone()
	names := scratch.Vertices()
	first, second := names[0], names[1]
	missA := absentName(scratch, "Winchester")
	missB := absentName(scratch, "Exeter")
	isolated := absentName(scratch, "Coventry")

	query := func(start, end string) func() error {
		return func() error {
			_, err := dijkstra.ShortestPath(scratch, start, end)
			return err
		}
	}

	checks := []check{
		{"addCity duplicate", core.ErrDuplicateVertex, func() error { return scratch.AddVertex(first) }},
		{"addPath first missing", core.ErrFirstVertexNotFound, func() error { return scratch.AddEdge(missA, first, 100) }},
		{"addPath second missing", core.ErrSecondVertexNotFound, func() error { return scratch.AddEdge(first, missA, 100) }},
		{"addPath both missing", core.ErrBothVerticesNotFound, func() error { return scratch.AddEdge(missA, missB, 100) }},
		{"addPath invalid distance", core.ErrInvalidWeight, func() error { return scratch.AddEdge(first, second, -14) }},
		{"removeCity missing", core.ErrVertexNotFound, func() error { return scratch.RemoveVertex(missA) }},
		{"removePath first missing", core.ErrFirstVertexNotFound, func() error { return scratch.RemoveEdge(missA, first) }},
		{"removePath second missing", core.ErrSecondVertexNotFound, func() error { return scratch.RemoveEdge(first, missA) }},
		{"removePath both missing", core.ErrBothVerticesNotFound, func() error { return scratch.RemoveEdge(missA, missB) }},
	}
	if u, v, ok := unconnectedPair(scratch, names); ok {
		checks = append(checks, check{"removePath not present", core.ErrEdgeNotFound, func() error { return scratch.RemoveEdge(u, v) }})
	}
	checks = append(checks,
		check{"displayConnections missing", core.ErrVertexNotFound, func() error { return a.term.Connections(scratch, missA) }},
		check{"displayConnections first", nil, func() error { return a.term.Connections(scratch, first) }},
		check{"dijkstra start missing", dijkstra.ErrStartNotFound, query(missA, first)},
		check{"dijkstra end missing", dijkstra.ErrEndNotFound, query(first, missA)},
		check{"dijkstra both missing", dijkstra.ErrBothNotFound, query(missA, missB)},
		check{"addCity isolated", nil, func() error { return scratch.AddVertex(isolated) }},
		check{"displayConnections isolated", nil, func() error { return a.term.Connections(scratch, isolated) }},
		check{"dijkstra unreachable", nil, func() error {
			res, err := dijkstra.ShortestPath(scratch, first, isolated)
			if err != nil {
				return err
			}
			if res.Found {
				return fmt.Errorf("%q reached %q", first, isolated)
			}
			_ = a.term.Route(res)
			return file.Route(res)
		}},
		check{"removeCity isolated", nil, func() error { return scratch.RemoveVertex(isolated) }},
	)

	_ = a.term.Banner("TESTING ERROR FLAGS - START")
	_ = file.Line("Testing 'dijkstra' function error paths:")

	var failures []error
	for _, c := range checks {
		err := c.run()
		if !matches(err, c.want) {
			failures = append(failures, fmt.Errorf("%s: got %v, want %v", c.name, err, c.want))
			continue
		}
		if err != nil {
			_ = a.term.Failure(err)
		}
		a.logger.Debug("Self-check passed.", "check", c.name)
	}

	_ = a.term.Banner("TESTING ERROR FLAGS - COMPLETE")
	if len(failures) > 0 {
		return fmt.Errorf("%w: %w", ErrSelfCheck, errors.Join(failures...))
	}
	a.logger.Info("Self-check complete.", "checks", len(checks))

	return nil
}

func matches(err, want error) bool {
	if want == nil {
		return err == nil
	}

	return errors.Is(err, want)
}

// absentName returns base, or base followed by the smallest counter from 2,
// that names no city of g.
func absentName(g *core.Graph, base string) string {
	name := base
	for i := 2; g.HasVertex(name); i++ {
		name = fmt.Sprintf("%s%d", base, i)
	}

	return name
}

// unconnectedPair finds two distinct cities among the first pairScanLimit
// names that share no road.
func unconnectedPair(g *core.Graph, names []string) (string, string, bool) {
	if len(names) > pairScanLimit {
		names = names[:pairScanLimit]
	}
	for i := range names {
		for j := i + 1; j < len(names); j++ {
			if !g.HasEdge(names[i], names[j]) {
				return names[i], names[j], true
			}
		}
	}

	return "", "", false
}
