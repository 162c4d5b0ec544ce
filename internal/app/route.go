package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/katalvlaran/citynet/dijkstra"
	"github.com/katalvlaran/citynet/report"
)

// Summary describes a completed route run.
type Summary struct {
	RunID        string
	Cities       int
	Roads        int
	LoadFailures int
	Queries      int
	Found        int
	Unreachable  int
	Invalid      int
	SearchTime   time.Duration
}

// Route loads the network and answers every query of the pairs file.
//
// Implementation:
//   - Stage 1: Load paths and pairs; an empty or malformed file is fatal.
//   - Stage 2: Create the results file and stamp the run id.
//   - Stage 3: Run the self-check if enabled.
//   - Stage 4: Query each pair; invalid queries are reported and skipped.
//   - Stage 5: Write the batch summary and export metrics if configured.
//
// Cancelling ctx stops the batch between queries.
func (a *App) Route(ctx context.Context) (sum Summary, err error) {
	sum.RunID = a.runID

	g, rep, err := a.loadNetwork()
	if err != nil {
		return sum, err
	}
	sum.Cities, sum.Roads, sum.LoadFailures = g.VertexCount(), g.EdgeCount(), len(rep.Failures)

	pairs, err := a.loadPairs()
	if err != nil {
		return sum, err
	}

	out, err := os.Create(a.cfg.Output)
	if err != nil {
		return sum, fmt.Errorf("app: create results: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("app: close results: %w", cerr)
		}
	}()
	file := report.New(out)
	_ = file.Line("# citynet run " + a.runID)

	if a.cfg.SelfCheck {
		if err = a.selfCheck(g, file); err != nil {
			return sum, err
		}
	}

	both := func(fn func(r *report.Renderer) error) {
		_ = fn(a.term)
		_ = fn(file)
	}
	both(func(r *report.Renderer) error { return r.Banner("DIJKSTRA'S ALGORITHM - START") })
	_ = a.term.Network(g)

	opts := a.cfg.SearchOptions()
	for _, p := range pairs {
		if err = ctx.Err(); err != nil {
			return sum, fmt.Errorf("app: route batch interrupted after %d queries: %w", sum.Queries, err)
		}
		sum.Queries++
		res, qerr := dijkstra.ShortestPath(g, p.Start, p.End, opts...)
		a.metrics.ObserveQuery(res, qerr)
		if qerr != nil {
			sum.Invalid++
			a.logger.Warn("Query rejected.", "file", a.cfg.Pairs, "line", p.Line, "start", p.Start, "end", p.End, "error", qerr)
			_ = a.term.Failure(qerr)
			continue
		}
		if res.Found {
			sum.Found++
		} else {
			sum.Unreachable++
		}
		sum.SearchTime += res.Elapsed
		a.logger.Debug("Query complete.",
			"start", p.Start, "end", p.End,
			"found", res.Found, "distance", res.TotalDistance, "visited", res.Visited)
		both(func(r *report.Renderer) error { return r.Route(res) })
	}

	both(func(r *report.Renderer) error { return r.Summary(sum.Queries, sum.SearchTime) })
	both(func(r *report.Renderer) error { return r.Banner("DIJKSTRA'S ALGORITHM - COMPLETE") })
	if err = file.Err(); err != nil {
		return sum, fmt.Errorf("app: write results: %w", err)
	}

	if a.cfg.Metrics.File != "" {
		if err = a.metrics.Export(a.cfg.Metrics.File); err != nil {
			return sum, err
		}
		a.logger.Debug("Metrics exported.", "file", a.cfg.Metrics.File)
	}

	a.logger.Info("Route batch complete.",
		"queries", sum.Queries,
		"found", sum.Found,
		"unreachable", sum.Unreachable,
		"invalid", sum.Invalid,
		"search_time", sum.SearchTime,
		"output", a.cfg.Output)

	return sum, nil
}
