package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/citynet/core"
	"github.com/katalvlaran/citynet/internal/config"
	"github.com/katalvlaran/citynet/internal/metrics"
	"github.com/katalvlaran/citynet/loader"
	"github.com/katalvlaran/citynet/report"
)

// ErrNoData indicates an input file without a single record.
var ErrNoData = errors.New("app: no data found")

// App encapsulates the dependencies and configuration of one run.
type App struct {
	cfg     config.Config
	outW    io.Writer
	logger  *slog.Logger
	term    *report.Renderer
	metrics *metrics.Recorder
	runID   string
}

// Option configures an App.
type Option func(a *App)

// WithRunID replaces the generated run identifier.
func WithRunID(id string) Option {
	return func(a *App) { a.runID = id }
}

// WithStyle forces styled (true) or plain (false) terminal output.
// Without it, output is styled only when outW is a terminal.
func WithStyle(styled bool) Option {
	return func(a *App) { a.term = newTerminal(a.outW, styled) }
}

// New returns an App writing human-readable output to outW and diagnostics
// to logger. cfg is used as given; callers validate it first.
func New(cfg config.Config, outW io.Writer, logger *slog.Logger, opts ...Option) *App {
	a := &App{
		cfg:     cfg,
		outW:    outW,
		logger:  logger,
		term:    newTerminal(outW, IsTerminal(outW)),
		metrics: metrics.New(cfg.Metrics.Namespace),
		runID:   uuid.NewString(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.logger = a.logger.With("run_id", a.runID)

	return a
}

// RunID returns the identifier stamped on logs and the results file.
func (a *App) RunID() string { return a.runID }

// Metrics returns the run's recorder.
func (a *App) Metrics() *metrics.Recorder { return a.metrics }

// IsTerminal reports whether w is a terminal file descriptor.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func newTerminal(w io.Writer, styled bool) *report.Renderer {
	if styled {
		return report.New(w, report.WithStyle())
	}

	return report.New(w)
}

// loadNetwork parses the paths file and applies it to a fresh graph.
// Rejected records are logged and counted, never fatal.
func (a *App) loadNetwork() (*core.Graph, loader.ApplyReport, error) {
	var rep loader.ApplyReport
	f, err := os.Open(a.cfg.Paths)
	if err != nil {
		return nil, rep, fmt.Errorf("app: open paths: %w", err)
	}
	defer f.Close()

	recs, err := loader.ParsePaths(f)
	if err != nil {
		return nil, rep, fmt.Errorf("app: %s: %w", a.cfg.Paths, err)
	}
	if len(recs) == 0 {
		return nil, rep, fmt.Errorf("%w in %s", ErrNoData, a.cfg.Paths)
	}

	g := core.NewGraph(a.cfg.GraphOptions()...)
	if rep, err = loader.Apply(g, recs); err != nil {
		return nil, rep, err
	}
	for _, fail := range rep.Failures {
		a.logger.Warn("Path record rejected.", "file", a.cfg.Paths, "line", fail.Line, "error", fail.Err)
	}
	a.metrics.SetNetwork(g.VertexCount(), g.EdgeCount())
	a.metrics.AddLoadFailures(len(rep.Failures))
	a.logger.Info("Network loaded.",
		"file", a.cfg.Paths,
		"records", rep.Records,
		"cities", g.VertexCount(),
		"roads", g.EdgeCount(),
		"duplicates", rep.DuplicateCities,
		"rejected", len(rep.Failures))

	return g, rep, nil
}

// loadPairs parses the pairs file.
func (a *App) loadPairs() ([]loader.PairRecord, error) {
	f, err := os.Open(a.cfg.Pairs)
	if err != nil {
		return nil, fmt.Errorf("app: open pairs: %w", err)
	}
	defer f.Close()

	pairs, err := loader.ParsePairs(f)
	if err != nil {
		return nil, fmt.Errorf("app: %s: %w", a.cfg.Pairs, err)
	}
	if len(pairs) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoData, a.cfg.Pairs)
	}
	a.logger.Debug("Pairs loaded.", "file", a.cfg.Pairs, "count", len(pairs))

	return pairs, nil
}
