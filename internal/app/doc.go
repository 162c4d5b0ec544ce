// Package app wires the citynet libraries into the commands of the CLI.
//
// An App owns one run: it loads the paths file into a core.Graph, optionally
// exercises the error paths of the graph and engine against a scratch copy
// (self-check), answers every query of the pairs file, and writes the
// results file plus an optional Prometheus textfile.
//
// Terminal output goes through a report.Renderer that is styled only when
// stdout is a terminal; the results file is always plain text. Structured
// progress and diagnostics go to the injected *slog.Logger.
package app
