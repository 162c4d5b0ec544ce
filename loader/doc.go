// SPDX-License-Identifier: MIT

// Package loader reads city network data files and applies them to a core.Graph.
//
// Two line-oriented formats are understood:
//
//   - paths: "city city distance", one road per line.
//   - pairs: "start end", one route query per line.
//
// Fields are separated by any run of whitespace (the shipped data uses tabs).
// Blank lines and lines whose first non-blank character is '#' are skipped.
// A malformed line stops parsing with a *ParseError carrying its line number.
//
// Apply inserts parsed paths into a graph. Cities that appear on many lines
// are expected, so duplicate cities are counted rather than reported; every
// other per-record failure is collected in the ApplyReport and the remaining
// records are still applied.
//
// WritePaths is the inverse of ParsePaths: it dumps every edge of a graph in
// the paths format, which lets generated networks be stored and reloaded.
package loader
