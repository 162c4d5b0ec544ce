// SPDX-License-Identifier: MIT
// Package: citynet/builder
//
// api.go - the BuildGraph orchestrator and the Constructor type.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/citynet/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters first and return sentinel
// errors; they never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; the partial graph is discarded.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	if err := Apply(g, bopts, cons...); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// Apply runs constructors against an existing graph, e.g. to extend a loaded
// network. Vertices the constructors add must not already exist.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return err
		}
	}

	return nil
}
