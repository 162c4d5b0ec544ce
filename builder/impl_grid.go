// SPDX-License-Identifier: MIT
// Package: citynet/builder
//
// impl_grid.go: implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1, cols ≥ 1 and rows*cols ≥ MinGridNodes, else ErrTooFewVertices.
//   • Vertex IDs are "r,c" (row-major), independent of cfg.idFn.
//   • Per cell: right edge first, then down edge.
//
// Complexity: O(rows*cols) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/citynet/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols 4-neighborhood street grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim || rows*cols < MinGridNodes {
			return fmt.Errorf("%s: rows=%d, cols=%d (each ≥ %d, product ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, MinGridNodes, ErrTooFewVertices)
		}

		var r, c int
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				id := GridVertexID(r, c)
				if err := g.AddVertex(id); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, id, err)
				}
			}
		}

		var u string
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				u = GridVertexID(r, c)
				if c+1 < cols {
					if err := connect(g, methodGrid, cfg, u, GridVertexID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := connect(g, methodGrid, cfg, u, GridVertexID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
