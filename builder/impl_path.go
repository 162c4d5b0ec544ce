// SPDX-License-Identifier: MIT
// Package: citynet/builder
//
// impl_path.go: implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ MinPathNodes, else ErrTooFewVertices.
//   • Vertex IDs via cfg.idFn(0..n-1), edges (i-1)-i for i=1..n-1.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/citynet/core"
)

const methodPath = "Path"

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, MinPathNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, methodPath, n, cfg.idFn)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = connect(g, methodPath, cfg, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
