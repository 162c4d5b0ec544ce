// SPDX-License-Identifier: MIT
// Package: citynet/builder
//
// impl_star.go: implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ MinStarNodes, else ErrTooFewVertices.
//   • Hub is CenterVertexID; leaves are cfg.idFn(1..n-1), spokes in that order.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/citynet/core"
)

const methodStar = "Star"

// Star returns a Constructor that builds a hub with n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, MinStarNodes, ErrTooFewVertices)
		}
		if err := g.AddVertex(CenterVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, CenterVertexID, err)
		}

		var leafID string
		for i := 1; i < n; i++ {
			leafID = cfg.idFn(i)
			if err := g.AddVertex(leafID); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, leafID, err)
			}
			if err := connect(g, methodStar, cfg, CenterVertexID, leafID); err != nil {
				return err
			}
		}

		return nil
	}
}
