// SPDX-License-Identifier: MIT
// Package: citynet/builder
//
// impl_cycle.go: implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ MinCycleNodes, else ErrTooFewVertices.
//   • Edges i-(i+1)%n in ascending i, so the closing edge (n-1)-0 comes last.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/citynet/core"
)

const methodCycle = "Cycle"

// Cycle returns a Constructor that builds a ring C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, methodCycle, n, cfg.idFn)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = connect(g, methodCycle, cfg, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
