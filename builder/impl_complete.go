// SPDX-License-Identifier: MIT
// Package: citynet/builder
//
// impl_complete.go: implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ MinCompleteNodes, else ErrTooFewVertices.
//   • Every unordered pair i<j once, lexicographic (i asc, j asc).
//
// Complexity: O(n²) time, O(n) extra space for the ID slice.

package builder

import (
	"fmt"

	"github.com/katalvlaran/citynet/core"
)

const methodComplete = "Complete"

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, methodComplete, n, cfg.idFn)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = connect(g, methodComplete, cfg, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
