// SPDX-License-Identifier: MIT
// Package: citynet/builder
//
// impl_random_sparse.go: Erdős–Rényi G(n,p) road network.
//
// Contract:
//   • n ≥ MinRandomSparseNodes, else ErrTooFewVertices.
//   • 0 ≤ p ≤ 1, else ErrInvalidProbability.
//   • cfg.rng required unless p is exactly 0 or 1 (ErrNeedRandSource).
//   • Each unordered pair i<j is tried once in (i asc, j asc) order; one
//     rng.Float64 draw per pair, then the weight draw on success.
//
// Complexity: O(n²) pair checks, O(n) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/citynet/core"
)

const methodRandomSparse = "RandomSparse"

// RandomSparse returns a Constructor that links each pair with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinRandomSparseNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, MinRandomSparseNodes, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids, err := addVertices(g, methodRandomSparse, n, cfg.idFn)
		if err != nil {
			return err
		}

		var take bool
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch {
				case cfg.rng == nil:
					take = p == MaxProbability
				default:
					take = cfg.rng.Float64() < p || p == MaxProbability
				}
				if !take {
					continue
				}
				if err = connect(g, methodRandomSparse, cfg, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
