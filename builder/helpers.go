// SPDX-License-Identifier: MIT
// Package: citynet/builder
//
// helpers.go: internal helpers shared by Constructor implementations.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/citynet/core"
)

// addVertices inserts idFn(0..n-1) and returns the IDs in order.
// Complexity: O(n).
func addVertices(g *core.Graph, method string, n int, idFn IDFn) ([]string, error) {
	ids := make([]string, n)
	var err error
	for i := 0; i < n; i++ {
		ids[i] = idFn(i)
		if err = g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// connect adds u-v with a weight drawn from cfg.weightFn.
func connect(g *core.Graph, method string, cfg builderConfig, u, v string) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s, w=%d): %w", method, u, v, w, err)
	}

	return nil
}

// GridVertexID formats a 2D grid coordinate as "r,c".
func GridVertexID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}
