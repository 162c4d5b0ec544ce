// SPDX-License-Identifier: MIT
// Package: citynet/builder
//
// impl_wheel.go: implementation of Wheel(n) constructor.
//
// Contract:
//   • n ≥ MinWheelNodes, else ErrTooFewVertices.
//   • Rim: Cycle(n-1) over cfg.idFn(0..n-2); hub: CenterVertexID with a
//     spoke to every rim vertex, emitted after the rim.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/citynet/core"
)

const methodWheel = "Wheel"

// Wheel returns a Constructor that builds W_n = C_{n-1} + hub.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, MinWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodWheel, err)
		}
		if err := g.AddVertex(CenterVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodWheel, CenterVertexID, err)
		}
		for i := 0; i < n-1; i++ {
			if err := connect(g, methodWheel, cfg, CenterVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
