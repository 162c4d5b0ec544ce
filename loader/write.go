// SPDX-License-Identifier: MIT
//
// File: write.go
// Role: WritePaths, the paths-format dump of a graph.

package loader

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/citynet/core"
)

// WritePaths writes every edge of g once as "from\tto\tdistance".
//
// Edges are emitted from the endpoint inserted first, in vertex then
// adjacency order, so reloading the output reproduces the same network.
// Parallel edges and self-loops are preserved.
//
// Errors:
//   - ErrNilGraph; write errors from w, wrapped.
//
// Complexity: O(V + E).
func WritePaths(w io.Writer, g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	bw := bufio.NewWriter(w)
	var skipLoop bool
	for _, v := range g.VertexList() {
		skipLoop = false
		for _, c := range g.Neighbors(v) {
			switch {
			case c.Vertex == v:
				// A self-loop is stored as two adjacent entries; emit one of them.
				if skipLoop {
					skipLoop = false
					continue
				}
				skipLoop = true
			case c.Vertex.Seq() < v.Seq():
				continue
			}
			if _, err := fmt.Fprintf(bw, "%s\t%s\t%d\n", v.Name(), c.Name(), c.Weight); err != nil {
				return fmt.Errorf("loader: write: %w", err)
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("loader: write: %w", err)
	}

	return nil
}
