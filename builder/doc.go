// SPDX-License-Identifier: MIT

// Package builder generates deterministic city networks for tests,
// benchmarks and the `citynet generate` command.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – Constructor:  a closure that adds vertices/edges to a *core.Graph.
//     – BuildGraph:   creates a graph, resolves options, runs constructors in order.
//   - Configuration primitives:
//     – BuilderOption: a function that mutates builderConfig before use.
//     – builderConfig: holds RNG, ID scheme and weight function.
//   - Topologies:
//     – Path, Cycle, Star, Wheel, Complete, Grid, RandomSparse.
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolIDFn:        single letters ("A","B",…).
//     – ExcelColumnIDFn:   Excel-style columns ("A","Z","AA",…).
//     – AlphanumericIDFn:  base-36 strings ("0"…"z","10",…).
//     – HexIDFn:           lowercase hexadecimal ("0","a","ff",…).
//     – SymbolNumberIDFn:  prefix + decimal ("city0","city1",…).
//   - Edge-weight distributions (WeightFn implementations), all ≥ 1 km:
//     – DefaultWeightFn:     constant DefaultEdgeWeight.
//     – ConstantWeightFn:    fixed user-provided value.
//     – UniformWeightFn:     uniform integer in [min,max].
//     – NormalWeightFn:      Gaussian N(mean,stddev), rounded and clipped to ≥ 1.
//     – ExponentialWeightFn: exponential Exp(rate), rounded and clipped to ≥ 1.
//
// Guarantees:
//
//   - Same options, seed and constructor order ⇒ identical networks.
//   - Invalid option arguments panic in the option constructor; invalid build
//     parameters are returned as sentinel errors wrapped with the constructor name.
//   - Constructors never produce parallel edges or self-loops.
package builder
