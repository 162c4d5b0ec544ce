// SPDX-License-Identifier: MIT

// Package citynet is an in-memory road network of named cities with a
// Dijkstra shortest-path engine and a batch route runner.
//
// What's inside:
//
//	core/      undirected weighted Graph: cities, roads, dense adjacency lists, thread-safe
//	frontier/  generic min-priority queue with decrease-key and stable tie-break
//	dijkstra/  ShortestPath over a core.Graph: path, per-leg distances, total
//	builder/   deterministic network generators (grid, complete, path, cycle, star, wheel, random)
//	loader/    "city city km" and "city city" record files: parse, apply, write back
//	report/    human-readable network listings and route blocks, optionally styled
//
// The citynet command (cmd/citynet) wires these together: it loads a
// network, answers a batch of city pairs into a results file, and can list
// connections or generate synthetic networks.
//
// Quick start:
//
//	g := core.NewGraph()
//	_ = g.AddVertex("York")
//	_ = g.AddVertex("Leeds")
//	_ = g.AddEdge("York", "Leeds", 26)
//	res, _ := dijkstra.ShortestPath(g, "York", "Leeds")
//	fmt.Println(res.Found, res.TotalDistance) // true 26
package citynet
