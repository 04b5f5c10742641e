// SPDX-License-Identifier: MIT

// Package builder generates deterministic graph fixtures over integer nodes
// for tests, benchmarks and examples.
//
// One orchestrator, BuildGraph, resolves functional options and applies the
// constructors in order. Constructors share one node space: Path(3) and
// Cycle(3) both use nodes 0, 1, 2, so composing them overlays edges.
//
// Determinism: equal options, seed and constructor order produce identical
// node order, edge order and weights.
//
// Edge weights come from the weight function (default: every edge costs 1),
// so fixtures drive bfs, dijkstra and allpairs alike.
package builder
