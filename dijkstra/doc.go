// SPDX-License-Identifier: MIT

// Package dijkstra computes weighted shortest paths over a core.DiGraph.
//
// The weights are not part of the graph. A Weights map keyed by core.Edge
// decides both the cost and the traversability of every step: a pair that
// is not a key cannot be walked, even if the graph lists it as an edge. One
// topology can therefore be reused with unit weights, turn penalties, or
// any other cost function without being rebuilt.
//
// Entry points:
//
//	DistanceWith(g, start, ends, w)  // multi-sink, early stop, partial result
//	Dijkstra(g, start, w, opts...)   // full single-source run
//	UniformWeights(g, 1)             // every edge of g at weight 1
//	WeightsFunc(g, cost)             // weights computed per edge
//
// Multi-sink semantics:
//
//   - The search stops as soon as every distinct member of ends has been
//     finalized; the rest of the frontier is never drained.
//   - Only reached targets appear in the result. An unreachable target is
//     not an error.
//   - start ∈ ends is recorded at the zero value.
//   - ends == nil or empty returns an empty map immediately.
//
// Weight types are any integer or float (see Number). Distances are kept as
// "known or unknown" rather than against a max-value sentinel, and integer
// sums that would overflow are treated as unreachable.
//
// Complexity:
//
//   - Time:  O((V + E) log V), each pop/push O(log(V+E)) with lazy decrease-key.
//   - Space: O(V + E).
//
// Example usage:
//
//	w := dijkstra.Weights[int, int]{{From: 1, To: 2}: 1, {From: 2, To: 3}: 4}
//	got, err := dijkstra.DistanceWith(g, 1, []int{2, 3}, w)
//	// got == map[int]int{2: 1, 3: 5}
package dijkstra
