// SPDX-License-Identifier: MIT

// Package bfs computes unweighted shortest paths over a core.DiGraph.
//
// What
//
//   - Distance(g, start, end): hop count between two nodes, or ok == false
//     when end cannot be reached. Distance(g, a, a) is always 0.
//   - DistancesFrom(g, start): hop count of every node reachable from start.
//   - BFS(g, start, opts...): full walk returning a Result with visit Order,
//     Depth and Parent maps and PathTo reconstruction; supports hooks,
//     depth limiting, neighbor filtering and cancellation.
//
// Layered expansion
//
//	Distance keeps a frontier of nodes first reached in the previous round.
//	Each round computes the union of their children minus every node already
//	seen; it stops as soon as end shows up in the new frontier (reporting
//	round+1) or when the frontier runs dry (no path). All edges have implicit
//	weight 1.
//
// Graceful degradation
//
//	Nodes that were never declared are not an error for Distance and
//	DistancesFrom: an undeclared node simply has whatever edges start at it,
//	usually none. BFS, which returns a tree rooted at start, does require a
//	declared start (ErrStartVertexNotFound).
//
// Complexity (V = |nodes|, E = |edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
