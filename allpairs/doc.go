// SPDX-License-Identifier: MIT

// Package allpairs computes unit-weight all-pairs shortest distances
// (Floyd–Warshall) over a core.DiGraph and exposes them as a queryable Table.
//
// Contract:
//   - The table is square over the node index space; the diagonal is 0.
//   - Cell (a, b) is the minimum number of edges from a to b, or "no path".
//   - "No path" is stored as a reserved sentinel inside the table and never
//     leaks out: Get reports it as ok == false.
//
// Index space: declared nodes in first-occurrence order (duplicates collapse
// onto their first index), followed by edge endpoints that were never
// declared, in edge order. The table therefore agrees with bfs.Distance on
// every pair the graph mentions.
//
// Determinism: loop order is fixed (k → i → j).
//
// Complexity: O(N³) time, O(N²) memory. Meant for puzzle-scale graphs (N in
// the low hundreds); use bfs or dijkstra for anything larger.
package allpairs
