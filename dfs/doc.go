// SPDX-License-Identifier: MIT

// Package dfs provides depth-first algorithms on directed graphs:
// topological ordering and cycle discovery.
//
// TopologicalSort computes a linear ordering of nodes such that for every
// directed edge u→v, u appears before v. If the graph contains a cycle,
// an error wrapping ErrCycleDetected is returned and the offending cycle is
// included in its message. FindCycle reports that cycle directly.
//
// Both walk every node the graph mentions: declared nodes first, in
// declaration order, then undeclared edge sources in edge order. Successors
// are explored in first-seen edge order, so results are deterministic.
//
// Complexity:
//
//   - Time:   O(V + E) (each node and edge visited once)
//   - Memory: O(V)     (recursion stack and state map)
package dfs
