// SPDX-License-Identifier: MIT

package bfs

import "github.com/katalvlaran/lvlath-aoc/core"

// Distance returns the minimum number of edges from start to end.
// It is 0 when start == end; ok is false when end is unreachable or g is nil.
//
// The search expands layer by layer and stops the moment end enters the new
// frontier, so nodes farther than the answer are never touched.
//
// Complexity: O(V + E) time, O(V) memory.
func Distance[I comparable](g *core.DiGraph[I], start, end I) (dist int, ok bool) {
	if start == end {
		return 0, true
	}
	if g == nil {
		return 0, false
	}

	seen := map[I]struct{}{start: {}}
	frontier := []I{start}
	for round := 0; len(frontier) > 0; round++ {
		var next []I
		for _, n := range frontier {
			for c := range g.Successors(n) {
				if _, dup := seen[c]; dup {
					continue
				}
				if c == end {
					return round + 1, true
				}
				seen[c] = struct{}{}
				next = append(next, c)
			}
		}
		frontier = next
	}

	return 0, false
}

// DistancesFrom returns the hop count of every node reachable from start,
// start itself included at 0. A nil graph yields only the start entry.
//
// Complexity: O(V + E) time, O(V) memory.
func DistancesFrom[I comparable](g *core.DiGraph[I], start I) map[I]int {
	out := map[I]int{start: 0}
	if g == nil {
		return out
	}

	frontier := []I{start}
	for round := 1; len(frontier) > 0; round++ {
		var next []I
		for _, n := range frontier {
			for c := range g.Successors(n) {
				if _, dup := out[c]; dup {
					continue
				}
				out[c] = round
				next = append(next, c)
			}
		}
		frontier = next
	}

	return out
}
