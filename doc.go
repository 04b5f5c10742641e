// SPDX-License-Identifier: MIT

// Package lvlath is a distance engine for the graph puzzles that show up
// every December: mazes, dependency rules, maps of weighted routes.
//
// 🚀 What is inside?
//
//	A generic, immutable directed graph plus the searches that answer
//	"how far is it?":
//		• Fewest edges: BFS distance with tagged "unreachable" results
//		• Least weight: multi-target Dijkstra that stops at the last target
//		• Every pair: Floyd–Warshall table with eccentricity lookups
//		• Grids: parse a maze of walls, start and end into the same engine
//		• Order: topological sort and cycle reports for rule sets
//		• Counting: a frequency counter with ranked output
//
// ✨ Why lvlath?
//
//   - Generic: any comparable type is a node: strings, ints, grid cells, poses
//   - Honest results: unreachable is (0, false), never a magic infinity
//   - Deterministic: equal input gives equal order, paths and ties
//
// Everything is organized under small subpackages:
//
//	core/      DiGraph, Edge and validation
//	bfs/       breadth-first walker, Distance and DistancesFrom
//	dijkstra/  DistanceWith, full single-source runs, weight mappings
//	allpairs/  Floyd–Warshall distance table
//	dfs/       topological sort and cycle detection
//	maze/      character-grid adapter, regions, breaches, oriented search
//	counter/   multiset counts and ranking
//	builder/   deterministic graph fixtures for tests and benchmarks
//
// Quick ASCII example:
//
//	    S───·───·
//	        │   │
//	        ·───E
//
//	BFS from S to E takes 3 steps; any weighting leaves E reachable.
//
// The lvlath-aoc command under cmd/ wraps the engine for maze files and edge
// lists, with YAML output, Graphviz rendering and a watch mode.
//
//	go install github.com/katalvlaran/lvlath-aoc/cmd/lvlath-aoc@latest
package lvlath
