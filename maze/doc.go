// SPDX-License-Identifier: MIT

// Package maze treats a rectangular character grid as a graph of walkable
// cells, enabling shortest-walk queries, region analysis and projections
// onto core.DiGraph for the generic engine.
//
// What:
//
//   - Parse reads rows of runes: a wall marker (default '#'), exactly one
//     start marker ('S') and exactly one end marker ('E'); any other rune is
//     an open cell.
//   - Distance runs a uniform-cost search directly on the implicit grid.
//   - ToGraph projects open cells onto a *core.DiGraph[Cell] so the result
//     can be cross-checked with bfs.Distance.
//   - OrientedGraph projects (cell, heading) poses onto a weighted graph for
//     "turning costs extra" walks solved with dijkstra.DistanceWith.
//   - Regions and Breaches describe how open areas are split by walls.
//
// Coordinates: Cell{I, J} is (row, column), origin at the top-left corner.
//
// Complexity:
//
//   - Parse, Distance, ToGraph, Regions:  O(W×H) time and memory.
//   - Breaches:                           O(W×H) time (0-1 BFS), O(W×H) memory.
//   - OrientedGraph:                      O(W×H) time, 4× the open cells as nodes.
//
// Errors (all wrap core.ErrInvalidInput):
//
//   - ErrEmptyGrid: no rows or an empty first row.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrMissingStart / ErrDuplicateStart: zero or several start markers.
//   - ErrMissingEnd / ErrDuplicateEnd: zero or several end markers.
//   - ErrMarkerCollision: two marker options share a rune.
package maze
