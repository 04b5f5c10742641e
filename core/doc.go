// SPDX-License-Identifier: MIT

// Package core defines DiGraph, a small immutable directed graph over any
// comparable node identity, and the sentinel errors shared by the distance
// packages built on top of it.
//
// The graph G = (V, E) is described by two plain collections:
//
//   - an ordered node list (duplicates are allowed and simply redundant)
//   - a list of directed edges, each an ordered pair Edge{From, To}
//
// Node identities are opaque: grid coordinates, coordinate+heading tuples and
// string labels all work, as long as the type is comparable.
//
// Construction:
//
//	New(nodes, edges)          // no validation, never fails
//	NewValidated(nodes, edges) // rejects edges touching undeclared nodes
//
// Queries:
//
//	Len()              // declared node count, duplicates included
//	Children(n)        // distinct successors of n, first-seen order
//	HasNode / HasEdge  // O(1) membership
//	Neighbors()        // full adjacency snapshot
//	Clone()            // independent copy
//
// Children is served from an adjacency index built once at construction, so
// a lookup costs O(out-degree) instead of a scan of every edge. An edge whose
// source was never declared still shows up in that index; undeclared nodes
// just have no children of their own unless some edge starts there.
//
// Weights are deliberately not part of DiGraph. The dijkstra package takes an
// external Weights map, so one topology can be walked with several cost
// functions without being rebuilt.
//
// Errors:
//
//	ErrInvalidInput       - umbrella kind for every construction-time validation failure.
//	ErrUndeclaredEndpoint - an edge references a node missing from the node list.
//	ErrNilGraph           - a nil *DiGraph was passed where a graph is required.
package core
