// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: copying and projecting graph instances.
// Determinism:
//   - Node and edge declaration order is carried over unchanged.

package core

// Clone returns an independent copy of g. Callers that need to extend a
// topology (extra nodes, extra edges) clone or rebuild; DiGraph itself has
// no mutation methods.
//
// Complexity: O(V + E).
func (g *DiGraph[I]) Clone() *DiGraph[I] {
	return New(g.nodes, g.edges)
}

// With returns a new graph holding g's nodes and edges followed by the extra
// ones. g is left untouched.
//
// Complexity: O(V + E + len(nodes) + len(edges)).
func (g *DiGraph[I]) With(nodes []I, edges []Edge[I]) *DiGraph[I] {
	allNodes := make([]I, 0, len(g.nodes)+len(nodes))
	allNodes = append(allNodes, g.nodes...)
	allNodes = append(allNodes, nodes...)
	allEdges := make([]Edge[I], 0, len(g.edges)+len(edges))
	allEdges = append(allEdges, g.edges...)
	allEdges = append(allEdges, edges...)

	return New(allNodes, allEdges)
}

// Reversed returns the transpose of g: same nodes, every edge flipped.
func (g *DiGraph[I]) Reversed() *DiGraph[I] {
	edges := make([]Edge[I], len(g.edges))
	for i, e := range g.edges {
		edges[i] = e.Reverse()
	}

	return New(g.nodes, edges)
}

// Symmetric returns the graph with every edge mirrored, as when an
// undirected link list is loaded into a directed graph. Duplicates created by
// already-mirrored pairs are dropped by New.
func (g *DiGraph[I]) Symmetric() *DiGraph[I] {
	edges := make([]Edge[I], 0, 2*len(g.edges))
	for _, e := range g.edges {
		edges = append(edges, e, e.Reverse())
	}

	return New(g.nodes, edges)
}
