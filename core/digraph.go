// SPDX-License-Identifier: MIT
//
// File: digraph.go
// Role: construction and read-only queries of DiGraph.
// Policy:
//   - No mutation after construction; every getter hands out copies.
//   - New never fails; NewValidated is the strict twin.

package core

import (
	"fmt"
	"iter"
	"slices"
)

// New builds a DiGraph from a node list and a directed edge list.
// No validation is performed: an edge may reference nodes that were never
// declared, and the node list may contain duplicates. Both inputs are copied.
//
// Complexity: O(V + E) time and memory.
func New[I comparable](nodes []I, edges []Edge[I]) *DiGraph[I] {
	g := &DiGraph[I]{
		nodes:    slices.Clone(nodes),
		edges:    slices.Clone(edges),
		declared: make(map[I]struct{}, len(nodes)),
		children: make(map[I][]I),
		edgeSet:  make(map[Edge[I]]struct{}, len(edges)),
	}
	for _, n := range g.nodes {
		g.declared[n] = struct{}{}
	}
	for _, e := range g.edges {
		if _, dup := g.edgeSet[e]; dup {
			continue
		}
		g.edgeSet[e] = struct{}{}
		g.children[e.From] = append(g.children[e.From], e.To)
	}

	return g
}

// NewValidated is New followed by Validate. On failure no graph is returned.
func NewValidated[I comparable](nodes []I, edges []Edge[I]) (*DiGraph[I], error) {
	g := New(nodes, edges)
	if err := g.Validate(); err != nil {
		return nil, err
	}

	return g, nil
}

// Validate reports the first edge (in declaration order) whose endpoint is
// missing from the node list. The error wraps both ErrInvalidInput and
// ErrUndeclaredEndpoint.
func (g *DiGraph[I]) Validate() error {
	if g == nil {
		return ErrNilGraph
	}
	for i, e := range g.edges {
		if _, ok := g.declared[e.From]; !ok {
			return fmt.Errorf("%w: %w: edge #%d %v: from %v", ErrInvalidInput, ErrUndeclaredEndpoint, i, e, e.From)
		}
		if _, ok := g.declared[e.To]; !ok {
			return fmt.Errorf("%w: %w: edge #%d %v: to %v", ErrInvalidInput, ErrUndeclaredEndpoint, i, e, e.To)
		}
	}

	return nil
}

// Len returns the number of declared nodes, duplicates included.
func (g *DiGraph[I]) Len() int { return len(g.nodes) }

// IsEmpty reports whether no node was declared.
func (g *DiGraph[I]) IsEmpty() bool { return len(g.nodes) == 0 }

// Nodes returns a copy of the declared node list in declaration order.
func (g *DiGraph[I]) Nodes() []I { return slices.Clone(g.nodes) }

// Edges returns a copy of the edge list in declaration order.
func (g *DiGraph[I]) Edges() []Edge[I] { return slices.Clone(g.edges) }

// HasNode reports whether n appears in the node list.
func (g *DiGraph[I]) HasNode(n I) bool {
	_, ok := g.declared[n]
	return ok
}

// HasEdge reports whether the directed edge from → to exists.
func (g *DiGraph[I]) HasEdge(from, to I) bool {
	_, ok := g.edgeSet[Edge[I]{From: from, To: to}]
	return ok
}

// Children returns every b such that the edge (n, b) exists, without
// duplicates, in first-seen order. Sinks and undeclared nodes yield an empty
// (non-nil) slice.
func (g *DiGraph[I]) Children(n I) []I {
	out := g.children[n]
	if len(out) == 0 {
		return []I{}
	}

	return slices.Clone(out)
}

// Successors iterates the children of n without copying them.
// The traversal packages use it on their hot paths.
func (g *DiGraph[I]) Successors(n I) iter.Seq[I] {
	return func(yield func(I) bool) {
		for _, c := range g.children[n] {
			if !yield(c) {
				return
			}
		}
	}
}

// OutDegree returns the number of distinct children of n.
func (g *DiGraph[I]) OutDegree(n I) int { return len(g.children[n]) }

// Neighbors returns a snapshot of the whole adjacency: source → distinct
// children. Only nodes with at least one outgoing edge appear as keys.
func (g *DiGraph[I]) Neighbors() map[I][]I {
	out := make(map[I][]I, len(g.children))
	for from, to := range g.children {
		out[from] = slices.Clone(to)
	}

	return out
}
