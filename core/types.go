// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidInput is the umbrella error kind for malformed input detected
	// at construction time. Every package-specific validation error wraps it.
	ErrInvalidInput = errors.New("core: invalid input")

	// ErrUndeclaredEndpoint indicates an edge endpoint absent from the node list.
	ErrUndeclaredEndpoint = errors.New("core: edge endpoint not declared as node")

	// ErrNilGraph indicates a nil *DiGraph was supplied.
	ErrNilGraph = errors.New("core: graph is nil")
)

// Edge is a directed, traversable step From → To.
//
// Edge is comparable whenever I is, so it doubles as the key type of
// external weight maps.
type Edge[I comparable] struct {
	From I
	To   I
}

// String renders the edge as "from→to".
func (e Edge[I]) String() string {
	return fmt.Sprintf("%v→%v", e.From, e.To)
}

// Reverse returns the edge with its endpoints swapped.
func (e Edge[I]) Reverse() Edge[I] {
	return Edge[I]{From: e.To, To: e.From}
}

// DiGraph is an immutable directed graph over node identities of type I.
//
// nodes keeps the caller's declaration order (duplicates included);
// declared is the set view of nodes; children[from] lists the distinct
// successors of from in first-seen edge order; edgeSet mirrors edges for
// O(1) HasEdge.
type DiGraph[I comparable] struct {
	nodes    []I
	edges    []Edge[I]
	declared map[I]struct{}
	children map[I][]I
	edgeSet  map[Edge[I]]struct{}
}
