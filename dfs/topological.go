// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/lvlath-aoc/core"
)

// sorter encapsulates state for one depth-first pass.
type sorter[I comparable] struct {
	graph *core.DiGraph[I]
	ctx   context.Context
	state map[I]int // White, Gray or Black
	stack []I       // current recursion path
	order []I       // post-order
	cycle []I       // first back-edge cycle, closed (first == last)
}

func newSorter[I comparable](g *core.DiGraph[I], ctx context.Context) *sorter[I] {
	n := g.Len()
	return &sorter[I]{
		graph: g,
		ctx:   ctx,
		state: make(map[I]int, n),
		order: make([]I, 0, n),
	}
}

// TopologicalSort computes a topological ordering of every node in g.
// Returns ErrGraphNil for a nil graph, an error wrapping ErrCycleDetected
// when g has a cycle, or the context error on cancellation.
func TopologicalSort[I comparable](g *core.DiGraph[I], options ...TopoOption) ([]I, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	s := newSorter(g, opts.ctx)
	if err := s.run(); err != nil {
		return nil, err
	}
	slices.Reverse(s.order)

	return s.order, nil
}

// FindCycle returns one directed cycle of g as a closed node sequence
// [v0, v1, …, v0], or ok == false when g is acyclic or nil.
// A self-loop is reported as [v, v].
func FindCycle[I comparable](g *core.DiGraph[I]) (cycle []I, ok bool) {
	if g == nil {
		return nil, false
	}
	s := newSorter(g, context.Background())
	if err := s.run(); err != nil {
		return s.cycle, s.cycle != nil
	}

	return nil, false
}

// run drives the walk from every node the graph mentions.
func (s *sorter[I]) run() error {
	for _, v := range s.graph.Nodes() {
		if s.state[v] == White {
			if err := s.visit(v); err != nil {
				return err
			}
		}
	}
	for _, e := range s.graph.Edges() {
		if s.state[e.From] == White {
			if err := s.visit(e.From); err != nil {
				return err
			}
		}
	}

	return nil
}

// visit explores id depth-first, records it in post-order and stops at the
// first back edge.
func (s *sorter[I]) visit(id I) error {
	select {
	case <-s.ctx.Done():
		return s.ctx.Err()
	default:
	}

	s.state[id] = Gray
	s.stack = append(s.stack, id)

	for nbr := range s.graph.Successors(id) {
		switch s.state[nbr] {
		case White:
			if err := s.visit(nbr); err != nil {
				return err
			}
		case Gray:
			idx := slices.Index(s.stack, nbr)
			s.cycle = append(slices.Clone(s.stack[idx:]), nbr)
			return fmt.Errorf("%w: %s", ErrCycleDetected, joinPath(s.cycle))
		}
	}

	s.stack = s.stack[:len(s.stack)-1]
	s.state[id] = Black
	s.order = append(s.order, id)

	return nil
}

// joinPath renders a node sequence as "a → b → c".
func joinPath[I comparable](path []I) string {
	parts := make([]string, len(path))
	for i, v := range path {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " → ")
}
