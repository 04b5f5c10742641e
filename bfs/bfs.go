// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvlath-aoc/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem[I comparable] struct {
	id    I
	depth int
}

// walker encapsulates mutable BFS state.
type walker[I comparable] struct {
	graph   *core.DiGraph[I]
	opts    Options[I]
	ctx     context.Context
	queue   []queueItem[I]
	visited map[I]bool
	res     *Result[I]
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
func BFS[I comparable](g *core.DiGraph[I], start I, opts ...Option[I]) (*Result[I], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions[I]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	n := g.Len()
	w := &walker[I]{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem[I], 0, n),
		visited: make(map[I]bool, n),
		res: &Result[I]{
			Start:  start,
			Order:  make([]I, 0, n),
			Depth:  make(map[I]int, n),
			Parent: make(map[I]I, n),
		},
	}

	// Seed queue with start node (no parent)
	w.enqueue(start, 0)

	return w.res, w.loop()
}

// enqueue marks id visited at depth d and adds it to the queue.
func (w *walker[I]) enqueue(id I, d int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	w.queue = append(w.queue, queueItem[I]{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[I]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// visit records the node in Order and calls OnVisit.
func (w *walker[I]) visit(item queueItem[I]) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen child.
func (w *walker[I]) enqueueNeighbors(item queueItem[I]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for nbr := range w.graph.Successors(item.id) {
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		if !w.visited[nbr] {
			w.res.Parent[nbr] = item.id
			w.enqueue(nbr, nextDepth)
		}
	}
}
