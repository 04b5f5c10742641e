// SPDX-License-Identifier: MIT
//
// Two entry points share one runner:
//
//   - DistanceWith: multi-sink search that stops as soon as every target is
//     finalized and returns only the reached targets.
//   - Dijkstra: full single-source run with optional predecessor map and
//     distance cap.
//
// Notes on implementation choices:
//
//   - Weights are pre-scanned once (O(E)) to reject negative values.
//   - Traversable pairs are indexed by source from the weight keys, so an
//     edge missing from the mapping is never relaxed.
//   - Tentative distances live in a map whose absent keys mean "unreached";
//     there is no max-value sentinel to overflow. Integer additions that
//     would wrap are dropped instead of relaxed.
//   - “Lazy” decrease-key: duplicates are pushed and stale entries skipped.

package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/lvlath-aoc/core"
)

// DistanceWith computes the minimum total weight from start to each member
// of ends reachable through the pairs keyed in w.
//
// The returned map holds an entry only for reached targets; unreachable
// targets are simply absent. If start is itself a target it is recorded at
// distance zero. An empty ends yields an empty map without any search.
//
// Returns ErrNilGraph for a nil graph and ErrNegativeWeight when w holds a
// negative weight.
//
// Complexity: O((V + E) log V) worst case; usually far less because the
// search stops once the last target is finalized.
func DistanceWith[I comparable, V Number](g *core.DiGraph[I], start I, ends []I, w Weights[I, V]) (map[I]V, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := w.validate(); err != nil {
		return nil, err
	}
	out := make(map[I]V, len(ends))
	if len(ends) == 0 {
		return out, nil
	}

	targets := make(map[I]struct{}, len(ends))
	for _, e := range ends {
		targets[e] = struct{}{}
	}

	r := newRunner(g, start, w, DefaultOptions[V]())
	r.targets = targets
	r.found = out
	r.process()

	return out, nil
}

// Dijkstra computes shortest distances from start to every node reachable
// through the pairs keyed in w.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. options must be valid (ErrBadMaxDistance).
//  3. no weight may be negative (ErrNegativeWeight).
//
// Complexity: O((V + E) log V) time, O(V + E) memory.
func Dijkstra[I comparable, V Number](g *core.DiGraph[I], start I, w Weights[I, V], opts ...Option[V]) (*Result[I, V], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if err := w.validate(); err != nil {
		return nil, err
	}

	r := newRunner(g, start, w, cfg)
	r.process()

	res := &Result[I, V]{Source: start, Dist: r.final}
	if cfg.ReturnPath {
		res.Prev = r.prev
	}

	return res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[I comparable, V Number] struct {
	options  Options[V]
	weights  Weights[I, V]
	children map[I][]I
	dist     map[I]V // best tentative distance; absent = unreached
	final    map[I]V // finalized distances
	prev     map[I]I // predecessor on the best known path
	pq       nodePQ[I, V]
	seq      int

	// multi-sink mode: targets still to finalize and where to record them
	targets map[I]struct{}
	found   map[I]V
}

// newRunner seeds the heap with start at distance zero.
func newRunner[I comparable, V Number](g *core.DiGraph[I], start I, w Weights[I, V], cfg Options[V]) *runner[I, V] {
	n := g.Len()
	r := &runner[I, V]{
		options:  cfg,
		weights:  w,
		children: w.adjacency(g),
		dist:     make(map[I]V, n),
		final:    make(map[I]V, n),
		prev:     make(map[I]I, n),
		pq:       make(nodePQ[I, V], 0, n),
	}
	var zero V
	r.dist[start] = zero
	heap.Init(&r.pq)
	r.push(start, zero)

	return r
}

func (r *runner[I, V]) push(id I, d V) {
	heap.Push(&r.pq, nodeItem[I, V]{id: id, dist: d, seq: r.seq})
	r.seq++
}

// process is the core loop: pop the closest unfinalized node, record it,
// stop early when every target is known, otherwise relax its out-pairs.
func (r *runner[I, V]) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem[I, V])
		u, d := item.id, item.dist
		if _, done := r.final[u]; done {
			continue
		}
		if r.options.Limited && d > r.options.MaxDistance {
			break
		}
		r.final[u] = d

		if r.targets != nil {
			if _, ok := r.targets[u]; ok {
				r.found[u] = d
				if len(r.found) == len(r.targets) {
					return
				}
			}
		}
		r.relax(u, d)
	}
}

// relax tries to improve the tentative distance of every out-pair of u.
func (r *runner[I, V]) relax(u I, du V) {
	for _, v := range r.children[u] {
		if _, done := r.final[v]; done {
			continue
		}
		nd, ok := addSat(du, r.weights[core.Edge[I]{From: u, To: v}])
		if !ok {
			continue
		}
		if r.options.Limited && nd > r.options.MaxDistance {
			continue
		}
		if cur, seen := r.dist[v]; seen && nd >= cur {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		r.push(v, nd)
	}
}
