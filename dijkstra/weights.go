// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/lvlath-aoc/core"
)

// UniformWeights assigns the same weight w to every edge of g.
// With w == 1, weighted distances equal bfs.Distance hop counts.
func UniformWeights[I comparable, V Number](g *core.DiGraph[I], w V) Weights[I, V] {
	edges := g.Edges()
	out := make(Weights[I, V], len(edges))
	for _, e := range edges {
		out[e] = w
	}

	return out
}

// WeightsFunc builds a mapping for every edge of g by calling cost on it.
// Edges for which ok is false are left out and therefore not traversable.
func WeightsFunc[I comparable, V Number](g *core.DiGraph[I], cost func(e core.Edge[I]) (w V, ok bool)) Weights[I, V] {
	edges := g.Edges()
	out := make(Weights[I, V], len(edges))
	for _, e := range edges {
		if w, ok := cost(e); ok {
			out[e] = w
		}
	}

	return out
}

// validate fails fast on the first negative (or NaN) weight.
func (w Weights[I, V]) validate() error {
	for e, v := range w {
		if !(v >= 0) {
			return fmt.Errorf("%w: edge %v weight=%v", ErrNegativeWeight, e, v)
		}
	}

	return nil
}

// adjacency indexes the traversable pairs by source. Pairs that are also
// graph edges come first, in the graph's declaration order, so predecessor
// choices between equal-cost paths are reproducible; pairs unknown to the
// graph follow.
func (w Weights[I, V]) adjacency(g *core.DiGraph[I]) map[I][]I {
	out := make(map[I][]I)
	placed := make(map[core.Edge[I]]struct{}, len(w))
	for _, e := range g.Edges() {
		if _, ok := w[e]; !ok {
			continue
		}
		if _, dup := placed[e]; dup {
			continue
		}
		placed[e] = struct{}{}
		out[e.From] = append(out[e.From], e.To)
	}
	for e := range w {
		if _, ok := placed[e]; ok {
			continue
		}
		out[e.From] = append(out[e.From], e.To)
	}

	return out
}

// addSat returns a + b and false when the sum overflowed an integer V.
// b is known to be non-negative.
func addSat[V Number](a, b V) (V, bool) {
	s := a + b
	if s < a {
		return s, false
	}

	return s, true
}
