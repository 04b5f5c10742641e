// SPDX-License-Identifier: MIT

package allpairs

import (
	"math"
	"slices"

	"github.com/katalvlaran/lvlath-aoc/core"
)

// unreachable is the in-table sentinel for "no path".
const unreachable = math.MaxInt

// Table is an immutable dense distance table indexed by node.
type Table[I comparable] struct {
	index map[I]int
	nodes []I
	n     int
	data  []int // row-major n×n
}

// Compute builds the all-pairs table of g. A nil graph yields an empty table.
func Compute[I comparable](g *core.DiGraph[I]) *Table[I] {
	t := &Table[I]{index: make(map[I]int)}
	if g == nil {
		return t
	}
	edges := g.Edges()
	for _, v := range g.Nodes() {
		t.add(v)
	}
	for _, e := range edges {
		t.add(e.From)
		t.add(e.To)
	}

	t.n = len(t.nodes)
	t.data = make([]int, t.n*t.n)
	for i := range t.data {
		t.data[i] = unreachable
	}
	for i := 0; i < t.n; i++ {
		t.data[i*t.n+i] = 0
	}
	for _, e := range edges {
		a, b := t.index[e.From], t.index[e.To]
		if a != b {
			t.data[a*t.n+b] = 1
		}
	}
	floydWarshallInPlace(t.data, t.n)

	return t
}

// add assigns the next index to v unless it already has one.
func (t *Table[I]) add(v I) {
	if _, ok := t.index[v]; ok {
		return
	}
	t.index[v] = len(t.nodes)
	t.nodes = append(t.nodes, v)
}

// floydWarshallInPlace runs the APSP closure on a flat n×n buffer.
// Sub-distances equal to the sentinel are skipped, so the sentinel never
// takes part in an addition.
func floydWarshallInPlace(data []int, n int) {
	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand int
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if ik == unreachable {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if kj == unreachable {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}
}

// Get returns the distance from a to b. ok is false when no path exists or
// when either node is unknown to the table.
func (t *Table[I]) Get(a, b I) (dist int, ok bool) {
	ia, okA := t.index[a]
	ib, okB := t.index[b]
	if !okA || !okB {
		return 0, false
	}
	d := t.data[ia*t.n+ib]
	if d == unreachable {
		return 0, false
	}

	return d, true
}

// Len returns the size N of the N×N table.
func (t *Table[I]) Len() int { return t.n }

// Nodes returns the nodes in index order.
func (t *Table[I]) Nodes() []I { return slices.Clone(t.nodes) }

// Index returns the row/column index of n.
func (t *Table[I]) Index(n I) (int, bool) {
	i, ok := t.index[n]
	return i, ok
}

// Eccentricity returns the largest finite distance from a to any node it can
// reach (0 for a node that reaches nothing else). ok is false for unknown a.
func (t *Table[I]) Eccentricity(a I) (int, bool) {
	ia, ok := t.index[a]
	if !ok {
		return 0, false
	}
	best := 0
	for _, d := range t.data[ia*t.n : (ia+1)*t.n] {
		if d != unreachable && d > best {
			best = d
		}
	}

	return best, true
}
