// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-aoc/bfs"
	"github.com/katalvlaran/lvlath-aoc/core"
	"github.com/katalvlaran/lvlath-aoc/dijkstra"
)

type e = core.Edge[uint8]

// bare has three nodes and no edges: traversability comes from the weights.
func bare() *core.DiGraph[uint8] {
	return core.New([]uint8{1, 2, 3}, nil)
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDistanceWith_NilGraph(t *testing.T) {
	_, err := dijkstra.DistanceWith[int, int](nil, 1, []int{2}, nil)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDistanceWith_NegativeWeight(t *testing.T) {
	g := core.New([]int{1, 2}, nil)
	w := dijkstra.Weights[int, int]{{From: 1, To: 2}: -3}
	_, err := dijkstra.DistanceWith(g, 1, []int{2}, w)
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestDistanceWith_NaNWeight(t *testing.T) {
	g := core.New([]int{1, 2}, nil)
	w := dijkstra.Weights[int, float64]{{From: 1, To: 2}: math.NaN()}
	_, err := dijkstra.DistanceWith(g, 1, []int{2}, w)
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestDijkstra_BadMaxDistance(t *testing.T) {
	_, err := dijkstra.Dijkstra(bare(), 1, dijkstra.Weights[uint8, int]{}, dijkstra.WithMaxDistance(-1))
	assert.ErrorIs(t, err, dijkstra.ErrBadMaxDistance)
}

// ------------------------------------------------------------------------
// 2. Multi-sink scenarios
// ------------------------------------------------------------------------

func TestDistanceWith_Scenarios(t *testing.T) {
	cases := []struct {
		name string
		w    dijkstra.Weights[uint8, uint]
		ends []uint8
		want map[uint8]uint
	}{
		{
			name: "BothTargets",
			w:    dijkstra.Weights[uint8, uint]{e{From: 1, To: 2}: 1, e{From: 2, To: 3}: 4},
			ends: []uint8{2, 3},
			want: map[uint8]uint{2: 1, 3: 5},
		},
		{
			name: "TwoHopsBeatHeavyDirect",
			w:    dijkstra.Weights[uint8, uint]{e{From: 1, To: 3}: 8, e{From: 1, To: 2}: 1, e{From: 2, To: 3}: 1},
			ends: []uint8{3},
			want: map[uint8]uint{3: 2},
		},
		{
			name: "Unreachable",
			w:    dijkstra.Weights[uint8, uint]{e{From: 1, To: 2}: 8},
			ends: []uint8{3},
			want: map[uint8]uint{},
		},
		{
			name: "PartialResult",
			w:    dijkstra.Weights[uint8, uint]{e{From: 1, To: 2}: 8},
			ends: []uint8{2, 3},
			want: map[uint8]uint{2: 8},
		},
		{
			name: "StartIsTarget",
			w:    dijkstra.Weights[uint8, uint]{e{From: 1, To: 2}: 8},
			ends: []uint8{1, 2},
			want: map[uint8]uint{1: 0, 2: 8},
		},
		{
			name: "DuplicateTargets",
			w:    dijkstra.Weights[uint8, uint]{e{From: 1, To: 2}: 2},
			ends: []uint8{2, 2, 2},
			want: map[uint8]uint{2: 2},
		},
		{
			name: "NoTargets",
			w:    dijkstra.Weights[uint8, uint]{e{From: 1, To: 2}: 2},
			ends: nil,
			want: map[uint8]uint{},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := dijkstra.DistanceWith(bare(), 1, tc.ends, tc.w)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDistanceWith_GraphEdgesWithoutWeightAreBlocked(t *testing.T) {
	g := core.New([]uint8{1, 2, 3}, []e{{From: 1, To: 2}, {From: 2, To: 3}})
	w := dijkstra.Weights[uint8, int]{e{From: 1, To: 2}: 1}
	got, err := dijkstra.DistanceWith(g, 1, []uint8{3}, w)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDistanceWith_UndeclaredNodesReachable(t *testing.T) {
	// node 9 is only known to the weight mapping
	w := dijkstra.Weights[uint8, int]{e{From: 1, To: 9}: 2, e{From: 9, To: 3}: 2}
	got, err := dijkstra.DistanceWith(bare(), 1, []uint8{3, 9}, w)
	require.NoError(t, err)
	assert.Equal(t, map[uint8]int{9: 2, 3: 4}, got)
}

func TestDistanceWith_OverflowIsUnreachable(t *testing.T) {
	w := dijkstra.Weights[uint8, uint8]{e{From: 1, To: 2}: 200, e{From: 2, To: 3}: 100, e{From: 1, To: 3}: 255}
	got, err := dijkstra.DistanceWith(bare(), 1, []uint8{2, 3}, w)
	require.NoError(t, err)
	assert.Equal(t, map[uint8]uint8{2: 200, 3: 255}, got, "200+100 wraps and must not win")

	w = dijkstra.Weights[uint8, uint8]{e{From: 1, To: 2}: 200, e{From: 2, To: 3}: 100}
	got, err = dijkstra.DistanceWith(bare(), 1, []uint8{3}, w)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDistanceWith_FloatWeights(t *testing.T) {
	w := dijkstra.Weights[uint8, float64]{e{From: 1, To: 2}: 0.5, e{From: 2, To: 3}: 0.25, e{From: 1, To: 3}: 1}
	got, err := dijkstra.DistanceWith(bare(), 1, []uint8{3}, w)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, got[3], 1e-12)
}

// ------------------------------------------------------------------------
// 3. Full single-source runs
// ------------------------------------------------------------------------

func TestDijkstra_PathReconstruction(t *testing.T) {
	g := core.New(
		[]string{"A", "B", "C", "D"},
		[]core.Edge[string]{{From: "A", To: "B"}, {From: "A", To: "C"}, {From: "C", To: "B"}, {From: "B", To: "D"}, {From: "C", To: "D"}},
	)
	w := dijkstra.Weights[string, int64]{
		{From: "A", To: "B"}: 2, {From: "A", To: "C"}: 1, {From: "C", To: "B"}: 1,
		{From: "B", To: "D"}: 3, {From: "C", To: "D"}: 5,
	}
	res, err := dijkstra.Dijkstra(g, "A", w, dijkstra.WithReturnPath[int64]())
	require.NoError(t, err)

	assert.Equal(t, map[string]int64{"A": 0, "B": 2, "C": 1, "D": 5}, res.Dist)
	path, err := res.PathTo("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D"}, path, "A→B(2) is found before the tie via C")

	path, err = res.PathTo("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, path)

	d, ok := res.DistanceTo("C")
	assert.True(t, ok)
	assert.EqualValues(t, 1, d)
}

func TestDijkstra_NoPrevWithoutOption(t *testing.T) {
	g := core.New([]int{1, 2}, []core.Edge[int]{{From: 1, To: 2}})
	res, err := dijkstra.Dijkstra(g, 1, dijkstra.UniformWeights(g, 1))
	require.NoError(t, err)
	assert.Nil(t, res.Prev)
	_, err = res.PathTo(2)
	assert.Error(t, err)
	_, err = res.PathTo(3)
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestDijkstra_MaxDistance(t *testing.T) {
	g := core.New([]int{0, 1, 2, 3}, []core.Edge[int]{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}})
	res, err := dijkstra.Dijkstra(g, 0, dijkstra.UniformWeights(g, 2), dijkstra.WithMaxDistance(4))
	require.NoError(t, err)
	assert.Equal(t, map[int]int{0: 0, 1: 2, 2: 4}, res.Dist)
}

func TestWeightsFunc(t *testing.T) {
	g := core.New([]int{1, 2, 3}, []core.Edge[int]{{From: 1, To: 2}, {From: 2, To: 3}, {From: 1, To: 3}})
	w := dijkstra.WeightsFunc(g, func(ed core.Edge[int]) (int, bool) {
		if ed.From == 1 && ed.To == 3 {
			return 0, false
		}
		return ed.To * 10, true
	})
	assert.Equal(t, dijkstra.Weights[int, int]{{From: 1, To: 2}: 20, {From: 2, To: 3}: 30}, w)
}

// ------------------------------------------------------------------------
// 4. Properties against the unweighted engine
// ------------------------------------------------------------------------

func TestDistanceWith_UnitWeightsMatchBFS(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 25; trial++ {
		g := randomGraph(rng, 12, 20)
		w := dijkstra.UniformWeights(g, 1)
		for _, a := range g.Nodes() {
			res, err := dijkstra.Dijkstra(g, a, w)
			require.NoError(t, err)
			for _, b := range g.Nodes() {
				hops, ok := bfs.Distance(g, a, b)
				got, err := dijkstra.DistanceWith(g, a, []int{b}, w)
				require.NoError(t, err)
				d, reached := got[b]
				_, inFull := res.Dist[b]
				require.Equal(t, ok, reached, "trial %d %d→%d", trial, a, b)
				require.Equal(t, ok, inFull, "trial %d %d→%d", trial, a, b)
				if ok {
					require.Equal(t, hops, d, "trial %d %d→%d", trial, a, b)
					require.Equal(t, hops, res.Dist[b])
				}
			}
		}
	}
}

func TestDistanceWith_EveryReachableTargetReported(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	g := randomGraph(rng, 15, 25)
	w := dijkstra.UniformWeights(g, 3)
	reach := bfs.DistancesFrom(g, 0)

	got, err := dijkstra.DistanceWith(g, 0, g.Nodes(), w)
	require.NoError(t, err)
	require.Len(t, got, len(reach))
	for n, hops := range reach {
		assert.Equal(t, 3*hops, got[n])
	}
}

// randomGraph builds a directed graph on nodes 0..n-1 with m random edges.
func randomGraph(rng *rand.Rand, n, m int) *core.DiGraph[int] {
	nodes := make([]int, n)
	for i := range nodes {
		nodes[i] = i
	}
	edges := make([]core.Edge[int], 0, m)
	for i := 0; i < m; i++ {
		edges = append(edges, core.Edge[int]{From: rng.Intn(n), To: rng.Intn(n)})
	}
	return core.New(nodes, edges)
}
