// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-aoc/builder"
	"github.com/katalvlaran/lvlath-aoc/core"
	"github.com/katalvlaran/lvlath-aoc/dijkstra"
)

func randomWeight(r *rand.Rand) int64 { return 1 + r.Int63n(9) }

// Every finalized distance must be tight: no weighted pair can shorten it,
// and the reported path must cost exactly the reported distance.
func TestDijkstra_RandomWeightsAreTight(t *testing.T) {
	for seed := int64(1); seed <= 15; seed++ {
		fx, err := builder.BuildGraph(
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightFn(randomWeight)},
			builder.RandomSparse(14, 0.15),
		)
		require.NoError(t, err)

		res, err := dijkstra.Dijkstra(fx.Graph, 0, fx.Weights, dijkstra.WithReturnPath[int64]())
		require.NoError(t, err)

		for e, w := range fx.Weights {
			du, ok := res.Dist[e.From]
			if !ok {
				continue
			}
			dv, ok := res.Dist[e.To]
			require.True(t, ok, "seed %d: %v reachable through %v", seed, e.To, e)
			require.LessOrEqual(t, dv, du+w, "seed %d edge %v", seed, e)
		}

		for v, d := range res.Dist {
			path, err := res.PathTo(v)
			require.NoError(t, err)
			var sum int64
			for i := 1; i < len(path); i++ {
				sum += fx.Weights[core.Edge[int]{From: path[i-1], To: path[i]}]
			}
			require.Equal(t, d, sum, "seed %d path %v", seed, path)
		}
	}
}

func TestDistanceWith_SymmetricGrid(t *testing.T) {
	fx, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSymmetric()}, builder.Grid(5, 7))
	require.NoError(t, err)

	got, err := dijkstra.DistanceWith(fx.Graph, 0, []int{34, 6, 28}, fx.Weights)
	require.NoError(t, err)
	require.Equal(t, map[int]int64{34: 10, 6: 6, 28: 4}, got)
}

func BenchmarkDijkstra_Grid64(b *testing.B) {
	fx, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSymmetric(), builder.WithSeed(1), builder.WithWeightFn(randomWeight)},
		builder.Grid(64, 64),
	)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Dijkstra(fx.Graph, 0, fx.Weights)
	}
}
