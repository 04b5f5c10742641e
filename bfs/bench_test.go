// SPDX-License-Identifier: MIT

package bfs_test

import (
	"testing"

	"github.com/katalvlaran/lvlath-aoc/bfs"
)

// BenchmarkDistance_Grid measures corner-to-corner distance on a 71×71 grid,
// the size of a typical falling-bytes puzzle.
func BenchmarkDistance_Grid(b *testing.B) {
	const side = 71
	g := grid(side, side)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Distance(g, 0, side*side-1)
	}
}

// BenchmarkBFS_Grid runs the full walker on the same grid.
func BenchmarkBFS_Grid(b *testing.B) {
	const side = 71
	g := grid(side, side)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}
