// SPDX-License-Identifier: MIT

package maze_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/lvlath-aoc/bfs"
	"github.com/katalvlaran/lvlath-aoc/maze"
)

// serpentine builds an n×n maze whose only route snakes through every row.
func serpentine(n int) []string {
	rows := make([]string, n)
	for i := range rows {
		switch {
		case i%2 == 0:
			rows[i] = strings.Repeat(".", n)
		case i%4 == 1:
			rows[i] = strings.Repeat("#", n-1) + "."
		default:
			rows[i] = "." + strings.Repeat("#", n-1)
		}
	}
	rows[0] = "S" + rows[0][1:]
	last := rows[n-1]
	rows[n-1] = last[:n-1] + "E"
	return rows
}

func BenchmarkDistance_Serpentine101(b *testing.B) {
	m, err := maze.Parse(serpentine(101))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := m.Distance(); !ok {
			b.Fatal("no path")
		}
	}
}

func BenchmarkToGraphBFS_Serpentine101(b *testing.B) {
	m, err := maze.Parse(serpentine(101))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := bfs.Distance(m.ToGraph(), m.Start, m.End); !ok {
			b.Fatal("no path")
		}
	}
}
