// SPDX-License-Identifier: MIT

package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath-aoc/core"
	"github.com/katalvlaran/lvlath-aoc/dfs"
)

// ExampleTopologicalSort orders pages so that every "x before y" rule holds.
func ExampleTopologicalSort() {
	rules := []core.Edge[int]{{From: 47, To: 53}, {From: 97, To: 61}, {From: 97, To: 47}, {From: 75, To: 53}, {From: 61, To: 53}, {From: 97, To: 53}, {From: 75, To: 47}, {From: 47, To: 61}, {From: 75, To: 61}}
	g := core.New([]int{75, 97, 47, 61, 53}, rules)

	order, err := dfs.TopologicalSort(g)
	fmt.Println(order, err)
	// Output:
	// [97 75 47 61 53] <nil>
}
