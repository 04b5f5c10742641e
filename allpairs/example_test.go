// SPDX-License-Identifier: MIT

package allpairs_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath-aoc/allpairs"
	"github.com/katalvlaran/lvlath-aoc/core"
)

// ExampleCompute tabulates a three-node chain.
func ExampleCompute() {
	g := core.New([]int{1, 2, 3}, []core.Edge[int]{{From: 1, To: 2}, {From: 2, To: 3}})
	tbl := allpairs.Compute(g)

	d, ok := tbl.Get(1, 3)
	fmt.Println(d, ok)
	_, ok = tbl.Get(3, 1)
	fmt.Println(ok)
	// Output:
	// 2 true
	// false
}
