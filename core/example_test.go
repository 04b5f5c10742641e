// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath-aoc/core"
)

// ExampleNew builds a tiny chain and inspects its adjacency.
func ExampleNew() {
	g := core.New(
		[]string{"A", "B", "C"},
		[]core.Edge[string]{{From: "A", To: "B"}, {From: "B", To: "C"}, {From: "A", To: "C"}},
	)
	fmt.Println(g.Len(), g.Children("A"), g.Children("C"))
	// Output: 3 [B C] []
}

// ExampleNewValidated shows the strict constructor rejecting a dangling edge.
func ExampleNewValidated() {
	_, err := core.NewValidated([]int{1, 2}, []core.Edge[int]{{From: 2, To: 3}})
	fmt.Println(err)
	// Output: core: invalid input: core: edge endpoint not declared as node: edge #0 2→3: to 3
}
