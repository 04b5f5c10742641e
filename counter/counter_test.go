// SPDX-License-Identifier: MIT

package counter_test

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlath-aoc/counter"
)

func TestCount(t *testing.T) {
	cases := []struct {
		name  string
		items []int
		want  map[int]int
	}{
		{"Empty", nil, map[int]int{}},
		{"Single", []int{7}, map[int]int{7: 1}},
		{"Repeated", []int{3, 4, 2, 1, 3, 3}, map[int]int{1: 1, 2: 1, 3: 3, 4: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := counter.Count(tc.items)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, len(tc.items), counter.Total(got))
		})
	}
}

func TestCount_OrderIrrelevant(t *testing.T) {
	a := []string{"x", "y", "x", "z", "y", "x"}
	b := slices.Clone(a)
	slices.Reverse(b)
	assert.Equal(t, counter.Count(a), counter.Count(b))
}

func TestCountSeq(t *testing.T) {
	type pt struct{ x, y int }
	pts := []pt{{1, 2}, {1, 5}, {3, 2}}
	xs := func(yield func(int) bool) {
		for _, p := range pts {
			if !yield(p.x) {
				return
			}
		}
	}
	assert.Equal(t, map[int]int{1: 2, 3: 1}, counter.CountSeq(xs))

	keys := maps.Keys(map[string]bool{"a": true, "b": true})
	assert.Equal(t, map[string]int{"a": 1, "b": 1}, counter.CountSeq(keys))
}

func TestMostCommon(t *testing.T) {
	item, n, ok := counter.MostCommon([]string{"b", "a", "a", "b", "c"})
	assert.True(t, ok)
	assert.Equal(t, "a", item, "a reaches two before b does")
	assert.Equal(t, 2, n)

	_, _, ok = counter.MostCommon([]int(nil))
	assert.False(t, ok)
}

func TestRank(t *testing.T) {
	got := counter.Rank([]string{"b", "a", "c", "a", "b", "a"})
	assert.Equal(t, []counter.Entry[string]{
		{Item: "a", Count: 3},
		{Item: "b", Count: 2},
		{Item: "c", Count: 1},
	}, got)

	tied := counter.Rank([]int{3, 1, 2, 1, 3, 2})
	assert.Equal(t, []int{3, 1, 2}, []int{tied[0].Item, tied[1].Item, tied[2].Item})

	assert.Empty(t, counter.Rank[string](nil))
}
