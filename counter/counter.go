// SPDX-License-Identifier: MIT

package counter

import (
	"cmp"
	"iter"
	"slices"
)

// Count returns the multiplicity of each distinct item.
func Count[T comparable](items []T) map[T]int {
	out := make(map[T]int)
	for _, it := range items {
		out[it]++
	}

	return out
}

// CountSeq is Count over an iterator, so callers can count a projection
// (e.g. only the x coordinates of a point set) without materializing it.
func CountSeq[T comparable](seq iter.Seq[T]) map[T]int {
	out := make(map[T]int)
	for it := range seq {
		out[it]++
	}

	return out
}

// MostCommon returns the item with the highest multiplicity and that
// multiplicity. Among tied items the one that reached the maximal count first
// wins. ok is false for empty input.
func MostCommon[T comparable](items []T) (item T, n int, ok bool) {
	counts := make(map[T]int, len(items))
	for _, it := range items {
		counts[it]++
		if counts[it] > n {
			item, n, ok = it, counts[it], true
		}
	}

	return item, n, ok
}

// Total sums the counts of a frequency table.
func Total[T comparable](counts map[T]int) int {
	sum := 0
	for _, c := range counts {
		sum += c
	}

	return sum
}

// Entry is one row of a ranked frequency table.
type Entry[T comparable] struct {
	Item  T
	Count int
}

// Rank returns every distinct item with its multiplicity, most frequent
// first. Tied items keep the order of their first appearance in items.
func Rank[T comparable](items []T) []Entry[T] {
	pos := make(map[T]int)
	var out []Entry[T]
	for _, it := range items {
		if i, ok := pos[it]; ok {
			out[i].Count++
			continue
		}
		pos[it] = len(out)
		out = append(out, Entry[T]{Item: it, Count: 1})
	}
	slices.SortStableFunc(out, func(a, b Entry[T]) int {
		return cmp.Compare(b.Count, a.Count)
	})

	return out
}
