// SPDX-License-Identifier: MIT

package dijkstra

// nodeItem represents a node and its tentative distance from the source.
// seq breaks distance ties in insertion order so runs are reproducible.
type nodeItem[I comparable, V Number] struct {
	id   I
	dist V
	seq  int
}

// nodePQ is a min-heap of nodeItem ordered by dist, then seq.
// We use the “lazy-decrease-key” approach: when a shorter distance to an
// existing node is found, a new item is pushed. The outdated entry remains
// but is ignored when popped (checked via visited).
type nodePQ[I comparable, V Number] []nodeItem[I, V]

// Len returns the number of items in the heap.
func (pq nodePQ[I, V]) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ[I, V]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ[I, V]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (pq *nodePQ[I, V]) Push(x any) { *pq = append(*pq, x.(nodeItem[I, V])) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ[I, V]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
