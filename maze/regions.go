// SPDX-License-Identifier: MIT

package maze

import "container/list"

// Regions finds all contiguous areas of open cells under 4-connectivity.
// Regions are ordered by their first cell in row-major order; cells within
// a region are listed in BFS discovery order.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (m *Maze) Regions() [][]Cell {
	seen := make([]bool, len(m.wall))
	var regions [][]Cell

	for i0, w := range m.wall {
		if w || seen[i0] {
			continue
		}
		// BFS to collect the region
		queue := []int{i0}
		seen[i0] = true
		var region []Cell

		for qi := 0; qi < len(queue); qi++ {
			u := m.cell(queue[qi])
			region = append(region, u)
			for _, v := range m.Neighbors(u) {
				vi := m.index(v)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		regions = append(regions, region)
	}

	return regions
}

// Breaches returns the minimum number of wall cells a walk from Start to End
// has to pass through. It is 0 exactly when Distance reports a path.
//
// Behavior: 0-1 BFS over every in-bounds cell; stepping onto an open cell
// costs 0, onto a wall cell 1. The grid is rectangular, so End is always
// reached.
//
// Time:   O(W·H).
// Memory: O(W·H) for the distance table.
func (m *Maze) Breaches() int {
	const inf = int(^uint(0) >> 1)
	dist := make([]int, len(m.wall))
	for i := range dist {
		dist[i] = inf
	}
	src, dst := m.index(m.Start), m.index(m.End)
	dist[src] = 0

	// cost-0 moves go to the front of the deque, cost-1 moves to the back
	dq := list.New()
	dq.PushFront(src)
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == dst {
			break
		}
		for _, c := range m.cell(u).Neighbors() {
			if !m.InBounds(c) {
				continue
			}
			v := m.index(c)
			step := 0
			if m.wall[v] {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	return dist[dst]
}
