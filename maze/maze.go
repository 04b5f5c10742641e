// SPDX-License-Identifier: MIT

package maze

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlath-aoc/core"
)

// Parse builds a Maze from rows of runes. Every row must have the same
// number of runes. Returns errors wrapping core.ErrInvalidInput for empty or
// ragged grids, for a missing or repeated start/end marker, and for
// colliding marker options.
// Complexity: O(W×H) time and memory.
func Parse(lines []string, opts ...Option) (*Maze, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Wall == o.Start || o.Wall == o.End || o.Start == o.End {
		return nil, fmt.Errorf("%w: %w: wall=%q start=%q end=%q",
			core.ErrInvalidInput, ErrMarkerCollision, o.Wall, o.Start, o.End)
	}
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, fmt.Errorf("%w: %w", core.ErrInvalidInput, ErrEmptyGrid)
	}

	rows := make([][]rune, len(lines))
	for i, line := range lines {
		rows[i] = []rune(line)
	}
	h, w := len(rows), len(rows[0])
	m := &Maze{Width: w, Height: h, wall: make([]bool, w*h)}

	var starts, ends int
	for i, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: %w: row %d has %d cells, want %d",
				core.ErrInvalidInput, ErrNonRectangular, i, len(row), w)
		}
		for j, r := range row {
			switch r {
			case o.Wall:
				m.wall[m.index(Cell{i, j})] = true
			case o.Start:
				starts++
				m.Start = Cell{i, j}
			case o.End:
				ends++
				m.End = Cell{i, j}
			}
		}
	}

	switch {
	case starts == 0:
		return nil, fmt.Errorf("%w: %w", core.ErrInvalidInput, ErrMissingStart)
	case starts > 1:
		return nil, fmt.Errorf("%w: %w: found %d", core.ErrInvalidInput, ErrDuplicateStart, starts)
	case ends == 0:
		return nil, fmt.Errorf("%w: %w", core.ErrInvalidInput, ErrMissingEnd)
	case ends > 1:
		return nil, fmt.Errorf("%w: %w: found %d", core.ErrInvalidInput, ErrDuplicateEnd, ends)
	}

	return m, nil
}

// ParseString splits text into lines and calls Parse. A trailing '\r' on
// each line and blank lines before and after the grid are ignored.
func ParseString(text string, opts ...Option) (*Maze, error) {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return Parse(lines, opts...)
}

// index maps c to a row-major index: I*Width + J.
func (m *Maze) index(c Cell) int {
	return c.I*m.Width + c.J
}

// cell converts a row-major index back to a Cell.
func (m *Maze) cell(idx int) Cell {
	return Cell{idx / m.Width, idx % m.Width}
}

// InBounds reports whether c lies within the grid.
func (m *Maze) InBounds(c Cell) bool {
	return c.Inside(Cell{}, Cell{m.Height, m.Width})
}

// IsWall reports whether c is a wall. Cells outside the grid count as walls.
func (m *Maze) IsWall(c Cell) bool {
	return !m.InBounds(c) || m.wall[m.index(c)]
}

// Walls returns every wall cell in row-major order.
func (m *Maze) Walls() []Cell {
	var out []Cell
	for idx, w := range m.wall {
		if w {
			out = append(out, m.cell(idx))
		}
	}

	return out
}

// Open returns every non-wall cell in row-major order.
func (m *Maze) Open() []Cell {
	var out []Cell
	for idx, w := range m.wall {
		if !w {
			out = append(out, m.cell(idx))
		}
	}

	return out
}

// Neighbors returns the in-bounds open cells orthogonally adjacent to c,
// in left, up, right, down order.
func (m *Maze) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, 4)
	for _, n := range c.Neighbors() {
		if !m.IsWall(n) {
			out = append(out, n)
		}
	}

	return out
}

// Distance returns the number of single-cell moves on the shortest walk
// from Start to End through open cells; ok is false when End cannot be
// reached. It explores the grid directly, layer by layer, and agrees with
// bfs.Distance(m.ToGraph(), m.Start, m.End).
// Complexity: O(W×H) time and memory.
func (m *Maze) Distance() (dist int, ok bool) {
	if m.Start == m.End {
		return 0, true
	}
	seen := make([]bool, len(m.wall))
	seen[m.index(m.Start)] = true
	frontier := []Cell{m.Start}
	for round := 1; len(frontier) > 0; round++ {
		var next []Cell
		for _, c := range frontier {
			for _, n := range m.Neighbors(c) {
				idx := m.index(n)
				if seen[idx] {
					continue
				}
				if n == m.End {
					return round, true
				}
				seen[idx] = true
				next = append(next, n)
			}
		}
		frontier = next
	}

	return 0, false
}

// ToGraph projects the maze onto a directed graph: open cells are the nodes
// (row-major order) and each open cell has an edge to every open neighbor.
// Complexity: O(W×H) time and memory.
func (m *Maze) ToGraph() *core.DiGraph[Cell] {
	nodes := m.Open()
	edges := make([]core.Edge[Cell], 0, 4*len(nodes))
	for _, c := range nodes {
		for _, n := range m.Neighbors(c) {
			edges = append(edges, core.Edge[Cell]{From: c, To: n})
		}
	}

	return core.New(nodes, edges)
}
