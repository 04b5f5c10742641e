// SPDX-License-Identifier: MIT

package maze

// Left returns the cell one column to the left.
func (c Cell) Left() Cell { return Cell{c.I, c.J - 1} }

// Up returns the cell one row up.
func (c Cell) Up() Cell { return Cell{c.I - 1, c.J} }

// Right returns the cell one column to the right.
func (c Cell) Right() Cell { return Cell{c.I, c.J + 1} }

// Down returns the cell one row down.
func (c Cell) Down() Cell { return Cell{c.I + 1, c.J} }

// Neighbors returns the four orthogonal neighbors: left, up, right, down.
func (c Cell) Neighbors() [4]Cell {
	return [4]Cell{c.Left(), c.Up(), c.Right(), c.Down()}
}

// Manhattan returns |Δi| + |Δj|.
func (c Cell) Manhattan(o Cell) int {
	return abs(c.I-o.I) + abs(c.J-o.J)
}

// Inside reports whether min ≤ c < max on both axes (max is exclusive).
func (c Cell) Inside(lo, hi Cell) bool {
	return lo.I <= c.I && c.I < hi.I && lo.J <= c.J && c.J < hi.J
}

// Within returns every cell whose Manhattan distance to c is at most r,
// c included, row by row from the top. A negative r yields nil.
func (c Cell) Within(r int) []Cell {
	if r < 0 {
		return nil
	}
	out := make([]Cell, 0, 2*r*r+2*r+1)
	for di := -r; di <= r; di++ {
		span := r - abs(di)
		for dj := -span; dj <= span; dj++ {
			out = append(out, Cell{c.I + di, c.J + dj})
		}
	}

	return out
}

// WithinBounded is Within restricted to cells Inside(lo, hi).
func (c Cell) WithinBounded(r int, lo, hi Cell) []Cell {
	var out []Cell
	for _, x := range c.Within(r) {
		if x.Inside(lo, hi) {
			out = append(out, x)
		}
	}

	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
