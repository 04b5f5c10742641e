// SPDX-License-Identifier: MIT

package builder

import "fmt"

// Path builds 0→1→…→n-1. Requires n ≥ 2.
func Path(n int) Constructor {
	return func(s *sink, cfg builderConfig) error {
		if n < 2 {
			return fmt.Errorf("Path: n=%d < min=2: %w", n, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			s.node(i)
		}
		for i := 1; i < n; i++ {
			s.edge(i-1, i, cfg)
		}
		return nil
	}
}

// Cycle builds 0→1→…→n-1→0. Requires n ≥ 3.
func Cycle(n int) Constructor {
	return func(s *sink, cfg builderConfig) error {
		if n < 3 {
			return fmt.Errorf("Cycle: n=%d < min=3: %w", n, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			s.node(i)
		}
		for i := 0; i < n; i++ {
			s.edge(i, (i+1)%n, cfg)
		}
		return nil
	}
}

// Star builds hub 0 with spokes 0→i for i in 1..n-1. Requires n ≥ 2.
func Star(n int) Constructor {
	return func(s *sink, cfg builderConfig) error {
		if n < 2 {
			return fmt.Errorf("Star: n=%d < min=2: %w", n, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			s.node(i)
		}
		for i := 1; i < n; i++ {
			s.edge(0, i, cfg)
		}
		return nil
	}
}

// Complete builds every ordered pair i→j, i ≠ j. Requires n ≥ 1.
func Complete(n int) Constructor {
	return func(s *sink, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("Complete: n=%d < min=1: %w", n, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			s.node(i)
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i != j {
					s.edge(i, j, cfg)
				}
			}
		}
		return nil
	}
}

// Grid builds a rows×cols lattice, node r*cols+c, with edges to the right
// and downward neighbors (use WithSymmetric for a walkable grid).
// Requires rows, cols ≥ 1.
func Grid(rows, cols int) Constructor {
	return func(s *sink, cfg builderConfig) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("Grid: %dx%d: %w", rows, cols, ErrTooFewVertices)
		}
		for i := 0; i < rows*cols; i++ {
			s.node(i)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := r*cols + c
				if c+1 < cols {
					s.edge(id, id+1, cfg)
				}
				if r+1 < rows {
					s.edge(id, id+cols, cfg)
				}
			}
		}
		return nil
	}
}

// RandomSparse includes each ordered pair (i, j), self-loops included, with
// independent probability p. Requires n ≥ 1, 0 ≤ p ≤ 1 and an RNG.
// Trials run i ascending, then j ascending.
func RandomSparse(n int, p float64) Constructor {
	return func(s *sink, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("RandomSparse: n=%d < min=1: %w", n, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("RandomSparse: p=%.6f not in [0,1]: %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
		}
		for i := 0; i < n; i++ {
			s.node(i)
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if cfg.rng.Float64() < p {
					s.edge(i, j, cfg)
				}
			}
		}
		return nil
	}
}
