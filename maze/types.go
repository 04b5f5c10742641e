// SPDX-License-Identifier: MIT

package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for maze parsing. Parse wraps each of them together with
// core.ErrInvalidInput.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("maze: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrMissingStart indicates no start marker was found.
	ErrMissingStart = errors.New("maze: no start marker")
	// ErrDuplicateStart indicates more than one start marker.
	ErrDuplicateStart = errors.New("maze: more than one start marker")
	// ErrMissingEnd indicates no end marker was found.
	ErrMissingEnd = errors.New("maze: no end marker")
	// ErrDuplicateEnd indicates more than one end marker.
	ErrDuplicateEnd = errors.New("maze: more than one end marker")
	// ErrMarkerCollision indicates two markers were configured with one rune.
	ErrMarkerCollision = errors.New("maze: wall, start and end markers must differ")
)

// Cell is a grid coordinate: I is the row, J the column.
type Cell struct {
	I, J int
}

// String renders the cell as "(i, j)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.I, c.J)
}

// Options holds the marker runes recognized by Parse.
type Options struct {
	Wall  rune
	Start rune
	End   rune
}

// Option configures Parse.
type Option func(*Options)

// DefaultOptions returns the classic markers: '#' wall, 'S' start, 'E' end.
func DefaultOptions() Options {
	return Options{Wall: '#', Start: 'S', End: 'E'}
}

// WithWall sets the wall marker.
func WithWall(r rune) Option {
	return func(o *Options) { o.Wall = r }
}

// WithStart sets the start marker.
func WithStart(r rune) Option {
	return func(o *Options) { o.Start = r }
}

// WithEnd sets the end marker.
func WithEnd(r rune) Option {
	return func(o *Options) { o.End = r }
}

// Maze is an immutable rectangular grid with one start and one end cell.
// Start and End are always open.
type Maze struct {
	Width, Height int
	Start, End    Cell

	wall []bool // row-major, len Width*Height
}
