// SPDX-License-Identifier: MIT

// Types and configuration options for the Dijkstra runs.
//
// Options:
//
//	– WithReturnPath():   also return the predecessor map.
//	– WithMaxDistance(v): nodes whose distance would exceed v are not explored.
//
// Errors (sentinel):
//
//	– ErrNilGraph         if the provided graph pointer is nil.
//	– ErrNegativeWeight   if a weight is negative (or NaN for float weights).
//	– ErrBadMaxDistance   if MaxDistance < 0.
//	– ErrNoPath           from Result.PathTo when the destination was not reached.

package dijkstra

import (
	"errors"
	"fmt"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvlath-aoc/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.DiGraph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNegativeWeight indicates that a negative (or NaN) weight was found
	// in the weight mapping.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrNoPath indicates that the requested destination was not reached.
	ErrNoPath = errors.New("dijkstra: no path")
)

// Number is the set of weight types: any integer or float. Each supports
// ordering, addition and an additive identity (its zero value).
type Number interface {
	constraints.Integer | constraints.Float
}

// Weights maps a directed node pair to the cost of traversing it.
// Only pairs present as keys are traversable, whatever the graph's own edge
// list says; this lets one topology be walked with several cost functions.
type Weights[I comparable, V Number] map[core.Edge[I]]V

// Options configures the behavior of the Dijkstra algorithm.
//
// ReturnPath  – if true, Result.Prev is filled; otherwise it is nil.
// MaxDistance – cap on explored distances, honored only when Limited is set.
type Options[V Number] struct {
	ReturnPath  bool
	MaxDistance V
	Limited     bool

	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option[V Number] func(*Options[V])

// DefaultOptions returns Options with no predecessor map and no distance cap.
func DefaultOptions[V Number]() Options[V] {
	return Options[V]{}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath[V Number]() Option[V] {
	return func(o *Options[V]) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold. Nodes whose shortest
// distance would exceed limit are not explored. A negative limit is recorded and
// surfaced as ErrBadMaxDistance when Dijkstra runs.
func WithMaxDistance[V Number](limit V) Option[V] {
	return func(o *Options[V]) {
		if limit < 0 {
			o.err = fmt.Errorf("%w (got %v)", ErrBadMaxDistance, limit)
			return
		}
		o.MaxDistance = limit
		o.Limited = true
	}
}

// Result is the outcome of a single-source run.
//
// Dist holds an entry only for reached nodes: absence means "unreached",
// never a max-value sentinel. Prev[v] == u means the shortest path to v
// ends with the edge u → v; it is nil unless WithReturnPath was given.
type Result[I comparable, V Number] struct {
	Source I
	Dist   map[I]V
	Prev   map[I]I
}

// DistanceTo returns the distance to dest and whether dest was reached.
func (r *Result[I, V]) DistanceTo(dest I) (V, bool) {
	d, ok := r.Dist[dest]
	return d, ok
}

// PathTo reconstructs the node sequence Source → … → dest.
// It requires WithReturnPath and returns ErrNoPath for unreached nodes.
func (r *Result[I, V]) PathTo(dest I) ([]I, error) {
	if _, ok := r.Dist[dest]; !ok {
		return nil, fmt.Errorf("%w to %v", ErrNoPath, dest)
	}
	if r.Prev == nil {
		return nil, errors.New("dijkstra: PathTo requires WithReturnPath")
	}
	path := []I{dest}
	for cur := dest; cur != r.Source; {
		cur = r.Prev[cur]
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path, nil
}
