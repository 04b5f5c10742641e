// SPDX-License-Identifier: MIT

package maze

import (
	"github.com/katalvlaran/lvlath-aoc/core"
	"github.com/katalvlaran/lvlath-aoc/dijkstra"
)

// Heading is a compass direction. Values run clockwise from East.
type Heading uint8

// Headings in clockwise order.
const (
	East Heading = iota
	South
	West
	North
)

// Headings lists every heading in clockwise order starting at East.
var Headings = [4]Heading{East, South, West, North}

var headingNames = [4]string{"East", "South", "West", "North"}

// String returns the heading name.
func (h Heading) String() string {
	if int(h) < len(headingNames) {
		return headingNames[h]
	}
	return "Heading(?)"
}

// Clockwise returns the heading after a 90° right turn.
func (h Heading) Clockwise() Heading { return (h + 1) % 4 }

// CounterClockwise returns the heading after a 90° left turn.
func (h Heading) CounterClockwise() Heading { return (h + 3) % 4 }

// Move returns the cell one step from c in direction h.
func (c Cell) Move(h Heading) Cell {
	switch h {
	case East:
		return c.Right()
	case South:
		return c.Down()
	case West:
		return c.Left()
	default:
		return c.Up()
	}
}

// Pose is a cell together with the direction a walker is facing.
type Pose struct {
	Cell
	Heading Heading
}

// StartPose is the walker at Start facing East.
func (m *Maze) StartPose() Pose {
	return Pose{Cell: m.Start, Heading: East}
}

// EndPoses lists End under every heading; any of them finishes a walk.
func (m *Maze) EndPoses() []Pose {
	out := make([]Pose, 0, len(Headings))
	for _, h := range Headings {
		out = append(out, Pose{Cell: m.End, Heading: h})
	}

	return out
}

// OrientedGraph projects the maze onto poses. Every open cell contributes
// four nodes, one per heading. A 90° turn in place, either way, costs turn;
// moving one cell forward onto an open cell costs step. Weights keys exactly
// the graph's edges.
//
// Node order: open cells row-major, headings clockwise from East.
// Complexity: O(W×H) time and memory.
func OrientedGraph[V dijkstra.Number](m *Maze, turn, step V) (*core.DiGraph[Pose], dijkstra.Weights[Pose, V]) {
	open := m.Open()
	nodes := make([]Pose, 0, 4*len(open))
	edges := make([]core.Edge[Pose], 0, 12*len(open))
	w := make(dijkstra.Weights[Pose, V], 12*len(open))

	link := func(a, b Pose, cost V) {
		e := core.Edge[Pose]{From: a, To: b}
		edges = append(edges, e)
		w[e] = cost
	}

	for _, c := range open {
		for _, h := range Headings {
			nodes = append(nodes, Pose{Cell: c, Heading: h})
		}
		for _, h := range Headings {
			here := Pose{Cell: c, Heading: h}
			link(here, Pose{Cell: c, Heading: h.Clockwise()}, turn)
			link(here, Pose{Cell: c, Heading: h.CounterClockwise()}, turn)
			if next := c.Move(h); !m.IsWall(next) {
				link(here, Pose{Cell: next, Heading: h}, step)
			}
		}
	}

	return core.New(nodes, edges), w
}
