// SPDX-License-Identifier: MIT

package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-aoc/bfs"
	"github.com/katalvlaran/lvlath-aoc/core"
)

// diamond: A→B, A→C, B→D, C→D, D→E
func diamond() *core.DiGraph[string] {
	return core.New(
		[]string{"A", "B", "C", "D", "E"},
		[]core.Edge[string]{{From: "A", To: "B"}, {From: "A", To: "C"}, {From: "B", To: "D"}, {From: "C", To: "D"}, {From: "D", To: "E"}},
	)
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS[string](nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.BFS(diamond(), "missing")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(diamond(), "A", bfs.WithMaxDepth[string](-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_OrderDepthParent(t *testing.T) {
	res, err := bfs.BFS(diamond(), "A")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 1, "D": 2, "E": 3}, res.Depth)
	assert.Equal(t, "B", res.Parent["D"], "first discoverer wins")
	_, hasParent := res.Parent["A"]
	assert.False(t, hasParent, "start has no parent")

	path, err := res.PathTo("E")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "E"}, path)

	path, err = res.PathTo("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, path)
}

func TestBFS_PathToUnreached(t *testing.T) {
	res, err := bfs.BFS(diamond(), "D")
	require.NoError(t, err)
	_, err = res.PathTo("A")
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

func TestBFS_MaxDepth(t *testing.T) {
	res, err := bfs.BFS(diamond(), "A", bfs.WithMaxDepth[string](1))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A", "B", "C"}, res.Order)

	res, err = bfs.BFS(diamond(), "A", bfs.WithMaxDepth[string](0))
	require.NoError(t, err)
	assert.Len(t, res.Order, 5, "zero means no limit")
}

func TestBFS_FilterNeighbor(t *testing.T) {
	skipB := bfs.WithFilterNeighbor(func(_, nbr string) bool { return nbr != "B" })
	res, err := bfs.BFS(diamond(), "A", skipB)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "D", "E"}, res.Order)
	assert.Equal(t, "C", res.Parent["D"])
}

func TestBFS_OnVisitAborts(t *testing.T) {
	stop := errors.New("stop here")
	hook := bfs.WithOnVisit(func(n string, _ int) error {
		if n == "D" {
			return stop
		}
		return nil
	})
	res, err := bfs.BFS(diamond(), "A", hook)
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Order)
}

func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(diamond(), "A", bfs.WithContext[string](ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
