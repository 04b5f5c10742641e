// SPDX-License-Identifier: MIT

package render_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-aoc/core"
	"github.com/katalvlaran/lvlath-aoc/dijkstra"
	"github.com/katalvlaran/lvlath-aoc/internal/render"
)

func sample() (*core.DiGraph[string], dijkstra.Weights[string, int64]) {
	g := core.New([]string{"a", "b", "c"}, []core.Edge[string]{
		{From: "a", To: "b"},
		{From: "b", To: "c"},
		{From: "a", To: "c"},
	})
	w := dijkstra.Weights[string, int64]{
		{From: "a", To: "b"}: 1,
		{From: "b", To: "c"}: 1,
		{From: "a", To: "c"}: 5,
	}
	return g, w
}

func TestToDOT(t *testing.T) {
	g, w := sample()
	dot := render.ToDOT(g, w, render.Options{})

	assert.True(t, strings.HasPrefix(dot, "digraph G {\n"))
	assert.Contains(t, dot, `"a" -> "c" [label="5"];`)
	assert.Contains(t, dot, `"c";`)
	assert.NotContains(t, dot, "color=blue")
	assert.Less(t, strings.Index(dot, `"a" -> "b"`), strings.Index(dot, `"a" -> "c"`))
}

func TestToDOT_PathAndHiddenWeights(t *testing.T) {
	g, w := sample()
	dot := render.ToDOT(g, w, render.Options{Path: []string{"a", "b", "c"}, HideWeights: true})

	assert.Contains(t, dot, `"a" -> "b" [color=blue, penwidth=2];`)
	assert.Contains(t, dot, `"a" -> "c";`)
	assert.Contains(t, dot, `"b" [style=filled, fillcolor=lightblue];`)
	assert.NotContains(t, dot, "label=")
}

func TestSVG(t *testing.T) {
	if testing.Short() {
		t.Skip("graphviz runtime start-up is slow")
	}
	g, w := sample()
	svg, err := render.SVG(context.Background(), render.ToDOT(g, w, render.Options{}))
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
}
