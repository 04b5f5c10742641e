// SPDX-License-Identifier: MIT

// Package render turns graphs into Graphviz DOT text and SVG images.
package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/lvlath-aoc/core"
	"github.com/katalvlaran/lvlath-aoc/dijkstra"
)

// Options configures DOT generation.
type Options struct {
	// Path is a node sequence to highlight, e.g. from dijkstra.Result.PathTo.
	Path []string
	// HideWeights omits edge labels.
	HideWeights bool
}

// ToDOT converts g to Graphviz DOT. Nodes and edges keep the graph's order.
// Edges present in w are labeled with their weight; edges along opts.Path
// and the nodes they join are drawn bold and colored.
func ToDOT(g *core.DiGraph[string], w dijkstra.Weights[string, int64], opts Options) string {
	onPath := make(map[string]bool, len(opts.Path))
	pathEdge := make(map[core.Edge[string]]bool, len(opts.Path))
	for i, n := range opts.Path {
		onPath[n] = true
		if i > 0 {
			pathEdge[core.Edge[string]{From: opts.Path[i-1], To: n}] = true
		}
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=circle, fontsize=12];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		if onPath[n] {
			fmt.Fprintf(&buf, "  %q [style=filled, fillcolor=lightblue];\n", n)
			continue
		}
		fmt.Fprintf(&buf, "  %q;\n", n)
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		var attrs []string
		if v, ok := w[e]; ok && !opts.HideWeights {
			attrs = append(attrs, fmt.Sprintf("label=%q", fmt.Sprint(v)))
		}
		if pathEdge[e] {
			attrs = append(attrs, "color=blue", "penwidth=2")
		}
		if len(attrs) == 0 {
			fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", e.From, e.To, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// SVG renders DOT text to SVG using Graphviz.
func SVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
