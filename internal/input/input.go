// SPDX-License-Identifier: MIT

// Package input reads graph documents from disk into the engine's types.
//
// Two formats are understood:
//
//	yaml: nodes: [a, b]
//	      edges: [{from: a, to: b, weight: 3}]
//	      undirected: false
//	text: one edge per line, "a-b" or "a-b 7"; a lone name declares a node;
//	      blank lines and lines starting with '#' are ignored.
//
// Edges without an explicit weight cost 1. When the same pair is listed
// more than once the smallest weight is kept.
package input

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/lvlath-aoc/core"
	"github.com/katalvlaran/lvlath-aoc/dijkstra"
)

// ErrMalformed is wrapped by every parse failure.
var ErrMalformed = fmt.Errorf("%w: input: malformed graph document", core.ErrInvalidInput)

// ErrUnknownFormat is returned for a format name ReadGraph does not know.
var ErrUnknownFormat = errors.New("input: unknown format")

// Format names a graph document encoding.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// FormatFromPath guesses the format from the file extension: .yaml and .yml
// are YAML, everything else is text.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}

// Graph is a parsed document: the topology plus one weight per edge.
type Graph struct {
	*core.DiGraph[string]
	Weights dijkstra.Weights[string, int64]
}

// Options tunes ReadGraph.
type Options struct {
	// Undirected adds the reverse of every edge with the same weight.
	Undirected bool
}

// Option configures ReadGraph.
type Option func(*Options)

// WithUndirected makes every edge traversable both ways.
func WithUndirected() Option {
	return func(o *Options) { o.Undirected = true }
}

// ReadGraph decodes a graph document from r.
func ReadGraph(r io.Reader, format Format, opts ...Option) (*Graph, error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	var (
		b   builder
		err error
	)
	switch format {
	case FormatYAML:
		err = b.readYAML(r)
	case FormatText:
		err = b.readText(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, err
	}
	if o.Undirected {
		b.undirected = true
	}

	return b.build(), nil
}

// builder accumulates nodes and weighted edges in first-seen order.
type builder struct {
	nodes      []string
	seen       map[string]struct{}
	edges      []core.Edge[string]
	weights    map[core.Edge[string]]int64
	undirected bool
}

func (b *builder) node(n string) {
	if b.seen == nil {
		b.seen = make(map[string]struct{})
	}
	if _, ok := b.seen[n]; ok {
		return
	}
	b.seen[n] = struct{}{}
	b.nodes = append(b.nodes, n)
}

func (b *builder) edge(from, to string, w int64) {
	if b.weights == nil {
		b.weights = make(map[core.Edge[string]]int64)
	}
	b.node(from)
	b.node(to)
	e := core.Edge[string]{From: from, To: to}
	if cur, ok := b.weights[e]; ok {
		if w < cur {
			b.weights[e] = w
		}
		return
	}
	b.weights[e] = w
	b.edges = append(b.edges, e)
}

func (b *builder) build() *Graph {
	if b.undirected {
		for _, e := range b.edges {
			b.edge(e.To, e.From, b.weights[e])
		}
	}
	w := make(dijkstra.Weights[string, int64], len(b.weights))
	for e, v := range b.weights {
		w[e] = v
	}

	return &Graph{DiGraph: core.New(b.nodes, b.edges), Weights: w}
}
