// SPDX-License-Identifier: MIT

package input

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type yamlDoc struct {
	Nodes      []string   `yaml:"nodes"`
	Edges      []yamlEdge `yaml:"edges"`
	Undirected bool       `yaml:"undirected"`
}

type yamlEdge struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Weight *int64 `yaml:"weight"`
}

func (b *builder) readYAML(r io.Reader) error {
	var doc yamlDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: yaml: %w", ErrMalformed, err)
	}

	for i, n := range doc.Nodes {
		if n == "" {
			return fmt.Errorf("%w: nodes[%d] is empty", ErrMalformed, i)
		}
		b.node(n)
	}
	for i, e := range doc.Edges {
		if e.From == "" || e.To == "" {
			return fmt.Errorf("%w: edges[%d] needs both from and to", ErrMalformed, i)
		}
		w := int64(1)
		if e.Weight != nil {
			w = *e.Weight
		}
		if w < 0 {
			return fmt.Errorf("%w: edges[%d] %s-%s has negative weight %d", ErrMalformed, i, e.From, e.To, w)
		}
		b.edge(e.From, e.To, w)
	}
	b.undirected = doc.Undirected

	return nil
}
