// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlath-aoc/allpairs"
	"github.com/katalvlaran/lvlath-aoc/bfs"
	"github.com/katalvlaran/lvlath-aoc/dfs"
	"github.com/katalvlaran/lvlath-aoc/dijkstra"
	"github.com/katalvlaran/lvlath-aoc/internal/input"
	"github.com/katalvlaran/lvlath-aoc/internal/render"
)

// graphCommand creates the graph command group.
func (c *CLI) graphCommand() *cobra.Command {
	var undirected bool

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Distance queries over yaml documents or text edge lists",
		Long: `Graph files ending in .yaml or .yml are read as YAML documents
(nodes, edges with from/to/weight); anything else is a text edge list with
one "a-b" or "a-b weight" per line.`,
	}
	cmd.PersistentFlags().BoolVarP(&undirected, "undirected", "u", false, "make every edge traversable both ways")

	load := func(ctx context.Context, path string) (*input.Graph, error) {
		return c.loadGraph(ctx, path, undirected)
	}

	cmd.AddCommand(c.graphDistanceCommand(load))
	cmd.AddCommand(c.graphWeightedCommand(load))
	cmd.AddCommand(c.graphTableCommand(load))
	cmd.AddCommand(c.graphRenderCommand(load))
	cmd.AddCommand(c.graphOrderCommand(load))

	return cmd
}

type graphLoader func(ctx context.Context, path string) (*input.Graph, error)

func (c *CLI) loadGraph(ctx context.Context, path string, undirected bool) (*input.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open graph: %w", err)
	}
	defer f.Close()

	var opts []input.Option
	if undirected {
		opts = append(opts, input.WithUndirected())
	}
	g, err := input.ReadGraph(f, input.FormatFromPath(path), opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	loggerFromContext(ctx).Debug("Loaded graph", "file", path, "nodes", g.Len(), "edges", len(g.Edges()))

	return g, nil
}

// graphDistanceCommand creates the "graph distance" subcommand.
func (c *CLI) graphDistanceCommand(load graphLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "distance <file> <from> <to>",
		Short: "Fewest edges from one node to another (BFS)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			g, err := load(ctx, args[0])
			if err != nil {
				return err
			}
			prog := newProgress(loggerFromContext(ctx))
			d, ok := bfs.Distance(g.DiGraph, args[1], args[2])
			prog.done("Computed distance")

			type result struct {
				From     string `yaml:"from"`
				To       string `yaml:"to"`
				Distance *int   `yaml:"distance"`
			}
			res := result{From: args[1], To: args[2]}
			if ok {
				res.Distance = &d
			}
			p := c.printer()
			return p.emit(res, func() { p.route(args[1], args[2], none(d, ok)) })
		},
	}
}

// graphWeightedCommand creates the "graph weighted" subcommand.
func (c *CLI) graphWeightedCommand(load graphLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "weighted <file> <from> <to>...",
		Short: "Least total weight from one node to each target (Dijkstra)",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			g, err := load(ctx, args[0])
			if err != nil {
				return err
			}
			from, targets := args[1], args[2:]

			prog := newProgress(loggerFromContext(ctx))
			ds, err := dijkstra.DistanceWith(g.DiGraph, from, targets, g.Weights)
			if err != nil {
				return err
			}
			prog.done("Computed weighted distances", "targets", len(targets), "reached", len(ds))

			type row struct {
				To       string `yaml:"to"`
				Distance *int64 `yaml:"distance"`
			}
			rows := make([]row, len(targets))
			for i, t := range targets {
				rows[i].To = t
				if d, ok := ds[t]; ok {
					rows[i].Distance = &d
				}
			}
			p := c.printer()
			return p.emit(map[string]any{"from": from, "targets": rows}, func() {
				for _, r := range rows {
					p.route(from, r.To, deref(r.Distance))
				}
			})
		},
	}
}

// graphTableCommand creates the "graph table" subcommand.
func (c *CLI) graphTableCommand(load graphLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "table <file>",
		Short: "All-pairs edge-count distances (Floyd–Warshall)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			g, err := load(ctx, args[0])
			if err != nil {
				return err
			}
			prog := newProgress(loggerFromContext(ctx))
			tbl := allpairs.Compute(g.DiGraph)
			prog.done("Computed distance table", "size", tbl.Len())

			nodes := tbl.Nodes()
			reach := make(map[string]map[string]int, len(nodes))
			for _, a := range nodes {
				row := make(map[string]int)
				for _, b := range nodes {
					if d, ok := tbl.Get(a, b); ok {
						row[b] = d
					}
				}
				reach[a] = row
			}

			p := c.printer()
			return p.emit(reach, func() {
				rows := make([][]string, len(nodes))
				for i, a := range nodes {
					rows[i] = make([]string, 0, len(nodes)+1)
					rows[i] = append(rows[i], a)
					for _, b := range nodes {
						if d, ok := reach[a][b]; ok {
							rows[i] = append(rows[i], fmt.Sprint(d))
						} else {
							rows[i] = append(rows[i], "-")
						}
					}
				}
				p.table(append([]string{""}, nodes...), rows)
			})
		},
	}
}

// graphRenderCommand creates the "graph render" subcommand.
func (c *CLI) graphRenderCommand(load graphLoader) *cobra.Command {
	var (
		path    []string
		dotOnly bool
		out     string
		bare    bool
	)
	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Draw the graph with Graphviz, optionally highlighting a shortest path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			g, err := load(ctx, args[0])
			if err != nil {
				return err
			}

			opts := render.Options{HideWeights: bare}
			if len(path) > 0 {
				if len(path) != 2 {
					return fmt.Errorf("--path wants from,to; got %d names", len(path))
				}
				res, err := dijkstra.Dijkstra(g.DiGraph, path[0], g.Weights, dijkstra.WithReturnPath[int64]())
				if err != nil {
					return err
				}
				if route, err := res.PathTo(path[1]); err == nil {
					opts.Path = route
				} else {
					logger.Warn("Nothing to highlight", "from", path[0], "to", path[1])
				}
			}

			dot := render.ToDOT(g.DiGraph, g.Weights, opts)
			if dotOnly {
				_, err := fmt.Fprint(c.out, dot)
				return err
			}

			prog := newProgress(logger)
			svg, err := render.SVG(ctx, dot)
			if err != nil {
				return err
			}
			prog.done("Rendered graph", "bytes", len(svg))

			if out == "" {
				_, err := c.out.Write(svg)
				return err
			}
			if err := os.WriteFile(out, svg, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			c.printer().successf("wrote %s", out)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&path, "path", nil, "highlight the least-weight path between two nodes (from,to)")
	cmd.Flags().BoolVar(&dotOnly, "dot", false, "print DOT text instead of SVG")
	cmd.Flags().StringVarP(&out, "output", "o", "", "write SVG to this file instead of stdout")
	cmd.Flags().BoolVar(&bare, "no-weights", false, "omit edge weight labels")

	return cmd
}

// graphOrderCommand creates the "graph order" subcommand.
func (c *CLI) graphOrderCommand(load graphLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "order <file>",
		Short: "Topological order of the nodes, or the first cycle found",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			g, err := load(ctx, args[0])
			if err != nil {
				return err
			}
			prog := newProgress(loggerFromContext(ctx))
			order, err := dfs.TopologicalSort(g.DiGraph, dfs.WithCancelContext(ctx))
			if err != nil {
				return err
			}
			prog.done("Sorted nodes", "nodes", len(order))

			p := c.printer()
			return p.emit(map[string]any{"order": order}, func() {
				p.line(strings.Join(order, " "))
			})
		},
	}
}
