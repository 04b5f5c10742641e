// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlath-aoc/bfs"
	"github.com/katalvlaran/lvlath-aoc/dijkstra"
	"github.com/katalvlaran/lvlath-aoc/maze"
)

// errEngineMismatch reports that the grid search and the generic engine
// disagree on a maze.
var errEngineMismatch = errors.New("maze: grid search and graph engine disagree")

type mazeOptions struct {
	check    bool
	breaches bool
	regions  bool
	turn     int64
	watch    bool
}

// mazeResult is what the maze command prints.
type mazeResult struct {
	File     string    `yaml:"file"`
	Width    int       `yaml:"width"`
	Height   int       `yaml:"height"`
	Start    maze.Cell `yaml:"start"`
	End      maze.Cell `yaml:"end"`
	Distance *int      `yaml:"distance"`
	Checked  bool      `yaml:"checked,omitempty"`
	Breaches *int      `yaml:"breaches,omitempty"`
	Regions  *int      `yaml:"regions,omitempty"`
	Score    *int64    `yaml:"score,omitempty"`
}

// mazeCommand creates the maze command.
func (c *CLI) mazeCommand() *cobra.Command {
	var opts mazeOptions

	cmd := &cobra.Command{
		Use:   "maze <file>",
		Short: "Shortest walk from the start to the end marker of a character maze",
		Long: `Reads a rectangular grid with one start and one end marker and prints the
number of single-cell moves on the shortest walk between them, or "none".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runMaze(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.check, "check", false, "verify the result against the generic graph engine")
	cmd.Flags().BoolVar(&opts.breaches, "breaches", false, "report the fewest walls a route must cross")
	cmd.Flags().BoolVar(&opts.regions, "regions", false, "report the number of separate open regions")
	cmd.Flags().Int64Var(&opts.turn, "turn", 0, "score oriented walks: each 90° turn costs this much, each step 1")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "re-solve whenever the file changes")

	return cmd
}

func (c *CLI) runMaze(ctx context.Context, path string, opts mazeOptions) error {
	if opts.turn < 0 {
		return fmt.Errorf("--turn must be non-negative, got %d", opts.turn)
	}
	logger := loggerFromContext(ctx)

	solve := func() error {
		l := logger.With("run", uuid.NewString())
		res, err := c.solveMaze(withLogger(ctx, l), path, opts)
		if err != nil {
			return err
		}
		return c.printMaze(res, opts)
	}

	if err := solve(); err != nil {
		return err
	}
	if !opts.watch {
		return nil
	}

	fw, err := newFileWatcher(path)
	if err != nil {
		return err
	}
	logger.Info("Watching for changes", "file", path)

	return fw.run(ctx, func() {
		if err := solve(); err != nil {
			logger.Error("Solve failed", "file", path, "err", err)
		}
	})
}

// solveMaze parses the file and runs every requested computation.
func (c *CLI) solveMaze(ctx context.Context, path string, opts mazeOptions) (*mazeResult, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read maze: %w", err)
	}
	m, err := maze.ParseString(string(data), c.cfg.MazeOptions()...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("Parsed maze", "width", m.Width, "height", m.Height, "start", m.Start, "end", m.End)

	res := &mazeResult{
		File:   filepath.Base(path),
		Width:  m.Width,
		Height: m.Height,
		Start:  m.Start,
		End:    m.End,
	}
	d, ok := m.Distance()
	if ok {
		res.Distance = &d
	}

	if opts.check {
		gd, gok := bfs.Distance(m.ToGraph(), m.Start, m.End)
		if gok != ok || gd != d {
			return nil, fmt.Errorf("%w: grid %s, graph %s", errEngineMismatch, none(d, ok), none(gd, gok))
		}
		res.Checked = true
	}
	if opts.breaches {
		b := m.Breaches()
		res.Breaches = &b
	}
	if opts.regions {
		n := len(m.Regions())
		res.Regions = &n
	}
	if opts.turn > 0 {
		g, w := maze.OrientedGraph(m, opts.turn, 1)
		logger.Debug("Built oriented graph", "nodes", g.Len(), "edges", len(w))
		ds, err := dijkstra.DistanceWith(g, m.StartPose(), m.EndPoses(), w)
		if err != nil {
			return nil, err
		}
		for _, v := range ds {
			if res.Score == nil || v < *res.Score {
				res.Score = &v
			}
		}
	}

	prog.done("Solved maze", "file", res.File)
	return res, nil
}

func (c *CLI) printMaze(res *mazeResult, opts mazeOptions) error {
	p := c.printer()
	return p.emit(res, func() {
		p.keyValue("distance", deref(res.Distance))
		if res.Breaches != nil {
			p.keyValue("breaches", *res.Breaches)
		}
		if res.Regions != nil {
			p.keyValue("regions", *res.Regions)
		}
		if opts.turn > 0 {
			p.keyValue("score", deref(res.Score))
		}
		if res.Checked {
			p.successf("graph engine agrees")
		}
	})
}

// deref renders a possibly absent value, "none" when nil.
func deref[V any](v *V) string {
	if v == nil {
		return none(*new(V), false)
	}
	return none(*v, true)
}
