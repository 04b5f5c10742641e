// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlath-aoc/internal/config"
)

// =============================================================================
// Constants
// =============================================================================

const appName = "lvlath-aoc"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	out io.Writer
	cfg config.Config

	configPath string
	format     string
}

// New creates a CLI that prints results to out and logs to logw.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(logw, level),
		out:    out,
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "lvlath-aoc computes shortest distances on mazes and graphs",
		Long:         `lvlath-aoc reads character mazes and edge lists and answers shortest-distance questions with BFS, Dijkstra and Floyd–Warshall.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(cmd); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to a TOML config file")
	root.PersistentFlags().StringVar(&c.format, "format", "", "output format: text or yaml (overrides config)")

	root.AddCommand(c.mazeCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.countCommand())

	return root
}

// loadConfig applies defaults, then the config file, then flags.
func (c *CLI) loadConfig(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = c.format
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	c.cfg = cfg
	c.SetLogLevel(cfg.LogLevel())
	c.Logger.Debug("configuration loaded", "file", c.configPath, "format", cfg.Output.Format)

	return nil
}

// printer returns an output helper bound to the configured format.
func (c *CLI) printer() *printer {
	return newPrinter(c.out, c.cfg.Output.Format)
}

// none renders an absent distance.
func none[V any](v V, ok bool) string {
	if !ok {
		return "none"
	}
	return fmt.Sprint(v)
}
