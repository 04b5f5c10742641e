// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlath-aoc/counter"
)

// countCommand creates the count command.
func (c *CLI) countCommand() *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "count <file>",
		Short: "Frequency table of the non-blank lines of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := readLines(args[0])
			if err != nil {
				return err
			}
			ranked := counter.Rank(lines)
			loggerFromContext(cmd.Context()).Debug("Counted lines",
				"total", len(lines), "distinct", len(ranked))
			if top > 0 && top < len(ranked) {
				ranked = ranked[:top]
			}

			type row struct {
				Item  string `yaml:"item"`
				Count int    `yaml:"count"`
			}
			rows := make([]row, len(ranked))
			for i, e := range ranked {
				rows[i] = row{Item: e.Item, Count: e.Count}
			}
			p := c.printer()
			return p.emit(rows, func() {
				for _, r := range rows {
					p.line(fmt.Sprintf("%6d  %s", r.Count, r.Item))
				}
			})
		},
	}
	cmd.Flags().IntVarP(&top, "top", "n", 0, "only print the n most frequent lines")

	return cmd
}

// readLines returns the trimmed non-blank lines of path.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if l := strings.TrimSpace(sc.Text()); l != "" {
			out = append(out, l)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return out, nil
}
