// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlath-aoc/internal/config"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - values
	colorGreen = lipgloss.Color("35")  // Green - success
	colorGray  = lipgloss.Color("245") // Gray - keys
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

const (
	iconSuccess = "✓"
	iconArrow   = "→"
)

// =============================================================================
// Printer
// =============================================================================

// printer writes command results either as styled text or as one YAML
// document. Styles are bound to the destination writer, so colors are only
// emitted when it is a terminal.
type printer struct {
	w      io.Writer
	format string

	key     lipgloss.Style
	value   lipgloss.Style
	dim     lipgloss.Style
	success lipgloss.Style
}

func newPrinter(w io.Writer, format string) *printer {
	r := lipgloss.NewRenderer(w)
	return &printer{
		w:       w,
		format:  format,
		key:     r.NewStyle().Foreground(colorGray),
		value:   r.NewStyle().Foreground(colorCyan),
		dim:     r.NewStyle().Foreground(colorDim),
		success: r.NewStyle().Foreground(colorGreen),
	}
}

// emit prints v as YAML in yaml mode and calls text otherwise.
func (p *printer) emit(v any, text func()) error {
	if p.format == config.FormatYAML {
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}
	text()
	return nil
}

// keyValue prints a labeled value.
func (p *printer) keyValue(key string, value any) {
	fmt.Fprintln(p.w, p.key.Render(key+":")+" "+p.value.Render(fmt.Sprint(value)))
}

// route prints "from → to: value".
func (p *printer) route(from, to, value string) {
	fmt.Fprintln(p.w, from+" "+p.dim.Render(iconArrow)+" "+to+": "+p.value.Render(value))
}

// successf prints a check-marked message.
func (p *printer) successf(format string, args ...any) {
	fmt.Fprintln(p.w, p.success.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

// table prints a borderless grid: gray headers and first column, cyan cells.
func (p *printer) table(headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow || col == 0 {
				return p.key.Padding(0, 1)
			}
			return p.value.Padding(0, 1).Align(lipgloss.Right)
		})
	fmt.Fprintln(p.w, t.Render())
}

// line prints an unstyled line.
func (p *printer) line(s string) {
	fmt.Fprintln(p.w, s)
}
