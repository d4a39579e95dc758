// SPDX-License-Identifier: MIT

// Package art renders multi-line ASCII/Unicode art with per-cell coloring.
// A piece is described by two parallel strings: the art itself and a color
// key where each rune selects the foreground color of the cell at the same
// position.
package art

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette maps color-key runes to terminal colors.
type Palette map[rune]lipgloss.TerminalColor

type cell struct {
	r     rune
	color lipgloss.TerminalColor
}

// Cells is a rectangular grid of colored runes.
type Cells struct {
	rows  [][]cell
	width int
}

// New builds a grid from an art string and a parallel color-key string.
// Cells whose key rune is missing from the palette get the fallback color.
// Both strings are interpreted line by line; the key may be shorter than
// the art, in which case the uncovered cells use the fallback as well.
func New(artText, colorKey string, palette Palette, fallback lipgloss.TerminalColor) Cells {
	artLines := strings.Split(artText, "\n")
	keyLines := strings.Split(colorKey, "\n")

	rows := make([][]cell, len(artLines))
	width := 0
	for i, line := range artLines {
		runes := []rune(line)
		var key []rune
		if i < len(keyLines) {
			key = []rune(keyLines[i])
		}
		row := make([]cell, len(runes))
		for j, r := range runes {
			color := fallback
			if j < len(key) {
				if c, ok := palette[key[j]]; ok {
					color = c
				}
			}
			row[j] = cell{r: r, color: color}
		}
		if len(row) > width {
			width = len(row)
		}
		rows[i] = row
	}
	return Cells{rows: rows, width: width}
}

// Width returns the width of the widest line, in cells.
func (c Cells) Width() int { return c.width }

// Height returns the number of lines.
func (c Cells) Height() int { return len(c.rows) }

// Render returns the grid as a styled multi-line string. Runs of adjacent
// cells sharing a color are styled together to keep the output compact.
func (c Cells) Render() string {
	lines := make([]string, len(c.rows))
	for i, row := range c.rows {
		var b strings.Builder
		for j := 0; j < len(row); {
			k := j
			for k < len(row) && row[k].color == row[j].color {
				k++
			}
			var run strings.Builder
			for _, cl := range row[j:k] {
				run.WriteRune(cl.r)
			}
			text := run.String()
			if _, plain := row[j].color.(lipgloss.NoColor); plain || strings.TrimSpace(text) == "" {
				b.WriteString(text)
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(row[j].color).Render(text))
			}
			j = k
		}
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}
