// SPDX-License-Identifier: MIT

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	highlightColor = lipgloss.Color("14") // light cyan
	dimColor       = lipgloss.Color("8")  // dark gray
	okColor        = lipgloss.Color("2")
	brightOkColor  = lipgloss.Color("10")
	errColor       = lipgloss.Color("1")
	warnColor      = lipgloss.Color("3")

	highlightStyle = lipgloss.NewStyle().Foreground(highlightColor).Bold(true)
	dimStyle       = lipgloss.NewStyle().Foreground(dimColor)
	faintStyle     = lipgloss.NewStyle().Faint(true)
)

// box draws a bordered panel of exactly w x h cells with an optional title
// centered in the top border. lipgloss borders have no title support, so
// the top line is drawn by hand.
func box(title, content string, w, h int, dimmed bool) string {
	if w < 2 || h < 2 {
		return ""
	}

	titleRunes := []rune(title)
	if len(titleRunes) > w-2 {
		title = string(titleRunes[:w-2])
	}
	fill := w - 2 - lipgloss.Width(title)
	left := fill / 2
	top := "┌" + strings.Repeat("─", left) + title + strings.Repeat("─", fill-left) + "┐"

	bodyStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderTop(false).
		Width(w - 2).
		Height(h - 2).
		MaxHeight(h - 1)
	if dimmed {
		top = dimStyle.Render(top)
		bodyStyle = bodyStyle.BorderForeground(dimColor)
	}

	return top + "\n" + bodyStyle.Render(content)
}
