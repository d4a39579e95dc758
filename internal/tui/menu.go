// SPDX-License-Identifier: MIT

package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// MenuItem is one selectable entry of a Menu.
type MenuItem interface {
	Title() string
}

// Menu is a stateful selection list. Vertical menus navigate with Up/Down,
// horizontal ones with Left/Right. The cursor clamps at both ends.
type Menu struct {
	items      []MenuItem
	cursor     int
	horizontal bool
}

func NewMenu(items []MenuItem, horizontal bool) *Menu {
	return &Menu{items: items, horizontal: horizontal}
}

// Select moves the cursor to index i if it is in range.
func (m *Menu) Select(i int) {
	if i >= 0 && i < len(m.items) {
		m.cursor = i
	}
}

// Index returns the cursor position.
func (m *Menu) Index() int { return m.cursor }

// Selected returns the entry under the cursor, nil for an empty menu.
func (m *Menu) Selected() MenuItem {
	if len(m.items) == 0 {
		return nil
	}
	return m.items[m.cursor]
}

// Handle processes a navigation key.
func (m *Menu) Handle(msg tea.KeyMsg) {
	prev, next := "up", "down"
	if m.horizontal {
		prev, next = "left", "right"
	}
	switch msg.String() {
	case prev:
		if m.cursor > 0 {
			m.cursor--
		}
	case next:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	}
}

// View renders the entries, one per line, with a "> " cursor prefix.
// An inactive menu is rendered dimmed.
func (m *Menu) View(active bool) string {
	lines := make([]string, len(m.items))
	for i, item := range m.items {
		if i == m.cursor {
			line := "> " + item.Title()
			if active {
				lines[i] = highlightStyle.Render(line)
			} else {
				lines[i] = faintStyle.Render(line)
			}
			continue
		}
		if active {
			lines[i] = "  " + item.Title()
		} else {
			lines[i] = faintStyle.Render("  " + item.Title())
		}
	}
	return strings.Join(lines, "\n")
}
