// SPDX-License-Identifier: MIT

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type testItem string

func (t testItem) Title() string { return string(t) }

func items(titles ...string) []MenuItem {
	out := make([]MenuItem, len(titles))
	for i, t := range titles {
		out[i] = testItem(t)
	}
	return out
}

func TestMenuNavigationClamps(t *testing.T) {
	m := NewMenu(items("a", "b", "c"), false)

	m.Handle(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.Index(), "cursor must clamp at the top")

	m.Handle(tea.KeyMsg{Type: tea.KeyDown})
	m.Handle(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.Index())

	m.Handle(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.Index(), "cursor must clamp at the bottom")

	assert.Equal(t, "c", m.Selected().Title())
}

func TestMenuHorizontalKeys(t *testing.T) {
	m := NewMenu(items("a", "b"), true)

	m.Handle(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 0, m.Index(), "a horizontal menu ignores up/down")

	m.Handle(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.Index())

	m.Handle(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 0, m.Index())
}

func TestMenuSelect(t *testing.T) {
	m := NewMenu(items("a", "b", "c"), false)

	m.Select(2)
	assert.Equal(t, 2, m.Index())

	m.Select(99)
	assert.Equal(t, 2, m.Index(), "out-of-range select is ignored")
	m.Select(-1)
	assert.Equal(t, 2, m.Index())
}

func TestMenuEmpty(t *testing.T) {
	m := NewMenu(nil, false)
	assert.Nil(t, m.Selected())
	m.Handle(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 0, m.Index())
}

func TestMenuViewMarksCursor(t *testing.T) {
	m := NewMenu(items("alpha", "beta"), false)
	m.Select(1)

	view := m.View(true)
	assert.Contains(t, view, "> beta")
	assert.Contains(t, view, "  alpha")
}
