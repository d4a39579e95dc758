// SPDX-License-Identifier: MIT

package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termgames/hackerman/internal/game/binary"
)

func TestBoxDimensions(t *testing.T) {
	out := box("Title", "hello", 20, 5, false)
	lines := strings.Split(out, "\n")

	assert.Len(t, lines, 5)
	for i, line := range lines {
		assert.Equal(t, 20, lipgloss.Width(line), "line %d", i)
	}
	assert.Contains(t, lines[0], "Title")
}

func TestBoxTooSmall(t *testing.T) {
	assert.Empty(t, box("t", "c", 1, 5, false))
	assert.Empty(t, box("t", "c", 5, 1, false))
}

func TestBinaryScreenEscLeaves(t *testing.T) {
	s := newBinaryScreen(binary.Eight, time.Second, nil, "p", nil)
	require.False(t, s.Done())

	scr, _ := s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, scr.Done())
}

func TestBinaryScreenGuessFlow(t *testing.T) {
	s := newBinaryScreen(binary.Eight, time.Second, nil, "p", nil)

	// steer onto the correct answer and lock it in
	for s.puzzle.Selected() != s.puzzle.Target() {
		s.Update(tea.KeyMsg{Type: tea.KeyRight})
	}
	s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, binary.Correct, s.puzzle.Outcome())
	assert.True(t, s.recorded, "outcome is marked recorded even without a store")

	// enter starts a fresh puzzle
	first := s.puzzle
	s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotSame(t, first, s.puzzle)
	assert.Equal(t, binary.Pending, s.puzzle.Outcome())
	assert.False(t, s.recorded)
}

func TestBinaryScreenTimeout(t *testing.T) {
	s := newBinaryScreen(binary.Four, 100*time.Millisecond, nil, "p", nil)
	s.Advance(time.Second)
	assert.Equal(t, binary.TimedOut, s.puzzle.Outcome())
	assert.False(t, s.Done(), "timeout shows the result, it does not leave the game")
}

func TestBinaryScreenViewShowsResult(t *testing.T) {
	s := newBinaryScreen(binary.Four, time.Second, nil, "p", nil)
	s.Advance(time.Minute)

	view := s.View(80, 24)
	assert.Contains(t, view, "Time's Up!")
	assert.Contains(t, view, "play again")
}

func TestBinbreakDirectStart(t *testing.T) {
	bits := binary.Sixteen
	m := NewBinbreak(&bits, time.Second, "p", nil)
	require.NotNil(t, m.game)
	assert.Equal(t, bits, m.game.bits)
}

func TestBinbreakMenuStartsGame(t *testing.T) {
	m := NewBinbreak(nil, time.Second, "p", nil)
	require.Nil(t, m.game)
	assert.Equal(t, 1, m.menu.Index(), "normal difficulty is preselected")

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = model.(*BinbreakModel)
	require.NotNil(t, m.game)
	assert.Equal(t, binary.Eight, m.game.bits)

	// leaving the game returns to the mode selection
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = model.(*BinbreakModel)
	assert.Nil(t, m.game)
}

func TestBinbreakEscAtMenuQuits(t *testing.T) {
	m := NewBinbreak(nil, time.Second, "p", nil)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, quits(cmd))
}
