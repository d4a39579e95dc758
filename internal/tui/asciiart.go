// SPDX-License-Identifier: MIT

package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/termgames/hackerman/internal/art"
)

// asciiArtScreen shows a colored art piece. The timer loops so future
// frames can animate; the campfire currently has a single frame.
type asciiArtScreen struct {
	cells art.Cells
	timer float64
}

func newAsciiArtScreen() *asciiArtScreen {
	return &asciiArtScreen{cells: art.Campfire()}
}

func (s *asciiArtScreen) Init() tea.Cmd { return nil }

func (s *asciiArtScreen) Update(tea.Msg) (Screen, tea.Cmd) { return s, nil }

func (s *asciiArtScreen) Advance(dt time.Duration) {
	s.timer += dt.Seconds()
	if s.timer > 10 {
		s.timer -= 10
	}
}

func (s *asciiArtScreen) View(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, s.cells.Render())
}

func (s *asciiArtScreen) Done() bool { return false }
