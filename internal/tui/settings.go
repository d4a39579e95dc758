// SPDX-License-Identifier: MIT

package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/termgames/hackerman/internal/art"
	"github.com/termgames/hackerman/internal/config"
	"github.com/termgames/hackerman/internal/store"
)

var bitChoices = []int{4, 8, 12, 16}

type settingsSavedMsg struct{ err error }

type settingsTallyMsg struct {
	tally map[string]int
	err   error
}

// settingsScreen shows the SETTINGS banner, lets the player tweak a few
// defaults and saves them back to the config file.
type settingsScreen struct {
	cfg    config.AppConfig
	path   string
	st     *store.Store
	tally  map[string]int
	status string
}

func newSettingsScreen(cfg config.AppConfig, st *store.Store, path string) *settingsScreen {
	return &settingsScreen{cfg: cfg, path: path, st: st}
}

func (s *settingsScreen) Init() tea.Cmd {
	if s.st == nil {
		return nil
	}
	st := s.st
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		tally, err := st.Tally(ctx)
		return settingsTallyMsg{tally: tally, err: err}
	}
}

func (s *settingsScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case settingsTallyMsg:
		if msg.err == nil {
			s.tally = msg.tally
		}
		return s, nil
	case settingsSavedMsg:
		if msg.err != nil {
			s.status = "save failed: " + msg.err.Error()
		} else {
			s.status = "saved to " + s.path
		}
		return s, nil
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *settingsScreen) handleKey(msg tea.KeyMsg) (Screen, tea.Cmd) {
	switch msg.String() {
	case "left":
		s.cfg.Game.Bits = bitChoices[(s.bitIndex()+len(bitChoices)-1)%len(bitChoices)]
		s.status = ""
	case "right":
		s.cfg.Game.Bits = bitChoices[(s.bitIndex()+1)%len(bitChoices)]
		s.status = ""
	case "t":
		if s.cfg.LoopMode == config.LoopRealtime {
			s.cfg.LoopMode = config.LoopPerformance
		} else {
			s.cfg.LoopMode = config.LoopRealtime
		}
		s.status = ""
	case "s":
		cfg, path := s.cfg, s.path
		return s, func() tea.Msg {
			return settingsSavedMsg{err: config.Save(cfg, path)}
		}
	}
	return s, nil
}

func (s *settingsScreen) bitIndex() int {
	for i, b := range bitChoices {
		if b == s.cfg.Game.Bits {
			return i
		}
	}
	return 1
}

func (s *settingsScreen) Advance(time.Duration) {}

func (s *settingsScreen) View(width, height int) string {
	banner := art.SettingsBanner().Render()

	lines := []string{
		fmt.Sprintf("Player          %s", s.cfg.PlayerName),
		fmt.Sprintf("Loop mode       %s", s.cfg.LoopMode),
		fmt.Sprintf("Game bits       %d", s.cfg.Game.Bits),
		fmt.Sprintf("Countdown       %s", s.cfg.Game.Countdown),
		fmt.Sprintf("Location        %.2f, %.2f (%s)", s.cfg.Weather.Latitude, s.cfg.Weather.Longitude, s.cfg.Weather.Units),
	}
	if s.tally != nil {
		lines = append(lines, "", fmt.Sprintf("Rounds played   %d correct, %d incorrect, %d timed out",
			s.tally["correct"], s.tally["incorrect"], s.tally["timeout"]))
	}
	if s.status != "" {
		lines = append(lines, "", s.status)
	}
	lines = append(lines, "", dimStyle.Render("←/→ bits · t loop mode · s save"))

	body := lipgloss.JoinVertical(lipgloss.Center,
		banner,
		"",
		lipgloss.JoinVertical(lipgloss.Left, lines...),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (s *settingsScreen) Done() bool { return false }
