// SPDX-License-Identifier: MIT

package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/termgames/hackerman/internal/game/binary"
	"github.com/termgames/hackerman/internal/store"
)

type difficultyItem struct {
	bits binary.Bits
}

func (d difficultyItem) Title() string { return d.bits.Label() }

// BinbreakModel is the standalone binary-numbers binary: a difficulty
// start menu and the game itself. Leaving a game returns to the start
// menu instead of exiting.
type BinbreakModel struct {
	menu      *Menu
	game      *binaryScreen
	countdown time.Duration
	player    string
	st        *store.Store

	width, height int
	lastFrame     time.Time
}

// NewBinbreak builds the model. A non-nil direct difficulty skips the
// start menu, matching the bits CLI argument.
func NewBinbreak(direct *binary.Bits, countdown time.Duration, player string, st *store.Store) *BinbreakModel {
	items := []MenuItem{
		difficultyItem{binary.Four},
		difficultyItem{binary.Eight},
		difficultyItem{binary.Twelve},
		difficultyItem{binary.Sixteen},
	}
	menu := NewMenu(items, false)
	menu.Select(1) // default to normal

	m := &BinbreakModel{
		menu:      menu,
		countdown: countdown,
		player:    player,
		st:        st,
		lastFrame: time.Now(),
	}
	if direct != nil {
		m.game = newBinaryScreen(*direct, countdown, st, player, nil)
	}
	return m
}

func (m *BinbreakModel) Init() tea.Cmd { return frameTick(0) }

func (m *BinbreakModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case frameMsg:
		now := msg.at
		dt := now.Sub(m.lastFrame)
		m.lastFrame = now
		if m.game != nil {
			m.game.Advance(dt)
			if m.game.Done() {
				m.game = nil
			}
		}
		return m, frameTick(0)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.game != nil {
			scr, cmd := m.game.Update(msg)
			if game, ok := scr.(*binaryScreen); ok {
				m.game = game
			}
			if m.game != nil && m.game.Done() {
				m.game = nil
			}
			return m, cmd
		}
		switch msg.String() {
		case "esc":
			return m, tea.Quit
		case "enter":
			if item, ok := m.menu.Selected().(difficultyItem); ok {
				m.game = newBinaryScreen(item.bits, m.countdown, m.st, m.player, nil)
				return m, m.game.Init()
			}
		default:
			m.menu.Handle(msg)
		}
		return m, nil
	}

	if m.game != nil {
		scr, cmd := m.game.Update(msg)
		if game, ok := scr.(*binaryScreen); ok {
			m.game = game
		}
		return m, cmd
	}
	return m, nil
}

func (m *BinbreakModel) View() string {
	if m.width < 4 || m.height < 4 {
		return ""
	}
	if m.game != nil {
		return m.game.View(m.width, m.height)
	}

	titleH, infoH := 3, 4
	listH := m.height - titleH - infoH
	if listH < 6 {
		listH = 6
	}

	center := lipgloss.NewStyle().Width(m.width - 2).Align(lipgloss.Center)
	title := box("Start", center.Render("BinBreak - Select Mode"), m.width, titleH, false)
	modes := box("Modes", m.menu.View(true), m.width, listH, false)
	info := box("Controls", center.Render("Use Up/Down to select, Enter to start, Esc to exit"), m.width, infoH, false)

	return lipgloss.JoinVertical(lipgloss.Left, title, modes, info)
}
