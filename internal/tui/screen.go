// SPDX-License-Identifier: MIT

// Package tui implements the playground terminal UI on top of bubbletea.
// The root App model owns the main menu and delegates to one active Screen
// at a time; screens advance with the frame clock and render into the
// content panel.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Screen is a mini-game or utility view living in the content panel.
type Screen interface {
	// Init returns the screen's startup command, if any.
	Init() tea.Cmd

	// Update processes a message and returns the (possibly replaced) screen.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// Advance moves time-based state forward by dt.
	Advance(dt time.Duration)

	// View renders the screen into a width x height cell area.
	View(width, height int) string

	// Done reports that the screen wants to return to the main menu.
	Done() bool
}
