// SPDX-License-Identifier: MIT

package tui

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/termgames/hackerman/internal/game/binary"
	"github.com/termgames/hackerman/internal/log"
	"github.com/termgames/hackerman/internal/store"
)

// gameColumnWidth is the fixed width of the centered game column.
const gameColumnWidth = 65

type resultRecordedMsg struct{ err error }

// binaryScreen renders one binary-numbers session: puzzle after puzzle
// until the player leaves with Esc.
type binaryScreen struct {
	player    string
	bits      binary.Bits
	countdown time.Duration
	puzzle    *binary.Puzzle
	bar       progress.Model
	st        *store.Store
	logger    zerolog.Logger
	rng       *rand.Rand
	recorded  bool
	done      bool
}

func newBinaryScreen(bits binary.Bits, countdown time.Duration, st *store.Store, player string, rng *rand.Rand) *binaryScreen {
	bar := progress.New(progress.WithSolidFill("10"))
	bar.ShowPercentage = false
	bar.Width = gameColumnWidth - 4
	return &binaryScreen{
		player:    player,
		bits:      bits,
		countdown: countdown,
		puzzle:    binary.NewPuzzle(bits, countdown, rng),
		bar:       bar,
		st:        st,
		logger:    log.WithComponent("binary-numbers"),
		rng:       rng,
	}
}

func (s *binaryScreen) Init() tea.Cmd { return nil }

func (s *binaryScreen) Advance(dt time.Duration) {
	s.puzzle.Tick(dt)
	s.maybeRecord()
}

func (s *binaryScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if key.String() == "esc" {
		s.done = true
		return s, nil
	}

	if s.puzzle.Outcome() == binary.Pending {
		switch key.String() {
		case "right":
			s.puzzle.Next()
		case "left":
			s.puzzle.Prev()
		case "enter":
			s.puzzle.Guess()
			s.maybeRecord()
		}
		return s, nil
	}

	if key.String() == "enter" {
		s.puzzle = binary.NewPuzzle(s.bits, s.countdown, s.rng)
		s.recorded = false
	}
	return s, nil
}

// maybeRecord persists the outcome exactly once per puzzle. A nil store
// (database unavailable) silently skips recording.
func (s *binaryScreen) maybeRecord() {
	if s.recorded || s.puzzle.Outcome() == binary.Pending {
		return
	}
	s.recorded = true
	if s.st == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	err := s.st.Record(ctx, store.Result{
		Player:   s.player,
		Game:     "binary-numbers",
		Bits:     int(s.bits),
		Outcome:  s.puzzle.Outcome().String(),
		TimeLeft: s.puzzle.TimeLeft(),
	})
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to record result")
	}
}

func (s *binaryScreen) Done() bool { return s.done }

func (s *binaryScreen) View(width, height int) string {
	colW := gameColumnWidth
	if colW > width {
		colW = width
	}

	center := lipgloss.NewStyle().Width(colW - 2).Align(lipgloss.Center)

	numberBox := box("", center.Render("\n"+s.puzzle.TargetBinary()), colW, 5, false)
	suggestions := s.viewSuggestions(colW)
	gauge := s.viewCountdown(colW)
	result := s.viewResult(colW)

	column := lipgloss.JoinVertical(lipgloss.Left, numberBox, suggestions, "", gauge, result)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, column)
}

func (s *binaryScreen) viewSuggestions(colW int) string {
	values := s.puzzle.Suggestions()
	cellW := colW / len(values)
	if cellW < 6 {
		cellW = 6
	}
	showCorrect := s.puzzle.Outcome() != binary.Pending

	cells := make([]string, len(values))
	for i, v := range values {
		style := lipgloss.NewStyle().Width(cellW - 2).Align(lipgloss.Center)
		if i == s.puzzle.SelectedIndex() {
			style = style.Background(dimColor)
		}
		if showCorrect && s.puzzle.IsCorrect(v) {
			style = style.Foreground(brightOkColor)
		}
		cells[i] = box("", style.Render(fmt.Sprintf("%d", v)), cellW, 3, false)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (s *binaryScreen) viewCountdown(colW int) string {
	label := fmt.Sprintf("%.2f seconds", s.puzzle.TimeLeft())
	body := lipgloss.JoinVertical(lipgloss.Left,
		s.bar.ViewAs(s.puzzle.TimeRatio()),
		lipgloss.NewStyle().Width(colW-2).Align(lipgloss.Center).Render(label),
	)
	return box("Time Remaining", body, colW, 4, false)
}

func (s *binaryScreen) viewResult(colW int) string {
	var lines []string
	switch s.puzzle.Outcome() {
	case binary.Correct:
		lines = append(lines, lipgloss.NewStyle().Foreground(okColor).Render("Correct Guess!"))
	case binary.Incorrect:
		lines = append(lines, lipgloss.NewStyle().Foreground(errColor).Render("Incorrect Guess!"))
	case binary.TimedOut:
		lines = append(lines, lipgloss.NewStyle().Foreground(warnColor).Render("Time's Up!"))
	default:
		return box("Result", "", colW, 6, false)
	}
	lines = append(lines,
		"",
		"Press "+highlightStyle.Render("Enter")+" to play again or "+highlightStyle.Render("Esc")+" to exit.",
	)
	body := lipgloss.NewStyle().Width(colW - 2).Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
	return box("Result", body, colW, 6, false)
}
