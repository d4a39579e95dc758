// SPDX-License-Identifier: MIT

package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/termgames/hackerman/internal/config"
	"github.com/termgames/hackerman/internal/weather"
)

type observationMsg struct {
	obs weather.Observation
	err error
}

// weatherScreen fetches and shows the current conditions for the
// configured location.
type weatherScreen struct {
	client  *weather.Client
	cfg     config.WeatherConfig
	spin    spinner.Model
	loading bool
	obs     weather.Observation
	err     error
}

func newWeatherScreen(cfg config.WeatherConfig) *weatherScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(highlightColor)
	return &weatherScreen{
		client:  weather.New(""),
		cfg:     cfg,
		spin:    sp,
		loading: true,
	}
}

func (s *weatherScreen) Init() tea.Cmd {
	return tea.Batch(s.spin.Tick, s.fetch())
}

func (s *weatherScreen) fetch() tea.Cmd {
	client, cfg := s.client, s.cfg
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		obs, err := client.Current(ctx, cfg.Latitude, cfg.Longitude, cfg.Units)
		return observationMsg{obs: obs, err: err}
	}
}

func (s *weatherScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !s.loading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return s, cmd
	case observationMsg:
		s.loading = false
		s.obs, s.err = msg.obs, msg.err
		return s, nil
	case tea.KeyMsg:
		if msg.String() == "r" && !s.loading {
			s.loading = true
			s.err = nil
			return s, tea.Batch(s.spin.Tick, s.fetch())
		}
	}
	return s, nil
}

func (s *weatherScreen) Advance(time.Duration) {}

func (s *weatherScreen) View(width, height int) string {
	if s.loading {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			s.spin.View()+" fetching weather...")
	}
	if s.err != nil {
		body := lipgloss.JoinVertical(lipgloss.Center,
			lipgloss.NewStyle().Foreground(errColor).Render("weather unavailable"),
			dimStyle.Render(s.err.Error()),
			"",
			dimStyle.Render("press r to retry"),
		)
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
	}

	labels := "Current Temp:\nFeels Like:\nWeather Summary:"
	values := fmt.Sprintf("%.0f%s\n%.0f%s\n%s",
		s.obs.Temperature, s.obs.Unit,
		s.obs.FeelsLike, s.obs.Unit,
		s.obs.Summary,
	)
	row := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(30).Render(labels),
		lipgloss.NewStyle().Width(20).Align(lipgloss.Center).Render(values),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, row)
}

func (s *weatherScreen) Done() bool { return false }
