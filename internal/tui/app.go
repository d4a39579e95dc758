// SPDX-License-Identifier: MIT

package tui

import (
	"fmt"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/termgames/hackerman/internal/config"
	"github.com/termgames/hackerman/internal/game/binary"
	"github.com/termgames/hackerman/internal/log"
	"github.com/termgames/hackerman/internal/store"
)

// frameInterval targets roughly 30 frames per second in realtime mode.
const frameInterval = 33 * time.Millisecond

// fpsWindow is the number of frame timestamps kept for the FPS estimate.
const fpsWindow = 11

// frameMsg carries the tick-chain generation so ticks scheduled before a
// loop-mode toggle can be told apart from the current chain.
type frameMsg struct {
	gen int
	at  time.Time
}

func frameTick(gen int) tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg{gen: gen, at: t} })
}

type configReloadedMsg config.AppConfig

type mainEntry int

const (
	entrySettings mainEntry = iota
	entryWeather
	entryAsciiArt
	entryBinaryNumbers
	entryDinoJump
	entryExit
)

func (e mainEntry) Title() string {
	switch e {
	case entrySettings:
		return "Settings"
	case entryWeather:
		return "Weather"
	case entryAsciiArt:
		return "Ascii Art"
	case entryBinaryNumbers:
		return "Binary Numbers"
	case entryDinoJump:
		return "Dino Jump"
	default:
		return "Exit"
	}
}

// App is the root model of the playground.
type App struct {
	holder  *config.Holder
	cfg     config.AppConfig
	reloads <-chan config.AppConfig
	st      *store.Store
	logger  zerolog.Logger

	menu   *Menu
	screen Screen

	width, height int
	debug         bool
	realtime      bool
	frameGen      int
	frames        uint64
	frameTimes    []time.Time
	lastFrame     time.Time
}

// NewApp builds the root model. st may be nil when the score database is
// unavailable; games then simply skip recording.
func NewApp(holder *config.Holder, st *store.Store) *App {
	cfg := holder.Get()
	items := []MenuItem{
		entrySettings, entryWeather, entryAsciiArt,
		entryBinaryNumbers, entryDinoJump, entryExit,
	}
	return &App{
		holder:    holder,
		cfg:       cfg,
		reloads:   holder.Subscribe(),
		st:        st,
		logger:    log.WithComponent("tui"),
		menu:      NewMenu(items, false),
		debug:     cfg.DebugOverlay,
		realtime:  cfg.LoopMode == config.LoopRealtime,
		lastFrame: time.Now(),
	}
}

func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.waitForReload()}
	if a.realtime {
		cmds = append(cmds, frameTick(a.frameGen))
	}
	return tea.Batch(cmds...)
}

func (a *App) waitForReload() tea.Cmd {
	ch := a.reloads
	return func() tea.Msg {
		cfg, ok := <-ch
		if !ok {
			return nil
		}
		return configReloadedMsg(cfg)
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil

	case frameMsg:
		if !a.realtime || msg.gen != a.frameGen {
			// stale tick from before the loop mode was toggled
			return a, nil
		}
		now := msg.at
		dt := now.Sub(a.lastFrame)
		a.lastFrame = now
		a.step(dt)
		return a, frameTick(a.frameGen)

	case configReloadedMsg:
		a.cfg = config.AppConfig(msg)
		a.logger.Info().Str("event", "tui.config_applied").Msg("applying reloaded configuration")
		return a, a.waitForReload()

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	if a.screen != nil {
		scr, cmd := a.screen.Update(msg)
		a.screen = scr
		return a, cmd
	}
	return a, nil
}

// step advances the frame clock and the active screen.
func (a *App) step(dt time.Duration) {
	a.frames++
	a.frameTimes = append(a.frameTimes, time.Now())
	if len(a.frameTimes) > fpsWindow {
		a.frameTimes = a.frameTimes[1:]
	}
	if a.screen != nil {
		a.screen.Advance(dt)
		if a.screen.Done() {
			a.screen = nil
		}
	}
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit
	case " ":
		a.realtime = !a.realtime
		a.frameGen++
		if a.realtime {
			a.lastFrame = time.Now()
			return a, frameTick(a.frameGen)
		}
		return a, nil
	case "f4":
		a.debug = !a.debug
		return a, nil
	case "esc":
		a.screen = nil
		return a, nil
	}

	if !a.realtime {
		// performance mode advances once per input, capped so the first
		// key after an idle stretch does not drain game countdowns
		dt := time.Since(a.lastFrame)
		if dt > 8*frameInterval {
			dt = 8 * frameInterval
		}
		a.lastFrame = time.Now()
		a.step(dt)
	}

	if a.screen != nil {
		scr, cmd := a.screen.Update(msg)
		a.screen = scr
		if a.screen != nil && a.screen.Done() {
			a.screen = nil
		}
		return a, cmd
	}

	a.menu.Handle(msg)
	if msg.String() != "enter" {
		return a, nil
	}
	entry, ok := a.menu.Selected().(mainEntry)
	if !ok {
		return a, nil
	}
	if entry == entryExit {
		return a, tea.Quit
	}
	if scr := a.newScreen(entry); scr != nil {
		a.screen = scr
		return a, scr.Init()
	}
	return a, nil
}

func (a *App) newScreen(entry mainEntry) Screen {
	switch entry {
	case entrySettings:
		// save to the watched file so the holder picks the change up
		path := a.holder.Path()
		if path == "" {
			path = filepath.Join(a.cfg.DataDir, "config.yaml")
		}
		return newSettingsScreen(a.cfg, a.st, path)
	case entryWeather:
		return newWeatherScreen(a.cfg.Weather)
	case entryAsciiArt:
		return newAsciiArtScreen()
	case entryBinaryNumbers:
		return newBinaryScreen(
			binary.Bits(a.cfg.Game.Bits),
			a.cfg.Game.Countdown,
			a.st,
			a.cfg.PlayerName,
			nil,
		)
	}
	// Dino Jump is not implemented yet
	return nil
}

func (a *App) fps() float64 {
	if len(a.frameTimes) < 2 {
		return 0
	}
	dur := a.frameTimes[len(a.frameTimes)-1].Sub(a.frameTimes[0])
	avg := dur.Seconds() / float64(len(a.frameTimes)-1)
	if avg <= 0 {
		return 0
	}
	return 1 / avg
}

func (a *App) View() string {
	if a.width < 4 || a.height < 4 {
		return ""
	}

	topH, bottomH := 0, 0
	if a.debug {
		topH, bottomH = 3, 3
	}
	midH := a.height - topH - bottomH
	if midH < 4 {
		topH, bottomH = 0, 0
		midH = a.height
	}

	parts := make([]string, 0, 3)
	if topH > 0 {
		mode := "Performance"
		if a.realtime {
			mode = "Real Time"
		}
		parts = append(parts, box("Debug", fmt.Sprintf("Loop Mode: %s, FPS: %.0f", mode, a.fps()), a.width, topH, false))
	}

	menuW := 28
	if menuW > a.width/2 {
		menuW = a.width / 2
	}
	contentW := a.width - menuW

	menuActive := a.screen == nil
	menuBox := box("Main Menu", a.menu.View(menuActive), menuW, midH, !menuActive)

	var content string
	if a.screen != nil {
		content = a.screen.View(contentW-2, midH-2)
	} else if sel := a.menu.Selected(); sel != nil {
		content = sel.Title()
	} else {
		content = "No game selected."
	}
	contentBox := box("", content, contentW, midH, menuActive)

	parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top, menuBox, contentBox))

	if bottomH > 0 {
		help := "<F4> Debug | <Space> Pause | <Esc> Back | <Ctrl+C> Quit"
		parts = append(parts, box("Controls", help, a.width, bottomH, false))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
