// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/termgames/hackerman/internal/config"
	hlog "github.com/termgames/hackerman/internal/log"
	"github.com/termgames/hackerman/internal/store"
	"github.com/termgames/hackerman/internal/tui"
	"github.com/termgames/hackerman/internal/version"
)

var configFlag string

func main() {
	root := &cobra.Command{
		Use:           "hackerman",
		Short:         "Terminal mini-games playground",
		Long:          "hackerman is a keyboard-driven terminal playground with mini-games:\nbinary numbers, weather, ascii art and more.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file (YAML)")
	root.AddCommand(newVersionCmd(), newConfigCmd(), newScoresCmd())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadConfig resolves and validates the configuration. It returns the
// effective config file path ("" when running on defaults and env only).
func loadConfig() (config.AppConfig, string, error) {
	path := configFlag
	if path == "" {
		path = config.DefaultFilePath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.AppConfig{}, "", err
	}
	if err := config.Validate(cfg); err != nil {
		return config.AppConfig{}, "", err
	}
	return cfg, path, nil
}

func runTUI(ctx context.Context) error {
	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.DataDir, 0o750); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	// On a first run there is no config file yet; watch the default target
	// anyway so a save from the settings screen is hot-applied.
	if path == "" {
		path = defaultConfigTarget(cfg)
	}

	// The TUI owns the terminal, so logs go to a file in the data dir.
	var logOutput io.Writer = io.Discard
	if f, err := hlog.FileOutput(cfg.DataDir); err == nil {
		defer func() { _ = f.Close() }()
		logOutput = f
	}
	hlog.Configure(hlog.Config{
		Level:   cfg.LogLevel,
		Output:  logOutput,
		Service: "hackerman",
		Version: version.Version,
	})
	logger := hlog.WithComponent("main")

	var st *store.Store
	if s, err := store.Open(filepath.Join(cfg.DataDir, "scores.db")); err != nil {
		logger.Warn().Err(err).Msg("score database unavailable, results will not be recorded")
	} else {
		st = s
		defer func() { _ = st.Close() }()
	}

	holder := config.NewHolder(cfg, func() (config.AppConfig, error) {
		return config.Load(path)
	}, path)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	prog := tea.NewProgram(tui.NewApp(holder, st), tea.WithAltScreen(), tea.WithContext(ctx))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return holder.Watch(ctx)
	})
	g.Go(func() error {
		defer cancel()
		_, err := prog.Run()
		return err
	})

	if err := g.Wait(); err != nil && !errors.Is(err, tea.ErrProgramKilled) && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info().Msg("shutdown complete")
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(*cobra.Command, []string) {
			fmt.Printf("%s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
