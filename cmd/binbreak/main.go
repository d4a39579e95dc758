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

	"github.com/termgames/hackerman/internal/config"
	"github.com/termgames/hackerman/internal/game/binary"
	hlog "github.com/termgames/hackerman/internal/log"
	"github.com/termgames/hackerman/internal/store"
	"github.com/termgames/hackerman/internal/tui"
	"github.com/termgames/hackerman/internal/version"
)

func main() {
	var configFlag string
	root := &cobra.Command{
		Use:           "binbreak [bits]",
		Short:         "Binary numbers game, standalone",
		Long:          "binbreak runs the binary numbers game on its own.\nPass a bit width (4, 8, 12 or 16) to skip the mode selection.",
		Args:          cobra.MaximumNArgs(1),
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var direct *binary.Bits
			if len(args) == 1 {
				bits, err := binary.ParseBits(args[0])
				if err != nil {
					return err
				}
				direct = &bits
			}
			return run(cmd.Context(), configFlag, direct)
		},
	}
	root.Flags().StringVar(&configFlag, "config", "", "path to config file (YAML)")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string, direct *binary.Bits) error {
	if configPath == "" {
		configPath = config.DefaultFilePath()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	var logOutput io.Writer = io.Discard
	if f, err := hlog.FileOutput(cfg.DataDir); err == nil {
		defer func() { _ = f.Close() }()
		logOutput = f
	}
	hlog.Configure(hlog.Config{
		Level:   cfg.LogLevel,
		Output:  logOutput,
		Service: "binbreak",
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

	model := tui.NewBinbreak(direct, cfg.Game.Countdown, cfg.PlayerName, st)
	_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
