// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/termgames/hackerman/internal/log"
)

// Holder provides thread-safe access to the configuration and supports hot
// reloading from file. Reloads are atomic: when the new configuration fails
// to load or validate, the old one stays in place.
type Holder struct {
	mu      sync.RWMutex
	current AppConfig

	load   func() (AppConfig, error)
	path   string
	logger zerolog.Logger

	subMu sync.Mutex
	subs  []chan AppConfig
}

// NewHolder creates a holder. load re-resolves the configuration from
// scratch; path is the watched config file ("" disables watching).
func NewHolder(initial AppConfig, load func() (AppConfig, error), path string) *Holder {
	return &Holder{
		current: initial,
		load:    load,
		path:    path,
		logger:  log.WithComponent("config"),
	}
}

// Get returns the current configuration.
func (h *Holder) Get() AppConfig {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// Path returns the watched config file, "" when hot reload is disabled.
func (h *Holder) Path() string { return h.path }

// Subscribe returns a channel receiving every successfully applied reload.
// The channel is buffered; a slow consumer only misses intermediate states.
func (h *Holder) Subscribe() <-chan AppConfig {
	ch := make(chan AppConfig, 1)
	h.subMu.Lock()
	h.subs = append(h.subs, ch)
	h.subMu.Unlock()
	return ch
}

// Reload re-resolves and validates the configuration, then swaps it in.
func (h *Holder) Reload(_ context.Context) error {
	h.logger.Info().Str("event", "config.reload_start").Msg("reloading configuration")

	newCfg, err := h.load()
	if err != nil {
		h.logger.Error().Err(err).Str("event", "config.reload_failed").Msg("failed to load new configuration")
		return fmt.Errorf("load config: %w", err)
	}
	if err := Validate(newCfg); err != nil {
		h.logger.Error().Err(err).Str("event", "config.validation_failed").Msg("new configuration failed validation")
		return fmt.Errorf("validate config: %w", err)
	}

	h.mu.Lock()
	h.current = newCfg
	h.mu.Unlock()

	h.notify(newCfg)
	h.logger.Info().Str("event", "config.reload_success").Msg("configuration reloaded")
	return nil
}

func (h *Holder) notify(cfg AppConfig) {
	h.subMu.Lock()
	defer h.subMu.Unlock()
	for _, ch := range h.subs {
		// Drop a stale pending value so the latest config always wins.
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- cfg:
		default:
		}
	}
}

// Watch blocks until ctx is cancelled, reloading whenever the config file
// changes. Editors tend to replace files, so the parent directory is
// watched and events are filtered by name. A no-op when no file is set.
func (h *Holder) Watch(ctx context.Context) error {
	if h.path == "" {
		h.logger.Info().Msg("no config file set, hot reload disabled")
		<-ctx.Done()
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	dir := filepath.Dir(h.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	h.logger.Info().Str("path", h.path).Msg("watching config file")

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(h.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if err := h.Reload(ctx); err != nil {
				h.logger.Warn().Err(err).Msg("keeping previous configuration")
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			h.logger.Warn().Err(err).Msg("config watcher error")
		}
	}
}
