// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/google/renameio/v2"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors AppConfig with optional fields so unset keys keep the
// previous value during merging.
type fileConfig struct {
	DataDir      string             `yaml:"dataDir"`
	LogLevel     string             `yaml:"logLevel"`
	PlayerName   string             `yaml:"playerName"`
	LoopMode     string             `yaml:"loopMode"`
	DebugOverlay *bool              `yaml:"debugOverlay"`
	Game         *fileGameConfig    `yaml:"game"`
	Weather      *fileWeatherConfig `yaml:"weather"`
}

type fileGameConfig struct {
	Bits *int `yaml:"bits"`
	// Countdown is a Go duration string ("5s", "2.5s"). CountdownSeconds is
	// the older numeric spelling, still read for compatibility.
	Countdown        string   `yaml:"countdown,omitempty"`
	CountdownSeconds *float64 `yaml:"countdownSeconds,omitempty"`
}

type fileWeatherConfig struct {
	Latitude  *float64 `yaml:"latitude"`
	Longitude *float64 `yaml:"longitude"`
	Units     string   `yaml:"units"`
}

func readFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return &fc, nil
}

func mergeFile(dst *AppConfig, src *fileConfig) error {
	if src == nil {
		return nil
	}
	if src.DataDir != "" {
		dst.DataDir = os.ExpandEnv(src.DataDir)
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
	if src.PlayerName != "" {
		dst.PlayerName = src.PlayerName
	}
	if src.LoopMode != "" {
		dst.LoopMode = src.LoopMode
	}
	if src.DebugOverlay != nil {
		dst.DebugOverlay = *src.DebugOverlay
	}
	if src.Game != nil {
		if src.Game.Bits != nil {
			dst.Game.Bits = *src.Game.Bits
		}
		switch {
		case src.Game.Countdown != "":
			d, err := time.ParseDuration(src.Game.Countdown)
			if err != nil {
				return fmt.Errorf("parse game.countdown: %w", err)
			}
			dst.Game.Countdown = d
		case src.Game.CountdownSeconds != nil:
			dst.Game.Countdown = time.Duration(*src.Game.CountdownSeconds * float64(time.Second))
		}
	}
	if src.Weather != nil {
		if src.Weather.Latitude != nil {
			dst.Weather.Latitude = *src.Weather.Latitude
		}
		if src.Weather.Longitude != nil {
			dst.Weather.Longitude = *src.Weather.Longitude
		}
		if src.Weather.Units != "" {
			dst.Weather.Units = src.Weather.Units
		}
	}
	return nil
}

func toFileConfig(cfg AppConfig) fileConfig {
	bits := cfg.Game.Bits
	debug := cfg.DebugOverlay
	return fileConfig{
		DataDir:      cfg.DataDir,
		LogLevel:     cfg.LogLevel,
		PlayerName:   cfg.PlayerName,
		LoopMode:     cfg.LoopMode,
		DebugOverlay: &debug,
		Game: &fileGameConfig{
			Bits:      &bits,
			Countdown: cfg.Game.Countdown.String(),
		},
		Weather: &fileWeatherConfig{
			Latitude:  &cfg.Weather.Latitude,
			Longitude: &cfg.Weather.Longitude,
			Units:     cfg.Weather.Units,
		},
	}
}

// Encode renders the configuration in the config-file schema, so the output
// can be written back as a config file and loaded again.
func Encode(cfg AppConfig) ([]byte, error) {
	out := toFileConfig(cfg)
	data, err := yaml.Marshal(&out)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}

// Save writes the configuration to path atomically so a crashed save never
// leaves a truncated file behind.
func Save(cfg AppConfig, path string) error {
	data, err := Encode(cfg)
	if err != nil {
		return err
	}
	if err := renameio.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
