// SPDX-License-Identifier: MIT

// Package config loads and validates the application configuration.
// Precedence, lowest to highest: built-in defaults, the YAML config file,
// HACKERMAN_* environment variables.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// Loop modes for the TUI main loop.
const (
	LoopRealtime    = "realtime"    // tick every frame, animations keep running
	LoopPerformance = "performance" // redraw only on input
)

// GameConfig holds binary-numbers defaults.
type GameConfig struct {
	Bits      int           `yaml:"bits"`
	Countdown time.Duration `yaml:"countdown"`
}

// WeatherConfig holds the location shown on the weather screen.
type WeatherConfig struct {
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
	Units     string  `yaml:"units"`
}

// AppConfig is the fully resolved application configuration.
type AppConfig struct {
	DataDir      string        `yaml:"dataDir"`
	LogLevel     string        `yaml:"logLevel"`
	PlayerName   string        `yaml:"playerName"`
	LoopMode     string        `yaml:"loopMode"`
	DebugOverlay bool          `yaml:"debugOverlay"`
	Game         GameConfig    `yaml:"game"`
	Weather      WeatherConfig `yaml:"weather"`
}

// Defaults returns the built-in configuration.
func Defaults() AppConfig {
	return AppConfig{
		DataDir:      defaultDataDir(),
		LogLevel:     "info",
		PlayerName:   "player",
		LoopMode:     LoopRealtime,
		DebugOverlay: true,
		Game: GameConfig{
			Bits:      8,
			Countdown: 5 * time.Second,
		},
		Weather: WeatherConfig{
			Latitude:  52.52,
			Longitude: 13.405,
			Units:     "metric",
		},
	}
}

func defaultDataDir() string {
	if dir, ok := os.LookupEnv("HACKERMAN_DATA"); ok && dir != "" {
		return dir
	}
	if base, err := os.UserConfigDir(); err == nil {
		return filepath.Join(base, "hackerman")
	}
	return "."
}

// Load resolves the configuration: defaults, then the YAML file at path
// (skipped when path is empty), then environment overrides.
func Load(path string) (AppConfig, error) {
	cfg := Defaults()

	if path != "" {
		file, err := readFile(path)
		if err != nil {
			return AppConfig{}, err
		}
		if err := mergeFile(&cfg, file); err != nil {
			return AppConfig{}, err
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

// DefaultFilePath returns the config file the binaries auto-load when no
// --config flag is given: $DATA_DIR/config.yaml, if it exists.
func DefaultFilePath() string {
	path := filepath.Join(defaultDataDir(), "config.yaml")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

func applyEnv(cfg *AppConfig) {
	cfg.DataDir = ParseString("HACKERMAN_DATA", cfg.DataDir)
	cfg.LogLevel = ParseString("HACKERMAN_LOG_LEVEL", cfg.LogLevel)
	cfg.PlayerName = ParseString("HACKERMAN_PLAYER", cfg.PlayerName)
	cfg.LoopMode = ParseString("HACKERMAN_LOOP_MODE", cfg.LoopMode)
	cfg.DebugOverlay = ParseBool("HACKERMAN_DEBUG", cfg.DebugOverlay)
	cfg.Game.Bits = ParseInt("HACKERMAN_BITS", cfg.Game.Bits)
	cfg.Game.Countdown = ParseDuration("HACKERMAN_COUNTDOWN", cfg.Game.Countdown)
	cfg.Weather.Latitude = ParseFloat("HACKERMAN_WEATHER_LAT", cfg.Weather.Latitude)
	cfg.Weather.Longitude = ParseFloat("HACKERMAN_WEATHER_LON", cfg.Weather.Longitude)
	cfg.Weather.Units = ParseString("HACKERMAN_WEATHER_UNITS", cfg.Weather.Units)
}
