// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/termgames/hackerman/internal/game/binary"
	"github.com/termgames/hackerman/internal/weather"
)

// Validate checks a resolved configuration. It is called on startup and on
// every hot reload; a failing reload keeps the previous configuration.
func Validate(cfg AppConfig) error {
	if cfg.DataDir == "" {
		return fmt.Errorf("dataDir must not be empty")
	}
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid logLevel %q: %w", cfg.LogLevel, err)
	}
	switch cfg.LoopMode {
	case LoopRealtime, LoopPerformance:
	default:
		return fmt.Errorf("invalid loopMode %q (want %q or %q)", cfg.LoopMode, LoopRealtime, LoopPerformance)
	}
	if !binary.Bits(cfg.Game.Bits).Valid() {
		return fmt.Errorf("invalid game.bits %d (want 4, 8, 12 or 16)", cfg.Game.Bits)
	}
	if cfg.Game.Countdown <= 0 || cfg.Game.Countdown > 10*time.Minute {
		return fmt.Errorf("invalid game.countdown %s (want a positive duration up to 10m)", cfg.Game.Countdown)
	}
	if cfg.Weather.Latitude < -90 || cfg.Weather.Latitude > 90 {
		return fmt.Errorf("invalid weather.latitude %v (want -90..90)", cfg.Weather.Latitude)
	}
	if cfg.Weather.Longitude < -180 || cfg.Weather.Longitude > 180 {
		return fmt.Errorf("invalid weather.longitude %v (want -180..180)", cfg.Weather.Longitude)
	}
	switch cfg.Weather.Units {
	case weather.UnitsMetric, weather.UnitsImperial:
	default:
		return fmt.Errorf("invalid weather.units %q (want %q or %q)", cfg.Weather.Units, weather.UnitsMetric, weather.UnitsImperial)
	}
	return nil
}
