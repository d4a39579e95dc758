// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, LoopRealtime, cfg.LoopMode)
	assert.Equal(t, 8, cfg.Game.Bits)
	assert.Equal(t, 5*time.Second, cfg.Game.Countdown)
	assert.Equal(t, "metric", cfg.Weather.Units)
	require.NoError(t, Validate(cfg))
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
playerName: alice
loopMode: performance
debugOverlay: false
game:
  bits: 16
  countdownSeconds: 7.5
weather:
  latitude: 48.21
  units: imperial
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "alice", cfg.PlayerName)
	assert.Equal(t, LoopPerformance, cfg.LoopMode)
	assert.False(t, cfg.DebugOverlay)
	assert.Equal(t, 16, cfg.Game.Bits)
	assert.Equal(t, 7500*time.Millisecond, cfg.Game.Countdown)
	assert.Equal(t, 48.21, cfg.Weather.Latitude)
	assert.Equal(t, "imperial", cfg.Weather.Units)
	// keys absent from the file keep their defaults
	assert.Equal(t, 13.405, cfg.Weather.Longitude)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("playerName: alice\n"), 0o600))

	t.Setenv("HACKERMAN_PLAYER", "bob")
	t.Setenv("HACKERMAN_BITS", "12")
	t.Setenv("HACKERMAN_COUNTDOWN", "3s")
	t.Setenv("HACKERMAN_DEBUG", "false")
	t.Setenv("HACKERMAN_WEATHER_LAT", "59.33")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "bob", cfg.PlayerName)
	assert.Equal(t, 12, cfg.Game.Bits)
	assert.Equal(t, 3*time.Second, cfg.Game.Countdown)
	assert.False(t, cfg.DebugOverlay)
	assert.Equal(t, 59.33, cfg.Weather.Latitude)
}

func TestLoadInvalidEnvFallsBack(t *testing.T) {
	t.Setenv("HACKERMAN_BITS", "not-a-number")
	t.Setenv("HACKERMAN_COUNTDOWN", "soon")
	t.Setenv("HACKERMAN_DEBUG", "maybe")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Game.Bits)
	assert.Equal(t, 5*time.Second, cfg.Game.Countdown)
	assert.True(t, cfg.DebugOverlay)
}

func TestLoadCountdownDurationString(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
game:
  countdown: 3s
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, cfg.Game.Countdown)
}

func TestLoadCountdownWinsOverCountdownSeconds(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
game:
  countdown: 2s
  countdownSeconds: 9
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.Game.Countdown)
}

func TestLoadInvalidCountdown(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("game:\n  countdown: soon\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "game.countdown")
}

func TestEncodeIsLoadable(t *testing.T) {
	cfg := Defaults()
	cfg.Game.Countdown = 2500 * time.Millisecond

	data, err := Encode(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "countdown: 2.5s")
	assert.NotContains(t, string(data), "countdownSeconds")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Game.Countdown, loaded.Game.Countdown)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	mutate := func(f func(*AppConfig)) AppConfig {
		cfg := Defaults()
		f(&cfg)
		return cfg
	}

	tests := []struct {
		name    string
		cfg     AppConfig
		wantErr string
	}{
		{"valid defaults", Defaults(), ""},
		{"empty data dir", mutate(func(c *AppConfig) { c.DataDir = "" }), "dataDir"},
		{"bad log level", mutate(func(c *AppConfig) { c.LogLevel = "verbose" }), "logLevel"},
		{"bad loop mode", mutate(func(c *AppConfig) { c.LoopMode = "turbo" }), "loopMode"},
		{"bad bits", mutate(func(c *AppConfig) { c.Game.Bits = 7 }), "game.bits"},
		{"zero countdown", mutate(func(c *AppConfig) { c.Game.Countdown = 0 }), "game.countdown"},
		{"huge countdown", mutate(func(c *AppConfig) { c.Game.Countdown = time.Hour }), "game.countdown"},
		{"bad latitude", mutate(func(c *AppConfig) { c.Weather.Latitude = 91 }), "weather.latitude"},
		{"bad longitude", mutate(func(c *AppConfig) { c.Weather.Longitude = -200 }), "weather.longitude"},
		{"bad units", mutate(func(c *AppConfig) { c.Weather.Units = "kelvin" }), "weather.units"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := Defaults()
	cfg.PlayerName = "carol"
	cfg.Game.Bits = 4
	cfg.Game.Countdown = 2500 * time.Millisecond
	require.NoError(t, Save(cfg, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "carol", loaded.PlayerName)
	assert.Equal(t, 4, loaded.Game.Bits)
	assert.Equal(t, 2500*time.Millisecond, loaded.Game.Countdown)
}

func TestParseHelpers(t *testing.T) {
	t.Setenv("HM_TEST_STR", "hello")
	assert.Equal(t, "hello", ParseString("HM_TEST_STR", "fallback"))
	assert.Equal(t, "fallback", ParseString("HM_TEST_UNSET", "fallback"))

	t.Setenv("HM_TEST_INT", "42")
	assert.Equal(t, 42, ParseInt("HM_TEST_INT", 1))
	assert.Equal(t, 1, ParseInt("HM_TEST_UNSET", 1))

	t.Setenv("HM_TEST_BOOL", "1")
	assert.True(t, ParseBool("HM_TEST_BOOL", false))

	t.Setenv("HM_TEST_FLOAT", "2.5")
	assert.Equal(t, 2.5, ParseFloat("HM_TEST_FLOAT", 0))

	t.Setenv("HM_TEST_DUR", "150ms")
	assert.Equal(t, 150*time.Millisecond, ParseDuration("HM_TEST_DUR", time.Second))
}
