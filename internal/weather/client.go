// SPDX-License-Identifier: MIT

// Package weather fetches current conditions from the Open-Meteo API for
// the weather screen. Open-Meteo is keyless, so the client only needs
// coordinates and a unit preference.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the public Open-Meteo endpoint.
const DefaultBaseURL = "https://api.open-meteo.com"

// Units selects the temperature scale of an observation.
const (
	UnitsMetric   = "metric"
	UnitsImperial = "imperial"
)

// Observation is the current-weather snapshot shown on the weather screen.
type Observation struct {
	Temperature float64
	FeelsLike   float64
	Code        int
	Summary     string
	Unit        string // display unit, "°C" or "°F"
}

type Client struct {
	base string
	http *http.Client
}

func New(base string) *Client {
	if base == "" {
		base = DefaultBaseURL
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

// Current fetches the current conditions for the given coordinates.
// units is UnitsMetric or UnitsImperial.
func (c *Client) Current(ctx context.Context, lat, lon float64, units string) (Observation, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', 4, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', 4, 64))
	q.Set("current", "temperature_2m,apparent_temperature,weather_code")
	unit := "°C"
	if units == UnitsImperial {
		q.Set("temperature_unit", "fahrenheit")
		unit = "°F"
	}

	u := c.base + "/v1/forecast?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Observation{}, err
	}
	res, err := c.http.Do(req)
	if err != nil {
		return Observation{}, fmt.Errorf("weather request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return Observation{}, fmt.Errorf("weather request: unexpected status %d", res.StatusCode)
	}

	var p struct {
		Current struct {
			Temperature float64 `json:"temperature_2m"`
			FeelsLike   float64 `json:"apparent_temperature"`
			WeatherCode int     `json:"weather_code"`
		} `json:"current"`
	}
	if err := json.NewDecoder(res.Body).Decode(&p); err != nil {
		return Observation{}, fmt.Errorf("weather response: %w", err)
	}

	return Observation{
		Temperature: p.Current.Temperature,
		FeelsLike:   p.Current.FeelsLike,
		Code:        p.Current.WeatherCode,
		Summary:     Summary(p.Current.WeatherCode),
		Unit:        unit,
	}, nil
}
