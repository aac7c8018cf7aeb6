// Package feeds implements the per-card data sources: API clients and the
// parsers that turn raw payloads into typed models. Every fetch is bounded
// by a context and a per-route timeout; nothing here retries. The polling
// layer owns retry cadence.
package feeds

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kunya-oba/morning-dashboard/internal/config"
	"github.com/kunya-oba/morning-dashboard/internal/fetch"
	"github.com/kunya-oba/morning-dashboard/internal/models"
)

const openMeteoBase = "https://api.open-meteo.com/v1/forecast"

// hourlyStep is the sampling stride over the same-day hourly series.
const hourlyStep = 3

// WeatherClient reads current conditions from Open-Meteo. The API is
// CORS-friendly, so it is always fetched directly.
type WeatherClient struct {
	HTTP fetch.Doer
}

type openMeteoResponse struct {
	Current struct {
		Temperature   float64 `json:"temperature_2m"`
		Humidity      float64 `json:"relative_humidity_2m"`
		Precipitation float64 `json:"precipitation"`
		WeatherCode   int     `json:"weather_code"`
		WindSpeed     float64 `json:"wind_speed_10m"`
	} `json:"current"`
	Hourly struct {
		Time        []string  `json:"time"`
		Temperature []float64 `json:"temperature_2m"`
	} `json:"hourly"`
}

// Fetch returns the weather for a location, including a same-day hourly
// temperature series sampled every 3 hours.
func (c WeatherClient) Fetch(ctx context.Context, loc models.Location) (models.Weather, error) {
	target := fmt.Sprintf(
		"%s?latitude=%.4f&longitude=%.4f&current=temperature_2m,relative_humidity_2m,precipitation,weather_code,wind_speed_10m&hourly=temperature_2m&forecast_days=1&timezone=Asia%%2FTokyo",
		openMeteoBase, loc.Latitude, loc.Longitude)

	body, err := fetch.Get(ctx, c.HTTP, target, config.FetchTimeout)
	if err != nil {
		return models.Weather{}, err
	}
	var resp openMeteoResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return models.Weather{}, fmt.Errorf("parse forecast: %w", err)
	}

	w := models.Weather{
		Temperature:   resp.Current.Temperature,
		WeatherCode:   resp.Current.WeatherCode,
		Precipitation: resp.Current.Precipitation,
		WindSpeed:     resp.Current.WindSpeed,
		Humidity:      resp.Current.Humidity,
		Hourly:        sampleHourly(resp.Hourly.Time, resp.Hourly.Temperature),
	}
	return w, nil
}

func sampleHourly(times []string, temps []float64) []models.HourlySample {
	n := len(times)
	if len(temps) < n {
		n = len(temps)
	}
	var out []models.HourlySample
	for i := 0; i < n; i += hourlyStep {
		ts, err := time.Parse("2006-01-02T15:04", times[i])
		if err != nil {
			continue
		}
		out = append(out, models.HourlySample{Time: ts, Temperature: temps[i]})
	}
	return out
}
