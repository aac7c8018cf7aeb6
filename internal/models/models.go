// Package models defines the domain types shared across the dashboard.
package models

import "time"

// Weather is the current-conditions snapshot shown on the weather card.
type Weather struct {
	Temperature   float64
	WeatherCode   int
	Precipitation float64
	WindSpeed     float64
	Humidity      float64
	Hourly        []HourlySample
}

// HourlySample is one point of the same-day series, sampled every 3 hours.
type HourlySample struct {
	Time        time.Time
	Temperature float64
}

// WeatherKind is the coarse icon bucket for a WMO weather code.
type WeatherKind int

const (
	WeatherClear WeatherKind = iota
	WeatherCloudy
	WeatherRain
	WeatherSnow
	WeatherStorm
)

// KindForCode buckets a WMO weather interpretation code.
func KindForCode(code int) WeatherKind {
	switch {
	case code == 0:
		return WeatherClear
	case code <= 3:
		return WeatherCloudy
	case code <= 67:
		return WeatherRain
	case code <= 77:
		return WeatherSnow
	default:
		return WeatherStorm
	}
}

// DescriptionForCode returns the fine-grained Japanese description ladder.
func DescriptionForCode(code int) string {
	switch {
	case code == 0:
		return "快晴"
	case code == 1:
		return "ほぼ晴れ"
	case code == 2:
		return "一部曇り"
	case code == 3:
		return "曇り"
	case code <= 49:
		return "霧"
	case code <= 59:
		return "霧雨"
	case code <= 69:
		return "雨"
	case code <= 79:
		return "雪"
	case code <= 84:
		return "にわか雨"
	default:
		return "雷雨"
	}
}

// TrainStatus describes one line's operational state.
type TrainStatus struct {
	Operator  string
	Railway   string
	Status    string
	Detail    string
	Disrupted bool
}

// Quote is a translated quotation.
type Quote struct {
	Text   string
	Author string
	TextJa string
}

// Anniversary is the "what day is it" entry for today.
type Anniversary struct {
	Title       string
	Description string
}

// Pokemon is the daily creature pick.
type Pokemon struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	JapaneseName string   `json:"japaneseName"`
	Sprite       string   `json:"sprite"`
	Types        []string `json:"types"`
	Height       int      `json:"height"`
	Weight       int      `json:"weight"`
}

// StoredPokemon is the persisted per-day cache entry.
type StoredPokemon struct {
	Date    string  `json:"date"`
	Pokemon Pokemon `json:"pokemon"`
}

// BackgroundImage is the per-day cached background entry.
type BackgroundImage struct {
	Date        string `json:"date"`
	URL         string `json:"url"`
	Attribution string `json:"attribution,omitempty"`
}

// TimerSettings are the persisted pomodoro settings.
type TimerSettings struct {
	WorkMinutes  int  `json:"workMinutes"`
	BreakMinutes int  `json:"breakMinutes"`
	AutoStart    bool `json:"autoStart"`
}
