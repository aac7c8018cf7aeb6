// Package config holds the dashboard's constants and its runtime
// configuration surface. Values come from, in priority order: environment
// variables with the MORNING_ prefix, an optional config file in the data
// directory, and the defaults below.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/kunya-oba/morning-dashboard/internal/util"
)

// Config is the resolved runtime configuration.
type Config struct {
	// UnsplashKey switches the daily background between the keyed
	// Unsplash API and the keyless source URL. Optional.
	UnsplashKey string

	// Fixed device coordinates for the position resolver. The terminal has
	// no geolocation permission prompt; unset coordinates behave like a
	// denied permission.
	DeviceLatitude  float64
	DeviceLongitude float64
	DeviceSet       bool

	TrainStatusURL string
	NewsFeedURL    string

	Intervals Intervals
}

// Intervals groups the per-card refresh periods.
type Intervals struct {
	Weather     time.Duration
	Train       time.Duration
	News        time.Duration
	Quote       time.Duration
	Anniversary time.Duration
}

// Load reads the configuration. A missing config file is not an error.
func Load() Config {
	v := viper.New()
	v.SetEnvPrefix("MORNING")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("train_status_url", "https://www.kotsu.metro.tokyo.jp/subway/schedule/asakusa.html")
	v.SetDefault("news_feed_url", "https://news.google.com/rss?hl=ja&gl=JP&ceid=JP:ja")
	v.SetDefault("interval.weather", WeatherInterval)
	v.SetDefault("interval.train", TrainInterval)
	v.SetDefault("interval.news", NewsInterval)
	v.SetDefault("interval.quote", QuoteInterval)
	v.SetDefault("interval.anniversary", AnniversaryInterval)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(util.DataDir(AppName))
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			util.LogError("config: read file", err)
		}
	}

	cfg := Config{
		UnsplashKey:    strings.TrimSpace(v.GetString("unsplash_key")),
		TrainStatusURL: v.GetString("train_status_url"),
		NewsFeedURL:    v.GetString("news_feed_url"),
		Intervals: Intervals{
			Weather:     v.GetDuration("interval.weather"),
			Train:       v.GetDuration("interval.train"),
			News:        v.GetDuration("interval.news"),
			Quote:       v.GetDuration("interval.quote"),
			Anniversary: v.GetDuration("interval.anniversary"),
		},
	}
	if v.IsSet("device_latitude") && v.IsSet("device_longitude") {
		cfg.DeviceLatitude = v.GetFloat64("device_latitude")
		cfg.DeviceLongitude = v.GetFloat64("device_longitude")
		cfg.DeviceSet = true
	}
	return cfg
}
