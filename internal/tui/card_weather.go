package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kunya-oba/morning-dashboard/internal/feeds"
	"github.com/kunya-oba/morning-dashboard/internal/layout"
	"github.com/kunya-oba/morning-dashboard/internal/models"
)

var weatherIcons = map[models.WeatherKind]string{
	models.WeatherClear:  "☀️",
	models.WeatherCloudy: "☁️",
	models.WeatherRain:   "🌧️",
	models.WeatherSnow:   "❄️",
	models.WeatherStorm:  "⛈️",
}

type weatherCard struct {
	client   feeds.WeatherClient
	interval time.Duration
	loc      models.Location

	seq     int
	loading bool
	spin    spinner.Model
	weather models.Weather
	hasData bool
	err     error
}

func newWeatherCard(client feeds.WeatherClient, interval time.Duration, loc models.Location) *weatherCard {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return &weatherCard{client: client, interval: interval, loc: loc, spin: sp}
}

func (c *weatherCard) ID() layout.CardID { return layout.CardWeather }

func (c *weatherCard) Init() tea.Cmd {
	return tea.Batch(c.fetch(), refreshTick(c.ID(), c.interval))
}

func (c *weatherCard) Refresh() tea.Cmd { return c.fetch() }

func (c *weatherCard) fetch() tea.Cmd {
	c.seq++
	seq := c.seq
	c.loading = true
	client, loc := c.client, c.loc
	return tea.Batch(c.spin.Tick, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		w, err := client.Fetch(ctx, loc)
		return weatherMsg{Seq: seq, Weather: w, Err: err}
	})
}

func (c *weatherCard) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case refreshTickMsg:
		if msg.Card != c.ID() {
			return nil
		}
		return tea.Batch(c.fetch(), refreshTick(c.ID(), c.interval))
	case locationChangedMsg:
		c.loc = msg.Loc
		return c.fetch()
	case weatherMsg:
		if msg.Seq != c.seq {
			return nil
		}
		c.loading = false
		c.err = msg.Err
		if msg.Err == nil {
			c.weather = msg.Weather
			c.hasData = true
		}
		return nil
	case spinner.TickMsg:
		if !c.loading {
			return nil
		}
		var cmd tea.Cmd
		c.spin, cmd = c.spin.Update(msg)
		return cmd
	}
	return nil
}

func (c *weatherCard) View(th Theme, width int) string {
	var b strings.Builder
	b.WriteString(th.Dim.Render(c.loc.Name) + "\n")

	if c.loading && !c.hasData {
		b.WriteString(c.spin.View() + " 読み込み中...")
		return b.String()
	}
	if !c.hasData {
		b.WriteString(errorLine(th, c.err))
		return b.String()
	}

	w := c.weather
	icon := weatherIcons[models.KindForCode(w.WeatherCode)]
	b.WriteString(fmt.Sprintf("%s %s %s\n",
		icon,
		th.Accent.Render(fmt.Sprintf("%.1f°C", w.Temperature)),
		th.Text.Render(models.DescriptionForCode(w.WeatherCode))))
	b.WriteString(th.Dim.Render(fmt.Sprintf("湿度 %.0f%%  風速 %.1fm/s  降水 %.1fmm",
		w.Humidity, w.WindSpeed, w.Precipitation)))

	if len(w.Hourly) > 0 {
		b.WriteString("\n")
		var hours, temps []string
		for _, s := range w.Hourly {
			hours = append(hours, fmt.Sprintf("%02d時", s.Time.Hour()))
			temps = append(temps, fmt.Sprintf("%3.0f°", s.Temperature))
		}
		b.WriteString(th.Dim.Render(strings.Join(hours, " ")) + "\n")
		b.WriteString(th.Text.Render(strings.Join(temps, " ")))
	}
	if c.err != nil {
		b.WriteString("\n" + errorLine(th, c.err))
	}
	return b.String()
}
