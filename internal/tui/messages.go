package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kunya-oba/morning-dashboard/internal/layout"
	"github.com/kunya-oba/morning-dashboard/internal/models"
)

// refreshTickMsg asks one card to start a new fetch cycle.
type refreshTickMsg struct {
	Card layout.CardID
	At   time.Time
}

// clockTickMsg drives the clock and the pomodoro countdown once a second.
type clockTickMsg time.Time

// rolloverTickMsg fires once a minute so day-scoped cards notice midnight.
type rolloverTickMsg time.Time

// themeChangedMsg is broadcast to every card when the scheme flips.
type themeChangedMsg struct{ Theme Theme }

func refreshTick(card layout.CardID, every time.Duration) tea.Cmd {
	return tea.Tick(every, func(t time.Time) tea.Msg { return refreshTickMsg{Card: card, At: t} })
}

func clockTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return clockTickMsg(t) })
}

func rolloverTick(every time.Duration) tea.Cmd {
	return tea.Tick(every, func(t time.Time) tea.Msg { return rolloverTickMsg(t) })
}

// Fetch results. Each carries the sequence number of the request that
// produced it; a card drops any result whose sequence is not its latest,
// so a slow response can never overwrite a newer one.

type weatherMsg struct {
	Seq     int
	Weather models.Weather
	Err     error
}

type trainMsg struct {
	Seq    int
	Status models.TrainStatus
	Err    error
}

type newsMsg struct {
	Seq   int
	Items []models.NewsItem
	Err   error
}

type quoteMsg struct {
	Seq   int
	Quote models.Quote
	Err   error
}

type anniversaryMsg struct {
	Seq         int
	Anniversary models.Anniversary
	Err         error
}

type pokemonMsg struct {
	Seq     int
	Pokemon models.Pokemon
	Err     error
}

type backgroundMsg struct {
	Image models.BackgroundImage
	Err   error
}

type positionMsg struct {
	Loc *models.Location
}

// locationChangedMsg tells the weather card to refetch for a new target.
type locationChangedMsg struct{ Loc models.Location }

// reportDoneMsg reports the outcome of a morning report export.
type reportDoneMsg struct {
	Path string
	Err  error
}
