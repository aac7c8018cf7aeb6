// Package tui renders the morning dashboard: a grid of cards over a
// persisted order, driven by per-card refresh ticks. Each card owns its
// fetch cycle and error state; a failing card degrades alone.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kunya-oba/morning-dashboard/internal/config"
	"github.com/kunya-oba/morning-dashboard/internal/feeds"
	"github.com/kunya-oba/morning-dashboard/internal/fetch"
	"github.com/kunya-oba/morning-dashboard/internal/geo"
	"github.com/kunya-oba/morning-dashboard/internal/layout"
	"github.com/kunya-oba/morning-dashboard/internal/models"
	"github.com/kunya-oba/morning-dashboard/internal/store"
	"github.com/kunya-oba/morning-dashboard/internal/tasks"
	"github.com/kunya-oba/morning-dashboard/internal/util"
)

type keyMap struct {
	Quit      key.Binding
	NextCard  key.Binding
	PrevCard  key.Binding
	MoveMode  key.Binding
	Theme     key.Binding
	Refresh   key.Binding
	ReloadAll key.Binding
	Export    key.Binding
	Help      key.Binding
}

var keys = keyMap{
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "終了")),
	NextCard:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "次のカード")),
	PrevCard:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("S-tab", "前のカード")),
	MoveMode:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "並び替え")),
	Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "テーマ切替")),
	Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "再取得")),
	ReloadAll: key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "全再取得")),
	Export:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "レポート出力")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "ヘルプ")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextCard, k.MoveMode, k.Theme, k.Refresh, k.Export, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextCard, k.PrevCard, k.MoveMode},
		{k.Refresh, k.ReloadAll, k.Theme},
		{k.Export, k.Help, k.Quit},
	}
}

// capturer is implemented by cards that swallow plain keystrokes while a
// text input is open; global single-letter bindings stand down for them.
type capturer interface{ capturing() bool }

// DashboardModel is the card grid.
type DashboardModel struct {
	store *store.Store
	cfg   config.Config

	order *layout.Manager
	cards map[layout.CardID]Card
	theme Theme

	todoList  *tasks.TodoList
	routine   *tasks.Routine
	locations *tasks.Locations
	pomodoro  *tasks.Pomodoro

	background feeds.BackgroundClient
	image      models.BackgroundImage

	focusIdx int
	moveMode bool
	help     help.Model
	showHelp bool
	message  string

	width, height int
}

// NewDashboardModel wires every card against the shared store and the
// resolved configuration.
func NewDashboardModel(s *store.Store, cfg config.Config) DashboardModel {
	client := fetch.DefaultClient

	todoList := tasks.NewTodoList(s)
	routine := tasks.NewRoutine(s)
	locations := tasks.NewLocations(s)
	pomodoro := tasks.NewPomodoro(s)

	var source geo.PositionSource
	if cfg.DeviceSet {
		source = geo.FixedSource{Latitude: cfg.DeviceLatitude, Longitude: cfg.DeviceLongitude}
	}
	resolver := geo.Resolver{Source: source, Timeout: config.GeoTimeout, MaxAge: config.GeoMaxPosAge}

	cards := map[layout.CardID]Card{}
	add := func(c Card) { cards[c.ID()] = c }
	add(newWeatherCard(feeds.WeatherClient{HTTP: client}, cfg.Intervals.Weather, locations.Current()))
	add(newClockCard(pomodoro))
	add(newTrainCard(feeds.TrainClient{
		HTTP: client, PageURL: cfg.TrainStatusURL, Operator: "都営地下鉄", Railway: "浅草線",
	}, cfg.Intervals.Train))
	add(newTodoCard(todoList))
	add(newLocationCard(locations, resolver))
	add(newAnniversaryCard(feeds.AnniversaryClient{HTTP: client}, cfg.Intervals.Anniversary))
	add(newQuoteCard(feeds.NewQuoteClient(client), cfg.Intervals.Quote))
	add(newNewsCard(feeds.NewsClient{HTTP: client, FeedURL: cfg.NewsFeedURL}, s, cfg.Intervals.News))
	add(newRoutineCard(routine))
	add(newPokemonCard(feeds.PokemonClient{HTTP: client, Store: s}))

	return DashboardModel{
		store:      s,
		cfg:        cfg,
		order:      layout.NewManager(s),
		cards:      cards,
		theme:      ThemeFor(store.GetOr(s, config.KeyDarkMode, true)),
		todoList:   todoList,
		routine:    routine,
		locations:  locations,
		pomodoro:   pomodoro,
		background: feeds.BackgroundClient{HTTP: client, Store: s, AccessKey: cfg.UnsplashKey},
		help:       help.New(),
	}
}

func (m DashboardModel) Init() tea.Cmd {
	cmds := []tea.Cmd{clockTick(), rolloverTick(config.RoutineRollover), m.fetchBackground()}
	for _, id := range m.order.Order() {
		if card, ok := m.cards[id]; ok {
			cmds = append(cmds, card.Init())
		}
	}
	return tea.Batch(cmds...)
}

func (m DashboardModel) fetchBackground() tea.Cmd {
	bg := m.background
	return func() tea.Msg {
		img, err := bg.Today(context.Background(), util.DayKey(timeNow()))
		return backgroundMsg{Image: img, Err: err}
	}
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case clockTickMsg:
		cmd := m.routeTo(layout.CardClock, msg)
		return m, tea.Batch(cmd, clockTick())

	case rolloverTickMsg:
		cmds := m.broadcast(msg)
		cmds = append(cmds, rolloverTick(config.RoutineRollover))
		return m, tea.Batch(cmds...)

	case backgroundMsg:
		if msg.Err == nil {
			m.image = msg.Image
		}
		util.LogError("tui: background image", msg.Err)
		return m, nil

	case refreshTickMsg:
		return m, m.routeTo(msg.Card, msg)

	case locationChangedMsg:
		return m, m.routeTo(layout.CardWeather, msg)

	case positionMsg:
		return m, m.routeTo(layout.CardLocation, msg)

	case reportDoneMsg:
		if msg.Err != nil {
			m.message = "レポート出力に失敗しました"
			util.LogError("tui: export report", msg.Err)
		} else {
			m.message = "レポートを保存しました: " + msg.Path
		}
		return m, nil

	case themeChangedMsg:
		m.theme = msg.Theme
		return m, tea.Batch(m.broadcast(msg)...)
	}

	// Data and spinner messages: every card filters for its own.
	return m, tea.Batch(m.broadcast(msg)...)
}

func (m *DashboardModel) routeTo(id layout.CardID, msg tea.Msg) tea.Cmd {
	if card, ok := m.cards[id]; ok {
		return card.Update(msg)
	}
	return nil
}

func (m *DashboardModel) broadcast(msg tea.Msg) []tea.Cmd {
	var cmds []tea.Cmd
	for _, card := range m.cards {
		if cmd := card.Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

func (m DashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	focused := m.focusedCard()
	if c, ok := focused.(capturer); ok && c.capturing() {
		if focused != nil {
			return m, focused.Update(msg)
		}
		return m, nil
	}

	if m.moveMode {
		return m.handleMoveKey(msg)
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.NextCard):
		m.focusIdx = (m.focusIdx + 1) % len(m.visibleOrder())
		return m, nil
	case key.Matches(msg, keys.PrevCard):
		n := len(m.visibleOrder())
		m.focusIdx = (m.focusIdx + n - 1) % n
		return m, nil
	case key.Matches(msg, keys.MoveMode):
		m.moveMode = true
		return m, nil
	case key.Matches(msg, keys.Theme):
		return m.toggleTheme()
	case key.Matches(msg, keys.Refresh):
		if focused != nil {
			return m, focused.Refresh()
		}
		return m, nil
	case key.Matches(msg, keys.ReloadAll):
		var cmds []tea.Cmd
		for _, card := range m.cards {
			if cmd := card.Refresh(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		cmds = append(cmds, m.fetchBackground())
		return m, tea.Batch(cmds...)
	case key.Matches(msg, keys.Export):
		return m, m.exportReport()
	case key.Matches(msg, keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	}

	if focused != nil {
		return m, focused.Update(msg)
	}
	return m, nil
}

// handleMoveKey relocates the focused card: the pressed direction selects
// the adjacent cell on the two-column grid as the move target.
func (m DashboardModel) handleMoveKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	order := m.visibleOrder()
	if len(order) == 0 {
		m.moveMode = false
		return m, nil
	}
	active := order[m.focusIdx]

	var target int
	switch msg.String() {
	case "esc", "enter", "m":
		m.moveMode = false
		return m, nil
	case "left", "h":
		target = m.focusIdx - 1
	case "right", "l":
		target = m.focusIdx + 1
	case "up", "k":
		target = m.focusIdx - gridColumns
	case "down", "j":
		target = m.focusIdx + gridColumns
	default:
		return m, nil
	}
	if target < 0 || target >= len(order) {
		return m, nil
	}

	m.order.Move(active, order[target])
	// Focus follows the moved card.
	for i, id := range m.visibleOrder() {
		if id == active {
			m.focusIdx = i
			break
		}
	}
	return m, nil
}

func (m DashboardModel) toggleTheme() (tea.Model, tea.Cmd) {
	next := ThemeFor(!m.theme.Dark)
	util.LogError("tui: persist theme", m.store.Set(config.KeyDarkMode, next.Dark))
	m.theme = next
	return m, tea.Batch(m.broadcast(themeChangedMsg{Theme: next})...)
}

func (m DashboardModel) exportReport() tea.Cmd {
	todoList, routine, locations := m.todoList, m.routine, m.locations
	weather, _ := m.cards[layout.CardWeather].(*weatherCard)
	train, _ := m.cards[layout.CardTrain].(*trainCard)
	return func() tea.Msg {
		report := MorningReport{
			Date:     timeNow(),
			Location: locations.Current().Name,
			Tasks:    todoList.Tasks(),
			Routine:  routine.Items(),
			Progress: routine.ProgressFor(util.DayKey(timeNow())),
			Streak:   routine.Streak(),
		}
		if weather != nil && weather.hasData {
			report.Weather = &weather.weather
		}
		if train != nil && train.hasData {
			report.Train = &train.status
		}
		path, err := WritePDFReport(report, util.ReportsDir(config.AppName))
		return reportDoneMsg{Path: path, Err: err}
	}
}

// visibleOrder is the persisted order filtered to cards that exist in this
// build; unknown ids persist but never render.
func (m DashboardModel) visibleOrder() []layout.CardID {
	var out []layout.CardID
	for _, id := range m.order.Order() {
		if _, ok := m.cards[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

func (m DashboardModel) focusedCard() Card {
	order := m.visibleOrder()
	if len(order) == 0 || m.focusIdx >= len(order) {
		return nil
	}
	return m.cards[order[m.focusIdx]]
}

const gridColumns = 2

func (m DashboardModel) View() string {
	th := m.theme
	width := m.width
	if width <= 0 {
		width = 80
	}
	gridWidth := width - 4
	if gridWidth > 110 {
		gridWidth = 110
	}
	colWidth := gridWidth / gridColumns

	now := timeNow()
	header := th.Header.Render(Greeting(now.Hour())) + "  " + th.Dim.Render(FormatDateJa(now))
	if m.moveMode {
		header += "  " + th.Warning.Render("並び替えモード (矢印で移動 / enter 確定)")
	}

	order := m.visibleOrder()
	var rows []string
	var pending []string
	flush := func() {
		if len(pending) > 0 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, pending...))
			pending = nil
		}
	}
	for i, id := range order {
		focused := i == m.focusIdx
		moving := focused && m.moveMode
		if layout.Span(id) >= gridColumns {
			flush()
			rows = append(rows, safeView(m.cards[id], th, gridWidth, focused, moving))
			continue
		}
		pending = append(pending, safeView(m.cards[id], th, colWidth, focused, moving))
		if len(pending) == gridColumns {
			flush()
		}
	}
	flush()

	footer := m.help.View(keys)
	if m.showHelp {
		m.help.ShowAll = true
		footer = m.help.View(keys)
	}
	if m.message != "" {
		footer = th.Accent.Render(m.message) + "\n" + footer
	}
	if m.image.URL != "" {
		attribution := m.image.Attribution
		if attribution == "" {
			attribution = m.image.URL
		}
		footer += "\n" + th.Dim.Render("背景: "+attribution)
	}

	var b strings.Builder
	b.WriteString(header + "\n\n")
	b.WriteString(strings.Join(rows, "\n"))
	b.WriteString("\n" + footer)
	return th.Base.Render(b.String())
}
