package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kunya-oba/morning-dashboard/internal/config"
	"github.com/kunya-oba/morning-dashboard/internal/store"
	"github.com/kunya-oba/morning-dashboard/internal/util"
)

// MainModel is the root bubbletea model. It wraps the dashboard in a
// recover boundary: an update panic drops into an error screen offering a
// full reload instead of tearing the program down.
type MainModel struct {
	store     *store.Store
	cfg       config.Config
	dashboard DashboardModel
	crashed   error

	width, height int
}

func NewMainModel(s *store.Store, cfg config.Config) MainModel {
	return MainModel{
		store:     s,
		cfg:       cfg,
		dashboard: NewDashboardModel(s, cfg),
	}
}

func (m MainModel) Init() tea.Cmd {
	return m.dashboard.Init()
}

func (m MainModel) Update(msg tea.Msg) (model tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			util.LogError("tui: update panic", fmt.Errorf("%v", r))
			m.crashed = fmt.Errorf("%v", r)
			model, cmd = m, nil
		}
	}()

	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = msg.Width, msg.Height
	}

	if m.crashed != nil {
		if key, ok := msg.(tea.KeyMsg); ok {
			switch key.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			case "r":
				// Full reload: rebuild the dashboard from the store.
				m.crashed = nil
				m.dashboard = NewDashboardModel(m.store, m.cfg)
				return m, tea.Batch(m.dashboard.Init(), resize(m.width, m.height))
			}
		}
		return m, nil
	}

	next, cmd := m.dashboard.Update(msg)
	m.dashboard = next.(DashboardModel)
	return m, cmd
}

func resize(w, h int) tea.Cmd {
	return func() tea.Msg { return tea.WindowSizeMsg{Width: w, Height: h} }
}

func (m MainModel) View() string {
	if m.crashed != nil {
		th := m.dashboard.theme
		return th.Base.Render(
			th.Error.Render("問題が発生しました") + "\n\n" +
				th.Dim.Render(m.crashed.Error()) + "\n\n" +
				th.Text.Render("r 再読み込み / q 終了"))
	}
	return m.dashboard.View()
}
