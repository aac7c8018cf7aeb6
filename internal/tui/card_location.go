package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kunya-oba/morning-dashboard/internal/geo"
	"github.com/kunya-oba/morning-dashboard/internal/layout"
	"github.com/kunya-oba/morning-dashboard/internal/tasks"
	"github.com/kunya-oba/morning-dashboard/internal/util"
)

// locationCard manages the registered weather targets. Selecting one
// broadcasts locationChangedMsg so the weather card refetches.
type locationCard struct {
	locations *tasks.Locations
	resolver  geo.Resolver

	cursor    int
	searching bool
	search    textinput.Model
	searchIdx int
	waiting   bool
}

func newLocationCard(locations *tasks.Locations, resolver geo.Resolver) *locationCard {
	si := textinput.New()
	si.Placeholder = "都市を検索..."
	si.Width = 24
	return &locationCard{locations: locations, resolver: resolver, search: si}
}

func (c *locationCard) ID() layout.CardID { return layout.CardLocation }

func (c *locationCard) Init() tea.Cmd    { return nil }
func (c *locationCard) Refresh() tea.Cmd { return nil }

func (c *locationCard) capturing() bool { return c.searching }

func (c *locationCard) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case positionMsg:
		c.waiting = false
		if msg.Loc == nil {
			return nil
		}
		c.locations.AdoptDevicePosition(*msg.Loc)
		return broadcastLocation(c.locations)
	case tea.KeyMsg:
		if c.searching {
			return c.updateSearching(msg)
		}
		return c.updateList(msg)
	}
	return nil
}

func (c *locationCard) updateList(key tea.KeyMsg) tea.Cmd {
	list := c.locations.List()
	switch key.String() {
	case "j", "down":
		c.cursor = util.Clamp(c.cursor+1, 0, len(list)-1)
	case "k", "up":
		c.cursor = util.Clamp(c.cursor-1, 0, len(list)-1)
	case "enter", " ":
		if c.cursor < len(list) {
			c.locations.Select(list[c.cursor].ID)
			return broadcastLocation(c.locations)
		}
	case "d":
		if c.cursor < len(list) {
			c.locations.Remove(list[c.cursor].ID)
			c.cursor = util.Clamp(c.cursor, 0, len(c.locations.List())-1)
			return broadcastLocation(c.locations)
		}
	case "/":
		c.searching = true
		c.search.SetValue("")
		c.searchIdx = 0
		return c.search.Focus()
	case "g":
		c.waiting = true
		resolver := c.resolver
		return func() tea.Msg {
			loc, err := resolver.Resolve(context.Background())
			util.LogError("tui: resolve position", err)
			return positionMsg{Loc: loc}
		}
	}
	return nil
}

func (c *locationCard) updateSearching(key tea.KeyMsg) tea.Cmd {
	matches := tasks.SearchPresets(c.search.Value())
	switch key.String() {
	case "esc":
		c.searching = false
		return nil
	case "down", "ctrl+n":
		c.searchIdx = util.Clamp(c.searchIdx+1, 0, len(matches)-1)
		return nil
	case "up", "ctrl+p":
		c.searchIdx = util.Clamp(c.searchIdx-1, 0, len(matches)-1)
		return nil
	case "enter":
		if c.searchIdx < len(matches) {
			c.locations.AddPreset(matches[c.searchIdx])
			c.searching = false
			return broadcastLocation(c.locations)
		}
		return nil
	}
	var cmd tea.Cmd
	c.search, cmd = c.search.Update(key)
	c.searchIdx = 0
	return cmd
}

func broadcastLocation(locations *tasks.Locations) tea.Cmd {
	loc := locations.Current()
	return func() tea.Msg { return locationChangedMsg{Loc: loc} }
}

func (c *locationCard) View(th Theme, width int) string {
	var b strings.Builder

	if c.searching {
		b.WriteString(c.search.View() + "\n")
		matches := tasks.SearchPresets(c.search.Value())
		shown := matches
		if len(shown) > 5 {
			shown = shown[:5]
		}
		for i, p := range shown {
			line := p.Name
			if p.Prefecture != "" {
				line += " (" + p.Prefecture + ")"
			} else if p.Country != "" {
				line += " (" + p.Country + ")"
			}
			if i == c.searchIdx {
				b.WriteString(th.Focused.Render("▸ "+line) + "\n")
			} else {
				b.WriteString(th.Text.Render("  "+line) + "\n")
			}
		}
		b.WriteString(th.Dim.Render("enter 追加 / esc 戻る"))
		return b.String()
	}

	current := c.locations.Current()
	for i, l := range c.locations.List() {
		line := "  "
		if l.ID == current.ID {
			line = "● "
		}
		line += l.Name
		if l.IsCurrentLocation {
			line += " 📍"
		}
		style := th.Text
		if i == c.cursor {
			style = th.Focused
		}
		b.WriteString(style.Render(line) + "\n")
	}
	if c.waiting {
		b.WriteString(th.Dim.Render("現在地を取得中...") + "\n")
	}
	b.WriteString(th.Dim.Render("enter 選択 / d 削除 / / 検索 / g 現在地"))
	return b.String()
}
