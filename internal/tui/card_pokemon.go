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
	"github.com/kunya-oba/morning-dashboard/internal/util"
)

type pokemonCard struct {
	client feeds.PokemonClient

	seq     int
	loading bool
	spin    spinner.Model
	pokemon models.Pokemon
	hasData bool
	err     error
}

func newPokemonCard(client feeds.PokemonClient) *pokemonCard {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return &pokemonCard{client: client, spin: sp}
}

func (c *pokemonCard) ID() layout.CardID { return layout.CardPokemon }

func (c *pokemonCard) Init() tea.Cmd { return c.load(false) }

// Refresh rolls a fresh pick for today instead of serving the cache.
func (c *pokemonCard) Refresh() tea.Cmd { return c.load(true) }

func (c *pokemonCard) load(force bool) tea.Cmd {
	c.seq++
	seq := c.seq
	c.loading = true
	client := c.client
	return tea.Batch(c.spin.Tick, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		day := util.DayKey(timeNow())
		var (
			p   models.Pokemon
			err error
		)
		if force {
			p, err = client.Refresh(ctx, day)
		} else {
			p, err = client.Today(ctx, day)
		}
		return pokemonMsg{Seq: seq, Pokemon: p, Err: err}
	})
}

func (c *pokemonCard) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case rolloverTickMsg:
		// Past midnight the cache no longer matches; load the new day.
		if !c.loading && c.hasData {
			return c.load(false)
		}
	case pokemonMsg:
		if msg.Seq != c.seq {
			return nil
		}
		c.loading = false
		c.err = msg.Err
		if msg.Err == nil {
			c.pokemon = msg.Pokemon
			c.hasData = true
		}
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

func (c *pokemonCard) View(th Theme, width int) string {
	if c.loading && !c.hasData {
		return c.spin.View() + " 読み込み中..."
	}
	if !c.hasData {
		return errorLine(th, c.err)
	}

	p := c.pokemon
	types := make([]string, 0, len(p.Types))
	for _, t := range p.Types {
		if ja, ok := feeds.TypeNamesJa[t]; ok {
			types = append(types, ja)
		} else {
			types = append(types, t)
		}
	}

	var b strings.Builder
	b.WriteString(th.Accent.Render(p.JapaneseName) + " " + th.Dim.Render(fmt.Sprintf("No.%d", p.ID)) + "\n")
	b.WriteString(th.Text.Render("タイプ: "+strings.Join(types, " / ")) + "\n")
	b.WriteString(th.Dim.Render(fmt.Sprintf("高さ %.1fm  重さ %.1fkg", float64(p.Height)/10, float64(p.Weight)/10)))
	if c.err != nil {
		b.WriteString("\n" + errorLine(th, c.err))
	}
	return b.String()
}
