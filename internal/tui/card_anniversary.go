package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kunya-oba/morning-dashboard/internal/feeds"
	"github.com/kunya-oba/morning-dashboard/internal/layout"
	"github.com/kunya-oba/morning-dashboard/internal/models"
)

type anniversaryCard struct {
	client   feeds.AnniversaryClient
	interval time.Duration

	seq     int
	loading bool
	entry   models.Anniversary
	hasData bool
	err     error
}

func newAnniversaryCard(client feeds.AnniversaryClient, interval time.Duration) *anniversaryCard {
	return &anniversaryCard{client: client, interval: interval}
}

func (c *anniversaryCard) ID() layout.CardID { return layout.CardAnniversary }

func (c *anniversaryCard) Init() tea.Cmd {
	return tea.Batch(c.fetch(), refreshTick(c.ID(), c.interval))
}

func (c *anniversaryCard) Refresh() tea.Cmd { return c.fetch() }

func (c *anniversaryCard) fetch() tea.Cmd {
	c.seq++
	seq := c.seq
	c.loading = true
	client := c.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		a, err := client.Fetch(ctx, timeNow())
		return anniversaryMsg{Seq: seq, Anniversary: a, Err: err}
	}
}

func (c *anniversaryCard) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case refreshTickMsg:
		if msg.Card != c.ID() {
			return nil
		}
		return tea.Batch(c.fetch(), refreshTick(c.ID(), c.interval))
	case anniversaryMsg:
		if msg.Seq != c.seq {
			return nil
		}
		c.loading = false
		c.err = msg.Err
		if msg.Err == nil {
			c.entry = msg.Anniversary
			c.hasData = true
		}
	}
	return nil
}

func (c *anniversaryCard) View(th Theme, width int) string {
	if c.loading && !c.hasData {
		return th.Dim.Render("読み込み中...")
	}
	if !c.hasData {
		return errorLine(th, c.err)
	}
	return th.Accent.Render("🎉 "+c.entry.Title) + "\n" + th.Text.Render(c.entry.Description)
}
