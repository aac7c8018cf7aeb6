package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kunya-oba/morning-dashboard/internal/feeds"
	"github.com/kunya-oba/morning-dashboard/internal/layout"
	"github.com/kunya-oba/morning-dashboard/internal/models"
)

type quoteCard struct {
	client   feeds.QuoteClient
	interval time.Duration

	seq     int
	loading bool
	spin    spinner.Model
	quote   models.Quote
	hasData bool
}

func newQuoteCard(client feeds.QuoteClient, interval time.Duration) *quoteCard {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return &quoteCard{client: client, interval: interval, spin: sp}
}

func (c *quoteCard) ID() layout.CardID { return layout.CardQuote }

func (c *quoteCard) Init() tea.Cmd {
	return tea.Batch(c.fetch(), refreshTick(c.ID(), c.interval))
}

func (c *quoteCard) Refresh() tea.Cmd { return c.fetch() }

func (c *quoteCard) fetch() tea.Cmd {
	c.seq++
	seq := c.seq
	c.loading = true
	client := c.client
	return tea.Batch(c.spin.Tick, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		q, err := client.Fetch(ctx)
		return quoteMsg{Seq: seq, Quote: q, Err: err}
	})
}

func (c *quoteCard) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case refreshTickMsg:
		if msg.Card != c.ID() {
			return nil
		}
		return tea.Batch(c.fetch(), refreshTick(c.ID(), c.interval))
	case quoteMsg:
		if msg.Seq != c.seq {
			return nil
		}
		c.loading = false
		if msg.Err != nil {
			// Total source failure falls back to the fixed quote; the
			// card never shows an error state.
			if !c.hasData {
				c.quote = feeds.FallbackQuote
				c.hasData = true
			}
			return nil
		}
		c.quote = msg.Quote
		c.hasData = true
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

func (c *quoteCard) View(th Theme, width int) string {
	if c.loading && !c.hasData {
		return c.spin.View() + " 読み込み中..."
	}
	if !c.hasData {
		return th.Dim.Render("名言を取得します...")
	}
	var b strings.Builder
	b.WriteString(th.Text.Render("「"+c.quote.TextJa+"」") + "\n")
	if c.quote.TextJa != c.quote.Text {
		b.WriteString(th.Dim.Render(c.quote.Text) + "\n")
	}
	b.WriteString(th.Accent.Render("— " + c.quote.Author))
	return b.String()
}
