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

type trainCard struct {
	client   feeds.TrainClient
	interval time.Duration

	seq     int
	loading bool
	spin    spinner.Model
	status  models.TrainStatus
	hasData bool
	err     error
	fetched time.Time
}

func newTrainCard(client feeds.TrainClient, interval time.Duration) *trainCard {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return &trainCard{client: client, interval: interval, spin: sp}
}

func (c *trainCard) ID() layout.CardID { return layout.CardTrain }

func (c *trainCard) Init() tea.Cmd {
	return tea.Batch(c.fetch(), refreshTick(c.ID(), c.interval))
}

func (c *trainCard) Refresh() tea.Cmd { return c.fetch() }

func (c *trainCard) fetch() tea.Cmd {
	c.seq++
	seq := c.seq
	c.loading = true
	client := c.client
	return tea.Batch(c.spin.Tick, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		st, err := client.Fetch(ctx)
		return trainMsg{Seq: seq, Status: st, Err: err}
	})
}

func (c *trainCard) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case refreshTickMsg:
		if msg.Card != c.ID() {
			return nil
		}
		return tea.Batch(c.fetch(), refreshTick(c.ID(), c.interval))
	case trainMsg:
		if msg.Seq != c.seq {
			return nil
		}
		c.loading = false
		c.err = msg.Err
		// The client always returns a renderable status, placeholder on
		// failure. Keep older real data over a fresh placeholder.
		if msg.Err == nil || !c.hasData {
			c.status = msg.Status
			c.hasData = true
			c.fetched = time.Now()
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

func (c *trainCard) View(th Theme, width int) string {
	var b strings.Builder
	if c.loading && !c.hasData {
		return c.spin.View() + " 読み込み中..."
	}

	st := c.status
	b.WriteString(th.Dim.Render(st.Operator+" "+st.Railway) + "\n")
	if st.Disrupted {
		b.WriteString(th.Error.Render("⚠ "+st.Status) + "\n")
	} else {
		b.WriteString(th.Success.Render("○ "+st.Status) + "\n")
	}
	if st.Detail != "" {
		b.WriteString(th.Text.Render(st.Detail))
	}
	if !c.fetched.IsZero() {
		b.WriteString("\n" + th.Dim.Render(c.fetched.Format("15:04")+" 更新"))
	}
	if c.err != nil {
		b.WriteString("\n" + errorLine(th, c.err))
	}
	return b.String()
}
