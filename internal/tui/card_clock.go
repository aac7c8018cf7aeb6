package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kunya-oba/morning-dashboard/internal/layout"
	"github.com/kunya-oba/morning-dashboard/internal/models"
	"github.com/kunya-oba/morning-dashboard/internal/tasks"
)

// clockCard shows the wall clock and hosts the pomodoro timer. The shared
// one-second tick is scheduled by the dashboard, not here.
type clockCard struct {
	pomodoro *tasks.Pomodoro
	now      time.Time
	lastTick time.Time

	editing   bool
	editField int // 0 work, 1 break, 2 autostart
	editWork  int
	editBreak int
	editAuto  bool
}

func newClockCard(p *tasks.Pomodoro) *clockCard {
	now := time.Now()
	return &clockCard{pomodoro: p, now: now, lastTick: now}
}

func (c *clockCard) ID() layout.CardID { return layout.CardClock }

func (c *clockCard) Init() tea.Cmd    { return nil }
func (c *clockCard) Refresh() tea.Cmd { return nil }

func (c *clockCard) capturing() bool { return c.editing }

func (c *clockCard) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case clockTickMsg:
		now := time.Time(msg)
		if !c.lastTick.IsZero() {
			c.pomodoro.Tick(now.Sub(c.lastTick))
		}
		c.now = now
		c.lastTick = now
	case tea.KeyMsg:
		// The dashboard routes key events to the focused card only.
		c.handleKey(msg)
	}
	return nil
}

func (c *clockCard) handleKey(msg tea.KeyMsg) {
	if c.editing {
		c.handleEditKey(msg)
		return
	}
	switch msg.String() {
	case "s":
		if c.pomodoro.Phase == tasks.PomodoroIdle {
			c.pomodoro.Start()
		} else {
			c.pomodoro.Stop()
		}
	case "o":
		s := c.pomodoro.Settings()
		c.editing = true
		c.editField = 0
		c.editWork, c.editBreak, c.editAuto = s.WorkMinutes, s.BreakMinutes, s.AutoStart
	}
}

func (c *clockCard) handleEditKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "esc":
		c.editing = false
	case "enter":
		c.pomodoro.UpdateSettings(models.TimerSettings{
			WorkMinutes: c.editWork, BreakMinutes: c.editBreak, AutoStart: c.editAuto,
		})
		c.editing = false
	case "tab", "down", "j":
		c.editField = (c.editField + 1) % 3
	case "up", "k":
		c.editField = (c.editField + 2) % 3
	case "left", "h":
		c.adjust(-1)
	case "right", "l":
		c.adjust(1)
	}
}

func (c *clockCard) adjust(delta int) {
	switch c.editField {
	case 0:
		if next := c.editWork + delta*5; next >= 5 && next <= 120 {
			c.editWork = next
		}
	case 1:
		if next := c.editBreak + delta; next >= 1 && next <= 60 {
			c.editBreak = next
		}
	case 2:
		c.editAuto = !c.editAuto
	}
}

func (c *clockCard) View(th Theme, width int) string {
	var b strings.Builder
	b.WriteString(th.Accent.Render(c.now.Format("15:04:05")) + "  " + th.Dim.Render(FormatDateJa(c.now)) + "\n")

	if c.editing {
		return b.String() + c.editView(th)
	}

	p := c.pomodoro
	switch p.Phase {
	case tasks.PomodoroWork:
		b.WriteString(th.Warning.Render("作業中 ") + th.Text.Render(FormatCountdown(p.Remaining)))
	case tasks.PomodoroBreak:
		b.WriteString(th.Success.Render("休憩中 ") + th.Text.Render(FormatCountdown(p.Remaining)))
	default:
		b.WriteString(th.Dim.Render(fmt.Sprintf("ポモドーロ %d/%d分 (s で開始)",
			p.Settings().WorkMinutes, p.Settings().BreakMinutes)))
	}
	if p.Sessions > 0 {
		b.WriteString(th.Dim.Render(fmt.Sprintf("  完了 %d回", p.Sessions)))
	}
	return b.String()
}

func (c *clockCard) editView(th Theme) string {
	mark := func(field int, label string) string {
		if c.editField == field {
			return th.Focused.Render("▸ " + label)
		}
		return th.Text.Render("  " + label)
	}
	auto := "オフ"
	if c.editAuto {
		auto = "オン"
	}
	return mark(0, fmt.Sprintf("作業 %d分", c.editWork)) + "\n" +
		mark(1, fmt.Sprintf("休憩 %d分", c.editBreak)) + "\n" +
		mark(2, "自動開始 "+auto) + "\n" +
		th.Dim.Render("enter 保存 / esc 取消")
}
