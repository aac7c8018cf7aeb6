package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kunya-oba/morning-dashboard/internal/layout"
	"github.com/kunya-oba/morning-dashboard/internal/models"
	"github.com/kunya-oba/morning-dashboard/internal/tasks"
	"github.com/kunya-oba/morning-dashboard/internal/util"
)

var routineTemplateOrder = []string{"minimal", "standard", "full"}

type routineCard struct {
	routine *tasks.Routine

	day      string
	progress models.DailyProgress
	cursor   int
	bar      progress.Model
	tplIdx   int
}

func newRoutineCard(r *tasks.Routine) *routineCard {
	day := util.DayKey(timeNow())
	return &routineCard{
		routine:  r,
		day:      day,
		progress: r.ProgressFor(day),
		bar:      progress.New(progress.WithDefaultGradient()),
		tplIdx:   1,
	}
}

func (c *routineCard) ID() layout.CardID { return layout.CardRoutine }

func (c *routineCard) Init() tea.Cmd    { return nil }
func (c *routineCard) Refresh() tea.Cmd { return nil }

func (c *routineCard) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case rolloverTickMsg:
		// A new calendar day resets the visible checklist.
		if day := util.DayKey(timeNow()); day != c.day {
			c.day = day
			c.progress = c.routine.ProgressFor(day)
			c.cursor = 0
		}
	case tea.KeyMsg:
		c.handleKey(msg)
	}
	return nil
}

func (c *routineCard) handleKey(key tea.KeyMsg) {
	items := c.routine.Items()
	switch key.String() {
	case "j", "down":
		c.cursor = util.Clamp(c.cursor+1, 0, len(items)-1)
	case "k", "up":
		c.cursor = util.Clamp(c.cursor-1, 0, len(items)-1)
	case " ", "enter":
		if c.cursor < len(items) {
			c.progress = c.routine.Toggle(items[c.cursor].ID, c.day, timeNow())
		}
	case "T":
		c.tplIdx = (c.tplIdx + 1) % len(routineTemplateOrder)
		c.routine.ApplyTemplate(routineTemplateOrder[c.tplIdx])
		c.progress = c.routine.ProgressFor(c.day)
		c.cursor = 0
	}
}

func (c *routineCard) View(th Theme, width int) string {
	items := c.routine.Items()
	var b strings.Builder

	done := 0
	for _, it := range items {
		if completedItem(c.progress, it.ID) {
			done++
		}
	}
	if len(items) > 0 {
		c.bar.Width = util.Clamp(width-10, 10, 40)
		b.WriteString(c.bar.ViewAs(float64(done)/float64(len(items))) + "\n")
	}

	for i, it := range items {
		line := it.Icon + " "
		if completedItem(c.progress, it.ID) {
			line += "[x] "
		} else {
			line += "[ ] "
		}
		line += it.Title
		style := th.Text
		if completedItem(c.progress, it.ID) {
			style = th.Dim
		}
		if i == c.cursor {
			style = th.Focused
		}
		b.WriteString(style.Render(line) + "\n")
	}

	streak := c.routine.Streak()
	b.WriteString(th.Accent.Render(fmt.Sprintf("🔥 連続 %d日 (最長 %d日)", streak.Current, streak.Longest)))
	b.WriteString("  " + th.Dim.Render("残り "+FormatMinutes(c.routine.RemainingMinutes(c.progress))))
	return b.String()
}

func completedItem(p models.DailyProgress, id string) bool {
	for _, done := range p.CompletedItems {
		if done == id {
			return true
		}
	}
	return false
}
