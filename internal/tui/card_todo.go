package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kunya-oba/morning-dashboard/internal/layout"
	"github.com/kunya-oba/morning-dashboard/internal/models"
	"github.com/kunya-oba/morning-dashboard/internal/tasks"
	"github.com/kunya-oba/morning-dashboard/internal/util"
)

// timeNow is stubbed in tests.
var timeNow = time.Now

var priorityMarks = map[models.Priority]string{
	models.PriorityHigh:   "!",
	models.PriorityMedium: "·",
	models.PriorityLow:    " ",
}

type todoCard struct {
	list *tasks.TodoList

	cursor   int
	adding   bool
	input    textinput.Model
	priority models.Priority
	bar      progress.Model
	moving   bool
}

func newTodoCard(list *tasks.TodoList) *todoCard {
	ti := textinput.New()
	ti.Placeholder = "新しいタスク..."
	ti.CharLimit = 100
	ti.Width = 30
	return &todoCard{
		list:     list,
		input:    ti,
		priority: models.PriorityMedium,
		bar:      progress.New(progress.WithDefaultGradient()),
	}
}

func (c *todoCard) ID() layout.CardID { return layout.CardTodo }

func (c *todoCard) Init() tea.Cmd    { return nil }
func (c *todoCard) Refresh() tea.Cmd { return nil }

func (c *todoCard) capturing() bool { return c.adding }

func (c *todoCard) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if c.adding {
		return c.updateAdding(key)
	}

	ts := c.list.Tasks()
	switch key.String() {
	case "a":
		c.adding = true
		c.input.SetValue("")
		return c.input.Focus()
	case "j", "down":
		if c.cursor < len(ts)-1 {
			if c.moving {
				c.list.Move(ts[c.cursor].ID, ts[c.cursor+1].ID)
			}
			c.cursor++
		}
	case "k", "up":
		if c.cursor > 0 {
			if c.moving {
				c.list.Move(ts[c.cursor].ID, ts[c.cursor-1].ID)
			}
			c.cursor--
		}
	case " ", "enter":
		if c.moving {
			c.moving = false
		} else if c.cursor < len(ts) {
			c.list.Toggle(ts[c.cursor].ID)
		}
	case "d":
		if c.cursor < len(ts) {
			c.list.Remove(ts[c.cursor].ID)
			c.cursor = util.Clamp(c.cursor, 0, len(ts)-2)
		}
	case "M":
		if len(ts) > 1 {
			c.moving = !c.moving
		}
	case "p":
		c.priority = nextPriority(c.priority)
	}
	return nil
}

func (c *todoCard) updateAdding(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "esc":
		c.adding = false
		return nil
	case "enter":
		title := strings.TrimSpace(c.input.Value())
		if title != "" {
			c.list.Add(title, c.priority, "")
		}
		c.adding = false
		return nil
	}
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(key)
	return cmd
}

func nextPriority(p models.Priority) models.Priority {
	switch p {
	case models.PriorityHigh:
		return models.PriorityMedium
	case models.PriorityMedium:
		return models.PriorityLow
	default:
		return models.PriorityHigh
	}
}

func (c *todoCard) View(th Theme, width int) string {
	ts := c.list.Tasks()
	var b strings.Builder

	if len(ts) > 0 {
		c.bar.Width = util.Clamp(width-10, 10, 40)
		b.WriteString(c.bar.ViewAs(c.list.CompletionPercent()) + "\n")
	}

	if len(ts) == 0 && !c.adding {
		b.WriteString(th.Dim.Render("タスクはありません (a で追加)"))
		return b.String()
	}

	today := util.DayKey(timeNow())
	for i, t := range ts {
		line := priorityMarks[t.Priority] + " "
		if t.Completed {
			line += "[x] "
		} else {
			line += "[ ] "
		}
		line += t.Title
		if tasks.Overdue(t, today) {
			line += " (期限切れ)"
		}

		style := th.Text
		if t.Completed {
			style = th.Dim.Strikethrough(true)
		}
		if i == c.cursor {
			if c.moving {
				style = th.Warning
			} else {
				style = th.Focused
			}
		}
		b.WriteString(style.Render(line) + "\n")
	}

	if c.adding {
		b.WriteString(c.input.View() + "\n")
		b.WriteString(th.Dim.Render(fmt.Sprintf("優先度: %s (p で変更)", c.priority)))
	} else {
		b.WriteString(th.Dim.Render("a 追加 / space 完了 / d 削除 / M 並替"))
	}
	return b.String()
}
