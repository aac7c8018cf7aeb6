package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/kunya-oba/morning-dashboard/internal/layout"
	"github.com/kunya-oba/morning-dashboard/internal/util"
)

// Card is one dashboard tile. Update receives every message; cards filter
// on their own message types and, when focused, their own key bindings.
type Card interface {
	ID() layout.CardID
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View(th Theme, width int) string
	// Refresh starts a manual fetch cycle; cards with nothing to fetch
	// return nil.
	Refresh() tea.Cmd
}

// renderFrame draws the bordered card box with its title row.
func renderFrame(th Theme, id layout.CardID, body string, width int, focused, moving bool) string {
	title := th.CardTitle.Render(layout.Title(id))
	if moving {
		title = th.Warning.Render("⇄ " + layout.Title(id))
	} else if focused {
		title = th.Focused.Render("▸ " + layout.Title(id))
	}

	border := th.Border
	if focused {
		border = lipgloss.Color("205")
	}
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(width)

	inner := width - 2
	lines := strings.Split(body, "\n")
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, inner, "…")
	}
	return frame.Render(title + "\n" + strings.Join(lines, "\n"))
}

// safeView renders a card behind a recover boundary. A panicking View is
// contained to its own cell; the rest of the grid keeps rendering.
func safeView(card Card, th Theme, width int, focused, moving bool) (out string) {
	defer func() {
		if r := recover(); r != nil {
			util.LogError("tui: card render panic", fmt.Errorf("%s: %v", card.ID(), r))
			body := th.Error.Render("このカードの表示に失敗しました") + "\n" + th.Dim.Render("r で再読み込み")
			out = renderFrame(th, card.ID(), body, width, focused, moving)
		}
	}()
	return renderFrame(th, card.ID(), card.View(th, width-2), width, focused, moving)
}

// errorLine is the shared card-local error footer.
func errorLine(th Theme, err error) string {
	if err == nil {
		return ""
	}
	return th.Error.Render("取得に失敗しました") + " " + th.Dim.Render("(r で再試行)")
}
