package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestCrashScreenOffersReload(t *testing.T) {
	m := NewMainModel(openTuiStore(t), testConfig())
	m.crashed = errors.New("render blew up")

	out := m.View()
	if !strings.Contains(out, "r 再読み込み") {
		t.Fatalf("crash screen should offer a reload: %q", out)
	}
}

func TestCrashedModelReloadsOnR(t *testing.T) {
	m := NewMainModel(openTuiStore(t), testConfig())
	m.crashed = errors.New("boom")

	next, cmd := m.Update(keyRune('r'))
	reloaded := next.(MainModel)
	if reloaded.crashed != nil {
		t.Fatalf("reload should clear the crash state")
	}
	if cmd == nil {
		t.Fatalf("reload should re-init the dashboard")
	}
}

func TestCrashedModelQuitsOnQ(t *testing.T) {
	m := NewMainModel(openTuiStore(t), testConfig())
	m.crashed = errors.New("boom")

	_, cmd := m.Update(keyRune('q'))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
}

func TestWindowSizePropagates(t *testing.T) {
	m := NewMainModel(openTuiStore(t), testConfig())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	got := next.(MainModel)
	if got.width != 100 || got.dashboard.width != 100 {
		t.Fatalf("window size should reach the dashboard, got %d/%d", got.width, got.dashboard.width)
	}
}
