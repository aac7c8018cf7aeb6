package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kunya-oba/morning-dashboard/internal/tasks"
)

func TestClockTickAdvancesPomodoro(t *testing.T) {
	p := tasks.NewPomodoro(openTuiStore(t))
	c := newClockCard(p)
	p.Start()

	base := time.Now()
	c.lastTick = base
	c.Update(clockTickMsg(base.Add(time.Second)))

	want := 25*time.Minute - time.Second
	if p.Remaining != want {
		t.Fatalf("expected %v remaining, got %v", want, p.Remaining)
	}
	if c.now.Sub(base) != time.Second {
		t.Fatalf("clock should track the tick time")
	}
}

func TestClockStartStopKey(t *testing.T) {
	p := tasks.NewPomodoro(openTuiStore(t))
	c := newClockCard(p)

	c.Update(keyRune('s'))
	if p.Phase != tasks.PomodoroWork {
		t.Fatalf("s should start a work phase, got %v", p.Phase)
	}
	c.Update(keyRune('s'))
	if p.Phase != tasks.PomodoroIdle {
		t.Fatalf("s again should stop the timer, got %v", p.Phase)
	}
}

func TestClockSettingsEditorSaves(t *testing.T) {
	s := openTuiStore(t)
	p := tasks.NewPomodoro(s)
	c := newClockCard(p)

	c.Update(keyRune('o'))
	if !c.capturing() {
		t.Fatalf("editor should capture keys")
	}
	// Work +5 minutes, then save.
	c.Update(keyRune('l'))
	c.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got := p.Settings().WorkMinutes; got != 30 {
		t.Fatalf("expected 30 work minutes saved, got %d", got)
	}
	if c.capturing() {
		t.Fatalf("editor should close on save")
	}
}
