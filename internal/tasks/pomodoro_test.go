package tasks

import (
	"testing"
	"time"

	"github.com/kunya-oba/morning-dashboard/internal/models"
)

func TestPomodoroDefaults(t *testing.T) {
	p := NewPomodoro(openTaskStore(t))
	s := p.Settings()
	if s.WorkMinutes != 25 || s.BreakMinutes != 5 || s.AutoStart {
		t.Fatalf("unexpected defaults: %+v", s)
	}
	if p.Phase != PomodoroIdle {
		t.Fatalf("timer should start idle")
	}
}

func TestPomodoroWorkRollsIntoBreak(t *testing.T) {
	p := NewPomodoro(openTaskStore(t))
	p.Start()
	if p.Phase != PomodoroWork || p.Remaining != 25*time.Minute {
		t.Fatalf("unexpected work phase: %v remaining %v", p.Phase, p.Remaining)
	}
	p.Tick(25 * time.Minute)
	if p.Phase != PomodoroBreak {
		t.Fatalf("expired work should roll into break, got %v", p.Phase)
	}
	if p.Sessions != 1 {
		t.Fatalf("expected 1 completed session, got %d", p.Sessions)
	}
	if p.Remaining != 5*time.Minute {
		t.Fatalf("break should run 5 minutes, got %v", p.Remaining)
	}
}

func TestPomodoroBreakEndsIdleWithoutAutoStart(t *testing.T) {
	p := NewPomodoro(openTaskStore(t))
	p.Start()
	p.Tick(25 * time.Minute)
	p.Tick(5 * time.Minute)
	if p.Phase != PomodoroIdle {
		t.Fatalf("break without auto-start should end idle, got %v", p.Phase)
	}
}

func TestPomodoroAutoStartLoops(t *testing.T) {
	p := NewPomodoro(openTaskStore(t))
	p.UpdateSettings(models.TimerSettings{WorkMinutes: 25, BreakMinutes: 5, AutoStart: true})
	p.Start()
	p.Tick(25 * time.Minute)
	p.Tick(5 * time.Minute)
	if p.Phase != PomodoroWork {
		t.Fatalf("auto-start should begin the next work phase, got %v", p.Phase)
	}
}

func TestPomodoroSettingsPersist(t *testing.T) {
	s := openTaskStore(t)
	p := NewPomodoro(s)
	p.UpdateSettings(models.TimerSettings{WorkMinutes: 50, BreakMinutes: 10})

	if got := NewPomodoro(s).Settings(); got.WorkMinutes != 50 || got.BreakMinutes != 10 {
		t.Fatalf("settings should persist, got %+v", got)
	}
}

func TestPomodoroRejectsNonPositiveSettings(t *testing.T) {
	p := NewPomodoro(openTaskStore(t))
	p.UpdateSettings(models.TimerSettings{WorkMinutes: 0, BreakMinutes: 5})
	if p.Settings().WorkMinutes != 25 {
		t.Fatalf("invalid settings should be ignored, got %+v", p.Settings())
	}
}
