package tasks

import (
	"time"

	"github.com/kunya-oba/morning-dashboard/internal/config"
	"github.com/kunya-oba/morning-dashboard/internal/models"
	"github.com/kunya-oba/morning-dashboard/internal/store"
	"github.com/kunya-oba/morning-dashboard/internal/util"
)

// PomodoroPhase is the timer's current mode.
type PomodoroPhase int

const (
	PomodoroIdle PomodoroPhase = iota
	PomodoroWork
	PomodoroBreak
)

// Pomodoro is the work/break timer state machine. Ticks are fed in by the
// caller; the machine never schedules its own.
type Pomodoro struct {
	store    *store.Store
	settings models.TimerSettings

	Phase     PomodoroPhase
	Remaining time.Duration
	Sessions  int
}

// NewPomodoro loads the persisted settings, defaulting to 25/5 without
// auto-start.
func NewPomodoro(s *store.Store) *Pomodoro {
	settings := store.GetOr(s, config.KeyPomodoro, models.TimerSettings{
		WorkMinutes:  config.DefaultWorkMinutes,
		BreakMinutes: config.DefaultBreakMinutes,
	})
	if settings.WorkMinutes <= 0 {
		settings.WorkMinutes = config.DefaultWorkMinutes
	}
	if settings.BreakMinutes <= 0 {
		settings.BreakMinutes = config.DefaultBreakMinutes
	}
	return &Pomodoro{store: s, settings: settings}
}

// Settings returns the persisted timer settings.
func (p *Pomodoro) Settings() models.TimerSettings { return p.settings }

// UpdateSettings persists new settings. A running phase keeps its current
// remaining time; the new durations apply from the next phase.
func (p *Pomodoro) UpdateSettings(s models.TimerSettings) {
	if s.WorkMinutes <= 0 || s.BreakMinutes <= 0 {
		return
	}
	p.settings = s
	util.LogError("tasks: persist pomodoro settings", p.store.Set(config.KeyPomodoro, s))
}

// Start begins a work phase. Starting while running restarts it.
func (p *Pomodoro) Start() {
	p.Phase = PomodoroWork
	p.Remaining = time.Duration(p.settings.WorkMinutes) * time.Minute
}

// Stop returns the machine to idle.
func (p *Pomodoro) Stop() {
	p.Phase = PomodoroIdle
	p.Remaining = 0
}

// Tick advances the timer by d. A work phase that expires increments the
// session counter and rolls into a break; an expired break rolls into the
// next work phase when auto-start is on, idle otherwise.
func (p *Pomodoro) Tick(d time.Duration) {
	if p.Phase == PomodoroIdle {
		return
	}
	p.Remaining -= d
	if p.Remaining > 0 {
		return
	}
	switch p.Phase {
	case PomodoroWork:
		p.Sessions++
		p.Phase = PomodoroBreak
		p.Remaining = time.Duration(p.settings.BreakMinutes) * time.Minute
	case PomodoroBreak:
		if p.settings.AutoStart {
			p.Start()
		} else {
			p.Stop()
		}
	}
}
