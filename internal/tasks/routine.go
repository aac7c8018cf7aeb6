package tasks

import (
	"sort"
	"time"

	"github.com/kunya-oba/morning-dashboard/internal/config"
	"github.com/kunya-oba/morning-dashboard/internal/models"
	"github.com/kunya-oba/morning-dashboard/internal/store"
	"github.com/kunya-oba/morning-dashboard/internal/util"
)

// Routine manages the morning checklist: item configuration, per-day
// progress, and the completion streak.
type Routine struct {
	store *store.Store
	items []models.RoutineItem
}

// NewRoutine loads the persisted item configuration, falling back to the
// standard template.
func NewRoutine(s *store.Store) *Routine {
	r := &Routine{store: s}
	if !s.Get(config.KeyRoutineItems, &r.items) || len(r.items) == 0 {
		r.items = append([]models.RoutineItem(nil), models.DefaultRoutineItems...)
	}
	return r
}

// Items returns the enabled items in display order.
func (r *Routine) Items() []models.RoutineItem {
	out := make([]models.RoutineItem, 0, len(r.items))
	for _, it := range r.items {
		if it.Enabled {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// AllItems returns every configured item, enabled or not.
func (r *Routine) AllItems() []models.RoutineItem {
	out := make([]models.RoutineItem, len(r.items))
	copy(out, r.items)
	return out
}

// SetEnabled flips one item's enabled flag and persists the configuration.
func (r *Routine) SetEnabled(id string, enabled bool) {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Enabled = enabled
			r.persistItems()
			return
		}
	}
}

// ApplyTemplate replaces the item configuration with a named template.
// Unknown template names are ignored.
func (r *Routine) ApplyTemplate(name string) {
	tpl, ok := models.RoutineTemplates[name]
	if !ok {
		return
	}
	r.items = append([]models.RoutineItem(nil), tpl...)
	r.persistItems()
}

// ProgressFor returns the recorded progress for a calendar day, empty when
// the day has none yet.
func (r *Routine) ProgressFor(day string) models.DailyProgress {
	var p models.DailyProgress
	if !r.store.Get(config.RoutineDayKey(day), &p) || p.Date != day {
		return models.DailyProgress{Date: day, Timestamps: map[string]string{}}
	}
	if p.Timestamps == nil {
		p.Timestamps = map[string]string{}
	}
	return p
}

// Toggle flips one item's completion for the day and persists. Completing
// the final enabled item updates the streak.
func (r *Routine) Toggle(itemID, day string, now time.Time) models.DailyProgress {
	p := r.ProgressFor(day)
	if idx := indexOfString(p.CompletedItems, itemID); idx >= 0 {
		p.CompletedItems = append(p.CompletedItems[:idx], p.CompletedItems[idx+1:]...)
		delete(p.Timestamps, itemID)
		p.CompletedAt = ""
	} else {
		p.CompletedItems = append(p.CompletedItems, itemID)
		p.Timestamps[itemID] = now.Format(time.RFC3339)
		if r.allDone(p) {
			p.CompletedAt = now.Format(time.RFC3339)
			r.recordCompletion(day)
		}
	}
	util.LogError("tasks: persist routine progress", r.store.Set(config.RoutineDayKey(day), p))
	return p
}

// RemainingMinutes sums the estimates of the enabled items not yet done.
func (r *Routine) RemainingMinutes(p models.DailyProgress) int {
	total := 0
	for _, it := range r.Items() {
		if indexOfString(p.CompletedItems, it.ID) < 0 {
			total += it.EstimatedMinutes
		}
	}
	return total
}

// Streak returns the persisted streak state.
func (r *Routine) Streak() models.StreakInfo {
	return store.GetOr(r.store, config.KeyRoutineStreak, models.StreakInfo{})
}

// recordCompletion applies the streak rule for a fully completed day:
// completing again on the already-recorded day changes nothing; completing
// the day after the last recorded one extends the run; anything else
// starts a new run of one.
func (r *Routine) recordCompletion(day string) {
	s := r.Streak()
	switch s.LastCompletedDate {
	case day:
		return
	case previousDay(day):
		s.Current++
	default:
		s.Current = 1
	}
	if s.Current > s.Longest {
		s.Longest = s.Current
	}
	s.LastCompletedDate = day
	util.LogError("tasks: persist streak", r.store.Set(config.KeyRoutineStreak, s))
}

func (r *Routine) allDone(p models.DailyProgress) bool {
	for _, it := range r.Items() {
		if indexOfString(p.CompletedItems, it.ID) < 0 {
			return false
		}
	}
	return len(r.Items()) > 0
}

func (r *Routine) persistItems() {
	util.LogError("tasks: persist routine items", r.store.Set(config.KeyRoutineItems, r.items))
}

func previousDay(day string) string {
	t, err := time.ParseInLocation("2006-01-02", day, time.Local)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, -1).Format("2006-01-02")
}

func indexOfString(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
