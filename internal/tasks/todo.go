// Package tasks holds the interactive list state: the todo list, the
// morning routine checklist with streaks, and the registered weather
// locations. Every mutation persists before returning.
package tasks

import (
	"sort"
	"time"

	"github.com/kunya-oba/morning-dashboard/internal/config"
	"github.com/kunya-oba/morning-dashboard/internal/models"
	"github.com/kunya-oba/morning-dashboard/internal/store"
	"github.com/kunya-oba/morning-dashboard/internal/util"
)

// TodoList manages the persisted task array.
type TodoList struct {
	store *store.Store
	tasks []models.Task
}

// NewTodoList loads the persisted tasks, or starts empty.
func NewTodoList(s *store.Store) *TodoList {
	l := &TodoList{store: s}
	s.Get(config.KeyTasks, &l.tasks)
	return l
}

// Tasks returns a copy of the current list.
func (l *TodoList) Tasks() []models.Task {
	out := make([]models.Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// Add appends a new task and persists.
func (l *TodoList) Add(title string, priority models.Priority, dueDate string) models.Task {
	t := models.Task{
		ID:        util.GenerateID(),
		Title:     title,
		Priority:  priority,
		DueDate:   dueDate,
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	l.tasks = append(l.tasks, t)
	l.persist()
	return t
}

// Toggle flips a task's completed flag. Unknown ids are ignored.
func (l *TodoList) Toggle(id string) {
	for i := range l.tasks {
		if l.tasks[i].ID == id {
			l.tasks[i].Completed = !l.tasks[i].Completed
			l.persist()
			return
		}
	}
}

// Remove deletes a task. Unknown ids are ignored.
func (l *TodoList) Remove(id string) {
	for i := range l.tasks {
		if l.tasks[i].ID == id {
			l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
			l.persist()
			return
		}
	}
}

// Move relocates the task with id active to the slot currently held by
// over: remove at the old index, insert at the target index. No-op when
// either id is absent or they are equal.
func (l *TodoList) Move(active, over string) {
	oldIdx, newIdx := l.indexOf(active), l.indexOf(over)
	if oldIdx < 0 || newIdx < 0 || oldIdx == newIdx {
		return
	}
	moved := l.tasks[oldIdx]
	rest := append(l.tasks[:oldIdx:oldIdx], l.tasks[oldIdx+1:]...)
	next := make([]models.Task, 0, len(l.tasks))
	next = append(next, rest[:newIdx]...)
	next = append(next, moved)
	next = append(next, rest[newIdx:]...)
	l.tasks = next
	l.persist()
}

func (l *TodoList) indexOf(id string) int {
	for i, t := range l.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// CompletionPercent is the share of completed tasks, 0 on an empty list.
func (l *TodoList) CompletionPercent() float64 {
	if len(l.tasks) == 0 {
		return 0
	}
	done := 0
	for _, t := range l.tasks {
		if t.Completed {
			done++
		}
	}
	return float64(done) / float64(len(l.tasks))
}

// Overdue reports whether a task's due date has passed relative to today.
// Completed tasks are never overdue.
func Overdue(t models.Task, today string) bool {
	if t.Completed || t.DueDate == "" {
		return false
	}
	return t.DueDate < today
}

// SortedByPriority returns the tasks ordered high, medium, low, preserving
// insertion order within each band. The stored order is untouched.
func (l *TodoList) SortedByPriority() []models.Task {
	out := l.Tasks()
	rank := map[models.Priority]int{
		models.PriorityHigh: 0, models.PriorityMedium: 1, models.PriorityLow: 2,
	}
	sort.SliceStable(out, func(i, j int) bool {
		return rank[out[i].Priority] < rank[out[j].Priority]
	})
	return out
}

func (l *TodoList) persist() {
	util.LogError("tasks: persist todo list", l.store.Set(config.KeyTasks, l.tasks))
}
