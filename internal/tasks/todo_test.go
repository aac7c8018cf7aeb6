package tasks

import (
	"testing"

	"github.com/kunya-oba/morning-dashboard/internal/models"
)

func newListWith(t *testing.T, titles ...string) *TodoList {
	t.Helper()
	l := NewTodoList(openTaskStore(t))
	for _, title := range titles {
		l.Add(title, models.PriorityMedium, "")
	}
	return l
}

func titles(tasks []models.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Title
	}
	return out
}

func TestAddToggleRemove(t *testing.T) {
	l := newListWith(t, "ゴミ出し")
	task := l.Tasks()[0]

	l.Toggle(task.ID)
	if !l.Tasks()[0].Completed {
		t.Fatalf("expected task completed after toggle")
	}
	l.Toggle(task.ID)
	if l.Tasks()[0].Completed {
		t.Fatalf("expected task reopened after second toggle")
	}
	l.Remove(task.ID)
	if len(l.Tasks()) != 0 {
		t.Fatalf("expected empty list after remove")
	}
}

func TestTodoPersistsAcrossReload(t *testing.T) {
	s := openTaskStore(t)
	l := NewTodoList(s)
	l.Add("資料作成", models.PriorityHigh, "2026-09-02")

	reloaded := NewTodoList(s)
	got := reloaded.Tasks()
	if len(got) != 1 || got[0].Title != "資料作成" || got[0].Priority != models.PriorityHigh {
		t.Fatalf("unexpected reloaded tasks: %+v", got)
	}
}

func TestMoveReordersList(t *testing.T) {
	l := newListWith(t, "一", "二", "三", "四")
	ts := l.Tasks()

	l.Move(ts[3].ID, ts[0].ID)
	want := []string{"四", "一", "二", "三"}
	got := titles(l.Tasks())
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestMoveUnknownOrSelfIsNoOp(t *testing.T) {
	l := newListWith(t, "一", "二")
	before := titles(l.Tasks())
	ts := l.Tasks()

	l.Move(ts[0].ID, ts[0].ID)
	l.Move("missing", ts[1].ID)
	l.Move(ts[0].ID, "missing")

	got := titles(l.Tasks())
	for i := range before {
		if got[i] != before[i] {
			t.Fatalf("expected %v unchanged, got %v", before, got)
		}
	}
}

func TestCompletionPercent(t *testing.T) {
	l := newListWith(t)
	if got := l.CompletionPercent(); got != 0 {
		t.Fatalf("empty list should be 0, got %v", got)
	}
	l.Add("一", models.PriorityLow, "")
	l.Add("二", models.PriorityLow, "")
	l.Toggle(l.Tasks()[0].ID)
	if got := l.CompletionPercent(); got != 0.5 {
		t.Fatalf("expected 0.5, got %v", got)
	}
}

func TestOverdue(t *testing.T) {
	today := "2026-09-01"
	cases := []struct {
		task models.Task
		want bool
	}{
		{models.Task{DueDate: "2026-08-31"}, true},
		{models.Task{DueDate: "2026-09-01"}, false},
		{models.Task{DueDate: "2026-08-31", Completed: true}, false},
		{models.Task{}, false},
	}
	for _, tc := range cases {
		if got := Overdue(tc.task, today); got != tc.want {
			t.Fatalf("Overdue(%+v) = %v, want %v", tc.task, got, tc.want)
		}
	}
}

func TestSortedByPriorityIsStable(t *testing.T) {
	l := NewTodoList(openTaskStore(t))
	l.Add("低1", models.PriorityLow, "")
	l.Add("高1", models.PriorityHigh, "")
	l.Add("中1", models.PriorityMedium, "")
	l.Add("高2", models.PriorityHigh, "")

	got := titles(l.SortedByPriority())
	want := []string{"高1", "高2", "中1", "低1"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	// The stored order is untouched.
	if titles(l.Tasks())[0] != "低1" {
		t.Fatalf("stored order should be preserved: %v", titles(l.Tasks()))
	}
}
