package layout

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/kunya-oba/morning-dashboard/internal/config"
	"github.com/kunya-oba/morning-dashboard/internal/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func sameOrder(a, b []CardID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func isPermutation(a, b []CardID) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[CardID]int)
	for _, id := range a {
		counts[id]++
	}
	for _, id := range b {
		counts[id]--
	}
	for _, n := range counts {
		if n != 0 {
			return false
		}
	}
	return true
}

func TestEmptyStoreYieldsDefaultAndPersistsIt(t *testing.T) {
	s := openTestStore(t)
	m := NewManager(s)

	if !sameOrder(m.Order(), DefaultOrder()) {
		t.Fatalf("expected default order, got %v", m.Order())
	}
	var persisted []string
	if !s.Get(config.KeyCardOrder, &persisted) {
		t.Fatalf("expected order persisted on first load")
	}
	if len(persisted) != len(DefaultOrder()) {
		t.Fatalf("persisted order wrong length: %v", persisted)
	}
	for i, id := range DefaultOrder() {
		if persisted[i] != string(id) {
			t.Fatalf("persisted[%d] = %q, want %q", i, persisted[i], id)
		}
	}
}

func TestCorruptOrderFallsBackToDefault(t *testing.T) {
	cases := []struct {
		name string
		seed any
	}{
		{"not an array", map[string]int{"weather": 1}},
		{"empty array", []string{}},
		{"duplicates", []string{"weather", "weather", "news"}},
		{"empty element", []string{"weather", "", "news"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := openTestStore(t)
			if err := s.Set(config.KeyCardOrder, tc.seed); err != nil {
				t.Fatalf("seed failed: %v", err)
			}
			m := NewManager(s)
			if !sameOrder(m.Order(), DefaultOrder()) {
				t.Fatalf("expected default order, got %v", m.Order())
			}
		})
	}
}

func TestUnknownIDsSurviveLoad(t *testing.T) {
	s := openTestStore(t)
	if err := s.Set(config.KeyCardOrder, []string{"weather", "mystery", "news"}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	m := NewManager(s)
	got := m.Order()
	if len(got) != 3 || got[1] != CardID("mystery") {
		t.Fatalf("expected unknown id preserved, got %v", got)
	}
}

func TestMoveIsAlwaysAPermutation(t *testing.T) {
	s := openTestStore(t)
	m := NewManager(s)
	before := m.Order()

	for _, active := range before {
		for _, over := range before {
			got := m.Move(active, over)
			if !isPermutation(got, before) {
				t.Fatalf("Move(%s,%s) lost or duplicated cards: %v", active, over, got)
			}
		}
	}
}

func TestMoveSelfIsNoOp(t *testing.T) {
	s := openTestStore(t)
	m := NewManager(s)
	before := m.Order()
	got := m.Move(CardNews, CardNews)
	if !sameOrder(got, before) {
		t.Fatalf("expected unchanged order, got %v", got)
	}
}

func TestMoveUnknownTargetIsNoOp(t *testing.T) {
	s := openTestStore(t)
	m := NewManager(s)
	before := m.Order()
	got := m.Move(CardNews, CardID("nope"))
	if !sameOrder(got, before) {
		t.Fatalf("expected unchanged order, got %v", got)
	}
}

func TestMoveLastOntoFirst(t *testing.T) {
	s := openTestStore(t)
	if err := s.Set(config.KeyCardOrder, []string{
		"weather", "clock", "train", "todo", "location",
		"anniversary", "quote", "news",
	}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	m := NewManager(s)

	got := m.Move(CardNews, CardWeather)
	want := []CardID{
		CardNews, CardWeather, CardClock, CardTrain, CardTodo,
		CardLocation, CardAnniversary, CardQuote,
	}
	if !sameOrder(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	// The store must reflect the new order immediately.
	var persisted []string
	if !s.Get(config.KeyCardOrder, &persisted) {
		t.Fatalf("expected persisted order")
	}
	if persisted[0] != "news" || persisted[1] != "weather" {
		t.Fatalf("store not updated: %v", persisted)
	}
}

func TestMoveDownShiftsIntervening(t *testing.T) {
	s := openTestStore(t)
	if err := s.Set(config.KeyCardOrder, []string{"weather", "clock", "train", "news"}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	m := NewManager(s)
	got := m.Move(CardWeather, CardTrain)
	want := []CardID{CardClock, CardTrain, CardWeather, CardNews}
	if !sameOrder(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestOrderSurvivesReload(t *testing.T) {
	s := openTestStore(t)
	m := NewManager(s)
	moved := m.Move(CardQuote, CardWeather)

	m2 := NewManager(s)
	if !sameOrder(m2.Order(), moved) {
		t.Fatalf("expected reloaded order %v, got %v", moved, m2.Order())
	}
}
