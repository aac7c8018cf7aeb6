package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s, err := Open(context.Background(), filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Logf("close failed: %v", err)
		}
	})
	return s
}

func TestRoundTrip(t *testing.T) {
	s := openTestStore(t)

	type nested struct {
		Name  string   `json:"name"`
		Count int      `json:"count"`
		Tags  []string `json:"tags"`
	}
	cases := []struct {
		key   string
		value any
		out   any
		check func(t *testing.T, out any)
	}{
		{
			key: "order", value: []string{"weather", "news"}, out: &[]string{},
			check: func(t *testing.T, out any) {
				got := *out.(*[]string)
				if len(got) != 2 || got[0] != "weather" || got[1] != "news" {
					t.Fatalf("unexpected slice: %v", got)
				}
			},
		},
		{
			key: "flag", value: true, out: new(bool),
			check: func(t *testing.T, out any) {
				if !*out.(*bool) {
					t.Fatalf("expected true")
				}
			},
		},
		{
			key: "blob", value: nested{Name: "x", Count: 3, Tags: []string{"a"}}, out: &nested{},
			check: func(t *testing.T, out any) {
				got := *out.(*nested)
				if got.Name != "x" || got.Count != 3 || len(got.Tags) != 1 {
					t.Fatalf("unexpected struct: %+v", got)
				}
			},
		},
	}

	for _, tc := range cases {
		if err := s.Set(tc.key, tc.value); err != nil {
			t.Fatalf("Set(%q) failed: %v", tc.key, err)
		}
		if !s.Get(tc.key, tc.out) {
			t.Fatalf("Get(%q) returned false", tc.key)
		}
		tc.check(t, tc.out)
	}
}

func TestGetMissingKey(t *testing.T) {
	s := openTestStore(t)
	var v []string
	if s.Get("nope", &v) {
		t.Fatalf("expected false for missing key")
	}
}

func TestGetCorruptValueReturnsFalse(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.db.Exec("INSERT INTO settings (key, value) VALUES (?, ?)", "bad", "{not json"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	var v map[string]string
	if s.Get("bad", &v) {
		t.Fatalf("expected corrupt value to be treated as absent")
	}
}

func TestGetTypeMismatchReturnsFalse(t *testing.T) {
	s := openTestStore(t)
	if err := s.Set("n", 42); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	var v []string
	if s.Get("n", &v) {
		t.Fatalf("expected type mismatch to be treated as absent")
	}
}

func TestGetOrDefault(t *testing.T) {
	s := openTestStore(t)
	got := GetOr(s, "missing", []string{"fallback"})
	if len(got) != 1 || got[0] != "fallback" {
		t.Fatalf("expected default, got %v", got)
	}
	if err := s.Set("present", []string{"real"}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got = GetOr(s, "present", []string{"fallback"})
	if len(got) != 1 || got[0] != "real" {
		t.Fatalf("expected stored value, got %v", got)
	}
}

func TestSetOverwrites(t *testing.T) {
	s := openTestStore(t)
	if err := s.Set("k", "one"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Set("k", "two"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	var v string
	if !s.Get("k", &v) || v != "two" {
		t.Fatalf("expected overwrite, got %q", v)
	}
}
