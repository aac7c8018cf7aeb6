package feeds

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestPickAnniversaryExtractsNamedDays(t *testing.T) {
	extract := "11月11日は、ポッキー&プリッツの日、電池の日として知られる。他にも行事がある。"
	a := pickAnniversary(extract, 11, 11, func(n int) int { return 0 })
	if !strings.Contains(a.Title, "の日") {
		t.Fatalf("expected a named day, got %q", a.Title)
	}
	if !strings.Contains(a.Description, "11月11日は") {
		t.Fatalf("description should name the date: %q", a.Description)
	}
}

func TestPickAnniversaryPickIndexSelectsAmongMatches(t *testing.T) {
	extract := "この日は、海の日、山の日とされる。"
	first := pickAnniversary(extract, 7, 20, func(n int) int { return 0 })
	second := pickAnniversary(extract, 7, 20, func(n int) int { return n - 1 })
	if first.Title == second.Title {
		t.Fatalf("expected distinct picks, both %q", first.Title)
	}
}

func TestPickAnniversaryNoMatchUsesFirstSentence(t *testing.T) {
	a := pickAnniversary("グレゴリオ暦で年始から244日目にあたる。閏年では245日目。", 9, 1, func(int) int { return 0 })
	if a.Title != "9月1日" {
		t.Fatalf("expected date title fallback, got %q", a.Title)
	}
	if a.Description != "グレゴリオ暦で年始から244日目にあたる。" {
		t.Fatalf("expected first sentence, got %q", a.Description)
	}
}

func TestAnniversaryFetchFallsBackToCuratedTable(t *testing.T) {
	client := &fakeDoer{responses: []fakeResponse{{err: errors.New("unreachable")}}}
	now := time.Date(2026, 12, 25, 7, 0, 0, 0, time.Local)
	a, err := AnniversaryClient{HTTP: client}.Fetch(context.Background(), now)
	if err != nil {
		t.Fatalf("curated fallback should absorb the failure: %v", err)
	}
	if a.Title != "クリスマス" {
		t.Fatalf("expected curated entry, got %q", a.Title)
	}
}

func TestAnniversaryFetchUnknownDateSurfacesError(t *testing.T) {
	client := &fakeDoer{responses: []fakeResponse{{err: errors.New("unreachable")}}}
	now := time.Date(2026, 6, 2, 7, 0, 0, 0, time.Local)
	if _, err := (AnniversaryClient{HTTP: client}).Fetch(context.Background(), now); err == nil {
		t.Fatalf("date outside the curated table should error")
	}
}

func TestAnniversaryRequestTargetsDatePage(t *testing.T) {
	client := &fakeDoer{responses: []fakeResponse{{body: `{"extract":"みどりの日とされる。"}`}}}
	now := time.Date(2026, 5, 4, 7, 0, 0, 0, time.Local)
	if _, err := (AnniversaryClient{HTTP: client, Pick: func(int) int { return 0 }}).Fetch(context.Background(), now); err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if !strings.Contains(client.urls[0], "ja.wikipedia.org") {
		t.Fatalf("unexpected host: %s", client.urls[0])
	}
}
