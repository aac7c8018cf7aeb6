package feeds

import (
	"context"
	"strings"
	"testing"

	"github.com/kunya-oba/morning-dashboard/internal/config"
	"github.com/kunya-oba/morning-dashboard/internal/models"
)

func TestBackgroundKeylessURLIsStableForDay(t *testing.T) {
	c := BackgroundClient{}
	first, err := c.Today(context.Background(), "2026-09-01")
	if err != nil {
		t.Fatalf("Today failed: %v", err)
	}
	second, err := c.Today(context.Background(), "2026-09-01")
	if err != nil {
		t.Fatalf("Today failed: %v", err)
	}
	if first.URL != second.URL {
		t.Fatalf("same day should yield the same URL: %q vs %q", first.URL, second.URL)
	}
	if !strings.Contains(first.URL, "2026-09-01") {
		t.Fatalf("URL should carry the date seed: %s", first.URL)
	}
}

func TestBackgroundKeyedFetchCachesPerDay(t *testing.T) {
	s := openFeedStore(t)
	client := &fakeDoer{responses: []fakeResponse{
		{body: `{"urls":{"regular":"https://images.example/morning.jpg"},"user":{"name":"Asa Hikari"}}`},
	}}
	c := BackgroundClient{HTTP: client, Store: s, AccessKey: "test-key"}

	img, err := c.Today(context.Background(), "2026-09-01")
	if err != nil {
		t.Fatalf("Today failed: %v", err)
	}
	if img.URL != "https://images.example/morning.jpg" {
		t.Fatalf("unexpected URL: %s", img.URL)
	}
	if !strings.Contains(img.Attribution, "Asa Hikari") {
		t.Fatalf("expected attribution, got %q", img.Attribution)
	}

	if _, err := c.Today(context.Background(), "2026-09-01"); err != nil {
		t.Fatalf("cached Today failed: %v", err)
	}
	if len(client.urls) != 1 {
		t.Fatalf("expected the cache to serve the second call, saw %d requests", len(client.urls))
	}
}

func TestBackgroundStaleCacheIsReplaced(t *testing.T) {
	s := openFeedStore(t)
	if err := s.Set(config.KeyBackgroundImage, models.BackgroundImage{Date: "2026-08-31", URL: "https://old.example/x.jpg"}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	c := BackgroundClient{Store: s}
	img, err := c.Today(context.Background(), "2026-09-01")
	if err != nil {
		t.Fatalf("Today failed: %v", err)
	}
	if img.Date != "2026-09-01" {
		t.Fatalf("expected a fresh entry, got %+v", img)
	}
	var stored models.BackgroundImage
	if !s.Get(config.KeyBackgroundImage, &stored) || stored.Date != "2026-09-01" {
		t.Fatalf("expected cache rolled forward, got %+v", stored)
	}
}
