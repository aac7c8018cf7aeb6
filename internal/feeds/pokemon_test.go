package feeds

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kunya-oba/morning-dashboard/internal/config"
	"github.com/kunya-oba/morning-dashboard/internal/models"
	"github.com/kunya-oba/morning-dashboard/internal/store"
)

func openFeedStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(context.Background(), filepath.Join(t.TempDir(), "feeds.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

const pikachuPayload = `{
	"id": 25, "name": "pikachu", "height": 4, "weight": 60,
	"sprites": {
		"front_default": "https://img.example/25.png",
		"other": {"official-artwork": {"front_default": "https://img.example/25-art.png"}}
	},
	"types": [{"type": {"name": "electric"}}]
}`

const pikachuSpecies = `{
	"names": [
		{"language": {"name": "en"}, "name": "Pikachu"},
		{"language": {"name": "ja"}, "name": "ピカチュウJA"},
		{"language": {"name": "ja-Hrkt"}, "name": "ピカチュウ"}
	]
}`

func TestPokemonTodayFetchesAndCaches(t *testing.T) {
	s := openFeedStore(t)
	client := &fakeDoer{responses: []fakeResponse{
		{body: pikachuPayload},
		{body: pikachuSpecies},
	}}
	c := PokemonClient{HTTP: client, Store: s, RandomID: func() int { return 25 }}

	p, err := c.Today(context.Background(), "2026-09-01")
	if err != nil {
		t.Fatalf("Today failed: %v", err)
	}
	if p.JapaneseName != "ピカチュウ" {
		t.Fatalf("expected ja-Hrkt name preferred, got %q", p.JapaneseName)
	}
	if p.Sprite != "https://img.example/25-art.png" {
		t.Fatalf("expected official artwork sprite, got %q", p.Sprite)
	}

	// Second call the same day must not touch the network.
	again, err := c.Today(context.Background(), "2026-09-01")
	if err != nil {
		t.Fatalf("cached Today failed: %v", err)
	}
	if again.ID != 25 {
		t.Fatalf("expected cached pick, got %+v", again)
	}
	if len(client.urls) != 2 {
		t.Fatalf("expected no further requests, saw %d", len(client.urls))
	}
}

func TestPokemonNewDayInvalidatesCache(t *testing.T) {
	s := openFeedStore(t)
	if err := s.Set(config.KeyTodaysPokemon, models.StoredPokemon{
		Date:    "2026-08-31",
		Pokemon: models.Pokemon{ID: 1, JapaneseName: "フシギダネ"},
	}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	client := &fakeDoer{responses: []fakeResponse{
		{body: pikachuPayload},
		{body: pikachuSpecies},
	}}
	c := PokemonClient{HTTP: client, Store: s, RandomID: func() int { return 25 }}

	p, err := c.Today(context.Background(), "2026-09-01")
	if err != nil {
		t.Fatalf("Today failed: %v", err)
	}
	if p.ID != 25 {
		t.Fatalf("expected a fresh pick after the day changed, got %+v", p)
	}
	var stored models.StoredPokemon
	if !s.Get(config.KeyTodaysPokemon, &stored) || stored.Date != "2026-09-01" {
		t.Fatalf("expected cache updated to the new day, got %+v", stored)
	}
}

func TestPokemonJapaneseNameFallsBackToRomaji(t *testing.T) {
	species := pokeAPISpecies{}
	if got := japaneseName(species, "eevee"); got != "eevee" {
		t.Fatalf("expected romaji fallback, got %q", got)
	}
}

func TestPokemonRefreshTargetsRolledID(t *testing.T) {
	client := &fakeDoer{responses: []fakeResponse{
		{body: pikachuPayload},
		{body: pikachuSpecies},
	}}
	c := PokemonClient{HTTP: client, RandomID: func() int { return 25 }}
	if _, err := c.Refresh(context.Background(), "2026-09-01"); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if !strings.HasSuffix(client.urls[0], "/pokemon/25") {
		t.Fatalf("unexpected first request: %s", client.urls[0])
	}
	if !strings.HasSuffix(client.urls[1], "/pokemon-species/25") {
		t.Fatalf("unexpected second request: %s", client.urls[1])
	}
}
