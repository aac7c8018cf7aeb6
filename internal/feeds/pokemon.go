package feeds

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"

	"github.com/kunya-oba/morning-dashboard/internal/config"
	"github.com/kunya-oba/morning-dashboard/internal/fetch"
	"github.com/kunya-oba/morning-dashboard/internal/models"
	"github.com/kunya-oba/morning-dashboard/internal/store"
	"github.com/kunya-oba/morning-dashboard/internal/util"
)

const (
	pokeAPIBase  = "https://pokeapi.co/api/v2"
	minPokemonID = 1
	maxPokemonID = 1010 // through generation 9; bump as new ones land
)

// TypeNamesJa maps creature type identifiers to Japanese display names.
var TypeNamesJa = map[string]string{
	"normal": "ノーマル", "fire": "ほのお", "water": "みず", "electric": "でんき",
	"grass": "くさ", "ice": "こおり", "fighting": "かくとう", "poison": "どく",
	"ground": "じめん", "flying": "ひこう", "psychic": "エスパー", "bug": "むし",
	"rock": "いわ", "ghost": "ゴースト", "dragon": "ドラゴン", "dark": "あく",
	"steel": "はがね", "fairy": "フェアリー",
}

// PokemonClient picks a daily creature from PokeAPI. The pick is cached in
// the store per calendar day; a manual refresh fetches a new one and saves
// it as today's pick.
type PokemonClient struct {
	HTTP  fetch.Doer
	Store *store.Store
	// RandomID overrides the ID roll in tests.
	RandomID func() int
}

type pokeAPIPokemon struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Height  int    `json:"height"`
	Weight  int    `json:"weight"`
	Sprites struct {
		FrontDefault string `json:"front_default"`
		Other        struct {
			OfficialArtwork struct {
				FrontDefault string `json:"front_default"`
			} `json:"official-artwork"`
		} `json:"other"`
	} `json:"sprites"`
	Types []struct {
		Type struct {
			Name string `json:"name"`
		} `json:"type"`
	} `json:"types"`
}

type pokeAPISpecies struct {
	Names []struct {
		Language struct {
			Name string `json:"name"`
		} `json:"language"`
		Name string `json:"name"`
	} `json:"names"`
}

// Today returns the pick for the given day, serving the persisted cache
// when it matches.
func (c PokemonClient) Today(ctx context.Context, day string) (models.Pokemon, error) {
	var cached models.StoredPokemon
	if c.Store != nil && c.Store.Get(config.KeyTodaysPokemon, &cached) && cached.Date == day {
		util.Debugf("pokemon: serving cached pick %s", cached.Pokemon.JapaneseName)
		return cached.Pokemon, nil
	}
	return c.Refresh(ctx, day)
}

// Refresh fetches a new random pick and persists it as the day's entry.
func (c PokemonClient) Refresh(ctx context.Context, day string) (models.Pokemon, error) {
	id := c.roll()
	p, err := c.fetchByID(ctx, id)
	if err != nil {
		return models.Pokemon{}, err
	}
	if c.Store != nil {
		util.LogError("pokemon: cache pick",
			c.Store.Set(config.KeyTodaysPokemon, models.StoredPokemon{Date: day, Pokemon: p}))
	}
	return p, nil
}

func (c PokemonClient) roll() int {
	if c.RandomID != nil {
		return c.RandomID()
	}
	return rand.Intn(maxPokemonID-minPokemonID+1) + minPokemonID
}

func (c PokemonClient) fetchByID(ctx context.Context, id int) (models.Pokemon, error) {
	body, err := fetch.Get(ctx, c.HTTP, fmt.Sprintf("%s/pokemon/%d", pokeAPIBase, id), config.FetchTimeout)
	if err != nil {
		return models.Pokemon{}, err
	}
	var base pokeAPIPokemon
	if err := json.Unmarshal(body, &base); err != nil {
		return models.Pokemon{}, fmt.Errorf("parse pokemon: %w", err)
	}

	body, err = fetch.Get(ctx, c.HTTP, fmt.Sprintf("%s/pokemon-species/%d", pokeAPIBase, id), config.FetchTimeout)
	if err != nil {
		return models.Pokemon{}, err
	}
	var species pokeAPISpecies
	if err := json.Unmarshal(body, &species); err != nil {
		return models.Pokemon{}, fmt.Errorf("parse species: %w", err)
	}

	types := make([]string, 0, len(base.Types))
	for _, t := range base.Types {
		types = append(types, t.Type.Name)
	}
	sprite := base.Sprites.Other.OfficialArtwork.FrontDefault
	if sprite == "" {
		sprite = base.Sprites.FrontDefault
	}
	return models.Pokemon{
		ID:           base.ID,
		Name:         base.Name,
		JapaneseName: japaneseName(species, base.Name),
		Sprite:       sprite,
		Types:        types,
		Height:       base.Height,
		Weight:       base.Weight,
	}, nil
}

// japaneseName prefers ja-Hrkt, then ja, then the romaji name.
func japaneseName(species pokeAPISpecies, fallback string) string {
	for _, want := range []string{"ja-Hrkt", "ja"} {
		for _, n := range species.Names {
			if n.Language.Name == want && n.Name != "" {
				return n.Name
			}
		}
	}
	return fallback
}
