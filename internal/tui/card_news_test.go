package tui

import (
	"testing"
	"time"

	"github.com/kunya-oba/morning-dashboard/internal/config"
	"github.com/kunya-oba/morning-dashboard/internal/feeds"
	"github.com/kunya-oba/morning-dashboard/internal/models"
)

func seededNewsCard(t *testing.T) *newsCard {
	t.Helper()
	c := newNewsCard(feeds.NewsClient{}, openTuiStore(t), 15*time.Minute)
	c.seq = 1
	c.Update(newsMsg{Seq: 1, Items: []models.NewsItem{
		{Title: "株価が上昇", Link: "https://example.com/1",
			Categories: []models.NewsCategory{models.CategoryAll, models.CategoryBusiness}},
		{Title: "サッカー日本代表が勝利", Link: "https://example.com/2",
			Categories: []models.NewsCategory{models.CategoryAll, models.CategorySports}},
	}})
	return c
}

func TestNewsCategoryFilterHidesOthers(t *testing.T) {
	c := seededNewsCard(t)
	c.category = models.CategorySports
	visible := c.visibleItems()
	if len(visible) != 1 || visible[0].Link != "https://example.com/2" {
		t.Fatalf("expected only the sports item, got %v", visible)
	}
}

func TestNewsKeywordFilter(t *testing.T) {
	c := seededNewsCard(t)
	c.filter.SetValue("株価")
	visible := c.visibleItems()
	if len(visible) != 1 || visible[0].Link != "https://example.com/1" {
		t.Fatalf("expected keyword match only, got %v", visible)
	}
}

func TestNewsFavoritesPersist(t *testing.T) {
	s := openTuiStore(t)
	c := newNewsCard(feeds.NewsClient{}, s, 15*time.Minute)
	c.favorites["https://example.com/1"] = true
	c.persistFavorites()

	reloaded := newNewsCard(feeds.NewsClient{}, s, 15*time.Minute)
	if !reloaded.favorites["https://example.com/1"] {
		t.Fatalf("favorites should survive reload")
	}
}

func TestNewsCategorySelectionPersists(t *testing.T) {
	s := openTuiStore(t)
	c := newNewsCard(feeds.NewsClient{}, s, 15*time.Minute)
	c.category = models.CategoryTechnology
	if err := s.Set(config.KeyNewsFilter, string(c.category)); err != nil {
		t.Fatalf("persist failed: %v", err)
	}

	if got := newNewsCard(feeds.NewsClient{}, s, 15*time.Minute).category; got != models.CategoryTechnology {
		t.Fatalf("expected persisted category restored, got %s", got)
	}
}

func TestNewsStaleResponseDropped(t *testing.T) {
	c := seededNewsCard(t)
	c.seq = 5
	c.Update(newsMsg{Seq: 2, Items: []models.NewsItem{{Title: "古い", Link: "https://example.com/old"}}})
	if len(c.items) != 2 {
		t.Fatalf("stale items must be dropped, got %d", len(c.items))
	}
}

func TestNextCategoryCycles(t *testing.T) {
	cat := models.CategoryAll
	for i := 0; i < len(models.OrderedCategories); i++ {
		cat = nextCategory(cat)
	}
	if cat != models.CategoryAll {
		t.Fatalf("cycling every category should return to all, got %s", cat)
	}
}
