package feeds

import (
	"context"
	"encoding/xml"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/kunya-oba/morning-dashboard/internal/config"
	"github.com/kunya-oba/morning-dashboard/internal/fetch"
	"github.com/kunya-oba/morning-dashboard/internal/models"
)

// NewsClient reads a syndication feed through the relay chain.
type NewsClient struct {
	HTTP    fetch.Doer
	FeedURL string
}

type rssDocument struct {
	Channel struct {
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
}

type rssItem struct {
	Title   string `xml:"title"`
	Link    string `xml:"link"`
	PubDate string `xml:"pubDate"`
	Source  string `xml:"source"`
}

// ErrNoItems signals a feed that parsed but carried nothing.
var ErrNoItems = errors.New("feed contained no items")

// Fetch returns the feed's items deduplicated, categorized, and sorted by
// publish date descending.
func (c NewsClient) Fetch(ctx context.Context) ([]models.NewsItem, error) {
	body, err := fetch.WithFallback(ctx, c.HTTP, c.FeedURL, fetch.RelayChain(), config.FetchTimeout)
	if err != nil {
		return nil, err
	}
	return ParseFeed(body)
}

// ParseFeed turns raw RSS XML into the card's item list.
func ParseFeed(body []byte) ([]models.NewsItem, error) {
	var doc rssDocument
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, err
	}

	items := make([]models.NewsItem, 0, len(doc.Channel.Items))
	for _, raw := range doc.Channel.Items {
		title := strings.TrimSpace(raw.Title)
		link := strings.TrimSpace(raw.Link)
		if title == "" || link == "" {
			continue
		}
		items = append(items, models.NewsItem{
			Title:      title,
			Link:       link,
			PubDate:    parsePubDate(raw.PubDate),
			Source:     strings.TrimSpace(raw.Source),
			Categories: Categorize(title),
		})
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PubDate.After(items[j].PubDate)
	})
	return dedupeByTitle(items), nil
}

// dedupeByTitle keeps the first occurrence of each exact title in the
// already-sorted list.
func dedupeByTitle(items []models.NewsItem) []models.NewsItem {
	seen := make(map[string]bool, len(items))
	out := items[:0]
	for _, item := range items {
		if seen[item.Title] {
			continue
		}
		seen[item.Title] = true
		out = append(out, item)
	}
	return out
}

// Categorize assigns every category whose keyword list has a containment
// match against the title. "all" is implicit on every item.
func Categorize(title string) []models.NewsCategory {
	cats := []models.NewsCategory{models.CategoryAll}
	for _, cat := range models.OrderedCategories {
		keywords, ok := models.CategoryKeywords[cat]
		if !ok {
			continue
		}
		for _, kw := range keywords {
			if strings.Contains(title, kw) {
				cats = append(cats, cat)
				break
			}
		}
	}
	return cats
}

var pubDateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
}

func parsePubDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	for _, layout := range pubDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}
