package util

import (
	"regexp"
	"strings"
)

// SearchQuery represents the parsed components of a news filter string.
type SearchQuery struct {
	Categories []string
	Favorites  bool
	Text       []string
}

var (
	categoryRegex = regexp.MustCompile(`category:(\w+)`)
	favRegex      = regexp.MustCompile(`fav:(\w+)`)
)

// ParseSearchQuery breaks down a raw filter string into its structured components.
func ParseSearchQuery(query string) SearchQuery {
	sq := SearchQuery{}

	for _, match := range categoryRegex.FindAllStringSubmatch(query, -1) {
		if len(match) > 1 {
			sq.Categories = append(sq.Categories, strings.ToLower(match[1]))
		}
	}
	query = categoryRegex.ReplaceAllString(query, "")

	for _, match := range favRegex.FindAllStringSubmatch(query, -1) {
		if len(match) > 1 {
			v := strings.ToLower(match[1])
			sq.Favorites = v == "yes" || v == "true" || v == "only"
		}
	}
	query = favRegex.ReplaceAllString(query, "")

	sq.Text = strings.Fields(query)
	return sq
}

// MatchesText reports whether every free-text term appears in s,
// case-insensitively.
func (q SearchQuery) MatchesText(s string) bool {
	lower := strings.ToLower(s)
	for _, term := range q.Text {
		if !strings.Contains(lower, strings.ToLower(term)) {
			return false
		}
	}
	return true
}
