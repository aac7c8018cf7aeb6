package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kunya-oba/morning-dashboard/internal/config"
	"github.com/kunya-oba/morning-dashboard/internal/feeds"
	"github.com/kunya-oba/morning-dashboard/internal/layout"
	"github.com/kunya-oba/morning-dashboard/internal/models"
	"github.com/kunya-oba/morning-dashboard/internal/store"
	"github.com/kunya-oba/morning-dashboard/internal/util"
)

const newsPageSize = 6

type newsCard struct {
	client   feeds.NewsClient
	store    *store.Store
	interval time.Duration

	seq     int
	loading bool
	spin    spinner.Model
	items   []models.NewsItem
	err     error

	category  models.NewsCategory
	favorites map[string]bool
	favOnly   bool
	cursor    int
	filtering bool
	filter    textinput.Model
}

func newNewsCard(client feeds.NewsClient, s *store.Store, interval time.Duration) *newsCard {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	fi := textinput.New()
	fi.Placeholder = "キーワード..."
	fi.Width = 24

	c := &newsCard{
		client:    client,
		store:     s,
		interval:  interval,
		spin:      sp,
		filter:    fi,
		category:  models.CategoryAll,
		favorites: map[string]bool{},
	}
	if cat := store.GetOr(s, config.KeyNewsFilter, ""); cat != "" {
		c.category = models.NewsCategory(cat)
	}
	var favs []string
	if s.Get(config.KeyNewsFavorites, &favs) {
		for _, link := range favs {
			c.favorites[link] = true
		}
	}
	return c
}

func (c *newsCard) ID() layout.CardID { return layout.CardNews }

func (c *newsCard) Init() tea.Cmd {
	return tea.Batch(c.fetch(), refreshTick(c.ID(), c.interval))
}

func (c *newsCard) Refresh() tea.Cmd { return c.fetch() }

func (c *newsCard) capturing() bool { return c.filtering }

func (c *newsCard) fetch() tea.Cmd {
	c.seq++
	seq := c.seq
	c.loading = true
	client := c.client
	return tea.Batch(c.spin.Tick, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		items, err := client.Fetch(ctx)
		return newsMsg{Seq: seq, Items: items, Err: err}
	})
}

func (c *newsCard) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case refreshTickMsg:
		if msg.Card != c.ID() {
			return nil
		}
		return tea.Batch(c.fetch(), refreshTick(c.ID(), c.interval))
	case newsMsg:
		if msg.Seq != c.seq {
			return nil
		}
		c.loading = false
		c.err = msg.Err
		if msg.Err == nil {
			c.items = msg.Items
			c.cursor = 0
		}
	case spinner.TickMsg:
		if !c.loading {
			return nil
		}
		var cmd tea.Cmd
		c.spin, cmd = c.spin.Update(msg)
		return cmd
	case tea.KeyMsg:
		return c.handleKey(msg)
	}
	return nil
}

func (c *newsCard) handleKey(key tea.KeyMsg) tea.Cmd {
	if c.filtering {
		switch key.String() {
		case "esc", "enter":
			c.filtering = false
			return nil
		}
		var cmd tea.Cmd
		c.filter, cmd = c.filter.Update(key)
		c.cursor = 0
		return cmd
	}

	visible := c.visibleItems()
	switch key.String() {
	case "j", "down":
		c.cursor = util.Clamp(c.cursor+1, 0, len(visible)-1)
	case "k", "up":
		c.cursor = util.Clamp(c.cursor-1, 0, len(visible)-1)
	case "c":
		c.category = nextCategory(c.category)
		c.cursor = 0
		util.LogError("tui: persist news filter", c.store.Set(config.KeyNewsFilter, string(c.category)))
	case "f":
		if c.cursor < len(visible) {
			link := visible[c.cursor].Link
			if c.favorites[link] {
				delete(c.favorites, link)
			} else {
				c.favorites[link] = true
			}
			c.persistFavorites()
		}
	case "F":
		c.favOnly = !c.favOnly
		c.cursor = 0
	case "/":
		c.filtering = true
		return c.filter.Focus()
	}
	return nil
}

func nextCategory(cat models.NewsCategory) models.NewsCategory {
	for i, o := range models.OrderedCategories {
		if o == cat {
			return models.OrderedCategories[(i+1)%len(models.OrderedCategories)]
		}
	}
	return models.CategoryAll
}

func (c *newsCard) persistFavorites() {
	links := make([]string, 0, len(c.favorites))
	for link := range c.favorites {
		links = append(links, link)
	}
	util.LogError("tui: persist news favorites", c.store.Set(config.KeyNewsFavorites, links))
}

// visibleItems applies the category, favorites, and keyword filters. The
// text box also accepts structured tokens: category:business narrows the
// category, fav:only narrows to favorites.
func (c *newsCard) visibleItems() []models.NewsItem {
	query := util.ParseSearchQuery(strings.TrimSpace(c.filter.Value()))
	categories := []models.NewsCategory{c.category}
	for _, raw := range query.Categories {
		categories = append(categories, models.NewsCategory(raw))
	}
	favOnly := c.favOnly || query.Favorites

	var out []models.NewsItem
	for _, item := range c.items {
		matched := true
		for _, cat := range categories {
			if cat != models.CategoryAll && !hasCategory(item, cat) {
				matched = false
				break
			}
		}
		if !matched {
			continue
		}
		if favOnly && !c.favorites[item.Link] {
			continue
		}
		if !query.MatchesText(item.Title) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func hasCategory(item models.NewsItem, cat models.NewsCategory) bool {
	for _, c := range item.Categories {
		if c == cat {
			return true
		}
	}
	return false
}

func (c *newsCard) View(th Theme, width int) string {
	var b strings.Builder
	b.WriteString(th.Accent.Render("["+models.CategoryLabels[c.category]+"]"))
	if c.favOnly {
		b.WriteString(" " + th.Warning.Render("★のみ"))
	}
	if c.filtering || c.filter.Value() != "" {
		b.WriteString(" " + c.filter.View())
	}
	b.WriteString("\n")

	if c.loading && len(c.items) == 0 {
		b.WriteString(c.spin.View() + " 読み込み中...")
		return b.String()
	}
	visible := c.visibleItems()
	if len(visible) == 0 {
		if c.err != nil {
			b.WriteString(errorLine(th, c.err))
		} else {
			b.WriteString(th.Dim.Render("該当する記事がありません"))
		}
		return b.String()
	}

	start := 0
	if c.cursor >= newsPageSize {
		start = c.cursor - newsPageSize + 1
	}
	end := start + newsPageSize
	if end > len(visible) {
		end = len(visible)
	}
	for i := start; i < end; i++ {
		item := visible[i]
		mark := "  "
		if c.favorites[item.Link] {
			mark = "★ "
		}
		line := mark + item.Title
		if !item.PubDate.IsZero() {
			line += "  " + item.PubDate.Format("15:04")
		}
		style := th.Text
		if i == c.cursor {
			style = th.Focused
		}
		b.WriteString(style.Render(line) + "\n")
	}
	b.WriteString(th.Dim.Render("c カテゴリ / f ★ / F ★のみ / / 検索"))
	if c.err != nil {
		b.WriteString("\n" + errorLine(th, c.err))
	}
	return b.String()
}
