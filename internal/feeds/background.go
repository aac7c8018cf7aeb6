package feeds

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kunya-oba/morning-dashboard/internal/config"
	"github.com/kunya-oba/morning-dashboard/internal/fetch"
	"github.com/kunya-oba/morning-dashboard/internal/models"
	"github.com/kunya-oba/morning-dashboard/internal/store"
	"github.com/kunya-oba/morning-dashboard/internal/util"
)

// BackgroundClient picks the daily background image URL. With an access
// key it asks the Unsplash API; without one it derives a keyless source
// URL seeded by the date so the same day yields the same image. The result
// is cached per day.
type BackgroundClient struct {
	HTTP      fetch.Doer
	Store     *store.Store
	AccessKey string
}

// Today returns the cached entry for the day, fetching a fresh one when
// the cache is stale or absent. Failure is non-fatal; the dashboard just
// goes without an accent image.
func (c BackgroundClient) Today(ctx context.Context, day string) (models.BackgroundImage, error) {
	var cached models.BackgroundImage
	if c.Store != nil && c.Store.Get(config.KeyBackgroundImage, &cached) && cached.Date == day {
		return cached, nil
	}

	img, err := c.fetchFresh(ctx, day)
	if err != nil {
		return models.BackgroundImage{}, err
	}
	if c.Store != nil {
		util.LogError("background: cache image", c.Store.Set(config.KeyBackgroundImage, img))
	}
	return img, nil
}

func (c BackgroundClient) fetchFresh(ctx context.Context, day string) (models.BackgroundImage, error) {
	if c.AccessKey == "" {
		// Keyless provider: the date seed keeps the URL stable all day.
		return models.BackgroundImage{
			Date: day,
			URL:  "https://source.unsplash.com/1920x1080/?morning,sunrise,nature&sig=" + day,
		}, nil
	}

	target := "https://api.unsplash.com/photos/random?query=morning,sunrise,nature&orientation=landscape&client_id=" + c.AccessKey
	body, err := fetch.Get(ctx, c.HTTP, target, config.FetchTimeout)
	if err != nil {
		return models.BackgroundImage{}, err
	}
	var resp struct {
		URLs struct {
			Regular string `json:"regular"`
		} `json:"urls"`
		User struct {
			Name string `json:"name"`
		} `json:"user"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return models.BackgroundImage{}, fmt.Errorf("parse photo: %w", err)
	}
	img := models.BackgroundImage{Date: day, URL: resp.URLs.Regular}
	if resp.User.Name != "" {
		img.Attribution = "Photo: " + resp.User.Name + " / Unsplash"
	}
	return img, nil
}
