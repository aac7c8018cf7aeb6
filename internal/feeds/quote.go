package feeds

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/kunya-oba/morning-dashboard/internal/config"
	"github.com/kunya-oba/morning-dashboard/internal/fetch"
	"github.com/kunya-oba/morning-dashboard/internal/models"
	"github.com/kunya-oba/morning-dashboard/internal/util"
)

const zenQuotesURL = "https://zenquotes.io/api/random"

// FallbackQuote is shown when every quote source fails.
var FallbackQuote = models.Quote{
	Text:   "The only way to do great work is to love what you do.",
	Author: "Steve Jobs",
	TextJa: "素晴らしい仕事をする唯一の方法は、自分がしていることを愛することです。",
}

// Translator converts English text to Japanese. Implementations are
// best-effort; any failure falls through to the next one.
type Translator interface {
	Name() string
	Translate(ctx context.Context, text string) (string, error)
}

// QuoteClient fetches a random quotation through the relay chain and
// machine-translates it. Translation failure is non-fatal: the original
// text doubles as the translation.
type QuoteClient struct {
	HTTP        fetch.Doer
	Translators []Translator
}

// NewQuoteClient wires the standard translator chain: MyMemory first,
// LibreTranslate second.
func NewQuoteClient(client fetch.Doer) QuoteClient {
	return QuoteClient{
		HTTP: client,
		Translators: []Translator{
			MyMemoryTranslator{HTTP: client},
			LibreTranslator{HTTP: client},
		},
	}
}

type zenQuote struct {
	Q string `json:"q"`
	A string `json:"a"`
}

// Fetch returns a translated random quote.
func (c QuoteClient) Fetch(ctx context.Context) (models.Quote, error) {
	body, err := fetch.WithFallback(ctx, c.HTTP, zenQuotesURL, fetch.RelayChain(), config.FetchTimeout)
	if err != nil {
		return models.Quote{}, err
	}

	// ZenQuotes answers with a one-element array.
	var list []zenQuote
	if err := json.Unmarshal(body, &list); err != nil {
		var single zenQuote
		if err2 := json.Unmarshal(body, &single); err2 != nil {
			return models.Quote{}, fmt.Errorf("parse quote: %w", err)
		}
		list = []zenQuote{single}
	}
	if len(list) == 0 || strings.TrimSpace(list[0].Q) == "" {
		return models.Quote{}, errors.New("empty quote payload")
	}

	q := models.Quote{Text: list[0].Q, Author: list[0].A}
	if q.Author == "" {
		q.Author = "Unknown"
	}
	q.TextJa = c.translate(ctx, q.Text)
	return q, nil
}

// translate runs the translator chain. A translator that errors or echoes
// its input unchanged falls through to the next; total failure returns the
// original text with no error surfaced.
func (c QuoteClient) translate(ctx context.Context, text string) string {
	for _, tr := range c.Translators {
		translated, err := tr.Translate(ctx, text)
		if err != nil {
			util.Debugf("quote: translator %s failed: %v", tr.Name(), err)
			continue
		}
		translated = strings.TrimSpace(translated)
		if translated == "" || translated == text {
			util.Debugf("quote: translator %s returned input unchanged", tr.Name())
			continue
		}
		return translated
	}
	return text
}

// MyMemoryTranslator uses the keyless MyMemory API.
type MyMemoryTranslator struct {
	HTTP fetch.Doer
}

func (MyMemoryTranslator) Name() string { return "mymemory" }

func (t MyMemoryTranslator) Translate(ctx context.Context, text string) (string, error) {
	target := "https://api.mymemory.translated.net/get?q=" + url.QueryEscape(text) + "&langpair=en|ja"
	body, err := fetch.Get(ctx, t.HTTP, target, config.FetchTimeout)
	if err != nil {
		return "", err
	}
	var resp struct {
		ResponseData struct {
			TranslatedText string `json:"translatedText"`
		} `json:"responseData"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", err
	}
	return resp.ResponseData.TranslatedText, nil
}

// LibreTranslator posts to a LibreTranslate instance.
type LibreTranslator struct {
	HTTP fetch.Doer
}

func (LibreTranslator) Name() string { return "libretranslate" }

func (t LibreTranslator) Translate(ctx context.Context, text string) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"q": text, "source": "en", "target": "ja", "format": "text",
	})
	if err != nil {
		return "", err
	}
	ctx, cancel := context.WithTimeout(ctx, config.FetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		"https://libretranslate.com/translate", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}
	var out struct {
		TranslatedText string `json:"translatedText"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return "", err
	}
	return out.TranslatedText, nil
}
