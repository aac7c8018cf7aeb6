package fetch

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
)

// Route is one access path to a target URL: direct, or through a forwarding
// relay. Unwrap strips the relay's envelope from a successful body.
type Route interface {
	Name() string
	Request(target string) (*http.Request, error)
	Unwrap(body []byte) ([]byte, error)
}

// ErrEmptyBody marks an HTTP success whose body carried nothing usable.
// The fetcher treats it as a route failure, not an overall success.
var ErrEmptyBody = errors.New("empty response body")

// Direct fetches the target without any relay.
type Direct struct{}

func (Direct) Name() string { return "direct" }

func (Direct) Request(target string) (*http.Request, error) {
	return http.NewRequest(http.MethodGet, target, nil)
}

func (Direct) Unwrap(body []byte) ([]byte, error) {
	if len(body) == 0 {
		return nil, ErrEmptyBody
	}
	return body, nil
}

// AllOrigins relays through api.allorigins.win, which wraps the real
// payload inside a JSON envelope under "contents".
type AllOrigins struct{}

func (AllOrigins) Name() string { return "allorigins" }

func (AllOrigins) Request(target string) (*http.Request, error) {
	return http.NewRequest(http.MethodGet,
		"https://api.allorigins.win/get?url="+url.QueryEscape(target), nil)
}

func (AllOrigins) Unwrap(body []byte) ([]byte, error) {
	var envelope struct {
		Contents string `json:"contents"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, errors.New("malformed allorigins envelope")
	}
	if envelope.Contents == "" {
		return nil, ErrEmptyBody
	}
	return []byte(envelope.Contents), nil
}

// CORSProxy relays through corsproxy.io, which passes the body through as-is.
type CORSProxy struct{}

func (CORSProxy) Name() string { return "corsproxy" }

func (CORSProxy) Request(target string) (*http.Request, error) {
	return http.NewRequest(http.MethodGet,
		"https://corsproxy.io/?"+url.QueryEscape(target), nil)
}

func (CORSProxy) Unwrap(body []byte) ([]byte, error) {
	if len(body) == 0 {
		return nil, ErrEmptyBody
	}
	return body, nil
}

// CodeTabs relays through api.codetabs.com, passing the body through as-is.
type CodeTabs struct{}

func (CodeTabs) Name() string { return "codetabs" }

func (CodeTabs) Request(target string) (*http.Request, error) {
	return http.NewRequest(http.MethodGet,
		"https://api.codetabs.com/v1/proxy?quest="+url.QueryEscape(target), nil)
}

func (CodeTabs) Unwrap(body []byte) ([]byte, error) {
	if len(body) == 0 {
		return nil, ErrEmptyBody
	}
	return body, nil
}

// RelayChain is the standard priority order for cross-origin targets.
func RelayChain() []Route {
	return []Route{AllOrigins{}, CORSProxy{}, CodeTabs{}}
}
